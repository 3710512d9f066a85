//go:build !localzone_noautovalidation

package localzone

import (
	"github.com/goliatone/go-localzone/components/timezones"
	"github.com/goliatone/go-localzone/pkg/probe"
)

// AutoValidation reports whether candidates are checked against the embedded
// tz database by default.
const AutoValidation = true

func defaultValidator() probe.Validator {
	return timezones.Known
}
