package timezones

import (
	"strings"
	"time"
	_ "time/tzdata"
)

// Known reports whether name loads as a zone through time.LoadLocation, which
// consults ZONEINFO and the system zoneinfo directories before the copy
// embedded in the binary. "Local", the empty string and the non-identifier
// entries of system trees (posixrules, posix/..., right/...) are rejected.
func Known(name string) bool {
	switch {
	case name == "", name == "Local", name == "posixrules":
		return false
	case strings.HasPrefix(name, "posix/"), strings.HasPrefix(name, "right/"):
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}
