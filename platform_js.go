//go:build js && wasm

package localzone

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-localzone/pkg/probe"
	"github.com/goliatone/go-localzone/pkg/probe/webprobe"
)

func platformProber(*zap.Logger) probe.Prober {
	return webprobe.New(webprobe.HostIntl{})
}
