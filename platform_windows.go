//go:build windows

package localzone

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-localzone/pkg/probe"
	"github.com/goliatone/go-localzone/pkg/probe/winprobe"
)

func platformProber(logger *zap.Logger) probe.Prober {
	return winprobe.New(winprobe.WithLogger(logger))
}
