//go:build unix

package localzone

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-localzone/pkg/probe"
	"github.com/goliatone/go-localzone/pkg/probe/posix"
)

func platformProber(logger *zap.Logger) probe.Prober {
	return posix.New(posix.WithLogger(logger))
}
