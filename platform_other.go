//go:build !unix && !windows && !(js && wasm)

package localzone

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-localzone/pkg/probe"
)

func platformProber(*zap.Logger) probe.Prober {
	return unsupported{}
}

type unsupported struct{}

func (unsupported) Name() string { return "unsupported" }

func (unsupported) Probe(probe.Validator) probe.Result {
	return probe.Result{Backend: "unsupported", Err: probe.ErrUnsupported}
}
