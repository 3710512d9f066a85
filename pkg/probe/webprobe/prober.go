// Package webprobe reports the zone resolved by the host's Intl API when
// running as WebAssembly in a browser or JS runtime. The host already speaks
// IANA names, so the value is returned verbatim and no validator is consulted.
package webprobe

import (
	"fmt"

	"github.com/goliatone/go-localzone/pkg/probe"
)

const (
	backendName = "web"
	stageName   = "intl"
)

// Intl is the slice of the host internationalization API the prober needs.
type Intl interface {
	// ResolvedTimeZone returns resolvedOptions().timeZone of a default
	// DateTimeFormat, and false when the field is missing or not a string.
	ResolvedTimeZone() (string, bool)
}

// IntlFunc adapts a function to Intl.
type IntlFunc func() (string, bool)

func (f IntlFunc) ResolvedTimeZone() (string, bool) { return f() }

type Prober struct {
	host Intl
}

var _ probe.Prober = (*Prober)(nil)

func New(host Intl) *Prober {
	return &Prober{host: host}
}

func (p *Prober) Name() string { return backendName }

// Probe ignores valid.
func (p *Prober) Probe(probe.Validator) probe.Result {
	if p == nil || p.host == nil {
		return probe.Result{Backend: backendName, Err: fmt.Errorf("webprobe: no host: %w", probe.ErrUnsupported)}
	}
	zone, ok := p.host.ResolvedTimeZone()
	if !ok || zone == "" {
		return probe.Result{Backend: backendName, Err: fmt.Errorf("%s: timeZone unavailable: %w", stageName, probe.ErrNoCandidate)}
	}
	return probe.Result{Backend: backendName, Stage: stageName, Zone: zone}
}
