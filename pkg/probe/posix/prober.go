// Package posix finds the local zone on Unix-like systems. It tries, in order,
// the TZ variable, /etc/timezone, /var/db/zoneinfo and the target of the
// /etc/localtime symlink, returning the first candidate that looks like a tz
// identifier and satisfies the caller's validator.
package posix

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/goliatone/go-localzone/pkg/probe"
)

const backendName = "posix"

type Prober struct {
	opts Options
}

var _ probe.Prober = (*Prober)(nil)

func New(fns ...OptionFn) *Prober {
	return &Prober{opts: NewOptions(fns...)}
}

func (p *Prober) Name() string { return backendName }

// Stages returns the configured stages in probe order.
func (p *Prober) Stages() []Stage {
	opts := p.options()
	stages := make([]Stage, 0, len(opts.ZoneFiles)+2)
	if opts.EnvVar != "" {
		stages = append(stages, envStage(opts))
	}
	for _, path := range opts.ZoneFiles {
		if path == "" {
			continue
		}
		stages = append(stages, fileStage(opts, path))
	}
	if opts.LocaltimePath != "" {
		stages = append(stages, symlinkStage(opts))
	}
	return stages
}

// Probe returns the first candidate passing both probe.Plausible and valid.
// A nil valid accepts every plausible candidate.
func (p *Prober) Probe(valid probe.Validator) probe.Result {
	if valid == nil {
		valid = probe.AcceptAll
	}
	logger := p.options().Logger

	var merr *multierror.Error
	for _, stage := range p.Stages() {
		zone, err := accept(stage, valid)
		if err != nil {
			if isNotExist(err) {
				logger.Debug("stage empty", zap.String("stage", stage.Name), zap.Error(err))
			} else {
				logger.Debug("stage failed", zap.String("stage", stage.Name), zap.Error(err))
			}
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", stage.Name, err))
			continue
		}
		logger.Debug("stage accepted", zap.String("stage", stage.Name), zap.String("zone", zone))
		return probe.Result{Backend: backendName, Stage: stage.Name, Zone: zone}
	}

	if merr == nil {
		merr = multierror.Append(merr, probe.ErrNoCandidate)
	}
	return probe.Result{Backend: backendName, Err: merr.ErrorOrNil()}
}

func accept(stage Stage, valid probe.Validator) (string, error) {
	zone, err := stage.Candidate()
	if err != nil {
		return "", err
	}
	if !probe.Plausible(zone) {
		return "", fmt.Errorf("%q: %w", zone, probe.ErrImplausible)
	}
	if !valid(zone) {
		return "", fmt.Errorf("%q: %w", zone, probe.ErrRejected)
	}
	return zone, nil
}

func (p *Prober) options() Options {
	if p == nil {
		return DefaultOptions()
	}
	return p.opts
}
