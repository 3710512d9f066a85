// Package winprobe finds the local zone on Windows. The OS reports a Windows
// zone name, which is translated to an IANA name through the CLDR table in
// pkg/winzones. The validator is applied once, to the translated name.
package winprobe

import (
	"fmt"
	"unicode/utf16"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/goliatone/go-localzone/pkg/probe"
	"github.com/goliatone/go-localzone/pkg/winzones"
)

const backendName = "windows"

// Source reports the Windows name of the active time zone.
type Source struct {
	Name  string
	Query func() (string, error)
}

type Options struct {
	Sources []Source
	Table   *winzones.Table
	Logger  *zap.Logger
}

type OptionFn func(*Options)

// DefaultOptions uses the platform sources and the embedded table.
func DefaultOptions() Options {
	return Options{
		Sources: DefaultSources(),
		Logger:  zap.NewNop(),
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Sources != nil {
		opts.Sources = append([]Source{}, opts.Sources...)
	}
	return opts
}

func WithSources(sources ...Source) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Sources = append([]Source{}, sources...)
	}
}

func WithTable(table *winzones.Table) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Table = table
	}
}

func WithLogger(logger *zap.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

type Prober struct {
	opts Options
}

var _ probe.Prober = (*Prober)(nil)

func New(fns ...OptionFn) *Prober {
	return &Prober{opts: NewOptions(fns...)}
}

func (p *Prober) Name() string { return backendName }

// Probe queries each source until one reports a name present in the table,
// then hands the IANA translation to valid. A rejected translation ends the
// probe; later sources are not consulted.
func (p *Prober) Probe(valid probe.Validator) probe.Result {
	if valid == nil {
		valid = probe.AcceptAll
	}
	opts := p.opts
	logger := opts.Logger

	table := opts.Table
	if table == nil {
		loaded, err := winzones.Default()
		if err != nil {
			return probe.Result{Backend: backendName, Err: fmt.Errorf("winprobe: load table: %w", err)}
		}
		table = loaded
	}

	var merr *multierror.Error
	for _, source := range opts.Sources {
		name, err := source.Query()
		if err != nil {
			logger.Debug("source failed", zap.String("source", source.Name), zap.Error(err))
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", source.Name, err))
			continue
		}
		zone, ok := table.ToIANA(name)
		if !ok {
			logger.Debug("windows zone not in table", zap.String("source", source.Name), zap.String("windows", name))
			merr = multierror.Append(merr, fmt.Errorf("%s: %q not in table: %w", source.Name, name, probe.ErrNoCandidate))
			continue
		}
		if !valid(zone) {
			logger.Debug("zone rejected", zap.String("source", source.Name), zap.String("zone", zone))
			merr = multierror.Append(merr, fmt.Errorf("%s: %q: %w", source.Name, zone, probe.ErrRejected))
			return probe.Result{Backend: backendName, Err: merr.ErrorOrNil()}
		}
		logger.Debug("zone resolved", zap.String("source", source.Name), zap.String("windows", name), zap.String("zone", zone))
		return probe.Result{Backend: backendName, Stage: source.Name, Zone: zone}
	}

	if merr == nil {
		merr = multierror.Append(merr, probe.ErrNoCandidate)
	}
	return probe.Result{Backend: backendName, Err: merr.ErrorOrNil()}
}

// DecodeName turns a fixed-size UTF-16 buffer from the Windows API into a
// string. Decoding stops at the first NUL; invalid sequences become U+FFFD.
func DecodeName(buf []uint16) string {
	for i, c := range buf {
		if c == 0 {
			buf = buf[:i]
			break
		}
	}
	return string(utf16.Decode(buf))
}
