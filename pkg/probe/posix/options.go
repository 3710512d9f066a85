package posix

import (
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	DefaultEnvVar        = "TZ"
	DefaultLocaltimePath = "/etc/localtime"
	DefaultMarker        = "/zoneinfo/"
)

// DefaultZoneFiles lists the plain-text zone files, in probe order.
var DefaultZoneFiles = []string{"/etc/timezone", "/var/db/zoneinfo"}

// LookupEnvFunc matches os.LookupEnv.
type LookupEnvFunc func(key string) (string, bool)

type Options struct {
	EnvVar        string
	ZoneFiles     []string
	LocaltimePath string
	Marker        string

	Fs        afero.Fs
	LookupEnv LookupEnvFunc
	Logger    *zap.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		EnvVar:        DefaultEnvVar,
		ZoneFiles:     append([]string{}, DefaultZoneFiles...),
		LocaltimePath: DefaultLocaltimePath,
		Marker:        DefaultMarker,
		Fs:            afero.NewOsFs(),
		LookupEnv:     os.LookupEnv,
		Logger:        zap.NewNop(),
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
	if opts.Marker == "" {
		opts.Marker = DefaultMarker
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.LookupEnv == nil {
		opts.LookupEnv = os.LookupEnv
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.ZoneFiles != nil {
		opts.ZoneFiles = append([]string{}, opts.ZoneFiles...)
	}
	return opts
}

// WithEnvVar changes the variable read by the env stage. An empty name
// disables the stage.
func WithEnvVar(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.EnvVar = name
	}
}

// WithZoneFiles replaces the plain-text zone files. Nil or empty disables the
// file stages.
func WithZoneFiles(paths ...string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ZoneFiles = append([]string{}, paths...)
	}
}

// WithLocaltimePath changes the symlink inspected by the last stage. An empty
// path disables the stage.
func WithLocaltimePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LocaltimePath = path
	}
}

func WithMarker(marker string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Marker = marker
	}
}

func WithFs(fs afero.Fs) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Fs = fs
	}
}

func WithLookupEnv(fn LookupEnvFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LookupEnv = fn
	}
}

// WithEnv serves the env stage from a fixed map instead of the process
// environment.
func WithEnv(env map[string]string) OptionFn {
	return WithLookupEnv(func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	})
}

func WithLogger(logger *zap.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}
