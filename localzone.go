// Package localzone reports the IANA time zone of the host, e.g.
// "Europe/Berlin".
//
// Each target compiles in exactly one backend. Unix systems read TZ,
// /etc/timezone, /var/db/zoneinfo and the /etc/localtime symlink. Windows asks
// the OS for its zone name and maps it through the CLDR windowsZones table.
// WebAssembly in a JS host asks Intl.DateTimeFormat. Every call probes from
// scratch; nothing is cached.
//
// When no zone can be determined the lookup reports false and callers should
// assume UTC:
//
//	zone, ok := localzone.LocalZone()
//	if !ok {
//		zone = "UTC"
//	}
//
// By default candidates are checked against the tz database compiled into the
// binary. Build with the localzone_noautovalidation tag to accept any
// plausible name, or pass a validator of your own to LocalZoneWithValidation.
package localzone

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-localzone/pkg/probe"
	"github.com/goliatone/go-localzone/pkg/winzones"
)

// Validator decides whether a candidate zone name is acceptable.
type Validator = probe.Validator

// Result carries the detected zone and how it was found.
type Result = probe.Result

// LocalZone returns the host zone using the default validator.
func LocalZone() (string, bool) {
	return New().LocalZone()
}

// LocalZoneWithValidation returns the host zone, accepting only candidates
// valid approves. On Unix every candidate is checked; on Windows only the
// final IANA name; the web backend ignores valid.
func LocalZoneWithValidation(valid Validator) (string, bool) {
	return New(WithValidator(valid)).LocalZone()
}

// Option customises a Detector.
type Option func(*Detector)

// WithValidator replaces the default validator. Nil accepts everything.
func WithValidator(valid Validator) Option {
	return func(d *Detector) {
		if valid == nil {
			valid = probe.AcceptAll
		}
		d.valid = valid
	}
}

// WithProber replaces the backend compiled in for the current target.
func WithProber(p probe.Prober) Option {
	return func(d *Detector) {
		d.prober = p
	}
}

// WithLogger routes backend tracing to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Detector) {
		d.logger = logger
	}
}

// Detector runs the platform backend with a validator. It holds no state
// between calls and is safe for concurrent use.
type Detector struct {
	prober probe.Prober
	valid  Validator
	logger *zap.Logger
}

// New constructs a Detector for the current target.
func New(options ...Option) *Detector {
	d := &Detector{valid: defaultValidator()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}
	if d.logger == nil {
		d.logger = zap.NewNop()
	}
	if d.prober == nil {
		d.prober = platformProber(d.logger)
	}
	return d
}

// Detect probes the host and returns the full result, including the reasons
// each source was skipped when nothing was found.
func (d *Detector) Detect() Result {
	res := d.prober.Probe(d.valid)
	if res.Found() {
		d.logger.Debug("local zone detected",
			zap.String("backend", res.Backend),
			zap.String("stage", res.Stage),
			zap.String("zone", res.Zone),
		)
	} else {
		d.logger.Debug("local zone unknown", zap.String("backend", res.Backend), zap.Error(res.Err))
	}
	return res
}

// LocalZone returns the detected zone, or false when none was found.
func (d *Detector) LocalZone() (string, bool) {
	res := d.Detect()
	return res.Zone, res.Found()
}

// WinZoneToIANA maps a Windows zone name to its preferred IANA zone.
func WinZoneToIANA(windows string) (string, bool) {
	return winzones.WinZoneToIANA(windows)
}

// WinZoneToIANAInTerritory maps a Windows zone name to the IANA zone CLDR
// assigns it in territory, e.g. "CA".
func WinZoneToIANAInTerritory(windows, territory string) (string, bool) {
	return winzones.WinZoneToIANAInTerritory(windows, territory)
}

// IANAToWinZone returns the Windows zone name and CLDR territory for an IANA
// zone.
func IANAToWinZone(iana string) (windows, territory string, ok bool) {
	return winzones.IANAToWinZone(iana)
}
