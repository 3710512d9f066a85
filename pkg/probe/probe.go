// Package probe defines the contract shared by the platform backends that
// look for the host's IANA zone name. A backend walks its sources in order and
// reports the first candidate it accepts, or nothing at all.
package probe

import "errors"

var (
	// ErrNoCandidate reports that a stage had nothing to offer (unset
	// variable, missing file, table miss).
	ErrNoCandidate = errors.New("probe: no candidate")
	// ErrImplausible reports a candidate that cannot be a tz identifier.
	ErrImplausible = errors.New("probe: implausible zone name")
	// ErrRejected reports a candidate refused by the validator.
	ErrRejected = errors.New("probe: rejected by validator")
	// ErrUnsupported is returned by backends for targets without a zone source.
	ErrUnsupported = errors.New("probe: unsupported platform")
)

// Validator decides whether a candidate is an acceptable final answer.
type Validator func(name string) bool

// AcceptAll is the validator used when no zone database is available.
func AcceptAll(string) bool { return true }

// Prober is implemented by each platform backend.
type Prober interface {
	// Name identifies the backend, e.g. "posix".
	Name() string
	// Probe runs the backend's stages. Backends decide where valid applies.
	Probe(valid Validator) Result
}

// Result is the outcome of one probe. Zone is empty when nothing was found;
// Err then explains, stage by stage, why. Err is informational only.
type Result struct {
	Backend string
	Stage   string
	Zone    string
	Err     error
}

// Found reports whether a zone was accepted.
func (r Result) Found() bool {
	return r.Zone != ""
}

// Plausible reports whether name could be a tz database identifier: non-empty
// and made only of ASCII letters, digits, '-', '+', '/' and '_'.
func Plausible(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '+' || c == '/' || c == '_':
		default:
			return false
		}
	}
	return true
}
