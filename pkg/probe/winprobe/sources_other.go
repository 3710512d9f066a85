//go:build !windows

package winprobe

// DefaultSources is empty off Windows; callers supply their own through
// WithSources.
func DefaultSources() []Source {
	return nil
}
