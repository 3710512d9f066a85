package posix

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/goliatone/go-localzone/pkg/probe"
)

// maxLinkHops bounds symlink chains, matching the kernel's ELOOP limit.
const maxLinkHops = 40

// Stage is one source of candidates. Candidate returns the raw zone name or an
// error explaining why the source had nothing.
type Stage struct {
	Name      string
	Candidate func() (string, error)
}

func envStage(opts Options) Stage {
	return Stage{
		Name: "env:" + opts.EnvVar,
		Candidate: func() (string, error) {
			value, ok := opts.LookupEnv(opts.EnvVar)
			if !ok {
				return "", fmt.Errorf("posix: %s not set: %w", opts.EnvVar, probe.ErrNoCandidate)
			}
			return value, nil
		},
	}
}

func fileStage(opts Options, path string) Stage {
	return Stage{
		Name: "file:" + path,
		Candidate: func() (string, error) {
			data, err := afero.ReadFile(opts.Fs, path)
			if err != nil {
				return "", fmt.Errorf("posix: read %s: %w", path, err)
			}
			return strings.TrimSpace(string(data)), nil
		},
	}
}

func symlinkStage(opts Options) Stage {
	return Stage{
		Name: "symlink:" + opts.LocaltimePath,
		Candidate: func() (string, error) {
			target, err := resolveLink(opts.Fs, opts.LocaltimePath)
			if err != nil {
				return "", err
			}
			_, zone, ok := strings.Cut(filepath.ToSlash(target), opts.Marker)
			if !ok {
				return "", fmt.Errorf("posix: %s resolves to %s without %q: %w", opts.LocaltimePath, target, opts.Marker, probe.ErrNoCandidate)
			}
			return zone, nil
		},
	}
}

// resolveLink returns the real path behind the symlink name. On the OS
// filesystem every component is resolved, so linked directories such as
// zoneinfo/posix -> . collapse. Other filesystems only get the link chain at
// the leaf followed.
func resolveLink(fsys afero.Fs, name string) (string, error) {
	lstater, ok := fsys.(afero.Lstater)
	if !ok {
		return "", fmt.Errorf("posix: %T cannot lstat: %w", fsys, probe.ErrNoCandidate)
	}
	info, lstatCalled, err := lstater.LstatIfPossible(name)
	if err != nil {
		return "", fmt.Errorf("posix: lstat %s: %w", name, err)
	}
	if !lstatCalled || info.Mode()&fs.ModeSymlink == 0 {
		return "", fmt.Errorf("posix: %s is not a symlink: %w", name, probe.ErrNoCandidate)
	}

	if _, isOS := fsys.(*afero.OsFs); isOS {
		resolved, err := filepath.EvalSymlinks(name)
		if err != nil {
			return "", fmt.Errorf("posix: resolve %s: %w", name, err)
		}
		return resolved, nil
	}
	return followChain(fsys, lstater, name)
}

func followChain(fsys afero.Fs, lstater afero.Lstater, name string) (string, error) {
	reader, ok := fsys.(afero.LinkReader)
	if !ok {
		return "", fmt.Errorf("posix: %T cannot read links: %w", fsys, probe.ErrNoCandidate)
	}

	current := name
	for hops := 0; hops < maxLinkHops; hops++ {
		info, lstatCalled, err := lstater.LstatIfPossible(current)
		if err != nil {
			return "", fmt.Errorf("posix: lstat %s: %w", current, err)
		}
		if !lstatCalled || info.Mode()&fs.ModeSymlink == 0 {
			return current, nil
		}

		target, err := reader.ReadlinkIfPossible(current)
		if err != nil {
			return "", fmt.Errorf("posix: readlink %s: %w", current, err)
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(current), target)
		}
		current = filepath.Clean(target)
	}
	return "", fmt.Errorf("posix: resolve %s: %w", name, errTooManyLinks)
}

var errTooManyLinks = errors.New("too many levels of symbolic links")

func isNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist) || errors.Is(err, probe.ErrNoCandidate)
}
