package activate

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/deisrc/deisrc/internal/branding"
	"github.com/deisrc/deisrc/internal/config"
	"github.com/deisrc/deisrc/internal/match"
	"github.com/deisrc/deisrc/internal/platform"
	"github.com/deisrc/deisrc/internal/store"
	"github.com/spf13/afero"
)

var (
	// ErrNotFound is returned when the requested profile is not a file in the store.
	ErrNotFound = errors.New("profile not found")
	// ErrUnsafeOverwrite is returned when the client config path holds something
	// other than a symlink. It is never removed automatically.
	ErrUnsafeOverwrite = errors.New("refusing to replace a file that is not a symlink")
)

// Engine resolves profile names and points the client config symlink at them.
type Engine struct {
	fs     afero.Fs
	cfg    *config.Config
	out    io.Writer
	logger *slog.Logger
}

// New returns an Engine writing status messages to out. The filesystem must
// support symlinks.
func New(fs afero.Fs, cfg *config.Config, out io.Writer, logger *slog.Logger) (*Engine, error) {
	if _, err := platform.Symlinks(fs); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{fs: fs, cfg: cfg, out: out, logger: logger}, nil
}

// Resolve maps a possibly partial name to a stored profile name. When nothing
// matches, input is returned unchanged so that activation reports it as missing.
func (e *Engine) Resolve(input string) string {
	names, err := store.Names(e.fs, e.cfg.StoreDir)
	if err != nil {
		e.logger.Debug("listing profiles for resolution", "error", err)
		return input
	}
	name, tier, err := match.ResolveTier(input, names)
	if err != nil {
		e.logger.Debug("no profile matched", "query", input)
		return input
	}
	e.logger.Debug("resolved profile", "query", input, "profile", name, "tier", tier)
	return name
}

// Switch resolves input and activates the result. A missing profile is
// reported under the name the user typed.
func (e *Engine) Switch(input string) error {
	err := e.Activate(e.Resolve(input))
	if errors.Is(err, ErrNotFound) {
		return notFound(input)
	}
	return err
}

// Active returns the name of the profile the client config currently links
// to, or "" when there is no symlink.
func (e *Engine) Active() (string, error) {
	info, err := platform.Lstat(e.fs, e.cfg.LinkPath)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("inspecting %s: %w", e.cfg.LinkPath, err)
	}
	if !platform.IsSymlink(info) {
		return "", nil
	}
	target, err := platform.ResolveSymlinkTarget(e.fs, e.cfg.LinkPath)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", e.cfg.LinkPath, err)
	}
	return filepath.Base(target), nil
}

// Activate points the client config symlink at the named profile. The old
// link is removed before the new one is created, so a failure in between
// leaves no link rather than a wrong one.
func (e *Engine) Activate(name string) error {
	profilePath, err := e.profilePath(name)
	if err != nil {
		return err
	}

	label := branding.ClientConfig()
	link := e.cfg.LinkPath

	info, err := platform.Lstat(e.fs, link)
	switch {
	case err == nil:
		if !platform.IsSymlink(info) {
			return fmt.Errorf("current %s (%s) is not a symlink; you may want to move it into %s: %w",
				label, link, e.cfg.StoreDir, ErrUnsafeOverwrite)
		}

		current, err := platform.ResolveSymlinkTarget(e.fs, link)
		if err != nil {
			return fmt.Errorf("reading %s: %w", link, err)
		}
		if current == profilePath {
			fmt.Fprintf(e.out, "Current %s (%s) is already %q (%s)\n", label, link, name, profilePath)
			return nil
		}

		fmt.Fprintf(e.out, "Removing old %s (%s)\n", label, filepath.Base(current))
		if err := platform.RemoveSymlink(e.fs, link); err != nil {
			return fmt.Errorf("removing %s: %w", link, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return fmt.Errorf("inspecting %s: %w", link, err)
	}

	fmt.Fprintf(e.out, "Activating %s %q\n", label, name)

	if err := e.fs.MkdirAll(filepath.Dir(link), store.DirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", filepath.Dir(link), err)
	}
	if err := platform.CreateSymlink(e.fs, profilePath, link); err != nil {
		return fmt.Errorf("creating symlink %s -> %s: %w", link, profilePath, err)
	}

	e.logger.Debug("activated profile", "profile", name, "link", link, "target", profilePath)
	return nil
}

// profilePath validates that name is a regular file in the store and returns
// its path.
func (e *Engine) profilePath(name string) (string, error) {
	if !store.ValidName(name) {
		return "", notFound(name)
	}

	p := e.cfg.ProfilePath(name)
	info, err := e.fs.Stat(p)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			e.logger.Debug("stat profile", "path", p, "error", err)
		}
		return "", notFound(name)
	}
	if !info.Mode().IsRegular() {
		return "", notFound(name)
	}
	return p, nil
}

func notFound(name string) error {
	return fmt.Errorf("couldn't find %s file %q: %w", branding.DisplayName(), name, ErrNotFound)
}

var _ store.Activator = (*Engine)(nil)
