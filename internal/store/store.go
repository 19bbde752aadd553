package store

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/deisrc/deisrc/internal/config"
	"github.com/spf13/afero"
)

// DefaultProfile is the profile created when the store is initialized.
const DefaultProfile = "default"

// Permission constants.
const (
	StoreDirPerm os.FileMode = 0700
	DirPerm      os.FileMode = 0755
	FilePerm     os.FileMode = 0600
)

// newProfileContent is written to profiles created on request.
const newProfileContent = "{}"

var (
	// ErrNotADirectory is returned when the store path exists but is not a directory.
	ErrNotADirectory = errors.New("not a directory")
	// ErrMissingName is returned when a profile name is required but empty.
	ErrMissingName = errors.New("missing profile name")
	// ErrAlreadyExists is returned when creating a profile that is already stored.
	ErrAlreadyExists = errors.New("profile already exists")
	// ErrInvalidName is returned for names that are hidden or contain a path separator.
	ErrInvalidName = errors.New("invalid profile name")
)

// Activator switches the active profile. It is satisfied by *activate.Engine.
type Activator interface {
	Activate(name string) error
	Active() (string, error)
}

// Profile is a stored profile as shown in listings.
type Profile struct {
	Name   string
	Path   string
	Active bool
}

// Manager owns the profile store directory.
type Manager struct {
	fs        afero.Fs
	cfg       *config.Config
	activator Activator
	out       io.Writer
	logger    *slog.Logger
}

// New returns a Manager writing progress messages to out. activator is used
// to activate the default profile after first-run initialization and to mark
// the active profile in listings.
func New(fs afero.Fs, cfg *config.Config, activator Activator, out io.Writer, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{fs: fs, cfg: cfg, activator: activator, out: out, logger: logger}
}

// ValidName reports whether name can identify a profile: non-empty, not
// hidden and without path separators.
func ValidName(name string) bool {
	return name != "" && !strings.HasPrefix(name, ".") && !strings.ContainsAny(name, `/\`)
}

// Names returns the sorted names of the profiles in dir. Hidden entries and
// directories are skipped.
func Names(fs afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("reading profile store %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !ValidName(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
