package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/deisrc/deisrc/internal/branding"
)

// List returns the stored profiles in name order, marking the active one.
func (m *Manager) List() ([]Profile, error) {
	names, err := Names(m.fs, m.cfg.StoreDir)
	if err != nil {
		return nil, err
	}

	active, err := m.activator.Active()
	if err != nil {
		m.logger.Debug("reading active profile", "error", err)
		active = ""
	}

	profiles := make([]Profile, 0, len(names))
	for _, name := range names {
		profiles = append(profiles, Profile{
			Name:   name,
			Path:   m.cfg.ProfilePath(name),
			Active: name == active,
		})
	}
	return profiles, nil
}

// Create writes a new profile holding an empty JSON object. An existing
// profile is never overwritten, and the new profile is not activated.
func (m *Manager) Create(name string) error {
	if name == "" {
		return ErrMissingName
	}
	if !ValidName(name) {
		return fmt.Errorf("%q: %w", name, ErrInvalidName)
	}

	p := m.cfg.ProfilePath(name)
	f, err := m.fs.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, FilePerm)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s file %q already exists (%s): %w", branding.CLIName(), name, p, ErrAlreadyExists)
		}
		return fmt.Errorf("creating file %s: %w", p, err)
	}
	if _, err := f.WriteString(newProfileContent); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", p, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", p, err)
	}

	fmt.Fprintf(m.out, "Created %s profile %q (%s)\n", branding.DisplayName(), name, p)
	return nil
}
