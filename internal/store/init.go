package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/deisrc/deisrc/internal/branding"
	"github.com/deisrc/deisrc/internal/platform"
	"github.com/spf13/afero"
)

// Ensure makes sure the store directory exists. On first run it creates the
// store, adopts an existing client config file as the default profile (or
// writes an empty one) and activates it. initialized reports whether that
// happened; callers stop after a first-run initialization.
func (m *Manager) Ensure() (initialized bool, err error) {
	info, err := m.fs.Stat(m.cfg.StoreDir)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%s: %w", m.cfg.StoreDir, ErrNotADirectory)
		}
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("inspecting %s: %w", m.cfg.StoreDir, err)
	}

	if err := m.initialize(); err != nil {
		return true, err
	}
	return true, nil
}

func (m *Manager) initialize() error {
	store := m.cfg.StoreDir

	fmt.Fprintf(m.out, "Initialising %s...\n", branding.CLIName())
	fmt.Fprintf(m.out, "Creating %s\n", store)

	if err := m.fs.MkdirAll(store, StoreDirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", store, err)
	}
	// MkdirAll is subject to the umask.
	if err := platform.Chmod(m.fs, store, StoreDirPerm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", store, err)
	}

	def := m.cfg.ProfilePath(DefaultProfile)
	adopted, err := m.adopt(def)
	if err != nil {
		return err
	}
	if !adopted {
		if err := afero.WriteFile(m.fs, def, nil, FilePerm); err != nil {
			return fmt.Errorf("creating file %s: %w", def, err)
		}
	}

	m.logger.Debug("initialized profile store", "store", store)
	return m.activator.Activate(DefaultProfile)
}

// adopt turns an existing client config into the default profile. A regular
// file is moved into the store. A symlink to a regular file is kept where it
// points: the default profile becomes a link to the same absolute target and
// the old link is replaced on activation. Missing or dangling configs are not
// adopted.
func (m *Manager) adopt(def string) (bool, error) {
	link := m.cfg.LinkPath

	info, err := platform.Lstat(m.fs, link)
	if err != nil {
		return false, nil
	}

	switch {
	case info.Mode().IsRegular():
		fmt.Fprintf(m.out, "Making %s the default %s file\n", link, branding.ClientConfig())
		if err := platform.MoveFile(m.fs, link, def); err != nil {
			return false, fmt.Errorf("moving %s into %s: %w", link, m.cfg.StoreDir, err)
		}
		return true, nil
	case platform.IsSymlink(info):
		target, err := platform.ResolveSymlinkTarget(m.fs, link)
		if err != nil {
			return false, fmt.Errorf("reading %s: %w", link, err)
		}
		if ti, err := m.fs.Stat(target); err != nil || !ti.Mode().IsRegular() {
			m.logger.Debug("not adopting client config", "link", link, "target", target)
			return false, nil
		}
		fmt.Fprintf(m.out, "Making %s the default %s file\n", target, branding.ClientConfig())
		if err := platform.CreateSymlink(m.fs, target, def); err != nil {
			return false, fmt.Errorf("creating symlink %s -> %s: %w", def, target, err)
		}
		return true, nil
	default:
		return false, nil
	}
}
