package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/spf13/afero"
)

// ErrNoSymlinks is returned when the filesystem cannot create or inspect
// symbolic links (e.g. afero.MemMapFs).
var ErrNoSymlinks = errors.New("filesystem does not support symlinks")

// Symlinks returns fs as an afero.Symlinker, or ErrNoSymlinks.
func Symlinks(fs afero.Fs) (afero.Symlinker, error) {
	s, ok := fs.(afero.Symlinker)
	if !ok {
		return nil, fmt.Errorf("%T: %w", fs, ErrNoSymlinks)
	}
	return s, nil
}

// Lstat returns the FileInfo for path without following a final symlink.
func Lstat(fs afero.Fs, path string) (os.FileInfo, error) {
	s, err := Symlinks(fs)
	if err != nil {
		return nil, err
	}
	info, lstatCalled, err := s.LstatIfPossible(path)
	if err != nil {
		return nil, err
	}
	if !lstatCalled {
		return nil, fmt.Errorf("lstat %s: %w", path, ErrNoSymlinks)
	}
	return info, nil
}

// IsSymlink reports whether info describes a symbolic link.
func IsSymlink(info os.FileInfo) bool {
	return info.Mode()&os.ModeSymlink != 0
}

// CreateSymlink creates a symbolic link at link pointing to target.
func CreateSymlink(fs afero.Fs, target, link string) error {
	s, err := Symlinks(fs)
	if err != nil {
		return err
	}
	return s.SymlinkIfPossible(target, link)
}

// RemoveSymlink removes the link itself, never its target.
func RemoveSymlink(fs afero.Fs, path string) error {
	return fs.Remove(path)
}

// ReadSymlinkTarget returns the target of a symlink as stored on disk.
func ReadSymlinkTarget(fs afero.Fs, path string) (string, error) {
	s, err := Symlinks(fs)
	if err != nil {
		return "", err
	}
	return s.ReadlinkIfPossible(path)
}

// ResolveSymlinkTarget returns the cleaned target of the symlink at path.
// Relative targets are resolved against the directory containing the link.
func ResolveSymlinkTarget(fs afero.Fs, path string) (string, error) {
	target, err := ReadSymlinkTarget(fs, path)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	return filepath.Clean(target), nil
}

// MoveFile renames src to dst. When the two paths live on different devices
// it copies the content and mode and then removes src.
func MoveFile(fs afero.Fs, src, dst string) error {
	err := fs.Rename(src, dst)
	if err == nil || !errors.Is(err, syscall.EXDEV) {
		return err
	}
	if err := copyFile(fs, src, dst); err != nil {
		return err
	}
	return fs.Remove(src)
}

// copyFile writes the content of src to dst with the permission bits of src.
// The mode is applied after writing so the umask does not narrow it.
func copyFile(fs afero.Fs, src, dst string) error {
	info, err := fs.Stat(src)
	if err != nil {
		return err
	}
	data, err := afero.ReadFile(fs, src)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fs, dst, data, info.Mode().Perm()); err != nil {
		return fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	if err := fs.Chmod(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("copying mode of %s to %s: %w", src, dst, err)
	}
	return nil
}
