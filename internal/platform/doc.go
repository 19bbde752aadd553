// Package platform provides the filesystem operations the switcher relies on:
// symlink creation, inspection and removal, plus a rename that survives
// crossing devices. Everything goes through an afero.Fs so callers can be
// pointed at a scratch directory in tests. Only filesystems implementing
// afero.Symlinker are usable.
package platform
