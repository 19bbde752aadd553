// Package activate switches the active profile. It resolves a typed name
// against the store (exact, then prefix, then pattern) and replaces the
// client configuration symlink, refusing to touch anything at that path that
// is not itself a symlink.
package activate
