// Package store manages the profile store directory (~/.deisrcs/): first-run
// initialization, which adopts an existing client config as the "default"
// profile, listing, and creation of new empty profiles. Switching between
// profiles is left to the activate package.
package store
