// Package config resolves where the profile store and the client
// configuration live. Values come from DEISRC_* environment variables via
// Viper, with defaults under the user's home directory. The result is a plain
// Config value handed to every component; nothing is kept in package state.
package config
