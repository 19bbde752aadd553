// Package branding provides compile-time identity values for the CLI.
//
// The same binary can manage profiles for a different client tool by editing
// branding.yaml and rebuilding. Go's //go:embed bakes the file into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	EnvPrefix    string `yaml:"env_prefix"`
	StoreDir     string `yaml:"store_dir"`
	ClientConfig string `yaml:"client_config"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:      "deisrc",
			DisplayName:  "Deis",
			Description:  "Switch between different .deis/client.json files with ease and grace.",
			EnvPrefix:    "DEISRC",
			StoreDir:     ".deisrcs",
			ClientConfig: ".deis/client.json",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the command name (e.g., "deisrc").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the name of the managed client (e.g., "Deis").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the one-line product description shown in help.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "DEISRC").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// StoreDir returns the profile store directory name under $HOME.
func StoreDir() string { load(); return defaults.StoreDir }

// ClientConfig returns the client configuration path relative to $HOME
// (e.g., ".deis/client.json"). It doubles as the label used in messages.
func ClientConfig() string { load(); return defaults.ClientConfig }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("STORE") → "DEISRC_STORE".
// An empty suffix returns the bare prefix.
func EnvVar(suffix string) string {
	load()
	if suffix == "" {
		return defaults.EnvPrefix
	}
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
