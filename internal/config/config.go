package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/deisrc/deisrc/internal/branding"
	"github.com/spf13/viper"
)

// Config keys. Each is bound to an environment variable under the branding
// prefix: store → DEISRC_STORE, client → DEISRC, debug → DEISRC_DEBUG.
const (
	KeyStore  = "store"
	KeyClient = "client"
	KeyDebug  = "debug"
)

// Config holds the paths and switches resolved once at startup.
type Config struct {
	// StoreDir is the profile store directory (~/.deisrcs).
	StoreDir string
	// LinkPath is the canonical client configuration path (~/.deis/client.json)
	// that is kept as a symlink into StoreDir.
	LinkPath string
	// Debug enables debug-level diagnostic logging.
	Debug bool
}

// Load resolves the configuration from the environment, falling back to
// locations under the user's home directory.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}
	return load(newViper(home))
}

func newViper(home string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(branding.EnvPrefix())
	_ = v.BindEnv(KeyStore)
	_ = v.BindEnv(KeyClient, branding.EnvVar(""))
	_ = v.BindEnv(KeyDebug)

	v.SetDefault(KeyStore, filepath.Join(home, branding.StoreDir()))
	v.SetDefault(KeyClient, filepath.Join(home, filepath.FromSlash(branding.ClientConfig())))
	v.SetDefault(KeyDebug, false)
	return v
}

func load(v *viper.Viper) (*Config, error) {
	store, err := filepath.Abs(v.GetString(KeyStore))
	if err != nil {
		return nil, fmt.Errorf("resolving store path: %w", err)
	}
	link, err := filepath.Abs(v.GetString(KeyClient))
	if err != nil {
		return nil, fmt.Errorf("resolving client config path: %w", err)
	}
	return &Config{
		StoreDir: store,
		LinkPath: link,
		Debug:    v.GetBool(KeyDebug),
	}, nil
}

// ProfilePath returns the path of the named profile inside the store.
func (c *Config) ProfilePath(name string) string {
	return filepath.Join(c.StoreDir, name)
}
