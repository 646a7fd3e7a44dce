// Package config handles litcanvas configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the litcanvas configuration, stored in
// ~/.config/litcanvas/config.yml and overridable via environment variables.
type Config struct {
	DatabasePath   string   `yaml:"database_path,omitempty" json:"database_path"`
	ListenAddr     string   `yaml:"listen_addr,omitempty" json:"listen_addr"`
	AllowedOrigins []string `yaml:"allowed_origins,omitempty" json:"allowed_origins"`
	OpenAlexMailto string   `yaml:"openalex_mailto,omitempty" json:"openalex_mailto,omitempty"`
	OpenAlexAPIKey string   `yaml:"openalex_api_key,omitempty" json:"-"`
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "litcanvas"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
	// DBFile is the default database file name.
	DBFile = "litcanvas.db"

	// DefaultListenAddr matches the original desktop app's backend port.
	DefaultListenAddr = "localhost:5000"
)

// Path returns the path to the config file. Respects XDG_CONFIG_HOME,
// defaults to ~/.config/litcanvas/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// DefaultDBPath returns the default database location. Respects
// XDG_DATA_HOME, defaults to ~/.local/share/litcanvas/litcanvas.db.
func DefaultDBPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DBFile
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, ConfigDir, DBFile)
}

// Load reads configuration from the given path, fills defaults, and applies
// environment overrides. A missing file yields the default config, not an
// error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

// LoadDefault loads configuration from the standard path.
func LoadDefault() (*Config, error) {
	return Load(Path())
}

// applyEnv applies environment variable overrides.
func (c *Config) applyEnv() {
	if v := os.Getenv("LITCANVAS_DB"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("LITCANVAS_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("OPENALEX_MAILTO"); v != "" {
		c.OpenAlexMailto = v
	}
	if v := os.Getenv("OPENALEX_API_KEY"); v != "" {
		c.OpenAlexAPIKey = v
	}
}

// applyDefaults fills in defaults for unset fields.
func (c *Config) applyDefaults() {
	if c.DatabasePath == "" {
		c.DatabasePath = DefaultDBPath()
	}
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
}

// EnsureDataDir creates the directory holding the database file.
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(filepath.Dir(c.DatabasePath), 0o755)
}
