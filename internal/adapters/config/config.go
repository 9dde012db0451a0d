// Package config loads the anyctl client configuration from YAML.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/mwatts/anyctl/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultEndpoint is the local workspace API address.
	DefaultEndpoint = "http://127.0.0.1:31009"

	// DefaultCacheTTL bounds how stale a cached name-to-identifier mapping
	// may become before it is re-fetched.
	DefaultCacheTTL = 5 * time.Minute

	// FileName is the config file name inside the anyctl config directory.
	FileName = "config.yaml"

	appDirName = "anyctl"
)

// file mirrors the YAML schema of config.yaml.
type file struct {
	Endpoint     string `yaml:"endpoint"`
	APIKey       string `yaml:"api_key"`
	DefaultSpace string `yaml:"default_space"`
	CacheTTL     string `yaml:"cache_ttl"`
}

// Config holds the loaded client settings. It implements ports.Defaults as
// the read-only persisted-default source for resolution contexts.
type Config struct {
	Endpoint         string
	APIKey           string
	DefaultSpaceName string
	CacheTTL         time.Duration
}

// DefaultSpace returns the configured default space name, "" when unset.
func (c *Config) DefaultSpace() string {
	return c.DefaultSpaceName
}

// Load reads the configuration from the default location. The path can be
// overridden with ANYCTL_CONFIG; a missing file is not an error, defaults
// apply. ANYCTL_ENDPOINT and ANYCTL_API_KEY override the file values.
func Load() (*Config, error) {
	path := os.Getenv("ANYCTL_CONFIG")
	if path == "" {
		var err error
		path, err = defaultPath()
		if err != nil {
			// No resolvable config directory, run on defaults.
			return applyEnv(defaults()), nil
		}
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from an explicit path, falling back to
// defaults when the file does not exist.
func LoadFile(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Nothing persisted yet.
	case err != nil:
		return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	default:
		var f file
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
		}
		if f.Endpoint != "" {
			cfg.Endpoint = f.Endpoint
		}
		if f.APIKey != "" {
			cfg.APIKey = f.APIKey
		}
		cfg.DefaultSpaceName = f.DefaultSpace
		if f.CacheTTL != "" {
			ttl, err := time.ParseDuration(f.CacheTTL)
			if err != nil {
				return nil, zerr.With(domain.ErrInvalidCacheTTL, "cache_ttl", f.CacheTTL)
			}
			cfg.CacheTTL = ttl
		}
	}

	return applyEnv(cfg), nil
}

func defaults() *Config {
	return &Config{
		Endpoint: DefaultEndpoint,
		CacheTTL: DefaultCacheTTL,
	}
}

func applyEnv(cfg *Config) *Config {
	if v := os.Getenv("ANYCTL_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("ANYCTL_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	return cfg
}

func defaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName, FileName), nil
}
