// Package config provides forgehub's optional defaults file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the default name for the forgehub configuration file,
// searched for in the working directory and then the user's home.
const FileName = ".forgehub.yaml"

// Config holds defaults that individual command flags can override.
type Config struct {
	// PrivateKey is the ssh key used for clone and push operations.
	PrivateKey string `yaml:"private_key,omitempty"`

	// PublicKey is the matching public key. It is not needed by the
	// built-in ssh transport and exists for parity with external tooling.
	PublicKey string `yaml:"public_key,omitempty"`

	// TokenFile is read for the GitHub access token when no token is
	// given on the command line.
	TokenFile string `yaml:"token_file,omitempty"`

	// Remote is the remote name pushed to.
	Remote string `yaml:"remote,omitempty"`

	// CacheDir overrides where cloned repositories are kept.
	CacheDir string `yaml:"cache_dir,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{Remote: "origin"}

	if home, err := os.UserHomeDir(); err == nil {
		cfg.PrivateKey = filepath.Join(home, ".ssh", "id_rsa")
		cfg.PublicKey = filepath.Join(home, ".ssh", "id_rsa.pub")
	}

	return cfg
}

// Load reads the configuration at configPath, or searches the working
// directory and then the home directory when configPath is empty. A
// missing file is not an error and yields the defaults.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = findConfig()
		if configPath == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- user supplied config path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return cfg, nil
}

// findConfig returns the first config file found in the search path, or
// empty when none exists.
func findConfig() string {
	candidates := []string{FileName}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, FileName))
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}
