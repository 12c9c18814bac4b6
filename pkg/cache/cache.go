// Package cache resolves where forgehub keeps cloned repositories and
// removes them again.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dir returns the forgehub cache directory. FORGEHUB_HOME wins, then
// XDG_CACHE_HOME, then ~/.cache/forgehub.
func Dir() string {
	if forgehubHome := os.Getenv("FORGEHUB_HOME"); forgehubHome != "" {
		return forgehubHome
	}

	if xdgCacheHome := os.Getenv("XDG_CACHE_HOME"); xdgCacheHome != "" {
		return filepath.Join(xdgCacheHome, "forgehub")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".cache", "forgehub")
	}
	return filepath.Join(homeDir, ".cache", "forgehub")
}

// RepoDir returns the directory a repository with the given name should be
// cloned into, creating the parent as needed.
func RepoDir(name string) (string, error) {
	reposDir := filepath.Join(Dir(), "repos")
	if err := os.MkdirAll(reposDir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	return filepath.Join(reposDir, name), nil
}

// Clean removes the entire cache directory. A missing directory is a
// no-op.
func Clean() error {
	if err := os.RemoveAll(Dir()); err != nil {
		return fmt.Errorf("failed to clean cache directory: %w", err)
	}

	return nil
}
