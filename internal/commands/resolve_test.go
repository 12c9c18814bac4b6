package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshmeranda/forgehub/pkg/config"
)

func TestResolveToken_Flag(t *testing.T) {
	cfg := config.Default()

	token, err := resolveToken("abc123", "", cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if token != "abc123" {
		t.Errorf("Expected token 'abc123', got '%s'", token)
	}
}

func TestResolveToken_FlagWinsOverFile(t *testing.T) {
	cfg := config.Default()

	token, err := resolveToken("abc123", "/does/not/exist", cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if token != "abc123" {
		t.Errorf("Expected token 'abc123', got '%s'", token)
	}
}

func TestResolveToken_File(t *testing.T) {
	tokenFile := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(tokenFile, []byte("filetoken\nsecond line ignored\n"), 0o600); err != nil {
		t.Fatalf("Failed to write token file: %v", err)
	}

	cfg := config.Default()

	token, err := resolveToken("", tokenFile, cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if token != "filetoken" {
		t.Errorf("Expected token 'filetoken', got '%s'", token)
	}
}

func TestResolveToken_ConfigFile(t *testing.T) {
	tokenFile := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(tokenFile, []byte("cfgtoken\n"), 0o600); err != nil {
		t.Fatalf("Failed to write token file: %v", err)
	}

	cfg := config.Default()
	cfg.TokenFile = tokenFile

	token, err := resolveToken("", "", cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if token != "cfgtoken" {
		t.Errorf("Expected token 'cfgtoken', got '%s'", token)
	}
}

func TestResolveToken_NoSources(t *testing.T) {
	cfg := config.Default()
	cfg.TokenFile = ""

	token, err := resolveToken("", "", cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if token != "" {
		t.Errorf("Expected empty token, got '%s'", token)
	}
}

func TestResolveToken_MissingFile(t *testing.T) {
	cfg := config.Default()

	if _, err := resolveToken("", "/does/not/exist", cfg); err == nil {
		t.Error("Expected error for missing token file")
	}
}

func TestResolveToken_EmptyFile(t *testing.T) {
	tokenFile := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(tokenFile, nil, 0o600); err != nil {
		t.Fatalf("Failed to write token file: %v", err)
	}

	cfg := config.Default()

	if _, err := resolveToken("", tokenFile, cfg); err == nil {
		t.Error("Expected error for empty token file")
	}
}

func TestRepoNameFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"git@github.com:user/canvas.git", "canvas"},
		{"https://github.com/user/canvas.git", "canvas"},
		{"https://github.com/user/canvas", "canvas"},
		{"canvas", "canvas"},
		{"canvas.git", "canvas"},
	}

	for _, tt := range tests {
		if got := repoNameFromURL(tt.url); got != tt.want {
			t.Errorf("repoNameFromURL(%q) = %q, expected %q", tt.url, got, tt.want)
		}
	}
}
