package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	gitconfig "github.com/go-git/go-git/v5/config"

	"github.com/joshmeranda/forgehub/pkg/config"
	"github.com/joshmeranda/forgehub/pkg/events"
)

// resolveToken returns the access token from the --token flag, the
// --token-file flag, or the configured token file, in that order. An
// empty token is not an error since public queries work unauthenticated.
func resolveToken(token, tokenFile string, cfg *config.Config) (string, error) {
	if token != "" {
		return token, nil
	}

	if tokenFile == "" {
		tokenFile = cfg.TokenFile
	}
	if tokenFile == "" {
		return "", nil
	}

	file, err := os.Open(tokenFile) // #nosec G304 -- user supplied token path
	if err != nil {
		return "", fmt.Errorf("failed to read token file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		return "", fmt.Errorf("token file '%s' is empty", tokenFile)
	}

	return strings.TrimSpace(scanner.Text()), nil
}

// resolveLogin determines the user to draw for: the --user flag, then the
// authenticated user, then the global git config.
func resolveLogin(ctx context.Context, client *events.Client, user, token string) (string, error) {
	if user != "" || token != "" {
		return client.ResolveLogin(ctx, user)
	}

	cfg, err := gitconfig.LoadConfig(gitconfig.GlobalScope)
	if err == nil && cfg.User.Name != "" {
		return cfg.User.Name, nil
	}

	return "", errors.New("no user could be determined from arguments or environment")
}

// repoNameFromURL extracts the repository name from a clone url.
func repoNameFromURL(url string) string {
	name := url[strings.LastIndex(url, "/")+1:]

	return strings.TrimSuffix(name, ".git")
}
