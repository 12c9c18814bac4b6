package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSSHAuthMissingKey(t *testing.T) {
	_, err := NewSSHAuth(filepath.Join(t.TempDir(), "id_rsa"))
	assert.ErrorContains(t, err, "failed to load ssh key")
}

func TestNewSSHAuthInvalidKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "id_rsa")
	require.NoError(t, os.WriteFile(path, []byte("not a key"), 0o600))

	_, err := NewSSHAuth(path)
	assert.Error(t, err)
}
