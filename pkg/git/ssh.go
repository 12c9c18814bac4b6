package git

import (
	"fmt"

	"github.com/go-git/go-git/v5/plumbing/transport"
	gitssh "github.com/go-git/go-git/v5/plumbing/transport/ssh"
)

// sshUser is the login GitHub expects for all ssh operations.
const sshUser = "git"

// NewSSHAuth builds the transport auth for talking to GitHub over ssh
// using the private key at the given path. The matching public key is
// derived from the private key, so only the private path is needed.
func NewSSHAuth(privateKeyPath string) (transport.AuthMethod, error) {
	auth, err := gitssh.NewPublicKeysFromFile(sshUser, privateKeyPath, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load ssh key '%s': %w", privateKeyPath, err)
	}

	return auth, nil
}
