// Package git forges backdated commits and pushes them to a remote,
// wrapping every repository operation forgehub performs.
package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
)

// MutatingFileName is the file rewritten before every forged commit so
// each commit has content to carry.
const MutatingFileName = "repr.txt"

// DefaultRemote is the remote pushed to when none is named.
const DefaultRemote = "origin"

// DefaultRefSpec is the refspec pushed when none are given.
const DefaultRefSpec = "refs/heads/main"

// Driver wraps a local repository and the operations forgehub performs on
// it. Cloned repositories can be removed again with Cleanup.
type Driver struct {
	repo     *git.Repository
	root     string
	wasClone bool
	failed   bool
}

// Open initializes a driver from the repository at path, initializing a
// fresh repository there when none exists.
func Open(path string) (*Driver, error) {
	repo, err := git.PlainOpen(path)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		repo, err = git.PlainInitWithOptions(path, &git.PlainInitOptions{
			InitOptions: git.InitOptions{DefaultBranch: plumbing.Main},
		})
	}
	if err != nil {
		return nil, &InitError{Err: fmt.Errorf("could not initialize repository at '%s': %w", path, err)}
	}

	return &Driver{repo: repo, root: path}, nil
}

// Clone clones upstream into path and initializes a driver over the clone.
func Clone(path, upstream string, auth transport.AuthMethod) (*Driver, error) {
	repo, err := git.PlainClone(path, false, &git.CloneOptions{
		URL:  upstream,
		Auth: auth,
	})
	if err != nil {
		return nil, &InitError{
			Err: fmt.Errorf("could not clone repository at '%s' into '%s': %w", upstream, path, err),
		}
	}

	return &Driver{repo: repo, root: path, wasClone: true}, nil
}

// Root returns the path of the underlying repository's worktree.
func (d *Driver) Root() string {
	return d.root
}

// signature builds the commit author from the repository config, falling
// back through the global and system scopes.
func (d *Driver) signature() (name, email string, err error) {
	cfg, err := d.repo.ConfigScoped(gitconfig.SystemScope)
	if err != nil {
		return "", "", fmt.Errorf("failed to read repository config: %w", err)
	}

	if cfg.User.Name == "" || cfg.User.Email == "" {
		return "", "", errors.New("could not determine author from repository, system, or global config")
	}

	return cfg.User.Name, cfg.User.Email, nil
}

// ForgeCommits writes one commit per unit of activity in the plan, with
// author and committer dates forced to the planned day. Days are committed
// oldest first so history stays chronological.
func (d *Driver) ForgeCommits(commitsPerDay map[time.Time]int) error {
	name, email, err := d.signature()
	if err != nil {
		d.failed = true
		return &ForgeError{Err: err}
	}

	worktree, err := d.repo.Worktree()
	if err != nil {
		d.failed = true
		return &ForgeError{Err: fmt.Errorf("failed to get worktree: %w", err)}
	}

	days := make([]time.Time, 0, len(commitsPerDay))
	for day := range commitsPerDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	mutatingFile := filepath.Join(d.root, MutatingFileName)

	for _, day := range days {
		for i := range commitsPerDay[day] {
			message := fmt.Sprintf("commit #%d for %s", i+1, day.Format("2006-01-02"))

			if err := os.WriteFile(mutatingFile, []byte(message), 0o600); err != nil {
				d.failed = true
				return &ForgeError{Err: fmt.Errorf("failed to write '%s': %w", MutatingFileName, err)}
			}

			if _, err := worktree.Add(MutatingFileName); err != nil {
				d.failed = true
				return &ForgeError{Err: fmt.Errorf("failed to stage '%s': %w", MutatingFileName, err)}
			}

			signature := &object.Signature{Name: name, Email: email, When: day}
			_, err := worktree.Commit(message, &git.CommitOptions{
				Author:    signature,
				Committer: signature,
			})
			if err != nil {
				d.failed = true
				return &ForgeError{Err: fmt.Errorf("failed to commit: %w", err)}
			}
		}
	}

	return nil
}

// Push pushes the given refspecs to the named remote. An empty remote name
// or refspec list falls back to the defaults. Refspecs are validated
// before anything touches the network.
func (d *Driver) Push(ctx context.Context, remoteName string, refSpecs []string, auth transport.AuthMethod) error {
	if remoteName == "" {
		remoteName = DefaultRemote
	}
	if len(refSpecs) == 0 {
		refSpecs = []string{DefaultRefSpec}
	}

	specs := make([]gitconfig.RefSpec, 0, len(refSpecs))
	for _, spec := range refSpecs {
		if !ValidRefSpec(spec) {
			return &PushError{Err: fmt.Errorf("refspec name '%s' is not valid", spec)}
		}
		specs = append(specs, gitconfig.RefSpec(spec))
	}

	if _, err := d.repo.Remote(remoteName); err != nil {
		d.failed = true
		return &PushError{Err: fmt.Errorf("no such remote '%s' exists for the given repo", remoteName)}
	}

	err := d.repo.PushContext(ctx, &git.PushOptions{
		RemoteName: remoteName,
		RefSpecs:   specs,
		Auth:       auth,
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		d.failed = true
		return &PushError{Err: err}
	}

	return nil
}

// Cleanup removes the repository from disk if it was cloned by this driver
// and no operation failed. Pre-existing local repositories are never
// removed.
func (d *Driver) Cleanup() error {
	if !d.wasClone || d.failed {
		return nil
	}

	if err := os.RemoveAll(d.root); err != nil {
		return fmt.Errorf("failed to remove cloned repository '%s': %w", d.root, err)
	}

	return nil
}
