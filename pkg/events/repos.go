package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/go-github/v68/github"
)

const repoDescription = "This repository was auto generated by ForgeHub! " +
	"To learn more please visit: https://github.com/joshmeranda/forgehub"

// CreateRepositoryOptions controls how a remote repository is created.
type CreateRepositoryOptions struct {
	// Private creates the repository as private.
	Private bool

	// Replace deletes and recreates a repository that already exists under
	// the same name.
	Replace bool
}

// CreateRepository creates a bare-bones repository for the authenticated
// user and returns its ssh clone url.
func (c *Client) CreateRepository(ctx context.Context, name string, opts CreateRepositoryOptions) (string, error) {
	repo := &github.Repository{
		Name:         github.Ptr(name),
		Description:  github.Ptr(repoDescription),
		Private:      github.Ptr(opts.Private),
		HasIssues:    github.Ptr(false),
		HasWiki:      github.Ptr(false),
		HasDownloads: github.Ptr(false),
		HasProjects:  github.Ptr(false),
		AutoInit:     github.Ptr(false),
	}

	created, _, err := c.gh.Repositories.Create(ctx, "", repo)
	if err == nil {
		return created.GetSSHURL(), nil
	}

	if !opts.Replace || !nameAlreadyExists(err) {
		return "", fmt.Errorf("could not create new repository '%s': %w", name, err)
	}

	login, err := c.ResolveLogin(ctx, "")
	if err != nil {
		return "", err
	}

	if _, err := c.gh.Repositories.Delete(ctx, login, name); err != nil {
		return "", fmt.Errorf("could not delete pre-existing repository '%s': %w", name, err)
	}

	created, _, err = c.gh.Repositories.Create(ctx, "", repo)
	if err != nil {
		return "", fmt.Errorf("could not create new repository '%s': %w", name, err)
	}

	return created.GetSSHURL(), nil
}

// nameAlreadyExists reports whether a create failure means a repository
// with the requested name already exists on the account.
func nameAlreadyExists(err error) bool {
	var ghErr *github.ErrorResponse
	if !errors.As(err, &ghErr) {
		return false
	}

	for _, detail := range ghErr.Errors {
		if detail.Message == "name already exists on this account" {
			return true
		}
	}

	return false
}
