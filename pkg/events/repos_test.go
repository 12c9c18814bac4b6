package events

import (
	"errors"
	"testing"

	"github.com/google/go-github/v68/github"
	"github.com/stretchr/testify/assert"
)

func TestNameAlreadyExists(t *testing.T) {
	exists := &github.ErrorResponse{
		Errors: []github.Error{
			{Message: "name already exists on this account"},
		},
	}
	assert.True(t, nameAlreadyExists(exists))

	other := &github.ErrorResponse{
		Errors: []github.Error{
			{Message: "repository name is reserved"},
		},
	}
	assert.False(t, nameAlreadyExists(other))

	assert.False(t, nameAlreadyExists(errors.New("connection refused")))
	assert.False(t, nameAlreadyExists(&github.ErrorResponse{}))
}

func TestNewClient(t *testing.T) {
	assert.NotNil(t, NewClient(""))
	assert.NotNil(t, NewClient("ghp_sometoken"))
}
