package git

import "fmt"

// InitError wraps any failure to open, initialize, or clone a repository.
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("error initializing repository: %v", e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// ForgeError wraps any failure while crafting commits.
type ForgeError struct {
	Err error
}

func (e *ForgeError) Error() string {
	return fmt.Sprintf("error forging commits: %v", e.Err)
}

func (e *ForgeError) Unwrap() error { return e.Err }

// PushError wraps any failure while pushing to a remote.
type PushError struct {
	Err error
}

func (e *PushError) Error() string {
	return fmt.Sprintf("error pushing to remote: %v", e.Err)
}

func (e *PushError) Unwrap() error { return e.Err }
