package git

import (
	"errors"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

var (
	// ErrRevisionNotExist is returned when a revision cannot be resolved.
	ErrRevisionNotExist = plumbing.ErrReferenceNotFound
	// ErrObjectNotExist is returned when an object is missing from the
	// object store.
	ErrObjectNotExist = plumbing.ErrObjectNotFound
	// ErrParentNotFound is returned when a commit doesn't have the requested
	// parent.
	ErrParentNotFound = object.ErrParentNotFound
	// ErrNotAGitRepository is returned when the given path is not a Git repository.
	ErrNotAGitRepository = errors.New("not a git repository")
)

// ErrInvalidConfigKey is returned when a configuration key doesn't have the
// section.name form.
var ErrInvalidConfigKey = errors.New("invalid config key")
