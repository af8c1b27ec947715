// Package push reconstructs the commits introduced by a ref update.
package push

import (
	"errors"

	"github.com/charmbracelet/notify-hook/pkg/git"
)

var (
	// ErrNullRevision is returned when the old or new revision of a push is
	// the null object id, i.e. the ref was created or deleted.
	ErrNullRevision = errors.New("null revision")
	// ErrRevisionNotFound is returned when a revision of a push can't be
	// resolved.
	ErrRevisionNotFound = errors.New("revision not found")
	// ErrDiff is returned when two commit trees can't be compared.
	ErrDiff = errors.New("diff failed")
)

// Repository is the object store capability the push pipeline consumes.
type Repository interface {
	// ResolveRevision resolves a revision string to a commit hash.
	ResolveRevision(rev string) (git.Hash, error)
	// CommitObject returns the commit with the given hash.
	CommitObject(id git.Hash) (*git.Commit, error)
	// Parent returns the nth parent of a commit, or git.ErrParentNotFound.
	Parent(c *git.Commit, n int) (*git.Commit, error)
	// DiffTree returns the deltas between the trees of two commits.
	DiffTree(from, to *git.Commit, opts ...git.DiffOptions) ([]git.Delta, error)
	// RevList returns the commits reachable from "from" but not from "hide".
	// The order of the result is the order of the payload commits.
	RevList(from, hide git.Hash) ([]*git.Commit, error)
}

var _ Repository = (*git.Repository)(nil)

// Commit is a commit together with the paths it changed relative to its
// first parent.
type Commit struct {
	*git.Commit
	Changes
}

// Push is a resolved push: the head commit of the ref and the commits the
// push introduced.
type Push struct {
	Range
	Head    Commit
	Commits []Commit
}

// Options are options for Collect.
type Options struct {
	// DetectRenames reports renamed paths as modified instead of a removal
	// and an addition.
	DetectRenames bool
}

// Collect resolves a push and computes the changes of every commit in it.
func Collect(repo Repository, oldRev, newRev, ref string, opts Options) (*Push, error) {
	rng, err := ResolveRange(repo, oldRev, newRev, ref)
	if err != nil {
		return nil, err
	}

	head, err := newCommit(repo, rng.Head, opts)
	if err != nil {
		return nil, err
	}

	commits := make([]Commit, len(rng.Commits))
	for i, c := range rng.Commits {
		commits[i], err = newCommit(repo, c, opts)
		if err != nil {
			return nil, err
		}
	}

	return &Push{
		Range:   *rng,
		Head:    head,
		Commits: commits,
	}, nil
}

func newCommit(repo Repository, c *git.Commit, opts Options) (Commit, error) {
	changes, err := DiffCommit(repo, c, git.DiffOptions{DetectRenames: opts.DetectRenames})
	if err != nil {
		return Commit{}, err
	}
	return Commit{Commit: c, Changes: changes}, nil
}
