package push

import (
	"fmt"

	"github.com/charmbracelet/notify-hook/pkg/git"
)

// Range is a resolved old..new revision range.
type Range struct {
	Before git.Hash
	After  git.Hash
	// Ref is the ref name as given by git.
	Ref string
	// Head is the commit the ref points to.
	Head *git.Commit
	// Commits are the commits reachable from After but not from Before, in
	// the order the repository walks them (newest first for go-git).
	Commits []*git.Commit
}

// ResolveRange resolves the revisions of a push and walks the commits it
// introduced. ErrNullRevision is returned, without touching the repository,
// when either revision is all zeros.
func ResolveRange(repo Repository, oldRev, newRev, ref string) (*Range, error) {
	if git.IsZeroHash(oldRev) || git.IsZeroHash(newRev) {
		return nil, ErrNullRevision
	}

	before, err := resolve(repo, oldRev)
	if err != nil {
		return nil, err
	}
	after, err := resolve(repo, newRev)
	if err != nil {
		return nil, err
	}
	headID, err := resolve(repo, ref)
	if err != nil {
		return nil, err
	}

	head, err := repo.CommitObject(headID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRevisionNotFound, ref, err)
	}

	commits, err := repo.RevList(after, before)
	if err != nil {
		return nil, fmt.Errorf("%w: %s..%s: %w", ErrRevisionNotFound, oldRev, newRev, err)
	}

	return &Range{
		Before:  before,
		After:   after,
		Ref:     ref,
		Head:    head,
		Commits: commits,
	}, nil
}

func resolve(repo Repository, rev string) (git.Hash, error) {
	h, err := repo.ResolveRevision(rev)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrRevisionNotFound, rev, err)
	}
	return h, nil
}
