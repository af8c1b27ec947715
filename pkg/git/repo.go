package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Repository is a wrapper around git.Repository with helper methods.
type Repository struct {
	*git.Repository
	Path   string
	IsBare bool
}

// Open opens a git repository at the given path. The path may point to a bare
// repository, a work tree, or any directory inside a work tree.
func Open(path string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotAGitRepository, path)
		}
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	return Wrap(repo, abs), nil
}

// OpenFromEnv opens the repository git runs the hook for. Git sets $GIT_DIR
// before invoking server-side hooks; the working directory is used otherwise.
func OpenFromEnv() (*Repository, error) {
	path, ok := os.LookupEnv("GIT_DIR")
	if !ok || path == "" {
		path = "."
	}
	return Open(path)
}

// Wrap wraps an already opened go-git repository.
func Wrap(repo *git.Repository, path string) *Repository {
	_, err := repo.Worktree()
	return &Repository{
		Repository: repo,
		Path:       path,
		IsBare:     errors.Is(err, git.ErrIsBareRepository),
	}
}

// Name returns the name of the repository directory without the .git suffix.
func (r *Repository) Name() string {
	path := r.Path
	if filepath.Base(path) == git.GitDirName {
		path = filepath.Dir(path)
	}
	return strings.TrimSuffix(filepath.Base(path), ".git")
}

// GitDir returns the path of the repository git directory.
func (r *Repository) GitDir() string {
	if r.IsBare || filepath.Base(r.Path) == git.GitDirName {
		return r.Path
	}
	return filepath.Join(r.Path, git.GitDirName)
}

// HooksPath returns the path of the repository hooks directory.
func (r *Repository) HooksPath() string {
	return filepath.Join(r.GitDir(), "hooks")
}

// ResolveRevision resolves a revision (full or abbreviated hash, branch, tag
// or any expression go-git understands) to a commit hash.
func (r *Repository) ResolveRevision(rev string) (Hash, error) {
	h, err := r.Repository.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return "", fmt.Errorf("resolve revision %q: %w", rev, err)
	}
	return Hash(h.String()), nil
}

// CommitObject returns the commit with the given hash.
func (r *Repository) CommitObject(id Hash) (*Commit, error) {
	c, err := r.commitObject(id)
	if err != nil {
		return nil, err
	}
	return newCommit(c), nil
}

func (r *Repository) commitObject(id Hash) (*object.Commit, error) {
	c, err := r.Repository.CommitObject(plumbing.NewHash(id.String()))
	if err != nil {
		return nil, fmt.Errorf("commit %s: %w", id, err)
	}
	return c, nil
}

// Parent returns the nth parent of the given commit. ErrParentNotFound is
// returned when the commit has fewer parents.
func (r *Repository) Parent(c *Commit, n int) (*Commit, error) {
	if n < 0 || n >= c.NumParents() {
		return nil, ErrParentNotFound
	}
	return r.CommitObject(c.Parents[n])
}

// revListSlop is the number of extra commits walked once only hidden commits
// are left in the queue, to tolerate committer clock skew.
const revListSlop = 5

type revEntry struct {
	commit *object.Commit
	hidden bool
	walked bool
	queued bool
	listed bool
}

// RevList returns the commits reachable from "from" but not from "hide", the
// equivalent of `git rev-list hide..from`. Commits are listed in committer
// time order, newest first. A zero "hide" lists every ancestor of "from".
//
// Both sides are walked together, newest first, and hidden commits pass the
// mark on to their parents. The walk stops shortly after only hidden commits
// are left to visit, so history shared by both sides is not walked to the
// root.
func (r *Repository) RevList(from, hide Hash) ([]*Commit, error) {
	entries := make(map[plumbing.Hash]*revEntry)
	queue := binaryheap.NewWith(func(a, b interface{}) int {
		if a.(*revEntry).commit.Committer.When.Before(b.(*revEntry).commit.Committer.When) {
			return 1
		}
		return -1
	})

	enqueue := func(h plumbing.Hash, hidden bool) error {
		e, ok := entries[h]
		if !ok {
			c, err := r.Repository.CommitObject(h)
			if err != nil {
				return err
			}
			e = &revEntry{commit: c}
			entries[h] = e
		}
		if hidden && !e.hidden {
			e.hidden = true
			// Already walked as visible, its parents must be hidden too.
			e.walked = false
		}
		if !e.walked && !e.queued {
			e.queued = true
			queue.Push(e)
		}
		return nil
	}

	if !hide.IsZero() {
		if err := enqueue(plumbing.NewHash(hide.String()), true); err != nil {
			return nil, fmt.Errorf("rev-list %s: %w", hide, err)
		}
	}
	if err := enqueue(plumbing.NewHash(from.String()), false); err != nil {
		return nil, fmt.Errorf("rev-list %s..%s: %w", hide, from, err)
	}

	var order []*revEntry
	slop := revListSlop
	for {
		v, ok := queue.Pop()
		if !ok {
			break
		}

		e := v.(*revEntry)
		e.queued = false
		e.walked = true
		if !e.listed {
			e.listed = true
			order = append(order, e)
		}

		for _, p := range e.commit.ParentHashes {
			if err := enqueue(p, e.hidden); err != nil {
				return nil, fmt.Errorf("rev-list %s..%s: %w", hide, from, err)
			}
		}

		if onlyHidden(queue) {
			slop--
			if slop == 0 {
				break
			}
		} else {
			slop = revListSlop
		}
	}

	commits := make([]*Commit, 0, len(order))
	for _, e := range order {
		if !e.hidden {
			commits = append(commits, newCommit(e.commit))
		}
	}

	return commits, nil
}

func onlyHidden(queue *binaryheap.Heap) bool {
	for _, v := range queue.Values() {
		if !v.(*revEntry).hidden {
			return false
		}
	}
	return true
}
