package push

import (
	"errors"

	"github.com/charmbracelet/notify-hook/pkg/git"
)

var errCorrupt = errors.New("corrupt object")

// fakeRepo is an in-memory object store. Every commit has at most one parent.
type fakeRepo struct {
	commits map[git.Hash]*git.Commit
	deltas  map[git.Hash][]git.Delta
	diffErr error
	calls   int
}

func (f *fakeRepo) ResolveRevision(rev string) (git.Hash, error) {
	f.calls++
	if _, ok := f.commits[git.Hash(rev)]; ok {
		return git.Hash(rev), nil
	}
	return "", git.ErrRevisionNotExist
}

func (f *fakeRepo) CommitObject(id git.Hash) (*git.Commit, error) {
	f.calls++
	c, ok := f.commits[id]
	if !ok {
		return nil, git.ErrObjectNotExist
	}
	return c, nil
}

func (f *fakeRepo) Parent(c *git.Commit, n int) (*git.Commit, error) {
	f.calls++
	if n >= c.NumParents() {
		return nil, git.ErrParentNotFound
	}
	return f.CommitObject(c.Parents[n])
}

func (f *fakeRepo) DiffTree(_, to *git.Commit, _ ...git.DiffOptions) ([]git.Delta, error) {
	f.calls++
	if f.diffErr != nil {
		return nil, f.diffErr
	}
	return f.deltas[to.ID], nil
}

func (f *fakeRepo) RevList(from, hide git.Hash) ([]*git.Commit, error) {
	f.calls++
	var commits []*git.Commit
	for id := from; id != hide; {
		c, ok := f.commits[id]
		if !ok {
			break
		}
		commits = append(commits, c)
		if c.NumParents() == 0 {
			break
		}
		id = c.Parents[0]
	}
	return commits, nil
}
