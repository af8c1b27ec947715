// Package test provides helpers to build throwaway git repositories in
// tests.
package test

import (
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/notify-hook/pkg/git"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
)

// Author is the identity used for commits made by Repo.
var Author = git.Signature{
	Name:  "John Doe",
	Email: "john@example.com",
}

// Repo is an in-memory repository with a work tree.
type Repo struct {
	*git.Repository
	FS billy.Filesystem

	t    testing.TB
	when time.Time
}

// NewRepo creates an empty in-memory repository.
func NewRepo(t testing.TB) *Repo {
	t.Helper()
	fs := memfs.New()
	r, err := gogit.Init(memory.NewStorage(), fs)
	if err != nil {
		t.Fatal(err)
	}

	return &Repo{
		Repository: git.Wrap(r, "/srv/git/test"),
		FS:         fs,
		t:          t,
		when:       time.Date(2017, time.October, 22, 22, 40, 0, 0, time.UTC),
	}
}

// WriteFile writes a file to the work tree and stages it.
func (r *Repo) WriteFile(path, content string) {
	r.t.Helper()
	f, err := r.FS.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		r.t.Fatal(err)
	}
	if _, err := f.Write([]byte(content)); err != nil {
		r.t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		r.t.Fatal(err)
	}

	w := r.worktree()
	if _, err := w.Add(path); err != nil {
		r.t.Fatal(err)
	}
}

// Remove removes a file from the work tree and the index.
func (r *Repo) Remove(path string) {
	r.t.Helper()
	if _, err := r.worktree().Remove(path); err != nil {
		r.t.Fatal(err)
	}
}

// Commit commits the staged changes and returns the commit hash. Each commit
// is made one minute after the previous one.
func (r *Repo) Commit(msg string) git.Hash {
	r.t.Helper()
	return r.CommitWithParents(msg)
}

// CommitWithParents is like Commit with explicit parents. No parents means
// the current HEAD.
func (r *Repo) CommitWithParents(msg string, parents ...git.Hash) git.Hash {
	r.t.Helper()
	hashes := make([]plumbing.Hash, 0, len(parents))
	for _, p := range parents {
		hashes = append(hashes, plumbing.NewHash(p.String()))
	}

	r.when = r.when.Add(time.Minute)
	sig := &object.Signature{
		Name:  Author.Name,
		Email: Author.Email,
		When:  r.when,
	}

	h, err := r.worktree().Commit(msg, &gogit.CommitOptions{
		Author:            sig,
		Committer:         sig,
		Parents:           hashes,
		AllowEmptyCommits: true,
	})
	if err != nil {
		r.t.Fatal(err)
	}

	return git.Hash(h.String())
}

// SetConfig sets repository configuration values, given as key/value pairs.
func (r *Repo) SetConfig(kv ...string) {
	r.t.Helper()
	for i := 0; i+1 < len(kv); i += 2 {
		if err := r.SetConfigValue(kv[i], kv[i+1]); err != nil {
			r.t.Fatal(err)
		}
	}
}

func (r *Repo) worktree() *gogit.Worktree {
	r.t.Helper()
	w, err := r.Repository.Worktree()
	if err != nil {
		r.t.Fatal(err)
	}
	return w
}
