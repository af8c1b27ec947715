package git_test

import (
	"errors"
	"testing"

	"github.com/charmbracelet/notify-hook/pkg/git"
	"github.com/charmbracelet/notify-hook/pkg/test"
	"github.com/matryer/is"
)

func TestIsZeroHash(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"0000000000000000000000000000000000000000", true},
		{"0000000", true},
		{"d7b4c1b", false},
		{"00000001", false},
		{"", false},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			if got := git.IsZeroHash(c.in); got != c.want {
				t.Errorf("IsZeroHash(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestResolveRevision(t *testing.T) {
	is := is.New(t)
	r := test.NewRepo(t)
	r.WriteFile("README.md", "hello")
	a := r.Commit("first")

	got, err := r.ResolveRevision(a.String())
	is.NoErr(err)
	is.Equal(got, a)

	got, err = r.ResolveRevision(a.String()[:7])
	is.NoErr(err)
	is.Equal(got, a)

	got, err = r.ResolveRevision("master")
	is.NoErr(err)
	is.Equal(got, a)

	_, err = r.ResolveRevision("nope")
	is.True(err != nil)
}

func TestParent(t *testing.T) {
	is := is.New(t)
	r := test.NewRepo(t)
	r.WriteFile("README.md", "hello")
	a := r.Commit("first")
	r.WriteFile("README.md", "hello world")
	b := r.Commit("second")

	cb, err := r.CommitObject(b)
	is.NoErr(err)
	is.Equal(cb.NumParents(), 1)
	is.Equal(cb.Message, "second")
	is.Equal(cb.Author.Name, test.Author.Name)

	p, err := r.Parent(cb, 0)
	is.NoErr(err)
	is.Equal(p.ID, a)

	_, err = r.Parent(p, 0)
	is.True(errors.Is(err, git.ErrParentNotFound))
}

func TestRevList(t *testing.T) {
	is := is.New(t)
	r := test.NewRepo(t)
	r.WriteFile("a", "a")
	a := r.Commit("A")
	r.WriteFile("b", "b")
	b := r.Commit("B")
	r.WriteFile("c", "c")
	c := r.Commit("C")

	commits, err := r.RevList(c, a)
	is.NoErr(err)
	is.Equal(len(commits), 2)
	is.Equal(commits[0].ID, c)
	is.Equal(commits[1].ID, b)

	all, err := r.RevList(c, git.ZeroID)
	is.NoErr(err)
	is.Equal(len(all), 3)
	is.Equal(all[2].ID, a)

	none, err := r.RevList(a, c)
	is.NoErr(err)
	is.Equal(len(none), 0)
}

func TestRevListBranches(t *testing.T) {
	r := test.NewRepo(t)
	r.WriteFile("a", "a")
	a := r.Commit("A")
	r.WriteFile("b", "b")
	b := r.Commit("B")
	r.WriteFile("c", "c")
	c := r.Commit("C")
	r.WriteFile("d", "d")
	d := r.CommitWithParents("D", b)
	m := r.CommitWithParents("M", c, d)

	cases := []struct {
		name       string
		from, hide git.Hash
		want       []git.Hash
	}{
		{"merge hides other side", m, d, []git.Hash{m, c}},
		{"merge hides mainline", m, c, []git.Hash{m, d}},
		{"fork", d, c, []git.Hash{d}},
		{"mainline", c, d, []git.Hash{c}},
		{"fork from root", d, git.ZeroID, []git.Hash{d, b, a}},
		{"same", m, m, []git.Hash{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			commits, err := r.RevList(tc.from, tc.hide)
			is.NoErr(err)
			got := make([]git.Hash, 0, len(commits))
			for _, c := range commits {
				got = append(got, c.ID)
			}
			is.Equal(got, tc.want)
		})
	}
}

func TestDiffTree(t *testing.T) {
	is := is.New(t)
	r := test.NewRepo(t)
	r.WriteFile("keep", "keep")
	r.WriteFile("change", "v1")
	r.WriteFile("drop", "drop")
	a := r.Commit("A")
	r.WriteFile("change", "v2")
	r.Remove("drop")
	r.WriteFile("new", "new")
	b := r.Commit("B")

	ca, err := r.CommitObject(a)
	is.NoErr(err)
	cb, err := r.CommitObject(b)
	is.NoErr(err)

	deltas, err := r.DiffTree(ca, cb)
	is.NoErr(err)

	got := map[string]git.DeltaStatus{}
	for _, d := range deltas {
		path := d.NewPath
		if path == "" {
			path = d.OldPath
		}
		got[path] = d.Status
	}
	is.Equal(got, map[string]git.DeltaStatus{
		"change": git.DeltaModified,
		"drop":   git.DeltaDeleted,
		"new":    git.DeltaAdded,
	})
}

func TestDiffTreeRenames(t *testing.T) {
	is := is.New(t)
	r := test.NewRepo(t)
	r.WriteFile("old.txt", "the same content in both places\n")
	a := r.Commit("A")
	r.Remove("old.txt")
	r.WriteFile("new.txt", "the same content in both places\n")
	b := r.Commit("B")

	ca, err := r.CommitObject(a)
	is.NoErr(err)
	cb, err := r.CommitObject(b)
	is.NoErr(err)

	deltas, err := r.DiffTree(ca, cb)
	is.NoErr(err)
	is.Equal(len(deltas), 2)

	deltas, err = r.DiffTree(ca, cb, git.DiffOptions{DetectRenames: true})
	is.NoErr(err)
	is.Equal(deltas, []git.Delta{{
		Status:  git.DeltaRenamed,
		OldPath: "old.txt",
		NewPath: "new.txt",
	}})
}

func TestConfigValue(t *testing.T) {
	is := is.New(t)
	r := test.NewRepo(t)
	r.SetConfig(
		"hooks.notify.repo-name", "notify-hook",
		"remote.origin.url", "git@github.com:charmbracelet/notify-hook.git",
		"core.bare", "false",
	)

	is.Equal(r.ConfigValue("hooks.notify.repo-name"), "notify-hook")
	is.Equal(r.ConfigValue("remote.origin.url"), "git@github.com:charmbracelet/notify-hook.git")
	is.Equal(r.ConfigValue("hooks.notify.missing"), "")
	is.Equal(r.ConfigValue("nosuch.key"), "")
	is.Equal(r.ConfigValue("invalid"), "")
	is.True(errors.Is(r.SetConfigValue("invalid", "x"), git.ErrInvalidConfigKey))
}

func TestName(t *testing.T) {
	for path, want := range map[string]string{
		"/srv/git/notify-hook.git": "notify-hook",
		"/home/me/project/.git":    "project",
		"/home/me/project":         "project",
	} {
		r := &git.Repository{Path: path}
		if got := r.Name(); got != want {
			t.Errorf("Name() for %q = %q, want %q", path, got, want)
		}
	}
}

func TestReferenceName(t *testing.T) {
	cases := []struct {
		ref   git.ReferenceName
		short string
		kind  string
	}{
		{"refs/heads/master", "master", "branch"},
		{"refs/heads/feature/login", "feature/login", "branch"},
		{"refs/tags/v1.0.0", "v1.0.0", "tag"},
		{"refs/notes/commits", "notes/commits", "ref"},
	}

	for _, c := range cases {
		t.Run(c.ref.String(), func(t *testing.T) {
			is := is.New(t)
			is.Equal(c.ref.Short(), c.short)
			is.Equal(c.ref.Kind(), c.kind)
		})
	}
}
