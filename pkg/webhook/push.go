package webhook

import (
	"time"

	"github.com/charmbracelet/notify-hook/pkg/git"
	"github.com/charmbracelet/notify-hook/pkg/push"
)

// NewPushEvent builds a push event. It doesn't read anything from the
// repository: the commits and their changes must already be collected.
func NewPushEvent(repo Repository, head push.Commit, commits []push.Commit, before, after git.Hash, ref string) PushEvent {
	payload := PushEvent{
		Ref:        ref,
		Before:     before.String(),
		After:      after.String(),
		Size:       len(commits),
		Commits:    make([]Commit, len(commits)),
		HeadCommit: newCommit(head),
		Repository: repo,
		Pusher:     newUser(head.Committer),
	}

	for i, c := range commits {
		payload.Commits[i] = newCommit(c)
	}

	if repo.Owner != nil {
		owner := *repo.Owner
		payload.Repository.Owner = &owner
	}

	return payload
}

func newCommit(c push.Commit) Commit {
	return Commit{
		ID:        c.ID.String(),
		TreeID:    c.TreeID.String(),
		Message:   c.Message,
		Timestamp: c.Committer.When.Format(time.RFC3339),
		Author:    newUser(c.Author),
		Committer: newUser(c.Committer),
		Added:     paths(c.Added),
		Removed:   paths(c.Removed),
		Modified:  paths(c.Modified),
	}
}

func newUser(s git.Signature) User {
	return User{
		Name:  s.Name,
		Email: s.Email,
	}
}

func paths(p []string) []string {
	return append(make([]string, 0, len(p)), p...)
}
