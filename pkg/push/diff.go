package push

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/notify-hook/pkg/git"
)

// Changes are the paths a commit added, removed, and modified.
type Changes struct {
	Added    []string
	Removed  []string
	Modified []string
}

func emptyChanges() Changes {
	return Changes{
		Added:    []string{},
		Removed:  []string{},
		Modified: []string{},
	}
}

// DiffCommit compares a commit to its first parent. Root commits have nothing
// to compare against and yield empty changes.
func DiffCommit(repo Repository, c *git.Commit, opts ...git.DiffOptions) (Changes, error) {
	changes := emptyChanges()
	parent, err := repo.Parent(c, 0)
	if errors.Is(err, git.ErrParentNotFound) {
		return changes, nil
	}
	if err != nil {
		return changes, fmt.Errorf("%w: parent of %s: %w", ErrDiff, c.ID, err)
	}

	deltas, err := repo.DiffTree(parent, c, opts...)
	if err != nil {
		return changes, fmt.Errorf("%w: %s: %w", ErrDiff, c.ID, err)
	}

	for _, d := range deltas {
		path := deltaPath(d)
		switch d.Status {
		case git.DeltaAdded:
			changes.Added = append(changes.Added, path)
		case git.DeltaDeleted:
			changes.Removed = append(changes.Removed, path)
		case git.DeltaModified, git.DeltaRenamed:
			changes.Modified = append(changes.Modified, path)
		}
	}

	return changes, nil
}

// deltaPath returns the destination path of a delta. Deletions have no
// destination, so the source path is used. Paths that aren't valid UTF-8
// can't be represented in the payload and become empty.
func deltaPath(d git.Delta) string {
	path := d.NewPath
	if path == "" {
		path = d.OldPath
	}
	if !utf8.ValidString(path) {
		return ""
	}
	return path
}
