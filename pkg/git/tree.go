package git

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"
)

// DeltaStatus is the kind of change a delta describes.
type DeltaStatus int8

const (
	// DeltaOther is any change that isn't classified below.
	DeltaOther DeltaStatus = iota
	// DeltaAdded is a path that only exists in the new tree.
	DeltaAdded
	// DeltaDeleted is a path that only exists in the old tree.
	DeltaDeleted
	// DeltaModified is a path whose content or mode changed.
	DeltaModified
	// DeltaRenamed is a path that moved, with or without content changes.
	DeltaRenamed
)

// Delta is a single path change between two trees.
type Delta struct {
	Status DeltaStatus
	// OldPath is the path on the source side, empty for additions.
	OldPath string
	// NewPath is the path on the destination side, empty for deletions.
	NewPath string
}

// DiffOptions are options for DiffTree.
type DiffOptions struct {
	// DetectRenames pairs deletions and additions of similar files into
	// renames.
	DetectRenames bool
}

// DiffTree returns the deltas between the trees of two commits.
func (r *Repository) DiffTree(from, to *Commit, opts ...DiffOptions) ([]Delta, error) {
	var opt DiffOptions
	if len(opts) > 0 {
		opt = opts[0]
	}

	fromTree, err := r.tree(from)
	if err != nil {
		return nil, err
	}
	toTree, err := r.tree(to)
	if err != nil {
		return nil, err
	}

	dopts := &object.DiffTreeOptions{}
	if opt.DetectRenames {
		dopts = object.DefaultDiffTreeOptions
	}

	changes, err := object.DiffTreeWithOptions(context.Background(), fromTree, toTree, dopts)
	if err != nil {
		return nil, fmt.Errorf("diff tree %s..%s: %w", from.TreeID, to.TreeID, err)
	}

	deltas := make([]Delta, 0, len(changes))
	for _, c := range changes {
		action, err := c.Action()
		if err != nil {
			return nil, fmt.Errorf("diff tree %s..%s: %w", from.TreeID, to.TreeID, err)
		}

		d := Delta{
			OldPath: c.From.Name,
			NewPath: c.To.Name,
		}
		switch action {
		case merkletrie.Insert:
			d.Status = DeltaAdded
		case merkletrie.Delete:
			d.Status = DeltaDeleted
		case merkletrie.Modify:
			d.Status = DeltaModified
			if c.From.Name != c.To.Name {
				d.Status = DeltaRenamed
			}
		}
		deltas = append(deltas, d)
	}

	return deltas, nil
}

func (r *Repository) tree(c *Commit) (*object.Tree, error) {
	obj := c.obj
	if obj == nil {
		var err error
		obj, err = r.commitObject(c.ID)
		if err != nil {
			return nil, err
		}
	}

	t, err := obj.Tree()
	if err != nil {
		return nil, fmt.Errorf("tree %s: %w", c.TreeID, err)
	}

	return t, nil
}
