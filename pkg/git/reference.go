package git

import (
	"github.com/go-git/go-git/v5/plumbing"
)

const (
	// HEAD represents the name of the HEAD reference.
	HEAD = "HEAD"
	// RefsHeads represents the prefix for branch references.
	RefsHeads = "refs/heads/"
	// RefsTags represents the prefix for tag references.
	RefsTags = "refs/tags/"
)

// ReferenceName is a full reference name, i.e. refs/heads/master.
type ReferenceName string

// String returns the reference name i.e. refs/heads/master.
func (r ReferenceName) String() string {
	return string(r)
}

// Short returns the short name of the reference i.e. master.
func (r ReferenceName) Short() string {
	return plumbing.ReferenceName(r).Short()
}

// IsBranch returns true if the reference is a branch.
func (r ReferenceName) IsBranch() bool {
	return plumbing.ReferenceName(r).IsBranch()
}

// IsTag returns true if the reference is a tag.
func (r ReferenceName) IsTag() bool {
	return plumbing.ReferenceName(r).IsTag()
}

// Kind returns "branch", "tag", or "ref".
func (r ReferenceName) Kind() string {
	switch {
	case r.IsBranch():
		return "branch"
	case r.IsTag():
		return "tag"
	default:
		return "ref"
	}
}
