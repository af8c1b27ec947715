package git

import (
	"regexp"
	"time"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ZeroID is the zero hash.
var ZeroID = Hash(plumbing.ZeroHash.String())

var zeroHashPattern = regexp.MustCompile(`^0+$`)

// IsZeroHash returns whether the hash is a zero hash. Abbreviated zero hashes
// count too.
func IsZeroHash(h string) bool {
	return zeroHashPattern.MatchString(h)
}

// Hash represents a git hash.
type Hash string

// String returns the string representation of a hash as a string.
func (h Hash) String() string {
	return string(h)
}

// IsZero reports whether the hash is the null object id.
func (h Hash) IsZero() bool {
	return IsZeroHash(string(h))
}

// Signature is the identity of a commit author or committer.
type Signature struct {
	Name  string
	Email string
	When  time.Time
}

// Commit is a commit read from the object store.
type Commit struct {
	ID        Hash
	TreeID    Hash
	Message   string
	Author    Signature
	Committer Signature
	Parents   []Hash

	// obj is set when the commit comes from a go-git backed repository.
	obj *object.Commit
}

// NumParents returns the number of parents of the commit.
func (c *Commit) NumParents() int {
	return len(c.Parents)
}

func newCommit(c *object.Commit) *Commit {
	parents := make([]Hash, len(c.ParentHashes))
	for i, p := range c.ParentHashes {
		parents[i] = Hash(p.String())
	}
	return &Commit{
		ID:        Hash(c.Hash.String()),
		TreeID:    Hash(c.TreeHash.String()),
		Message:   c.Message,
		Author:    newSignature(c.Author),
		Committer: newSignature(c.Committer),
		Parents:   parents,
		obj:       c,
	}
}

func newSignature(s object.Signature) Signature {
	return Signature{
		Name:  s.Name,
		Email: s.Email,
		When:  s.When,
	}
}
