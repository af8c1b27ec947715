// Package hooks implements the git post-receive hook.
package hooks

import (
	"errors"
	"fmt"
	"strings"
)

// PostReceiveHook is the name of the git post-receive hook.
const PostReceiveHook = "post-receive"

// ErrMalformedInput is returned when a hook input line is not made of an old
// revision, a new revision, and a ref name.
var ErrMalformedInput = errors.New("malformed hook input")

// HookArg is an argument to a git hook.
type HookArg struct {
	OldSha  string
	NewSha  string
	RefName string
}

// ParseHookArg parses a post-receive input line, "<old> <new> <ref>".
func ParseHookArg(line string) (HookArg, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return HookArg{}, fmt.Errorf("%w: expected 3 fields, got %d: %q", ErrMalformedInput, len(fields), line)
	}

	return HookArg{
		OldSha:  fields[0],
		NewSha:  fields[1],
		RefName: fields[2],
	}, nil
}
