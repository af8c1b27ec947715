package hooks

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"text/template"

	"github.com/go-git/go-billy/v5"
)

// ErrHookExists is returned when a hook is already installed.
var ErrHookExists = errors.New("hook already exists")

var hookTpl = template.Must(template.New("hook").Parse(`#!/usr/bin/env bash
# AUTO GENERATED BY NOTIFY-HOOK, DO NOT EDIT
exec '{{ .Executable }}'{{ if .Debug }} --debug{{ end }} "$@"
`))

// GenerateOptions are options for GenerateHook.
type GenerateOptions struct {
	// Executable is the path of the notify-hook binary.
	Executable string
	// Debug makes the hook echo payloads to the pusher.
	Debug bool
	// Force overwrites an existing hook.
	Force bool
}

// GenerateHook writes the post-receive hook to the root of fs, which should
// be the hooks directory of a repository.
func GenerateHook(fs billy.Filesystem, opts GenerateOptions) error {
	if opts.Executable == "" {
		return errors.New("missing executable path")
	}

	if _, err := fs.Stat(PostReceiveHook); err == nil && !opts.Force {
		return fmt.Errorf("%w: %s", ErrHookExists, fs.Join(fs.Root(), PostReceiveHook))
	}

	var buf bytes.Buffer
	if err := hookTpl.Execute(&buf, opts); err != nil {
		return err
	}

	f, err := fs.OpenFile(PostReceiveHook, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o755) //nolint:gosec
	if err != nil {
		return fmt.Errorf("create hook: %w", err)
	}

	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close() // nolint: errcheck
		return fmt.Errorf("write hook: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("write hook: %w", err)
	}

	// Make sure the hook is executable even if it already existed.
	if ch, ok := fs.(billy.Change); ok {
		if err := ch.Chmod(PostReceiveHook, 0o755); err != nil {
			return fmt.Errorf("chmod hook: %w", err)
		}
	}

	return nil
}
