// Package cmd provides helpers for executing shell commands with proper error handling.
//
// This package wraps [os/exec.Cmd] with context support and verbose command
// logging. Capturing variants fold stderr into the returned error to make
// failures informative; streaming variants hand the subprocess the real
// terminal so git and docker output appears exactly as if typed by hand.
//
// # Usage
//
//	if err := cmd.RunContext(ctx, dir, "git", "fetch", "upstream"); err != nil {
//	    return fmt.Errorf("fetch failed: %w", err)
//	}
//
//	// For commands that return output:
//	out, err := cmd.OutputContext(ctx, dir, "git", "rev-parse", "--abbrev-ref", "HEAD")
//
// # Design Notes
//
// reana-dev shells out to the git and docker CLIs rather than using Go
// client libraries. This keeps the tool compatible with whatever the
// developer has configured locally (SSH keys, credential helpers, docker
// contexts) and mirrors exactly what a developer would type by hand.
package cmd
