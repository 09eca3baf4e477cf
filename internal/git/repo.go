package git

import (
	"context"
	"fmt"
	"strings"
)

// CurrentBranch returns the branch currently checked out in dir.
func CurrentBranch(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("current branch of %s: %w", dir, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Clone clones git@github.com:<user>/<name> into srcdir.
func Clone(ctx context.Context, srcdir, user, name string) error {
	return runGit(ctx, srcdir, "clone", fmt.Sprintf("git@github.com:%s/%s", user, name))
}

// ConfigureUpstream adds the canonical reanahub remote to a fresh clone and
// makes pull request heads fetchable as upstream/pr/N.
func ConfigureUpstream(ctx context.Context, dir, name string) error {
	if err := runGit(ctx, dir, "remote", "add", "upstream",
		fmt.Sprintf("git@github.com:reanahub/%s", name)); err != nil {
		return err
	}
	return runGit(ctx, dir, "config", "--add", "remote.upstream.fetch",
		"+refs/pull/*/head:refs/remotes/upstream/pr/*")
}

// FetchUpstream fetches the upstream remote without touching local branches.
func FetchUpstream(ctx context.Context, dir string) error {
	return runGit(ctx, dir, "fetch", "upstream")
}

// CheckoutPR creates a local branch pr-<number> tracking the upstream pull
// request head.
func CheckoutPR(ctx context.Context, dir string, number int) error {
	return runGit(ctx, dir, "checkout", "-b",
		fmt.Sprintf("pr-%d", number), fmt.Sprintf("upstream/pr/%d", number))
}
