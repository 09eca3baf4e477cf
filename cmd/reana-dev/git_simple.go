package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reanahub/reana-dev/internal/git"
	"github.com/reanahub/reana-dev/internal/log"
)

// newGitLoopCmd builds a command that runs a fixed git argv sequence in
// every selected component directory. git-fetch, git-upgrade, git-diff and
// git-push are all this shape.
func newGitLoopCmd(use, short, long string, commands [][]string) *cobra.Command {
	var components []string

	cmd := &cobra.Command{
		Use:     use,
		Short:   short,
		Long:    long,
		GroupID: GroupGit,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			for _, name := range selectComponents(ctx, components) {
				dir, err := cfg.ComponentDir(name)
				if err != nil {
					return err
				}
				for _, argv := range commands {
					l.Step(name, "git "+strings.Join(argv, " "))
					if err := git.Run(ctx, dir, argv...); err != nil {
						return fmt.Errorf("%s: git %s: %w", name, argv[0], err)
					}
				}
			}
			return nil
		},
	}

	addComponentFlag(cmd, &components)

	return cmd
}

func newGitFetchCmd() *cobra.Command {
	return newGitLoopCmd(
		"git-fetch",
		"Fetch component upstream repositories without upgrade",
		"Fetch the upstream remote of the selected component repositories\nwithout touching any local branches.",
		[][]string{
			{"fetch", "upstream"},
		})
}

func newGitUpgradeCmd() *cobra.Command {
	return newGitLoopCmd(
		"git-upgrade",
		"Upgrade local component repositories to latest upstream",
		"Upgrade the selected component repositories: fetch upstream, fast-forward\nlocal master, push it to your fork and return to the previous branch.",
		[][]string{
			{"fetch", "upstream"},
			{"checkout", "master"},
			{"merge", "--ff-only", "upstream/master"},
			{"push", "origin", "master"},
			{"checkout", "-"},
		})
}

func newGitDiffCmd() *cobra.Command {
	return newGitLoopCmd(
		"git-diff",
		"Diff checked-out component repositories",
		"Show the diff between the checked-out branch and master in the selected\ncomponent repositories.",
		[][]string{
			{"diff", "master"},
		})
}

func newGitPushCmd() *cobra.Command {
	return newGitLoopCmd(
		"git-push",
		"Push local component repositories to GitHub origin",
		"Push local master of the selected component repositories to your\nGitHub fork.",
		[][]string{
			{"push", "origin", "master"},
		})
}
