package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reanahub/reana-dev/internal/git"
	"github.com/reanahub/reana-dev/internal/log"
)

func newGitCloneCmd() *cobra.Command {
	var (
		components []string
		user       string
	)

	cmd := &cobra.Command{
		Use:     "git-clone",
		Short:   "Clone component repositories from GitHub",
		GroupID: GroupGit,
		Args:    cobra.NoArgs,
		Long: `Clone the selected component repositories from your GitHub fork
into $REANA_SRCDIR, then add the canonical reanahub remote as "upstream"
and make pull request heads fetchable as upstream/pr/N.`,
		Example: `  reana-dev git-clone -c ALL
  reana-dev git-clone -c r-server -u johndoe`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			if user == "" {
				var err error
				user, err = cfg.GithubUserName()
				if err != nil {
					return err
				}
			}
			srcdir, err := cfg.SrcdirPath()
			if err != nil {
				return err
			}

			for _, name := range selectComponents(ctx, components) {
				l.Step("", fmt.Sprintf("git clone git@github.com:%s/%s", user, name))
				if err := git.Clone(ctx, srcdir, user, name); err != nil {
					return fmt.Errorf("clone %s: %w", name, err)
				}
				dir, err := cfg.ComponentDir(name)
				if err != nil {
					return err
				}
				l.Step(name, fmt.Sprintf("git remote add upstream git@github.com:reanahub/%s", name))
				if err := git.ConfigureUpstream(ctx, dir, name); err != nil {
					return fmt.Errorf("configure upstream for %s: %w", name, err)
				}
			}
			return nil
		},
	}

	addComponentFlag(cmd, &components)
	cmd.Flags().StringVarP(&user, "user", "u", "", "GitHub user name [$REANA_GITHUB_USER]")

	return cmd
}
