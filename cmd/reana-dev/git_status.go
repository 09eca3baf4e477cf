package main

import (
	"github.com/spf13/cobra"

	"github.com/reanahub/reana-dev/internal/git"
	"github.com/reanahub/reana-dev/internal/output"
	"github.com/reanahub/reana-dev/internal/ui/styles"
)

func newGitStatusCmd() *cobra.Command {
	var components []string

	cmd := &cobra.Command{
		Use:     "git-status",
		Short:   "Report checked-out branches of component repositories",
		GroupID: GroupGit,
		Args:    cobra.NoArgs,
		Long: `Report the branch currently checked out in each selected component
repository. Branches other than master are highlighted, since a cluster
built from drifted checkouts is usually a surprise.`,
		Example: `  reana-dev git-status
  reana-dev git-status -c ALL`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			for _, name := range selectComponents(ctx, components) {
				dir, err := cfg.ComponentDir(name)
				if err != nil {
					return err
				}
				branch, err := git.CurrentBranch(ctx, dir)
				if err != nil {
					return err
				}
				line := styles.Bold.Render("- "+name) + " @ "
				if branch == "master" {
					line += branch
				} else {
					line += styles.ErrorStyle.Render(branch)
				}
				out.Println(line)
			}
			return nil
		},
	}

	addComponentFlag(cmd, &components)

	return cmd
}
