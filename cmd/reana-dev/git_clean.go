package main

import (
	"fmt"

	"github.com/spf13/cobra"

	shcmd "github.com/reanahub/reana-dev/internal/cmd"
	"github.com/reanahub/reana-dev/internal/log"
)

// cleanScripts removes Python build leftovers from a component checkout.
// Less aggressive than "git clean -x": virtualenvs and editor state survive.
var cleanScripts = []string{
	`find . -name "*.pyc" -delete`,
	`find . -type d -name "*.egg-info" -exec rm -rf {} \;`,
	`find . -type d -name ".eggs" -exec rm -rf {} \;`,
	`find . -type d -name __pycache__ -delete`,
	`find docs -type d -name "_build" -exec rm -rf {} \;`,
}

func newGitCleanCmd() *cobra.Command {
	var components []string

	cmd := &cobra.Command{
		Use:     "git-clean",
		Short:   "Clean component source code trees",
		GroupID: GroupGit,
		Args:    cobra.NoArgs,
		Long: `Clean the selected component source code trees: removes pyc files,
egg-info directories, __pycache__ and Sphinx _build leftovers.`,
		Example: `  reana-dev git-clean
  reana-dev git-clean -c .`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			for _, name := range selectComponents(ctx, components) {
				dir, err := cfg.ComponentDir(name)
				if err != nil {
					return err
				}
				for _, script := range cleanScripts {
					l.Step(name, script)
					if err := shcmd.ShellContext(ctx, dir, script); err != nil {
						return fmt.Errorf("clean %s: %w", name, err)
					}
				}
			}
			return nil
		},
	}

	addComponentFlag(cmd, &components)

	return cmd
}
