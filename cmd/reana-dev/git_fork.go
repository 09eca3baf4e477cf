package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/reanahub/reana-dev/internal/log"
	"github.com/reanahub/reana-dev/internal/output"
)

func newGitForkCmd() *cobra.Command {
	var (
		components []string
		browser    string
		copyScript bool
	)

	cmd := &cobra.Command{
		Use:     "git-fork",
		Short:   "Display commands to fork component repositories on GitHub",
		GroupID: GroupGit,
		Args:    cobra.NoArgs,
		Long: `Display the shell commands that fork the selected component
repositories on GitHub using your browser.

The output is meant to be eval'ed: it opens one fork page per component and
you complete the fork process in the browser.`,
		Example: `  eval "$(reana-dev git-fork -c ALL)"
  reana-dev git-fork -c r-j-controller -b chromium
  reana-dev git-fork --copy              # put the script on the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			selected := selectComponents(ctx, components)
			script := forkScript(browser, components, selected)

			if copyScript {
				if err := clipboard.WriteAll(script); err != nil {
					log.FromContext(ctx).Printf("Warning: failed to copy to clipboard: %v\n", err)
				}
			}

			output.FromContext(ctx).Printf("%s", script)
			return nil
		},
	}

	addComponentFlag(cmd, &components)
	cmd.Flags().StringVarP(&browser, "browser", "b", "firefox", "Which browser to use?")
	cmd.Flags().BoolVar(&copyScript, "copy", false, "Copy the generated script to the clipboard")

	return cmd
}

// forkScript renders the eval-able fork script for the selected components.
// tokens are the raw -c values, echoed back in the eval hint.
func forkScript(browser string, tokens, selected []string) string {
	var b strings.Builder
	if len(selected) > 0 {
		var flags strings.Builder
		for _, t := range tokens {
			fmt.Fprintf(&flags, " -c %s", t)
		}
		b.WriteString("# Fork REANA repositories on GitHub using your browser.\n")
		b.WriteString("# Run the following eval and then complete the fork process in your browser.\n")
		b.WriteString("#\n")
		fmt.Fprintf(&b, "# eval \"$(reana-dev git-fork -b %s%s)\"\n", browser, flags.String())
	}
	for _, name := range selected {
		fmt.Fprintf(&b, "%s https://github.com/reanahub/%s/fork;\n", browser, name)
	}
	b.WriteString("echo \"Please continue the fork process in the opened browser windows.\"\n")
	return b.String()
}
