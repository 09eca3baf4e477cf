package main

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reanahub/reana-dev/internal/component"
	"github.com/reanahub/reana-dev/internal/log"
)

const componentFlagHelp = "Which components? [shortname|name|.|CLUSTER|ALL]"

// addComponentFlag registers the repeatable -c/--component flag with the
// CLUSTER default and component name completion. The default lives here, in
// the flag layer: the selector itself treats an empty token list as an
// empty selection.
func addComponentFlag(cmd *cobra.Command, components *[]string) {
	cmd.Flags().StringArrayVarP(components, "component", "c", []string{component.TokenCluster}, componentFlagHelp)
	_ = cmd.RegisterFlagCompletionFunc("component", completeComponents)
}

// newSelector builds the component selector shared by all commands: tokens
// expand against the process registry, "." resolves to the basename of the
// invocation directory, and unknown tokens are warned about on stderr.
func newSelector(ctx context.Context) *component.Selector {
	l := log.FromContext(ctx)
	return &component.Selector{
		Registry: reg,
		CwdBase:  func() string { return filepath.Base(workDir) },
		Warn:     func(msg string) { l.Message("", msg) },
	}
}

// selectComponents expands the -c flag values into standard component names.
func selectComponents(ctx context.Context, tokens []string) []string {
	return newSelector(ctx).Select(tokens)
}

// completeComponents provides completion over standard names, short names
// and the group keywords.
func completeComponents(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	candidates := make([]string, 0, 2*len(reg.All)+2)
	candidates = append(candidates, reg.All...)
	candidates = append(candidates, reg.ShortNames()...)
	candidates = append(candidates, component.TokenCluster, component.TokenAll)

	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c, toComplete) {
			matches = append(matches, c)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
