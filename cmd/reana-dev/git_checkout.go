package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/reanahub/reana-dev/internal/git"
	"github.com/reanahub/reana-dev/internal/log"
)

// branchPair is one <component> <pr> argument pair of git-checkout.
type branchPair struct {
	component string
	pr        int
}

// parseBranchPairs validates the positional arguments of git-checkout:
// one or more <component> <pr> pairs.
func parseBranchPairs(args []string) ([]branchPair, error) {
	if len(args) == 0 || len(args)%2 != 0 {
		return nil, fmt.Errorf("expected one or more <component> <pr> pairs, got %d argument(s)", len(args))
	}
	pairs := make([]branchPair, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		pr, err := strconv.Atoi(args[i+1])
		if err != nil || pr <= 0 {
			return nil, fmt.Errorf("invalid pull request number %q for component %q", args[i+1], args[i])
		}
		pairs = append(pairs, branchPair{component: args[i], pr: pr})
	}
	return pairs, nil
}

func newGitCheckoutCmd() *cobra.Command {
	var fetch bool

	cmd := &cobra.Command{
		Use:     "git-checkout <component> <pr> [<component> <pr>...]",
		Short:   "Check out local branches for component pull requests",
		GroupID: GroupGit,
		Args: func(cmd *cobra.Command, args []string) error {
			_, err := parseBranchPairs(args)
			return err
		},
		ValidArgsFunction: completeComponents,
		Long: `Check out a local branch corresponding to a component pull request.
For each <component> <pr> pair this creates a local branch pr-N from
upstream/pr/N in the component source code directory.

Pairs with an unknown component are skipped with a warning.`,
		Example: `  reana-dev git-checkout reana-job-controller 72
  reana-dev git-checkout --fetch r-j-controller 72 r-w-controller 98
  reana-dev git-checkout . 72    # component of the current directory`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			// Warn: nil here; the loop below reports unknown components
			// itself, per pair.
			sel := newSelector(ctx)
			sel.Warn = nil

			pairs, err := parseBranchPairs(args)
			if err != nil {
				return err
			}

			for _, pair := range pairs {
				selected := sel.Select([]string{pair.component})
				if len(selected) == 0 || !reg.Contains(selected[0]) {
					l.Message(pair.component, "Ignoring unknown component.")
					continue
				}
				name := selected[0]
				dir, err := cfg.ComponentDir(name)
				if err != nil {
					return err
				}
				if fetch {
					l.Step(name, "git fetch upstream")
					if err := git.FetchUpstream(ctx, dir); err != nil {
						return fmt.Errorf("fetch %s: %w", name, err)
					}
				}
				l.Step(name, fmt.Sprintf("git checkout -b pr-%d upstream/pr/%d", pair.pr, pair.pr))
				if err := git.CheckoutPR(ctx, dir, pair.pr); err != nil {
					return fmt.Errorf("checkout pr-%d in %s: %w", pair.pr, name, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fetch, "fetch", false, "Fetch latest upstream first")

	return cmd
}
