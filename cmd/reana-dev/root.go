package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/reanahub/reana-dev/internal/component"
	"github.com/reanahub/reana-dev/internal/config"
	"github.com/reanahub/reana-dev/internal/git"
	"github.com/reanahub/reana-dev/internal/log"
	"github.com/reanahub/reana-dev/internal/output"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state injected into commands
	cfg     *config.Config
	reg     *component.Registry
	workDir string
)

// Command group IDs for organizing help output
const (
	GroupGit     = "git"
	GroupDocker  = "docker"
	GroupUtility = "utility"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "reana-dev",
	Short: "Run REANA development and integration commands",
	Long: `reana-dev orchestrates git and docker operations across the REANA
source code repositories.

Components can be addressed by standard name (reana-job-controller), by
short name (r-j-controller), by "." for the current directory, or by the
group keywords CLUSTER and ALL.

Configure your environment first:

  $ export REANA_SRCDIR=~/project/reana/src
  $ export REANA_GITHUB_USER=johndoe

Typical workflow:

  $ eval "$(reana-dev git-fork -c ALL)"
  $ reana-dev git-clone -c ALL
  $ reana-dev git-checkout --fetch reana-job-controller 72
  $ reana-dev docker-build -t 0.3.0.dev20180625
  $ reana-dev docker-push -t 0.3.0.dev20180625`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip git check for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		// Validate mutually exclusive flags
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}

		// Check git is available for git-* commands
		if strings.HasPrefix(cmd.Name(), "git-") {
			return git.CheckGit()
		}
		return nil
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config (env overrides file)
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg

	// Component registry is fixed for the process lifetime; refuse to start
	// when short-name resolution would be ambiguous.
	reg = cfg.Registry()
	if err := reg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "reana-dev: invalid component registry: %v\n", err)
		os.Exit(1)
	}

	// Get working directory
	workDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "reana-dev: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Create logger (stderr for diagnostics)
	logger := log.New(os.Stderr, verbose, quiet)
	ctx = log.WithLogger(ctx, logger)

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'reana-dev -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupGit, Title: "Git Commands:"},
		&cobra.Group{ID: GroupDocker, Title: "Docker Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
	)
	rootCmd.SetHelpCommandGroupID(GroupUtility)
	rootCmd.SetCompletionCommandGroupID(GroupUtility)

	// Git commands
	rootCmd.AddCommand(newGitForkCmd())
	rootCmd.AddCommand(newGitCloneCmd())
	rootCmd.AddCommand(newGitStatusCmd())
	rootCmd.AddCommand(newGitCleanCmd())
	rootCmd.AddCommand(newGitCheckoutCmd())
	rootCmd.AddCommand(newGitFetchCmd())
	rootCmd.AddCommand(newGitUpgradeCmd())
	rootCmd.AddCommand(newGitDiffCmd())
	rootCmd.AddCommand(newGitPushCmd())

	// Docker commands
	rootCmd.AddCommand(newDockerBuildCmd())
	rootCmd.AddCommand(newDockerImagesCmd())
	rootCmd.AddCommand(newDockerRmiCmd())
	rootCmd.AddCommand(newDockerPushCmd())
	rootCmd.AddCommand(newDockerPullCmd())

	// Utility commands
	rootCmd.AddCommand(newVersionCmd())
}
