// Package git provides git operations via shell commands.
//
// All operations use [os/exec.Command] to call the git CLI directly rather than
// using Go git libraries. This approach is simpler, more reliable, and ensures
// compatibility with user configurations (SSH keys, credential helpers, aliases).
//
// # Repository Operations
//
//   - [Clone], [ConfigureUpstream]: Set up a component checkout with the
//     developer's fork as origin and reanahub as upstream
//   - [CurrentBranch]: Branch currently checked out in a component
//   - [FetchUpstream], [CheckoutPR]: Pull request workflow
//   - [Run]: Escape hatch for command sequences such as git-upgrade
package git
