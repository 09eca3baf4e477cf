// Package config handles loading and validation of reana-dev configuration.
//
// Configuration is read from ~/.config/reana-dev/config.toml with environment
// variable overrides, since the tool predates the config file and developers
// export the variables in their shell profiles.
//
// # Configuration Sources (highest priority first)
//
//   - REANA_SRCDIR env var: Directory holding component checkouts
//   - REANA_GITHUB_USER env var: GitHub user owning the component forks
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - srcdir: Base directory for component checkouts (must be absolute or ~/...)
//   - github_user: GitHub user name used by git-clone
//   - docker_user: DockerHub user for image tags (default: "reanahub")
//
// # Components Override
//
// The [components] section replaces the built-in component registry, for
// developers working against a fork of the component set:
//
//	[components]
//	all = ["myproj", "myproj-server"]
//	cluster = ["myproj-server"]
//
// Overrides are validated like the built-in registry: the cluster list must
// be a subset of all, and short names must stay unambiguous.
//
// # Path Validation
//
// srcdir must be absolute or start with ~ (no relative paths like "." or
// "..") to avoid confusion about the working directory.
package config
