package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/reanahub/reana-dev/internal/component"
)

// Environment variables recognized by reana-dev. They take precedence over
// the config file, matching the original shell-centric workflow where both
// are exported in the developer's profile.
const (
	EnvSrcdir     = "REANA_SRCDIR"
	EnvGithubUser = "REANA_GITHUB_USER"
)

// ErrSrcdirNotSet is returned when no source directory is configured.
var ErrSrcdirNotSet = errors.New(
	"please set environment variable REANA_SRCDIR to the directory that will contain" +
		" REANA source code repositories, e.g. $ export REANA_SRCDIR=~/project/reana/src")

// ErrGithubUserNotSet is returned when no GitHub user is configured.
var ErrGithubUserNotSet = errors.New(
	"please set environment variable REANA_GITHUB_USER to your GitHub user name," +
		" e.g. $ export REANA_GITHUB_USER=johndoe")

// ComponentsConfig optionally overrides the built-in component registry,
// for developers working on a fork of the component set.
type ComponentsConfig struct {
	All     []string `toml:"all"`
	Cluster []string `toml:"cluster"`
}

// Config holds the reana-dev configuration.
type Config struct {
	Srcdir     string           `toml:"srcdir"`
	GithubUser string           `toml:"github_user"`
	DockerUser string           `toml:"docker_user"`
	Components ComponentsConfig `toml:"components"`
}

// DefaultDockerUser is the DockerHub organisation images are tagged with
// unless overridden.
const DefaultDockerUser = "reanahub"

// Default returns the default configuration.
func Default() Config {
	return Config{
		DockerUser: DefaultDockerUser,
	}
}

// Registry returns the component registry to use: the config-file override
// when one is given, the built-in REANA registry otherwise. The caller is
// expected to Validate() it once at startup.
func (c *Config) Registry() *component.Registry {
	if len(c.Components.All) > 0 {
		cluster := c.Components.Cluster
		if cluster == nil {
			cluster = []string{}
		}
		return &component.Registry{All: c.Components.All, Cluster: cluster}
	}
	return component.DefaultRegistry()
}

// SrcdirPath returns the configured source directory.
func (c *Config) SrcdirPath() (string, error) {
	if c.Srcdir == "" {
		return "", ErrSrcdirNotSet
	}
	return c.Srcdir, nil
}

// ComponentDir returns the source directory of the given component.
func (c *Config) ComponentDir(name string) (string, error) {
	srcdir, err := c.SrcdirPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(srcdir, name), nil
}

// GithubUserName returns the configured GitHub user name.
func (c *Config) GithubUserName() (string, error) {
	if c.GithubUser == "" {
		return "", ErrGithubUserNotSet
	}
	return c.GithubUser, nil
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	// Allow ~ paths
	if len(path) >= 1 && path[0] == '~' {
		return nil
	}
	// Must be absolute
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "reana-dev", "config.toml"), nil
}

// Load reads config from ~/.config/reana-dev/config.toml and applies the
// REANA_SRCDIR and REANA_GITHUB_USER environment overrides on top.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	cfg, err := loadFile()
	if err != nil {
		return cfg, err
	}

	if srcdir := os.Getenv(EnvSrcdir); srcdir != "" {
		cfg.Srcdir = srcdir
	}
	if user := os.Getenv(EnvGithubUser); user != "" {
		cfg.GithubUser = user
	}

	if cfg.Srcdir != "" {
		expanded, err := expandPath(cfg.Srcdir)
		if err != nil {
			return cfg, fmt.Errorf("expand srcdir: %w", err)
		}
		cfg.Srcdir = expanded
	}

	return cfg, nil
}

func loadFile() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Parse decodes and validates a TOML config document.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	// Srcdir from the file must be absolute or ~-relative; env values are
	// taken as-is since the shell already expanded them.
	if err := ValidatePath(cfg.Srcdir, "srcdir"); err != nil {
		return Default(), err
	}

	if cfg.DockerUser == "" {
		cfg.DockerUser = DefaultDockerUser
	}

	if len(cfg.Components.All) > 0 {
		if err := cfg.Registry().Validate(); err != nil {
			return Default(), fmt.Errorf("invalid components override: %w", err)
		}
	}

	return cfg, nil
}
