package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reanahub/reana-dev/internal/docker"
	"github.com/reanahub/reana-dev/internal/log"
)

const skipNoDockerfile = "Ignoring this component that does not contain a Dockerfile."

// addDockerUserFlag registers the -u/--user flag. The default comes from
// config at run time, not here: flags are built in init(), before the
// config is loaded.
func addDockerUserFlag(cmd *cobra.Command, user *string) {
	cmd.Flags().StringVarP(user, "user", "u", "", "DockerHub organisation or user name [reanahub]")
}

// dockerUser applies the configured default to the -u flag value.
func dockerUser(flag string) string {
	if flag != "" {
		return flag
	}
	return cfg.DockerUser
}

// addTagFlag registers the -t/--tag flag.
func addTagFlag(cmd *cobra.Command, tag *string) {
	cmd.Flags().StringVarP(tag, "tag", "t", "latest", "Image tag")
}

// forEachDockerised runs fn for every selected component that ships a
// Dockerfile, skipping the rest with a message.
func forEachDockerised(ctx context.Context, tokens []string, fn func(name, dir string) error) error {
	l := log.FromContext(ctx)
	for _, name := range selectComponents(ctx, tokens) {
		dir, err := cfg.ComponentDir(name)
		if err != nil {
			return err
		}
		if !docker.IsDockerised(dir) {
			l.Message(name, skipNoDockerfile)
			continue
		}
		if err := fn(name, dir); err != nil {
			return err
		}
	}
	return nil
}

func newDockerBuildCmd() *cobra.Command {
	var (
		components []string
		user       string
		tag        string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:     "docker-build",
		Short:   "Build component images",
		GroupID: GroupDocker,
		Args:    cobra.NoArgs,
		Long: `Build container images for the selected components. Components
without a Dockerfile are skipped with a message.`,
		Example: `  reana-dev docker-build
  reana-dev docker-build -c . --no-cache
  reana-dev docker-build -t 0.3.0.dev20180625`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			user = dockerUser(user)
			return forEachDockerised(ctx, components, func(name, dir string) error {
				ref := docker.ImageRef(user, name, tag)
				cache := ""
				if noCache {
					cache = "--no-cache "
				}
				l.Step(name, fmt.Sprintf("docker build %s-t %s .", cache, ref))
				if err := docker.Build(ctx, dir, ref, noCache); err != nil {
					return fmt.Errorf("build %s: %w", ref, err)
				}
				return nil
			})
		},
	}

	addComponentFlag(cmd, &components)
	addDockerUserFlag(cmd, &user)
	addTagFlag(cmd, &tag)
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Do not use build cache")

	return cmd
}

func newDockerImagesCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:     "docker-images",
		Short:   "List component images",
		GroupID: GroupDocker,
		Args:    cobra.NoArgs,
		Long:    "List the local container images belonging to the given DockerHub user.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user = dockerUser(user)
			log.FromContext(ctx).Step("", fmt.Sprintf("docker images | grep %s", user))
			return docker.ListImages(ctx, user)
		},
	}

	addDockerUserFlag(cmd, &user)

	return cmd
}

func newDockerRmiCmd() *cobra.Command {
	var (
		components []string
		user       string
		tag        string
	)

	cmd := &cobra.Command{
		Use:     "docker-rmi",
		Short:   "Remove component images",
		GroupID: GroupDocker,
		Args:    cobra.NoArgs,
		Long:    "Remove local container images of the selected components.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			user = dockerUser(user)
			return forEachDockerised(ctx, components, func(name, dir string) error {
				ref := docker.ImageRef(user, name, tag)
				l.Step(name, "docker rmi "+ref)
				if err := docker.RemoveImage(ctx, ref); err != nil {
					return fmt.Errorf("rmi %s: %w", ref, err)
				}
				return nil
			})
		},
	}

	addComponentFlag(cmd, &components)
	addDockerUserFlag(cmd, &user)
	addTagFlag(cmd, &tag)

	return cmd
}

func newDockerPushCmd() *cobra.Command {
	var (
		components []string
		user       string
		tag        string
	)

	cmd := &cobra.Command{
		Use:     "docker-push",
		Short:   "Push component images to DockerHub",
		GroupID: GroupDocker,
		Args:    cobra.NoArgs,
		Long:    "Push container images of the selected components to DockerHub.",
		Example: `  reana-dev docker-push -t 0.3.0.dev20180625`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			user = dockerUser(user)
			return forEachDockerised(ctx, components, func(name, dir string) error {
				ref := docker.ImageRef(user, name, tag)
				l.Step(name, "docker push "+ref)
				if err := docker.Push(ctx, ref); err != nil {
					return fmt.Errorf("push %s: %w", ref, err)
				}
				return nil
			})
		},
	}

	addComponentFlag(cmd, &components)
	addDockerUserFlag(cmd, &user)
	addTagFlag(cmd, &tag)

	return cmd
}

func newDockerPullCmd() *cobra.Command {
	var (
		components []string
		user       string
		tag        string
	)

	cmd := &cobra.Command{
		Use:     "docker-pull",
		Short:   "Pull component images from DockerHub",
		GroupID: GroupDocker,
		Args:    cobra.NoArgs,
		Long:    "Pull container images of the selected components from DockerHub.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			user = dockerUser(user)
			return forEachDockerised(ctx, components, func(name, dir string) error {
				ref := docker.ImageRef(user, name, tag)
				l.Step(name, "docker pull "+ref)
				if err := docker.Pull(ctx, ref); err != nil {
					return fmt.Errorf("pull %s: %w", ref, err)
				}
				return nil
			})
		},
	}

	addComponentFlag(cmd, &components)
	addDockerUserFlag(cmd, &user)
	addTagFlag(cmd, &tag)

	return cmd
}
