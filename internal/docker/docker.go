// Package docker provides container image operations via shell commands,
// calling the docker CLI the same way the git package calls git.
package docker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reanahub/reana-dev/internal/cmd"
)

// ImageRef formats the DockerHub reference for a component image.
func ImageRef(user, component, tag string) string {
	return fmt.Sprintf("%s/%s:%s", user, component, tag)
}

// IsDockerised reports whether the component checkout at dir ships a
// Dockerfile. Components without one (clients, demos, docs) are skipped by
// all image commands.
func IsDockerised(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, "Dockerfile"))
	return err == nil
}

func runDocker(ctx context.Context, dir string, args ...string) error {
	return cmd.RunContext(ctx, dir, "docker", args...)
}

// Build builds the image for the component checkout at dir.
func Build(ctx context.Context, dir, ref string, noCache bool) error {
	args := []string{"build"}
	if noCache {
		args = append(args, "--no-cache")
	}
	args = append(args, "-t", ref, ".")
	return runDocker(ctx, dir, args...)
}

// Push pushes an image to DockerHub.
func Push(ctx context.Context, ref string) error {
	return runDocker(ctx, "", "push", ref)
}

// Pull pulls an image from DockerHub.
func Pull(ctx context.Context, ref string) error {
	return runDocker(ctx, "", "pull", ref)
}

// RemoveImage removes a local image.
func RemoveImage(ctx context.Context, ref string) error {
	return runDocker(ctx, "", "rmi", ref)
}

// ListImages lists local images belonging to the given DockerHub user.
// Uses a shell pipe since docker images has no server-side owner filter.
func ListImages(ctx context.Context, user string) error {
	return cmd.ShellContext(ctx, "", fmt.Sprintf("docker images | grep %s", user))
}
