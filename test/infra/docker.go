package infra

import (
	"context"
	"io"
	"os/exec"
)

// DockerAvailable reports whether a usable Docker daemon is reachable, so
// container-backed tests can skip instead of failing on machines without it.
func DockerAvailable(ctx context.Context) bool {
	if _, err := exec.LookPath("docker"); err != nil {
		return false
	}
	c := exec.CommandContext(ctx, "docker", "info")
	c.Stdout = io.Discard
	c.Stderr = io.Discard
	return c.Run() == nil
}
