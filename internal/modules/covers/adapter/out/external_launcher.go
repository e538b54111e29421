package out

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	coversout "readlog/internal/modules/covers/port/out"
)

// OSExternalLauncher hands a cover image to the configured viewer, or to
// the platform opener when none is configured.
type OSExternalLauncher struct {
	viewer string
}

func NewOSExternalLauncher(viewer string) coversout.ExternalLauncher {
	return &OSExternalLauncher{viewer: viewer}
}

func (l *OSExternalLauncher) Open(_ context.Context, target string) error {
	var cmd *exec.Cmd
	switch {
	case l.viewer != "":
		cmd = exec.Command(l.viewer, target)
	case runtime.GOOS == "darwin":
		cmd = exec.Command("open", target)
	case runtime.GOOS == "linux":
		cmd = exec.Command("xdg-open", target)
	default:
		return fmt.Errorf("external open is not supported on %s", runtime.GOOS)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open cover: %w", err)
	}
	return nil
}
