package pipeline

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/pkg/browser"
)

// OpenFile opens path with the program named by $BROWSER or, when unset,
// the platform's default viewer.
func OpenFile(ctx context.Context, path string) error {
	if b := os.Getenv("BROWSER"); b != "" {
		cmd := exec.CommandContext(ctx, "sh", "-c", fmt.Sprintf("%s \"$1\"", b), "--", path)
		out, err := cmd.CombinedOutput()
		if err != nil {
			return fmt.Errorf("failed to run %v (out: %q): %w", cmd.Args, out, err)
		}
		return nil
	}
	return browser.OpenFile(path)
}
