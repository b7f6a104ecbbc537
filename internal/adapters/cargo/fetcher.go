package cargo

import (
	"context"
	"os/exec"

	"go.trai.ch/zerr"
)

// Fetch runs `cargo fetch` once so dependency sources are present before
// extraction starts. The caller treats a failure as a warning: the run can
// still succeed against already-downloaded sources.
func (c *Cargo) Fetch(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "cargo", "fetch")
	if out, err := cmd.CombinedOutput(); err != nil {
		return zerr.With(zerr.Wrap(err, "cargo fetch failed"), "output", string(out))
	}
	return nil
}
