// Package ctags invokes the external Universal Ctags binary.
package ctags

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/cargotags/cargotags/internal/core/domain"
	"github.com/cargotags/cargotags/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Extractor = (*Extractor)(nil)

// Extractor implements ports.Extractor by shelling out to ctags. It performs
// no caching of its own; the freshness oracle gates every call.
type Extractor struct {
	bin string
}

// NewExtractor creates an Extractor invoking the given binary.
func NewExtractor(bin string) *Extractor {
	return &Extractor{bin: bin}
}

// Extract runs ctags recursively over srcDir and writes the result to dest.
// The destination directory is created on demand; a failed run leaves no
// partial artifact behind because ctags writes dest only on success.
func (e *Extractor) Extract(ctx context.Context, srcDir string, kind domain.TagsKind, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create artifact directory"), "path", dest)
	}

	args := []string{"--recurse", "--languages=Rust", "-f", dest}
	if kind == domain.KindEmacs {
		args = append([]string{"-e"}, args...)
	}
	args = append(args, srcDir)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.bin, args...) //nolint:gosec // binary name comes from settings
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.Wrap(domain.ErrExtractorFailed, err.Error())
		wrapped = zerr.With(wrapped, "bin", e.bin)
		wrapped = zerr.With(wrapped, "src_dir", srcDir)
		wrapped = zerr.With(wrapped, "exit_code", exitCode)
		if msg := bytes.TrimSpace(stderr.Bytes()); len(msg) > 0 {
			wrapped = zerr.With(wrapped, "stderr", string(msg))
		}
		return wrapped
	}

	return nil
}
