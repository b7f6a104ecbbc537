package fs

import (
	"os"
	"path/filepath"

	"github.com/cargotags/cargotags/internal/core/domain"
	"github.com/cargotags/cargotags/internal/core/ports"
	"go.trai.ch/zerr"
)

// ManifestFileName is the Cargo manifest the locator searches for.
const ManifestFileName = "Cargo.toml"

// Locator finds the project root by walking up from a start directory.
type Locator struct{}

// NewLocator returns a manifest locator.
func NewLocator() *Locator {
	return &Locator{}
}

var _ ports.ProjectLocator = (*Locator)(nil)

// FindManifestDir searches startDir and its parents for a directory containing
// Cargo.toml and returns the first one found. The loop is iterative and
// terminates at the filesystem root with ErrManifestNotFound. No side effects.
func (l *Locator) FindManifestDir(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve start directory"), "dir", startDir)
	}

	for {
		info, err := os.Stat(filepath.Join(dir, ManifestFileName))
		if err == nil && info.Mode().IsRegular() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", zerr.With(zerr.Wrap(domain.ErrManifestNotFound, ""), "start_dir", startDir)
		}
		dir = parent
	}
}
