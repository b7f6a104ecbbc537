package cargo

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cargotags/cargotags/internal/core/domain"
	"go.trai.ch/zerr"
)

// LocateSource resolves an identity to its on-disk source directory.
// Registry crates live under <cargo home>/registry/src/<index>/<name>-<version>,
// git checkouts under <cargo home>/git/checkouts/<repo>-<hash>/<short rev>.
// An identity with no directory on disk yields ErrMissingSource.
func (c *Cargo) LocateSource(id domain.SourceIdentity) (string, error) {
	switch id.Kind {
	case domain.SourcePath:
		if id.Path != "" && isDir(id.Path) {
			return id.Path, nil
		}
		return "", missing(id)

	case domain.SourceRegistry:
		home, err := c.home()
		if err != nil {
			return "", missing(id)
		}
		pattern := filepath.Join(home, "registry", "src", "*", id.Name+"-"+id.Version)
		return firstDirMatch(pattern, id)

	case domain.SourceGit:
		home, err := c.home()
		if err != nil {
			return "", missing(id)
		}
		base := strings.TrimSuffix(filepath.Base(id.Repository), ".git")
		rev := id.Revision
		if len(rev) > 7 {
			rev = rev[:7]
		}
		pattern := filepath.Join(home, "git", "checkouts", base+"-*", rev)
		return firstDirMatch(pattern, id)
	}

	return "", missing(id)
}

func (c *Cargo) home() (string, error) {
	if c.cargoHome != "" {
		return c.cargoHome, nil
	}
	if dir := os.Getenv("CARGO_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cargo"), nil
}

func firstDirMatch(pattern string, id domain.SourceIdentity) (string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", missing(id)
	}
	for _, match := range matches {
		if isDir(match) {
			return match, nil
		}
	}
	return "", missing(id)
}

func missing(id domain.SourceIdentity) error {
	return zerr.With(zerr.Wrap(domain.ErrMissingSource, ""), "source", id.String())
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
