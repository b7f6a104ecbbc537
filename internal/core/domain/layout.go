package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const (
	// CacheDirName is the default cache root under the user's home directory.
	CacheDirName = ".cargotags"

	// CacheDirEnv overrides the cache root when set.
	CacheDirEnv = "CARGOTAGS_DIR"

	// StateFileName holds the per-root run records inside the cache root.
	StateFileName = "state.json"

	// ConfigFileName is the optional settings file inside the cache root.
	ConfigFileName = "config.yaml"

	// DirPerm is the default permission for created directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for created files (rw-r--r--).
	FilePerm = 0o644
)

// CacheLayout maps identities to artifact locations inside one cache root.
// It is a pure value: the same layout and identity always yield the same path
// across runs and processes, which is what makes cross-project reuse work.
type CacheLayout struct {
	Root string
}

// DefaultCacheRoot resolves the cache root once at startup: $CARGOTAGS_DIR if
// set, otherwise ~/.cargotags.
func DefaultCacheRoot() (string, error) {
	if dir := os.Getenv(CacheDirEnv); dir != "" {
		return filepath.Clean(dir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, CacheDirName), nil
}

// ArtifactPath returns the cached tag file location for an identity. Distinct
// identities never share a path (see SourceIdentity.CacheKey) and the encoding
// keeps the cache root browsable: one subdirectory per source kind, file names
// carrying the crate name and version or revision.
func (l CacheLayout) ArtifactPath(id SourceIdentity, kind TagsKind) string {
	return filepath.Join(l.Root, filepath.FromSlash(id.CacheKey())+"."+kind.Extension())
}

// StdLibArtifactPath returns the fixed location of the shared Rust standard
// library artifact for the given kind.
func (l CacheLayout) StdLibArtifactPath(kind TagsKind) string {
	return filepath.Join(l.Root, kind.StdLibFileName())
}

// StatePath returns the location of the run-info store.
func (l CacheLayout) StatePath() string {
	return filepath.Join(l.Root, StateFileName)
}

// ConfigPath returns the location of the optional settings file.
func (l CacheLayout) ConfigPath() string {
	return filepath.Join(l.Root, ConfigFileName)
}

// DepSetFingerprint hashes a dependency set into a stable fingerprint. The
// keys are sorted first so the fingerprint is independent of discovery order.
func DepSetFingerprint(deps []SourceIdentity) string {
	keys := make([]string, len(deps))
	for i, dep := range deps {
		keys[i] = dep.CacheKey()
	}
	sort.Strings(keys)

	h := xxhash.New()
	for _, k := range keys {
		_, _ = h.WriteString(k)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// IsTagFileName reports whether name is one of the tag files cargotags itself
// writes into source directories. The freshness walk skips them so that a
// freshly merged output does not mark its own source tree stale.
func IsTagFileName(name string) bool {
	return name == KindVi.FileName() || name == KindEmacs.FileName() ||
		strings.HasPrefix(name, "rust-std-lib.")
}
