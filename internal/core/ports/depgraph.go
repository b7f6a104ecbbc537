package ports

import (
	"context"

	"github.com/cargotags/cargotags/internal/core/domain"
)

// DependencyReader produces the flattened list of dependency roots for a
// project: the project itself first, then one library root per locked
// dependency. How the manifest and lock file are parsed is an implementation
// detail of the adapter.
//
//go:generate go run go.uber.org/mock/mockgen -source=depgraph.go -destination=mocks/mock_depgraph.go -package=mocks
type DependencyReader interface {
	// Read returns the dependency roots for the project rooted at manifestDir.
	Read(manifestDir string) ([]domain.DependencyRoot, error)
}

// SourceResolver locates the on-disk source directory for an identity.
type SourceResolver interface {
	// LocateSource returns the source directory for id, or ErrMissingSource
	// when it is not present on disk.
	LocateSource(id domain.SourceIdentity) (string, error)
}

// SourceFetcher triggers the package manager's own source download once at
// program start. Best effort: a failed fetch only means more sources may be
// reported missing later.
type SourceFetcher interface {
	Fetch(ctx context.Context) error
}

// ProjectLocator finds the project's manifest directory starting from the
// working directory.
type ProjectLocator interface {
	// FindManifestDir returns the nearest ancestor of startDir (inclusive)
	// containing a manifest, or ErrManifestNotFound.
	FindManifestDir(startDir string) (string, error)
}
