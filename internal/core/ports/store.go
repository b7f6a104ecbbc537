package ports

import "github.com/cargotags/cargotags/internal/core/domain"

// RunInfoStore persists per-root records between runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RunInfoStore interface {
	// Get retrieves the run info for a root key.
	// Returns nil, nil if not found.
	Get(rootKey string) (*domain.RunInfo, error)

	// Put stores the run info.
	Put(info domain.RunInfo) error
}
