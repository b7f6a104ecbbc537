// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/cargotags/cargotags/internal/core/domain"
)

// Extractor invokes the external tag extraction tool against one source
// directory. Implementations perform no caching; callers consult the
// Freshness port first. Extraction is idempotent for an unchanged tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=extractor.go -destination=mocks/mock_extractor.go -package=mocks
type Extractor interface {
	// Extract produces or refreshes the tag file at dest from srcDir.
	// It returns ErrExtractorFailed when the tool exits non-zero or is
	// unavailable.
	Extract(ctx context.Context, srcDir string, kind domain.TagsKind, dest string) error
}
