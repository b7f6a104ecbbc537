package ports

// Freshness decides whether an existing tag artifact may be reused for its
// source directory. It is the sole gate for skipping re-extraction and must be
// conservative: when in doubt, report stale.
//
//go:generate go run go.uber.org/mock/mockgen -source=freshness.go -destination=mocks/mock_freshness.go -package=mocks
type Freshness interface {
	// UpToDate reports whether the artifact at artifactPath is at least as new
	// as every file under srcDir.
	UpToDate(artifactPath, srcDir string) bool
}
