package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestNotFound is returned when no Cargo.toml is found between the
	// working directory and the filesystem root. Fatal.
	ErrManifestNotFound = zerr.New("no Cargo.toml found")

	// ErrMissingSource is returned when a dependency's source directory cannot
	// be located on disk. Recovered per dependency and reported at end of run.
	ErrMissingSource = zerr.New("missing source")

	// ErrExtractorFailed is returned when the external tag extractor exits
	// non-zero or cannot be started.
	ErrExtractorFailed = zerr.New("tag extractor failed")

	// ErrMergeFailed is returned when tag files cannot be merged for a root.
	// Aborts only that root's output.
	ErrMergeFailed = zerr.New("tag merge failed")

	// ErrUnknownTagsKind is returned for a tags kind other than vi or emacs.
	ErrUnknownTagsKind = zerr.New("unknown tags kind")
)
