package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

// TagsKind selects the tag file format the external extractor emits.
type TagsKind string

const (
	// KindVi is the line-oriented ctags format consumed by vi-like editors.
	KindVi TagsKind = "vi"
	// KindEmacs is the section-oriented etags format consumed by emacs.
	KindEmacs TagsKind = "emacs"
)

// ParseTagsKind maps the CLI argument onto a TagsKind.
func ParseTagsKind(s string) (TagsKind, error) {
	switch s {
	case string(KindVi):
		return KindVi, nil
	case string(KindEmacs):
		return KindEmacs, nil
	}
	return "", zerr.With(zerr.Wrap(ErrUnknownTagsKind, ""), "kind", s)
}

// Extension returns the file extension used for artifacts of this kind.
func (k TagsKind) Extension() string {
	return string(k)
}

// FileName returns the name of the merged tag file placed in a root's source
// directory. A distinct name keeps cargotags from clobbering hand-made tag
// files.
func (k TagsKind) FileName() string {
	return "cargotags." + k.Extension()
}

// StdLibFileName returns the name of the shared standard-library artifact kept
// in the cache root. It is produced externally and only ever read here.
func (k TagsKind) StdLibFileName() string {
	return fmt.Sprintf("rust-std-lib.%s", k.Extension())
}

// TagArtifact is one generated tag file together with the source directory it
// was generated from. Artifacts are owned by their on-disk location; this
// struct only references it.
type TagArtifact struct {
	Path   string
	SrcDir string
	Kind   TagsKind
}
