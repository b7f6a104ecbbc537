// Package fs provides filesystem adapters: manifest discovery, source tree
// walking, and artifact freshness checks.
package fs

import (
	iofs "io/fs"
	"iter"
	"path/filepath"

	"github.com/cargotags/cargotags/internal/core/domain"
)

// Walker walks source trees, skipping VCS metadata, build output, and the tag
// files cargotags writes itself.
type Walker struct {
	ignores []string
}

// NewWalker creates a Walker with additional ignore patterns on top of the
// built-in ones (.git, .jj, target).
func NewWalker(ignores []string) *Walker {
	return &Walker{ignores: ignores}
}

// WalkFiles yields every non-ignored file under root together with its
// directory entry. Iteration stops early when yield returns false. A walk
// error aborts the iteration; callers that need to distinguish a clean finish
// from an aborted one should use WalkErr.
func (w *Walker) WalkFiles(root string) iter.Seq2[string, iofs.DirEntry] {
	return func(yield func(string, iofs.DirEntry) bool) {
		_, _ = w.walk(root, yield)
	}
}

// WalkErr walks like WalkFiles but reports the first error encountered.
func (w *Walker) WalkErr(root string, visit func(string, iofs.DirEntry) bool) error {
	err, _ := w.walk(root, visit)
	return err
}

func (w *Walker) walk(root string, yield func(string, iofs.DirEntry) bool) (error, bool) {
	stopped := false
	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if w.ignoredDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if w.ignoredFile(d.Name()) {
			return nil
		}

		if !yield(path, d) {
			stopped = true
			return filepath.SkipAll
		}
		return nil
	})
	return err, stopped
}

func (w *Walker) ignoredDir(name string) bool {
	switch name {
	case ".git", ".jj", "target":
		return true
	}
	return w.matchesIgnore(name)
}

// ignoredFile skips the tag files cargotags writes into source directories so
// a fresh merge does not mark its own tree stale.
func (w *Walker) ignoredFile(name string) bool {
	return domain.IsTagFileName(name) || w.matchesIgnore(name)
}

func (w *Walker) matchesIgnore(name string) bool {
	for _, ignore := range w.ignores {
		matched, _ := filepath.Match(ignore, name)
		if matched {
			return true
		}
	}
	return false
}
