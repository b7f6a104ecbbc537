package fs

import (
	iofs "io/fs"
	"os"

	"github.com/cargotags/cargotags/internal/core/ports"
)

var _ ports.Freshness = (*Oracle)(nil)

// Oracle decides whether a cached tag artifact may be reused for its source
// directory by comparing modification times. It errs on the side of stale:
// a wrong "fresh" answer would serve outdated tags, a wrong "stale" answer
// only costs one extractor run.
type Oracle struct {
	walker *Walker
}

// NewOracle creates an Oracle walking with the given walker.
func NewOracle(walker *Walker) *Oracle {
	return &Oracle{walker: walker}
}

// UpToDate reports whether the artifact exists and is at least as new as every
// file under srcDir. Missing artifact, missing source directory, or any
// stat/walk error all report stale.
func (o *Oracle) UpToDate(artifactPath, srcDir string) bool {
	artifact, err := os.Stat(artifactPath)
	if err != nil || !artifact.Mode().IsRegular() {
		return false
	}
	if info, err := os.Stat(srcDir); err != nil || !info.IsDir() {
		return false
	}

	built := artifact.ModTime()
	stale := false

	err = o.walker.WalkErr(srcDir, func(_ string, d iofs.DirEntry) bool {
		info, err := d.Info()
		if err != nil || info.ModTime().After(built) {
			stale = true
			return false
		}
		return true
	})

	return err == nil && !stale
}
