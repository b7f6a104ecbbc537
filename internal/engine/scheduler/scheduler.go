// Package scheduler drives tag generation and merging across all dependency
// roots of one run.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cargotags/cargotags/internal/core/domain"
	"github.com/cargotags/cargotags/internal/core/ports"
	"github.com/cargotags/cargotags/internal/engine/tags"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"
)

// Scheduler processes dependency roots concurrently. Each unit of work only
// touches its own cache-path-resolved artifact, so roots and dependencies run
// embarrassingly parallel; the external extractor is the expensive part and is
// gated by a weighted semaphore.
type Scheduler struct {
	extractor ports.Extractor
	resolver  ports.SourceResolver
	oracle    ports.Freshness
	store     ports.RunInfoStore
	logger    ports.Logger

	layout      domain.CacheLayout
	parallelism int
}

// NewScheduler creates a Scheduler with the given collaborators.
func NewScheduler(
	extractor ports.Extractor,
	resolver ports.SourceResolver,
	oracle ports.Freshness,
	store ports.RunInfoStore,
	logger ports.Logger,
	layout domain.CacheLayout,
	parallelism int,
) *Scheduler {
	if parallelism < 1 {
		parallelism = 1
	}
	return &Scheduler{
		extractor:   extractor,
		resolver:    resolver,
		oracle:      oracle,
		store:       store,
		logger:      logger,
		layout:      layout,
		parallelism: parallelism,
	}
}

// Run produces one merged tag file per root. Missing sources and per-dependency
// extractor failures degrade to records and log lines; merge failures abort
// only the affected root's output and surface in the returned error. The
// returned missing list is complete even when the error is non-nil.
func (s *Scheduler) Run(
	ctx context.Context,
	roots []domain.DependencyRoot,
	kind domain.TagsKind,
) (*domain.MissingSources, error) {
	state := &runState{
		s:        s,
		kind:     kind,
		expander: tags.NewExpander(roots),
		sem:      semaphore.NewWeighted(int64(s.parallelism)),
		missing:  domain.NewMissingSources(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)

	for i := range roots {
		root := &roots[i]
		g.Go(func() error {
			if err := state.processRoot(gctx, root); err != nil {
				state.addErr(zerr.With(zerr.Wrap(err, ""), "root", root.Identity.String()))
			}
			// Never propagate: sibling roots must complete.
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		state.addErr(err)
	}
	return state.missing, state.errs
}

// runState carries the per-run collectors shared by all root workers.
type runState struct {
	s        *Scheduler
	kind     domain.TagsKind
	expander *tags.Expander

	// sem bounds concurrent extractor invocations; flight collapses
	// concurrent extraction of the same artifact requested by different
	// roots.
	sem    *semaphore.Weighted
	flight singleflight.Group

	mu      sync.Mutex
	missing *domain.MissingSources
	errs    error
}

func (st *runState) addErr(err error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.errs = errors.Join(st.errs, err)
}

func (st *runState) recordMissing(id domain.SourceIdentity) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.missing.Add(id)
}

// recordDepFailure degrades one dependency's failure so sibling work
// continues: a missing source joins the end-of-run report, an extractor
// failure is logged.
func (st *runState) recordDepFailure(id domain.SourceIdentity, err error) {
	if errors.Is(err, domain.ErrMissingSource) {
		st.recordMissing(id)
		return
	}
	st.s.logger.Error(err)
}

func (st *runState) processRoot(ctx context.Context, root *domain.DependencyRoot) error {
	switch root.Kind {
	case domain.ProjectRoot:
		return st.processProject(ctx, root)
	case domain.LibraryRoot:
		return st.processLibrary(ctx, root)
	}
	return zerr.With(zerr.New("unknown root kind"), "kind", fmt.Sprintf("%d", root.Kind))
}

// processProject always rebuilds the project's own artifact when stale and
// re-merges. Failures on the project's own directory are escalated, not
// recorded.
func (st *runState) processProject(ctx context.Context, root *domain.DependencyRoot) error {
	own, err := st.ensureArtifact(ctx, root.Identity)
	if err != nil {
		return err
	}

	deps := st.ensureDependencies(ctx, root)

	dest := st.destPath(root.SrcDir)
	return st.merge(own, deps, dest)
}

// processLibrary skips a root wholesale when its own artifact is fresh, its
// direct dependency set matches the prior run, and the merged output exists.
// Otherwise it rebuilds, expands the dependency set along public re-exports,
// and re-merges.
func (st *runState) processLibrary(ctx context.Context, root *domain.DependencyRoot) error {
	srcDir, err := st.s.resolver.LocateSource(root.Identity)
	if err != nil {
		st.recordDepFailure(root.Identity, err)
		return nil
	}
	root.SrcDir = srcDir

	rootKey := root.Identity.CacheKey()
	depSet := domain.DepSetFingerprint(root.Dependencies)
	own := st.s.layout.ArtifactPath(root.Identity, st.kind)
	dest := st.destPath(srcDir)

	if st.canSkip(rootKey, depSet, own, srcDir, dest) {
		return nil
	}

	own, err = st.ensureArtifact(ctx, root.Identity)
	if err != nil {
		st.recordDepFailure(root.Identity, err)
		return nil
	}

	st.expander.Expand(root, own, func(id domain.SourceIdentity) (string, error) {
		path, err := st.ensureArtifact(ctx, id)
		if err != nil {
			st.recordDepFailure(id, err)
		}
		return path, err
	})

	deps := st.ensureDependencies(ctx, root)

	if err := st.merge(own, deps, dest); err != nil {
		return err
	}

	if err := st.s.store.Put(domain.RunInfo{
		RootKey:   rootKey,
		DepSet:    depSet,
		Timestamp: time.Now(),
	}); err != nil {
		// A failed state write only costs a future skip.
		st.s.logger.Error(err)
	}
	return nil
}

func (st *runState) canSkip(rootKey, depSet, ownArtifact, srcDir, dest string) bool {
	if !st.s.oracle.UpToDate(ownArtifact, srcDir) {
		return false
	}
	if _, err := os.Stat(dest); err != nil {
		return false
	}
	prior, err := st.s.store.Get(rootKey)
	return err == nil && prior != nil && prior.DepSet == depSet
}

// ensureDependencies resolves every dependency artifact of one root in
// parallel and returns the paths that exist, in dependency order. Failures
// degrade per dependency.
func (st *runState) ensureDependencies(ctx context.Context, root *domain.DependencyRoot) []string {
	paths := make([]string, len(root.Dependencies))

	g, ctx := errgroup.WithContext(ctx)
	for i, dep := range root.Dependencies {
		g.Go(func() error {
			path, err := st.ensureArtifact(ctx, dep)
			if err != nil {
				st.recordDepFailure(dep, err)
				return nil
			}
			paths[i] = path
			return nil
		})
	}
	_ = g.Wait()

	out := paths[:0]
	for _, path := range paths {
		if path != "" {
			out = append(out, path)
		}
	}
	return out
}

// ensureArtifact returns the cached artifact path for an identity, extracting
// first when the cache is stale. Identical requests from different roots
// collapse into a single extraction.
func (st *runState) ensureArtifact(ctx context.Context, id domain.SourceIdentity) (string, error) {
	srcDir, err := st.s.resolver.LocateSource(id)
	if err != nil {
		return "", err
	}

	path := st.s.layout.ArtifactPath(id, st.kind)
	_, err, _ = st.flight.Do(path, func() (any, error) {
		if st.s.oracle.UpToDate(path, srcDir) {
			return nil, nil
		}

		if err := st.sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		defer st.sem.Release(1)

		return nil, st.s.extractor.Extract(ctx, srcDir, st.kind, path)
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// merge folds the root's own artifact, its dependencies' artifacts, and the
// shared standard-library artifact (when present) into the root's tag file.
// This is the per-root join barrier: every input above has completed.
func (st *runState) merge(own string, deps []string, dest string) error {
	inputs := make([]string, 0, len(deps)+2)
	inputs = append(inputs, own)
	inputs = append(inputs, deps...)

	if stdlib := st.s.layout.StdLibArtifactPath(st.kind); fileExists(stdlib) {
		inputs = append(inputs, stdlib)
	}

	return tags.Merge(st.kind, dedup(inputs), dest)
}

func (st *runState) destPath(srcDir string) string {
	return filepath.Join(srcDir, st.kind.FileName())
}

func dedup(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := paths[:0]
	for _, p := range paths {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
