// Package cargo adapts the Cargo package manager: it reads the dependency
// graph from Cargo.toml and Cargo.lock, locates dependency sources under
// CARGO_HOME, and triggers `cargo fetch` at startup.
package cargo

import (
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cargotags/cargotags/internal/core/domain"
	"github.com/cargotags/cargotags/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// LockFileName is the lock file read next to Cargo.toml.
	LockFileName = "Cargo.lock"

	registryPrefix = "registry+"
	gitPrefix      = "git+"
)

var (
	_ ports.DependencyReader = (*Cargo)(nil)
	_ ports.SourceResolver   = (*Cargo)(nil)
	_ ports.SourceFetcher    = (*Cargo)(nil)
)

// Cargo implements the dependency-graph reader, source resolver, and source
// fetcher against a Cargo installation.
type Cargo struct {
	cargoHome string
}

// New creates a Cargo adapter. cargoHome may be empty, in which case the
// conventional locations ($CARGO_HOME, ~/.cargo) are used.
func New(cargoHome string) *Cargo {
	return &Cargo{cargoHome: cargoHome}
}

// Read parses Cargo.toml and Cargo.lock under manifestDir and returns the
// flattened list of dependency roots: the project first, then one library
// root per locked package. Errors here concern the caller's own project
// directory and are fatal.
func (c *Cargo) Read(manifestDir string) ([]domain.DependencyRoot, error) {
	var manifest manifestFile
	manifestPath := filepath.Join(manifestDir, "Cargo.toml")
	if _, err := toml.DecodeFile(manifestPath, &manifest); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", manifestPath)
	}

	var lock lockFile
	lockPath := filepath.Join(manifestDir, LockFileName)
	if _, err := toml.DecodeFile(lockPath, &lock); err != nil {
		return nil, zerr.With(
			zerr.Wrap(err, "failed to parse lock file, run 'cargo generate-lockfile' first"),
			"path", lockPath,
		)
	}

	rootName := manifest.Package.Name
	if rootName == "" {
		rootName = filepath.Base(manifestDir)
	}

	index := newLockIndex(manifestDir, &manifest, &lock, rootName)

	roots := make([]domain.DependencyRoot, 0, len(lock.Packages))
	roots = append(roots, domain.DependencyRoot{
		Kind:         domain.ProjectRoot,
		Identity:     domain.PathIdentity(rootName, manifestDir),
		SrcDir:       manifestDir,
		Dependencies: index.dependenciesOf(rootName),
	})

	for _, pkg := range lock.Packages {
		if pkg.Name == rootName && pkg.Source == "" {
			continue
		}
		roots = append(roots, domain.DependencyRoot{
			Kind:         domain.LibraryRoot,
			Identity:     index.identityOf(pkg),
			Dependencies: index.dependenciesOf(pkg.Name),
		})
	}

	return roots, nil
}

// lockIndex resolves lock file cross references: package name to identity and
// package name to direct dependency identities.
type lockIndex struct {
	byName   map[string][]lockPackage
	identity func(lockPackage) domain.SourceIdentity
}

func newLockIndex(manifestDir string, manifest *manifestFile, lock *lockFile, rootName string) *lockIndex {
	pathDeps := directPathDeps(manifestDir, manifest)

	byName := make(map[string][]lockPackage, len(lock.Packages))
	for _, pkg := range lock.Packages {
		byName[pkg.Name] = append(byName[pkg.Name], pkg)
	}

	identity := func(pkg lockPackage) domain.SourceIdentity {
		switch {
		case strings.HasPrefix(pkg.Source, registryPrefix):
			return domain.RegistryIdentity(pkg.Name, pkg.Version)
		case strings.HasPrefix(pkg.Source, gitPrefix):
			repo, rev := splitGitSource(strings.TrimPrefix(pkg.Source, gitPrefix))
			return domain.GitIdentity(pkg.Name, repo, rev)
		default:
			if pkg.Name == rootName {
				return domain.PathIdentity(pkg.Name, manifestDir)
			}
			// Workspace member or path dependency. The lock file does not
			// carry its location; direct path dependencies come from the
			// manifest, anything deeper resolves to a missing source.
			return domain.PathIdentity(pkg.Name, pathDeps[pkg.Name])
		}
	}

	return &lockIndex{byName: byName, identity: identity}
}

func (ix *lockIndex) identityOf(pkg lockPackage) domain.SourceIdentity {
	return ix.identity(pkg)
}

// dependenciesOf returns the direct dependency identities of the named
// package in lock file order. Dependency strings carry an optional version
// and source to disambiguate packages sharing a name.
func (ix *lockIndex) dependenciesOf(name string) []domain.SourceIdentity {
	pkgs := ix.byName[name]
	if len(pkgs) == 0 {
		return nil
	}
	pkg := pkgs[0]

	deps := make([]domain.SourceIdentity, 0, len(pkg.Dependencies))
	for _, ref := range pkg.Dependencies {
		depName, depVersion := splitDepRef(ref)
		if match, ok := ix.lookup(depName, depVersion); ok {
			deps = append(deps, ix.identity(match))
		}
	}
	return deps
}

func (ix *lockIndex) lookup(name, version string) (lockPackage, bool) {
	candidates := ix.byName[name]
	if len(candidates) == 0 {
		return lockPackage{}, false
	}
	if version == "" || len(candidates) == 1 {
		return candidates[0], true
	}
	for _, pkg := range candidates {
		if pkg.Version == version {
			return pkg, true
		}
	}
	return candidates[0], true
}

// directPathDeps maps dependency names to absolute paths for path
// dependencies declared directly in the manifest.
func directPathDeps(manifestDir string, manifest *manifestFile) map[string]string {
	out := make(map[string]string)
	for _, section := range []map[string]dependencySpec{
		manifest.Dependencies, manifest.DevDeps, manifest.BuildDeps,
	} {
		for name, spec := range section {
			if p := pathOf(spec); p != "" {
				out[name] = filepath.Join(manifestDir, p)
			}
		}
	}
	return out
}

// splitDepRef splits a lock dependency reference of the form
// "name [version [(source)]]" into name and version.
func splitDepRef(ref string) (name, version string) {
	fields := strings.Fields(ref)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	default:
		return fields[0], fields[1]
	}
}

// splitGitSource splits "https://host/repo?rev=...#revision" into the bare
// repository URL and the pinned revision.
func splitGitSource(src string) (repo, rev string) {
	repo = src
	if i := strings.IndexByte(repo, '#'); i >= 0 {
		rev = repo[i+1:]
		repo = repo[:i]
	}
	if i := strings.IndexByte(repo, '?'); i >= 0 {
		repo = repo[:i]
	}
	return repo, rev
}
