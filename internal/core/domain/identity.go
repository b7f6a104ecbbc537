package domain

import (
	"fmt"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
)

// SourceKind discriminates the origin of a dependency's source code.
type SourceKind uint8

const (
	// SourceRegistry is a crate downloaded from a package registry.
	SourceRegistry SourceKind = iota
	// SourceGit is a crate checked out from a git repository at a fixed revision.
	SourceGit
	// SourcePath is a crate that lives at a local filesystem path.
	SourcePath
)

// SourceIdentity identifies one dependency's source code. It is a tagged union:
// the Kind selects which fields are meaningful. Two identities are equal exactly
// when all their meaningful fields are equal.
type SourceIdentity struct {
	Kind SourceKind

	// Name is the crate name. Set for every kind.
	Name string

	// Version is the registry version. SourceRegistry only.
	Version string

	// Repository and Revision pin a git checkout. SourceGit only.
	Repository string
	Revision   string

	// Path is the local source directory. SourcePath only.
	Path string
}

// RegistryIdentity returns the identity of a registry crate.
func RegistryIdentity(name, version string) SourceIdentity {
	return SourceIdentity{Kind: SourceRegistry, Name: name, Version: version}
}

// GitIdentity returns the identity of a git crate pinned to a revision.
func GitIdentity(name, repository, revision string) SourceIdentity {
	return SourceIdentity{Kind: SourceGit, Name: name, Repository: repository, Revision: revision}
}

// PathIdentity returns the identity of a local-path crate. An empty path
// marks a crate whose location is not known (a workspace member that is not
// a direct dependency); it stays empty so the resolver reports it missing.
func PathIdentity(name, path string) SourceIdentity {
	if path != "" {
		path = filepath.Clean(path)
	}
	return SourceIdentity{Kind: SourcePath, Name: name, Path: path}
}

// CacheKey returns a deterministic, collision-free file name stem for the
// identity. Crate names never contain '@', registry versions and git revisions
// never contain '/' or '@', so the encodings below cannot collide across kinds
// or within a kind. Local paths are folded through xxhash to keep the key short
// while staying unique per absolute path.
func (id SourceIdentity) CacheKey() string {
	switch id.Kind {
	case SourceRegistry:
		return fmt.Sprintf("registry/%s@%s", id.Name, id.Version)
	case SourceGit:
		rev := id.Revision
		if len(rev) > 16 {
			rev = rev[:16]
		}
		return fmt.Sprintf("git/%s@%s-%016x", id.Name, rev, xxhash.Sum64String(id.Repository+"#"+id.Revision))
	case SourcePath:
		return fmt.Sprintf("path/%s@%016x", id.Name, xxhash.Sum64String(id.Path))
	}
	panic(fmt.Sprintf("unknown source kind %d", id.Kind))
}

// String renders the identity for the missing-source report.
func (id SourceIdentity) String() string {
	switch id.Kind {
	case SourceRegistry:
		return fmt.Sprintf("%s %s", id.Name, id.Version)
	case SourceGit:
		return fmt.Sprintf("%s (%s#%s)", id.Name, id.Repository, id.Revision)
	case SourcePath:
		return fmt.Sprintf("%s (%s)", id.Name, id.Path)
	}
	return id.Name
}
