package domain

// RootKind discriminates the two flavors of dependency root.
type RootKind uint8

const (
	// ProjectRoot is the local source directory the user is working in.
	ProjectRoot RootKind = iota
	// LibraryRoot is a dependency acting as its own indexing root.
	LibraryRoot
)

// DependencyRoot is a unit for which one merged tag file is produced: either
// the project itself or one of its (transitive) dependencies. It is a tagged
// union over RootKind; the two variants share almost no behavior beyond
// producing one artifact, so callers switch exhaustively on Kind.
type DependencyRoot struct {
	Kind RootKind

	// Identity names the root's own source. For a ProjectRoot this is a
	// SourcePath identity of the manifest directory.
	Identity SourceIdentity

	// SrcDir is the root's source directory. Always set for a ProjectRoot;
	// for a LibraryRoot it is resolved lazily and may be empty until then.
	SrcDir string

	// Dependencies are the root's direct dependencies in manifest order.
	// The set is fixed once read from the dependency graph, except that
	// re-export expansion may append to it for a LibraryRoot.
	Dependencies []SourceIdentity
}

// AddDependency appends id to the dependency set unless it is already present
// or is the root itself. It reports whether the set grew. Only the re-export
// resolver calls this.
func (r *DependencyRoot) AddDependency(id SourceIdentity) bool {
	if id == r.Identity {
		return false
	}
	for _, dep := range r.Dependencies {
		if dep == id {
			return false
		}
	}
	r.Dependencies = append(r.Dependencies, id)
	return true
}
