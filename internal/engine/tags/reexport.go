package tags

import (
	"os"
	"strings"

	"github.com/cargotags/cargotags/internal/core/domain"
)

// Re-export markers. Ctags embeds the defining source line in every tag
// entry's address field, for vi and emacs artifacts alike, so a plain
// substring scan finds public re-exports without parsing either format.
const (
	pubUseMarker         = "pub use "
	pubExternCrateMarker = "pub extern crate "
)

// Expander expands a library root's dependency set with the crates it
// re-exports symbols from, so that jumping to a re-exported symbol from the
// library's tags lands in the defining crate.
type Expander struct {
	// known maps normalized crate names to identities from the dependency
	// graph. Cargo exposes a package named foo-bar to Rust code as foo_bar,
	// hence the normalization.
	known map[string]domain.SourceIdentity
}

// NewExpander indexes every identity reachable in the dependency graph.
func NewExpander(roots []domain.DependencyRoot) *Expander {
	known := make(map[string]domain.SourceIdentity)
	for _, root := range roots {
		if root.Kind == domain.LibraryRoot {
			known[normalizeCrateName(root.Identity.Name)] = root.Identity
		}
		for _, dep := range root.Dependencies {
			known[normalizeCrateName(dep.Name)] = dep
		}
	}
	return &Expander{known: known}
}

// Lookup resolves a crate name discovered in a tags scan to an identity.
func (e *Expander) Lookup(crateName string) (domain.SourceIdentity, bool) {
	id, ok := e.known[normalizeCrateName(crateName)]
	return id, ok
}

// Expand grows root's dependency set to the re-export fixpoint. Starting from
// the root's own artifact it scans for re-export markers, resolves each
// discovered crate against the dependency graph, and recurses into the new
// crates' artifacts, which ensure produces on demand. A seen set guards
// against re-export cycles (A re-exporting from B and B from A is legal), so
// each reachable identity is scanned at most once. ensure failures are
// swallowed here; the callback records them and expansion continues with the
// remaining identities.
func (e *Expander) Expand(
	root *domain.DependencyRoot,
	ownArtifact string,
	ensure func(domain.SourceIdentity) (string, error),
) {
	seen := map[domain.SourceIdentity]struct{}{root.Identity: {}}
	queue := []string{ownArtifact}

	for len(queue) > 0 {
		artifact := queue[0]
		queue = queue[1:]

		for _, crate := range ScanReexports(artifact) {
			id, ok := e.Lookup(crate)
			if !ok {
				continue
			}
			root.AddDependency(id)

			if _, visited := seen[id]; visited {
				continue
			}
			seen[id] = struct{}{}

			path, err := ensure(id)
			if err != nil {
				continue
			}
			queue = append(queue, path)
		}
	}
}

// ScanReexports returns the crate names an artifact's entries re-export from.
// An unreadable artifact yields nothing; the caller has already produced it,
// so this only happens on a racing delete.
func ScanReexports(artifactPath string) []string {
	data, err := os.ReadFile(artifactPath)
	if err != nil {
		return nil
	}

	seen := make(map[string]struct{})
	var crates []string
	add := func(name string) {
		if name == "" || isLocalPathRoot(name) {
			return
		}
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		crates = append(crates, name)
	}

	text := string(data)
	for line := range strings.Lines(text) {
		if i := strings.Index(line, pubExternCrateMarker); i >= 0 {
			add(leadingIdent(line[i+len(pubExternCrateMarker):]))
			continue
		}
		if i := strings.Index(line, pubUseMarker); i >= 0 {
			rest := line[i+len(pubUseMarker):]
			// Only a path with a :: separator leaves the current crate.
			if ident := leadingIdent(rest); strings.HasPrefix(rest[len(ident):], "::") {
				add(ident)
			}
		}
	}
	return crates
}

// leadingIdent returns the longest identifier prefix of s.
func leadingIdent(s string) string {
	for i := 0; i < len(s); i++ {
		c := s[i]
		isIdent := c == '_' || c >= '0' && c <= '9' ||
			c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
		if !isIdent {
			return s[:i]
		}
	}
	return s
}

// isLocalPathRoot reports whether a use-path root stays inside the crate.
func isLocalPathRoot(name string) bool {
	switch name {
	case "self", "super", "crate":
		return true
	}
	return false
}

func normalizeCrateName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}
