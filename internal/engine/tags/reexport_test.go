package tags_test

import (
	"testing"

	"github.com/cargotags/cargotags/internal/core/domain"
	"github.com/cargotags/cargotags/internal/engine/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanReexports(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name: "pub use with a path separator",
			content: "Error\tsrc/lib.rs\t/^pub use anyhow::Error;$/;\"\tv\n" +
				"Result\tsrc/lib.rs\t/^pub use anyhow::Result;$/;\"\tv\n",
			want: []string{"anyhow"},
		},
		{
			name:    "pub extern crate",
			content: "serde\tsrc/lib.rs\t/^pub extern crate serde;$/;\"\tv\n",
			want:    []string{"serde"},
		},
		{
			name: "local path roots are skipped",
			content: "a\tsrc/lib.rs\t/^pub use self::module::a;$/;\"\tv\n" +
				"b\tsrc/lib.rs\t/^pub use crate::other::b;$/;\"\tv\n" +
				"c\tsrc/lib.rs\t/^pub use super::c;$/;\"\tv\n",
			want: nil,
		},
		{
			name:    "pub use without a path stays local",
			content: "flag\tsrc/lib.rs\t/^pub use flag;$/;\"\tv\n",
			want:    nil,
		},
		{
			name: "duplicates collapse",
			content: "A\tsrc/lib.rs\t/^pub use tokio::A;$/;\"\tv\n" +
				"B\tsrc/lib.rs\t/^pub use tokio::B;$/;\"\tv\n",
			want: []string{"tokio"},
		},
		{
			name:    "emacs entries are scanned the same way",
			content: "\x0c\nsrc/lib.rs,30\npub use bytes::Bytes;\x7fBytes\x011,0\n",
			want:    []string{"bytes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeArtifact(t, dir, "scan.tags", tt.content)
			assert.Equal(t, tt.want, tags.ScanReexports(path))
		})
	}
}

func TestExpander_Lookup_NormalizesCrateNames(t *testing.T) {
	id := domain.RegistryIdentity("serde-json", "1.0.0")
	expander := tags.NewExpander([]domain.DependencyRoot{
		{Kind: domain.LibraryRoot, Identity: id},
	})

	// Cargo exposes serde-json to Rust code as serde_json.
	got, ok := expander.Lookup("serde_json")
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestExpander_Expand_FollowsReexportChain(t *testing.T) {
	dir := t.TempDir()

	idA := domain.RegistryIdentity("a", "1.0.0")
	idB := domain.RegistryIdentity("b", "1.0.0")
	idC := domain.RegistryIdentity("c", "1.0.0")

	// root re-exports from a, a re-exports from b, b re-exports nothing.
	// c is known but never re-exported and must not be added.
	rootArtifact := writeArtifact(t, dir, "root.vi", "X\tl.rs\t/^pub use a::X;$/;\"\tv\n")
	artifacts := map[domain.SourceIdentity]string{
		idA: writeArtifact(t, dir, "a.vi", "Y\tl.rs\t/^pub use b::Y;$/;\"\tv\n"),
		idB: writeArtifact(t, dir, "b.vi", "Z\tl.rs\t/^pub fn z() {}$/;\"\tf\n"),
		idC: writeArtifact(t, dir, "c.vi", ""),
	}

	root := domain.DependencyRoot{
		Kind:     domain.LibraryRoot,
		Identity: domain.RegistryIdentity("root", "0.1.0"),
	}
	expander := tags.NewExpander([]domain.DependencyRoot{
		root,
		{Kind: domain.LibraryRoot, Identity: idA},
		{Kind: domain.LibraryRoot, Identity: idB},
		{Kind: domain.LibraryRoot, Identity: idC},
	})

	var ensured []domain.SourceIdentity
	expander.Expand(&root, rootArtifact, func(id domain.SourceIdentity) (string, error) {
		ensured = append(ensured, id)
		return artifacts[id], nil
	})

	assert.ElementsMatch(t, []domain.SourceIdentity{idA, idB}, root.Dependencies)
	assert.ElementsMatch(t, []domain.SourceIdentity{idA, idB}, ensured)
}

func TestExpander_Expand_CycleTerminates(t *testing.T) {
	dir := t.TempDir()

	idA := domain.RegistryIdentity("a", "1.0.0")
	idB := domain.RegistryIdentity("b", "1.0.0")

	// a and b re-export from each other.
	artifacts := map[domain.SourceIdentity]string{
		idA: writeArtifact(t, dir, "a.vi", "Y\tl.rs\t/^pub use b::Y;$/;\"\tv\n"),
		idB: writeArtifact(t, dir, "b.vi", "X\tl.rs\t/^pub use a::X;$/;\"\tv\n"),
	}

	rootA := domain.DependencyRoot{Kind: domain.LibraryRoot, Identity: idA}
	expander := tags.NewExpander([]domain.DependencyRoot{
		rootA,
		{Kind: domain.LibraryRoot, Identity: idB},
	})

	calls := 0
	expander.Expand(&rootA, artifacts[idA], func(id domain.SourceIdentity) (string, error) {
		calls++
		return artifacts[id], nil
	})

	// b is added once; the cycle back to a is recognized and not re-entered.
	assert.Equal(t, []domain.SourceIdentity{idB}, rootA.Dependencies)
	assert.Equal(t, 1, calls)
}

func TestExpander_Expand_SurvivesEnsureFailure(t *testing.T) {
	dir := t.TempDir()

	idA := domain.RegistryIdentity("a", "1.0.0")
	idB := domain.RegistryIdentity("b", "1.0.0")

	rootArtifact := writeArtifact(t, dir, "root.vi",
		"X\tl.rs\t/^pub use a::X;$/;\"\tv\n"+
			"Y\tl.rs\t/^pub use b::Y;$/;\"\tv\n")

	root := domain.DependencyRoot{
		Kind:     domain.LibraryRoot,
		Identity: domain.RegistryIdentity("root", "0.1.0"),
	}
	expander := tags.NewExpander([]domain.DependencyRoot{
		root,
		{Kind: domain.LibraryRoot, Identity: idA},
		{Kind: domain.LibraryRoot, Identity: idB},
	})

	bArtifact := writeArtifact(t, dir, "b.vi", "")
	expander.Expand(&root, rootArtifact, func(id domain.SourceIdentity) (string, error) {
		if id == idA {
			return "", domain.ErrMissingSource
		}
		return bArtifact, nil
	})

	// a's source is gone but it still joins the dependency set; expansion
	// just cannot recurse into it.
	assert.ElementsMatch(t, []domain.SourceIdentity{idA, idB}, root.Dependencies)
}
