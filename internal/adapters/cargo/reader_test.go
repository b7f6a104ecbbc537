package cargo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cargotags/cargotags/internal/adapters/cargo"
	"github.com/cargotags/cargotags/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureManifest = `
[package]
name = "myproject"
version = "0.1.0"

[dependencies]
serde = "1.0"
locallib = { path = "../locallib" }

[dev-dependencies]
tempfile = "3.0"
`

const fixtureLock = `
version = 3

[[package]]
name = "myproject"
version = "0.1.0"
dependencies = [
 "locallib",
 "serde 1.0.200",
 "tempfile 3.10.0",
]

[[package]]
name = "serde"
version = "1.0.200"
source = "registry+https://github.com/rust-lang/crates.io-index"
dependencies = [
 "serde_derive 1.0.200 (registry+https://github.com/rust-lang/crates.io-index)",
]

[[package]]
name = "serde_derive"
version = "1.0.200"
source = "registry+https://github.com/rust-lang/crates.io-index"

[[package]]
name = "tempfile"
version = "3.10.0"
source = "registry+https://github.com/rust-lang/crates.io-index"

[[package]]
name = "gitcrate"
version = "0.5.0"
source = "git+https://github.com/example/gitcrate?rev=abc123#abc123def456"

[[package]]
name = "locallib"
version = "0.1.0"
`

func writeFixtureProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte(fixtureManifest), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.lock"), []byte(fixtureLock), 0o644))
	return dir
}

func TestCargo_Read(t *testing.T) {
	dir := writeFixtureProject(t)

	roots, err := cargo.New("").Read(dir)
	require.NoError(t, err)
	require.Len(t, roots, 5, "project plus every locked package except the project itself")

	project := roots[0]
	assert.Equal(t, domain.ProjectRoot, project.Kind)
	assert.Equal(t, domain.PathIdentity("myproject", dir), project.Identity)
	assert.Equal(t, dir, project.SrcDir)
	require.Len(t, project.Dependencies, 3)
	assert.Equal(t, domain.PathIdentity("locallib", filepath.Join(dir, "..", "locallib")), project.Dependencies[0])
	assert.Equal(t, domain.RegistryIdentity("serde", "1.0.200"), project.Dependencies[1])
	assert.Equal(t, domain.RegistryIdentity("tempfile", "3.10.0"), project.Dependencies[2])

	byName := make(map[string]domain.DependencyRoot)
	for _, root := range roots[1:] {
		assert.Equal(t, domain.LibraryRoot, root.Kind)
		byName[root.Identity.Name] = root
	}

	serde, ok := byName["serde"]
	require.True(t, ok)
	assert.Equal(t, domain.RegistryIdentity("serde", "1.0.200"), serde.Identity)
	assert.Equal(t, []domain.SourceIdentity{domain.RegistryIdentity("serde_derive", "1.0.200")}, serde.Dependencies)

	gitcrate, ok := byName["gitcrate"]
	require.True(t, ok)
	assert.Equal(t,
		domain.GitIdentity("gitcrate", "https://github.com/example/gitcrate", "abc123def456"),
		gitcrate.Identity)

	locallib, ok := byName["locallib"]
	require.True(t, ok)
	assert.Equal(t, domain.SourcePath, locallib.Identity.Kind)
	assert.Equal(t, filepath.Join(dir, "..", "locallib"), locallib.Identity.Path)
}

func TestCargo_Read_MissingManifest(t *testing.T) {
	_, err := cargo.New("").Read(t.TempDir())
	assert.Error(t, err)
}

func TestCargo_Read_MissingLockFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte(fixtureManifest), 0o644))

	_, err := cargo.New("").Read(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cargo generate-lockfile")
}

func TestCargo_Read_NamelessManifestFallsBackToDirName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("[workspace]\nmembers = []\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.lock"), []byte("version = 3\n"), 0o644))

	roots, err := cargo.New("").Read(dir)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, filepath.Base(dir), roots[0].Identity.Name)
}
