package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/cargotags/cargotags/internal/adapters/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	root := t.TempDir()

	settings, err := config.LoadFrom(root)
	require.NoError(t, err)

	assert.Equal(t, "ctags", settings.CtagsBin)
	assert.Equal(t, runtime.NumCPU(), settings.Parallelism)
	assert.Empty(t, settings.Ignore)
	assert.Equal(t, root, settings.Layout.Root)
}

func TestLoadFrom_File(t *testing.T) {
	root := t.TempDir()
	content := "ctags: /usr/local/bin/uctags\nparallelism: 2\nignore:\n  - \"*.gen.rs\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "config.yaml"), []byte(content), 0o644))

	settings, err := config.LoadFrom(root)
	require.NoError(t, err)

	assert.Equal(t, "/usr/local/bin/uctags", settings.CtagsBin)
	assert.Equal(t, 2, settings.Parallelism)
	assert.Equal(t, []string{"*.gen.rs"}, settings.Ignore)
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "config.yaml"), []byte("parallelism: 4\n"), 0o644))

	settings, err := config.LoadFrom(root)
	require.NoError(t, err)

	assert.Equal(t, "ctags", settings.CtagsBin)
	assert.Equal(t, 4, settings.Parallelism)
}

func TestLoadFrom_Malformed(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "config.yaml"), []byte("ctags: [\n"), 0o644))

	_, err := config.LoadFrom(root)
	assert.Error(t, err)
}

func TestLoad_UsesEnvCacheRoot(t *testing.T) {
	root := t.TempDir()
	t.Setenv("CARGOTAGS_DIR", root)

	settings, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, root, settings.Layout.Root)
}
