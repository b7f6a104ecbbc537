package ctags_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cargotags/cargotags/internal/adapters/ctags"
	"github.com/cargotags/cargotags/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCtags installs a shell script that records its arguments and writes a
// marker artifact at the -f destination.
func fakeCtags(t *testing.T, exitCode int) (bin, argsFile string) {
	t.Helper()
	dir := t.TempDir()
	bin = filepath.Join(dir, "ctags")
	argsFile = filepath.Join(dir, "args")

	script := "#!/bin/sh\n" +
		"printf '%s\\n' \"$@\" > " + argsFile + "\n" +
		"while [ \"$1\" != \"-f\" ] && [ $# -gt 0 ]; do shift; done\n" +
		"[ -n \"$2\" ] && printf 'tag\\n' > \"$2\"\n"
	if exitCode != 0 {
		script = "#!/bin/sh\necho 'boom' >&2\nexit 1\n"
	}
	require.NoError(t, os.WriteFile(bin, []byte(script), 0o755))
	return bin, argsFile
}

func TestExtractor_Extract(t *testing.T) {
	bin, argsFile := fakeCtags(t, 0)
	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "registry", "serde@1.0.200.vi")

	err := ctags.NewExtractor(bin).Extract(context.Background(), src, domain.KindVi, dest)
	require.NoError(t, err)

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Equal(t,
		"--recurse\n--languages=Rust\n-f\n"+dest+"\n"+src+"\n",
		string(args))

	_, err = os.Stat(dest)
	assert.NoError(t, err, "destination directory is created on demand")
}

func TestExtractor_Extract_EmacsFlag(t *testing.T) {
	bin, argsFile := fakeCtags(t, 0)
	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "crate.emacs")

	err := ctags.NewExtractor(bin).Extract(context.Background(), src, domain.KindEmacs, dest)
	require.NoError(t, err)

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Equal(t,
		"-e\n--recurse\n--languages=Rust\n-f\n"+dest+"\n"+src+"\n",
		string(args))
}

func TestExtractor_Extract_Failure(t *testing.T) {
	bin, _ := fakeCtags(t, 1)

	err := ctags.NewExtractor(bin).Extract(
		context.Background(), t.TempDir(), domain.KindVi, filepath.Join(t.TempDir(), "out.vi"))
	assert.ErrorIs(t, err, domain.ErrExtractorFailed)
}

func TestExtractor_Extract_MissingBinary(t *testing.T) {
	err := ctags.NewExtractor(filepath.Join(t.TempDir(), "absent")).Extract(
		context.Background(), t.TempDir(), domain.KindVi, filepath.Join(t.TempDir(), "out.vi"))
	assert.ErrorIs(t, err, domain.ErrExtractorFailed)
}
