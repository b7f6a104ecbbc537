package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/cargotags/cargotags/cmd/cargotags/commands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_RejectsMissingKind(t *testing.T) {
	cli := commands.New(nil)
	cli.SetArgs(nil)

	err := cli.Execute(context.Background())
	assert.Error(t, err)
}

func TestCLI_RejectsExtraArguments(t *testing.T) {
	cli := commands.New(nil)
	cli.SetArgs([]string{"vi", "emacs"})

	err := cli.Execute(context.Background())
	assert.Error(t, err)
}

func TestCLI_VersionCommand(t *testing.T) {
	cli := commands.New(nil)
	cli.SetArgs([]string{"--version"})
	var out bytes.Buffer
	cli.SetOut(&out)

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "dev")
}
