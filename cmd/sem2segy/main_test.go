// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ik5/sem2segy/internal/cli"
)

func TestRun_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), []string{"--help"}, out, &bytes.Buffer{})

	require.NoError(t, err, "run() should return a nil error for --help")
	require.Contains(t, out.String(), "Usage:")
	require.Contains(t, out.String(), "--offsp")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), []string{"--this-is-not-a-valid-flag"}, &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	exitErr, ok := err.(*cli.ExitError)
	require.True(t, ok, "run() should return an *cli.ExitError, got %T", err)
	require.Equal(t, cli.ExitUsage, exitErr.Code)
	require.Contains(t, exitErr.Message, "unknown flag: --this-is-not-a-valid-flag")
}
