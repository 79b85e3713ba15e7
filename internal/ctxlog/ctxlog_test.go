// SPDX-License-Identifier: EPL-2.0

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithLogger_RoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithLogger(context.Background(), logger)
	require.Same(t, logger, FromContext(ctx))

	FromContext(ctx).Info("file saved", "path", "shot.segy")
	require.Contains(t, buf.String(), "path=shot.segy")
}

func TestFromContext_Default(t *testing.T) {
	t.Parallel()

	require.Same(t, slog.Default(), FromContext(context.Background()))
	require.Same(t, slog.Default(), FromContext(WithLogger(context.Background(), nil)))
}
