package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("default", func(t *testing.T) {
		t.Parallel()
		assert.Same(t, slog.Default(), FromContext(context.Background()))
	})
	t.Run("embedded", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		ctx := WithLogger(context.Background(), logger)
		got := FromContext(ctx)
		require.Same(t, logger, got)
		got.Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})
	t.Run("nil logger", func(t *testing.T) {
		t.Parallel()
		ctx := WithLogger(context.Background(), nil)
		assert.NotNil(t, FromContext(ctx))
	})
}
