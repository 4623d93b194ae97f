package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guard/pkg/guard"
	"github.com/dmitrymomot/guard/pkg/logger"
)

func TestError(t *testing.T) {
	t.Run("returns empty attr for nil", func(t *testing.T) {
		assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	})

	t.Run("uses the error key", func(t *testing.T) {
		err := errors.New("boom")
		attr := logger.Error(err)
		require.Equal(t, "error", attr.Key)
		assert.Equal(t, err, attr.Value.Any())
	})

	t.Run("renders argument errors as a group", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		log.Warn("rejected", logger.Error(guard.NotBlank("name", "")))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, map[string]any{
			"kind":    "empty_argument",
			"param":   "name",
			"message": "must not be empty",
		}, record["error"])
	})
}

func TestComponent(t *testing.T) {
	attr := logger.Component("guardhttp")
	require.Equal(t, "component", attr.Key)
	assert.Equal(t, "guardhttp", attr.Value.String())
}
