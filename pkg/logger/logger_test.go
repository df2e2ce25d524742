package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftweb/lift/pkg/logger"
)

func logLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestContextHandler_InjectsExtractedAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, nil)
	log := slog.New(logger.NewContextHandler(base, logger.PageIDExtractor))

	ctx := logger.WithPageID(context.Background(), "page-123")
	log.InfoContext(ctx, "rendered")

	m := logLine(t, &buf)
	assert.Equal(t, "rendered", m["msg"])
	assert.Equal(t, "page-123", m["page_id"])
}

func TestContextHandler_SkipsWhenContextEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, nil)
	log := slog.New(logger.NewContextHandler(base, logger.PageIDExtractor, nil))

	log.InfoContext(context.Background(), "no page")

	m := logLine(t, &buf)
	_, hasPageID := m["page_id"]
	assert.False(t, hasPageID)
}

func TestPageIDFromContext(t *testing.T) {
	t.Parallel()

	_, ok := logger.PageIDFromContext(context.Background())
	assert.False(t, ok)

	ctx := logger.WithPageID(context.Background(), "p1")
	id, ok := logger.PageIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "p1", id)
}

func TestNewNope_Discards(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.NotNil(t, log)
	log.Info("dropped")
}

func TestNewWithSentry_FallsBackWithoutDSN(t *testing.T) {
	t.Parallel()

	log := logger.NewWithSentry(logger.SentryConfig{})
	require.NotNil(t, log)
}
