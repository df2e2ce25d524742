package logger

import (
	"context"
	"log/slog"
)

type pageIDKey struct{}

// WithPageID returns a context carrying the rendered page's identifier.
func WithPageID(ctx context.Context, pageID string) context.Context {
	return context.WithValue(ctx, pageIDKey{}, pageID)
}

// PageIDFromContext returns the page identifier stored by WithPageID.
func PageIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(pageIDKey{}).(string)
	return id, ok && id != ""
}

// PageIDExtractor injects the page identifier into log records when the
// context carries one.
func PageIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id, ok := PageIDFromContext(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return slog.String("page_id", id), true
}
