package state

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/liftweb/lift/pkg/htmlnorm"
)

// State is the per-request rendering state. Construct one with New at the
// start of a request and thread it through the render pipeline; do not
// share a State between requests.
type State struct {
	contextPath       string
	locale            string
	removedEventsAttr string
	rewriteURL        htmlnorm.RewriteFunc
	pageID            string
	log               *slog.Logger

	eventIDs atomic.Uint64

	mu      sync.RWMutex
	values  map[string]any
	notices []Notice
}

// Option configures a State.
type Option func(*State)

// New creates a request state. Without options it renders at the server
// root with no rewriting and a discard logger.
func New(opts ...Option) *State {
	s := &State{
		pageID: uuid.NewString(),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		values: make(map[string]any),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithContextPath sets the application base path, e.g. "/app".
func WithContextPath(path string) Option {
	return func(s *State) {
		s.contextPath = path
	}
}

// WithLocale sets the locale used when localizing rendered content.
func WithLocale(locale string) Option {
	return func(s *State) {
		s.locale = locale
	}
}

// WithURLRewriter installs a global URL rewriter applied after
// context-path rebasing, e.g. session-ID decoration.
func WithURLRewriter(fn htmlnorm.RewriteFunc) Option {
	return func(s *State) {
		s.rewriteURL = fn
	}
}

// WithRemovedEventsAttr names the diagnostic attribute recording which
// inline handlers the normalizer extracted from an element.
func WithRemovedEventsAttr(name string) Option {
	return func(s *State) {
		s.removedEventsAttr = name
	}
}

// WithLogger sets the logger for the render pass.
func WithLogger(log *slog.Logger) Option {
	return func(s *State) {
		if log != nil {
			s.log = log
		}
	}
}

// ContextPath returns the application base path.
func (s *State) ContextPath() string { return s.contextPath }

// Locale returns the request locale, empty when not negotiated.
func (s *State) Locale() string { return s.locale }

// PageID returns the unique identifier of this render pass.
func (s *State) PageID() string { return s.pageID }

// Log returns the request logger.
func (s *State) Log() *slog.Logger { return s.log }

// NextEventID allocates the next unique suffix for synthesized element
// IDs. Safe for concurrent use.
func (s *State) NextEventID() string {
	return strconv.FormatUint(s.eventIDs.Add(1), 10)
}

// NormalizerConfig assembles the htmlnorm configuration for this request.
// The ID source is backed by the state's counter, so repeated passes for
// one request (initial render plus partial updates) never reuse an ID.
func (s *State) NormalizerConfig() htmlnorm.Config {
	return htmlnorm.Config{
		ContextPath:       s.contextPath,
		StripComments:     true,
		RewriteURL:        s.rewriteURL,
		RemovedEventsAttr: s.removedEventsAttr,
		NextID:            s.NextEventID,
	}
}

// Normalize runs the plain normalization pass for this request, with no
// caller hook. Use NormalizeWith to thread custom per-subtree state.
func (s *State) Normalize(nodes []htmlnorm.Node) ([]htmlnorm.Node, htmlnorm.CommandSeq, error) {
	return htmlnorm.Normalize[struct{}](s.NormalizerConfig(), nodes, struct{}{}, nil)
}

// NormalizeWith runs a normalization pass with a caller hook and
// down-flowing hook state.
func NormalizeWith[T any](s *State, nodes []htmlnorm.Node, hookState T, hook htmlnorm.Hook[T]) ([]htmlnorm.Node, htmlnorm.CommandSeq, error) {
	return htmlnorm.Normalize(s.NormalizerConfig(), nodes, hookState, hook)
}

// SetValue stores a request-scoped value.
func (s *State) SetValue(key string, val any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		s.values = make(map[string]any)
	}
	s.values[key] = val
}

// GetValue retrieves a request-scoped value.
func (s *State) GetValue(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

// DeleteValue removes a request-scoped value.
func (s *State) DeleteValue(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Value is a typed helper to retrieve request-scoped values.
func Value[T any](s *State, key string) (T, error) {
	var zero T
	if s == nil {
		return zero, ErrNotFound
	}

	val, ok := s.GetValue(key)
	if !ok {
		return zero, ErrNotFound
	}

	typed, ok := val.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %q holds %T", ErrTypeMismatch, key, val)
	}

	return typed, nil
}

// ValueOr returns a default when the key is missing or holds a different
// type.
func ValueOr[T any](s *State, key string, defaultVal T) T {
	val, err := Value[T](s, key)
	if err != nil {
		return defaultVal
	}
	return val
}
