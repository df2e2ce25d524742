// Package snippet resolves named server-side snippets during markup
// normalization. A template marks an element with data-lift="name"; the
// registry's hook dispatches the element to the registered snippet
// function, which renders the replacement subtree and any client-side
// commands. Snippet output is itself normalized, so snippets nest.
package snippet

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/liftweb/lift/pkg/htmlnorm"
	"github.com/liftweb/lift/pkg/state"
)

// Snippet errors.
var (
	// ErrNotFound is returned in strict mode when a template references
	// an unregistered snippet.
	ErrNotFound = errors.New("snippet: not found")

	// ErrTooDeep is returned when snippet output keeps producing snippet
	// invocations past the nesting limit.
	ErrTooDeep = errors.New("snippet: nesting too deep")
)

// InvocationAttr marks an element as served by a named snippet.
const InvocationAttr = "data-lift"

// MissingAttr marks a lenient-mode placeholder left where an unregistered
// snippet was invoked. Its value is the missing snippet's name. An element
// survives comment stripping, so the marker stays visible in the output.
const MissingAttr = "data-lift-missing"

// maxNesting bounds recursive snippet expansion.
const maxNesting = 64

// Func renders one snippet invocation. It receives the request state and
// the invoking element with the invocation attribute already removed, and
// returns the replacement nodes plus any commands to run on the client.
type Func func(s *state.State, el *htmlnorm.Element) ([]htmlnorm.Node, htmlnorm.CommandSeq, error)

// Registry maps snippet names to their implementations. Safe for
// concurrent use; registration normally happens once at startup.
type Registry struct {
	mu       sync.RWMutex
	snippets map[string]Func
	strict   bool
	log      *slog.Logger
}

// Option configures the Registry.
type Option func(*Registry)

// WithStrict makes an unregistered snippet reference a render error
// instead of a logged warning.
func WithStrict() Option {
	return func(r *Registry) {
		r.strict = true
	}
}

// WithLogger sets the logger used for dispatch warnings.
func WithLogger(log *slog.Logger) Option {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRegistry creates an empty snippet registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		snippets: make(map[string]Func),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register binds a name to a snippet function, replacing any previous
// binding.
func (r *Registry) Register(name string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snippets[name] = fn
}

// Lookup returns the snippet registered under name.
func (r *Registry) Lookup(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.snippets[name]
	return fn, ok
}

// Render normalizes nodes for the given request, dispatching snippet
// invocations along the way.
func (r *Registry) Render(s *state.State, nodes []htmlnorm.Node) ([]htmlnorm.Node, htmlnorm.CommandSeq, error) {
	return state.NormalizeWith(s, nodes, 0, r.hook(s))
}

// hook returns the normalizer hook dispatching snippet invocations. The
// down-flowing hook state is the expansion depth.
func (r *Registry) hook(s *state.State) htmlnorm.Hook[int] {
	return func(depth int, el *htmlnorm.Element) (int, []htmlnorm.Node, htmlnorm.CommandSeq, error) {
		name, ok := el.Attr(InvocationAttr)
		if !ok || name == "" {
			return depth, []htmlnorm.Node{el}, nil, nil
		}

		if depth >= maxNesting {
			return depth, nil, nil, fmt.Errorf("%w: %q at depth %d", ErrTooDeep, name, depth)
		}

		fn, ok := r.Lookup(name)
		if !ok {
			if r.strict {
				return depth, nil, nil, fmt.Errorf("%w: %q", ErrNotFound, name)
			}
			r.log.Warn("unregistered snippet", slog.String("snippet", name))
			placeholder := withoutInvocationAttr(el)
			placeholder.Attrs = append(placeholder.Attrs, htmlnorm.Attr{Name: MissingAttr, Value: name})
			placeholder.Children = nil
			return depth, []htmlnorm.Node{placeholder}, nil, nil
		}

		nodes, cmds, err := fn(s, withoutInvocationAttr(el))
		if err != nil {
			return depth, nil, nil, fmt.Errorf("snippet %q: %w", name, err)
		}

		// A single-element result goes back to the normalizer, which
		// recurses into it with the incremented depth; nested
		// invocations in its children dispatch during that walk. Any
		// other shape is normalized here, since the caller emits it
		// verbatim. A result that is itself an invocation also takes
		// the second path: the normalizer never re-hooks a replacement.
		if len(nodes) == 1 {
			if result, isElement := nodes[0].(*htmlnorm.Element); isElement {
				if v, _ := result.Attr(InvocationAttr); v == "" {
					return depth + 1, nodes, cmds, nil
				}
			}
		}

		expanded, nestedCmds, err := state.NormalizeWith(s, nodes, depth+1, r.hook(s))
		if err != nil {
			return depth, nil, nil, err
		}
		return depth, expanded, cmds.Concat(nestedCmds), nil
	}
}

func withoutInvocationAttr(el *htmlnorm.Element) *htmlnorm.Element {
	attrs := make([]htmlnorm.Attr, 0, len(el.Attrs))
	for _, a := range el.Attrs {
		if !a.Prefixed && a.Name == InvocationAttr {
			continue
		}
		attrs = append(attrs, a)
	}
	return &htmlnorm.Element{Tag: el.Tag, Attrs: attrs, Children: el.Children}
}
