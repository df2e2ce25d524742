package htmlnorm

// Config carries the per-run settings for one normalization pass.
// The zero value is usable: no context path, comments kept, no rewriting,
// no diagnostic attribute, and a fresh per-run ID counter.
type Config struct {
	// ContextPath is the application base path that context-relative URLs
	// are rebased against, e.g. "/app".
	ContextPath string

	// StripComments drops Comment nodes from the output.
	StripComments bool

	// RewriteURL, when set, is applied to normalized URLs on elements
	// whose URL attribute permits rewriting (see URLAttribute).
	RewriteURL RewriteFunc

	// RemovedEventsAttr, when non-empty, names a diagnostic attribute
	// recording which inline handler attributes were extracted from an
	// element.
	RemovedEventsAttr string

	// NextID supplies suffixes for synthesized element IDs. Defaults to a
	// counter private to the Normalize call.
	NextID IDFunc
}

// Hook is the caller's per-element callback. It receives the down-flowing
// state and the element after URL normalization and event extraction, and
// returns the state for the element's subtree, the node(s) standing in for
// the element, and any extra commands.
//
// Returning the element itself (as a single-node slice) keeps the normal
// traversal. Returning anything other than a single Element emits the
// replacement verbatim: the normalizer does not recurse into it, so the
// hook owns any further processing of those nodes.
type Hook[S any] func(state S, el *Element) (next S, replacement []Node, cmds CommandSeq, err error)

// Normalize walks nodes in order, normalizing every element (URL rebasing,
// event extraction, ID assignment) and invoking the hook on each. It
// returns the new tree and the concatenated commands in document order:
// for one element, its own attach commands, then the hook's commands, then
// its descendants' commands.
//
// State flows strictly downward. The state a hook returns is visible only
// to that element's subtree, never to following siblings or ancestors.
// Groups are transparent: their children are processed with the current
// state and no hook call. Comments are dropped only when configured.
//
// Normalize itself never fails; the only error source is the hook, whose
// error is propagated verbatim with no partial result.
func Normalize[S any](cfg Config, nodes []Node, state S, hook Hook[S]) ([]Node, CommandSeq, error) {
	if cfg.NextID == nil {
		cfg.NextID = NewSequentialIDs()
	}
	return normalize(cfg, nodes, state, hook)
}

func normalize[S any](cfg Config, nodes []Node, state S, hook Hook[S]) ([]Node, CommandSeq, error) {
	if len(nodes) == 0 {
		return nil, nil, nil
	}

	out := make([]Node, 0, len(nodes))
	var cmds CommandSeq

	for _, n := range nodes {
		switch v := n.(type) {
		case *Element:
			urlAttr, rewrite := URLAttribute(v.Tag)
			el, attach := AttachEvents(v, urlAttr, cfg.ContextPath, rewrite, cfg.RewriteURL, cfg.RemovedEventsAttr, cfg.NextID)

			next := state
			replacement := []Node{el}
			var hookCmds CommandSeq
			if hook != nil {
				var err error
				next, replacement, hookCmds, err = hook(state, el)
				if err != nil {
					return nil, nil, err
				}
			}

			if repl, ok := singleElement(replacement); ok {
				children, childCmds, err := normalize(cfg, repl.Children, next, hook)
				if err != nil {
					return nil, nil, err
				}
				out = append(out, repl.WithChildren(children...))
				cmds = cmds.Concat(attach, hookCmds, childCmds)
				continue
			}

			// Full substitution: emit as-is, no recursion.
			out = append(out, replacement...)
			cmds = cmds.Concat(attach, hookCmds)

		case Group:
			children, childCmds, err := normalize(cfg, v.Children, state, hook)
			if err != nil {
				return nil, nil, err
			}
			out = append(out, Group{Children: children})
			cmds = cmds.Concat(childCmds)

		case Comment:
			if !cfg.StripComments {
				out = append(out, v)
			}

		default:
			out = append(out, n)
		}
	}

	return out, cmds, nil
}

func singleElement(nodes []Node) (*Element, bool) {
	if len(nodes) != 1 {
		return nil, false
	}
	el, ok := nodes[0].(*Element)
	return el, ok
}
