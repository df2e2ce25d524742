package htmlnorm

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// IDFunc returns a fresh unique suffix each call. It is injected by the
// caller and scoped to a render pass or session; when passes share one
// source it must allocate atomically so synthesized IDs never collide.
type IDFunc func() string

// EventIDPrefix starts every synthesized element ID.
const EventIDPrefix = "lift-event-js-"

// NewSequentialIDs returns an IDFunc backed by an atomic counter starting
// at 1.
func NewSequentialIDs() IDFunc {
	var n atomic.Uint64
	return func() string {
		return strconv.FormatUint(n.Add(1), 10)
	}
}

// AttachEvents runs event extraction on one element and converts the
// extracted handlers into commands bound to the element's ID, synthesizing
// an ID when the element has none. removedEventsAttr, when non-empty,
// names a diagnostic attribute appended to the element listing the
// original attribute names that were extracted (space-joined, with their
// "on" prefix restored); it lands at the tail of the attribute list.
//
// The input element is not mutated.
func AttachEvents(el *Element, urlAttr, contextPath string, rewriteURL bool, rewrite RewriteFunc, removedEventsAttr string, nextID IDFunc) (*Element, CommandSeq) {
	id, attrs, events := ExtractEvents(urlAttr, el.Attrs, contextPath, rewriteURL, rewrite)

	if removedEventsAttr != "" && len(events) > 0 {
		names := make([]string, len(events))
		for i, ev := range events {
			names[i] = "on" + ev.Name
		}
		attrs = append(attrs, Attr{Name: removedEventsAttr, Value: strings.Join(names, " ")})
	}

	var cmds CommandSeq
	switch {
	case id != "":
		cmds = BindEvents(id, events)
	case len(events) > 0:
		id = EventIDPrefix + nextID()
		attrs = setIDAttr(attrs, id)
		cmds = BindEvents(id, events)
	}

	return &Element{Tag: el.Tag, Attrs: attrs, Children: el.Children}, cmds
}

// setIDAttr writes id into an existing unprefixed id attribute, or appends
// one. Extraction keeps an empty id="" in the output list while treating
// it as absent; synthesizing must fill that slot rather than add a second
// id attribute.
func setIDAttr(attrs []Attr, id string) []Attr {
	for i, a := range attrs {
		if !a.Prefixed && a.Name == "id" {
			attrs[i].Value = id
			return attrs
		}
	}
	return append(attrs, Attr{Name: "id", Value: id})
}
