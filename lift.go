package lift

import (
	"github.com/liftweb/lift/pkg/htmlnorm"
	"github.com/liftweb/lift/pkg/snippet"
	"github.com/liftweb/lift/pkg/state"
)

// Type aliases - public API
type (
	// Node is one node of a page tree.
	Node = htmlnorm.Node

	// Element is a tagged node with ordered attributes and children.
	Element = htmlnorm.Element

	// Attr is a single element attribute.
	Attr = htmlnorm.Attr

	// Text is character data rendered with escaping.
	Text = htmlnorm.Text

	// Comment is an HTML comment without the surrounding markers.
	Comment = htmlnorm.Comment

	// Raw is markup emitted verbatim.
	Raw = htmlnorm.Raw

	// Group is a transparent container of sibling nodes.
	Group = htmlnorm.Group

	// EventCommand binds a serialized handler to an element id and event.
	EventCommand = htmlnorm.EventCommand

	// CommandSeq is an ordered sequence of event commands.
	CommandSeq = htmlnorm.CommandSeq

	// State carries per-page render state.
	State = state.State

	// Notice is a user-facing message queued on the page state.
	Notice = state.Notice

	// Snippet produces replacement nodes for a data-lift invocation.
	Snippet = snippet.Func

	// Registry holds named snippets.
	Registry = snippet.Registry
)

// Notice levels.
const (
	NoticeInfo    = state.NoticeInfo
	NoticeWarning = state.NoticeWarning
	NoticeError   = state.NoticeError
)

// NewElement builds an element with the given attributes.
func NewElement(tag string, attrs ...Attr) *Element {
	return htmlnorm.NewElement(tag, attrs...)
}
