package htmlnorm

// Node is one node of a server-rendered markup tree. The variant set is
// closed: Element, Text, Comment, Group, and Raw are the only
// implementations, so traversals can switch exhaustively.
//
// Nodes are treated as immutable. Transformations build new nodes and new
// slices; they never write through a Node they received.
type Node interface {
	node()
}

// Attr is a single element attribute as rendered text.
// Prefixed marks namespaced attributes (for example l:name); those are
// opaque to event extraction and URL rewriting.
type Attr struct {
	Name     string
	Value    string
	Prefixed bool
}

// Element is a tagged node with ordered attributes and children.
// Attribute and child order is semantically significant and preserved by
// every transformation in this package.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []Node
}

// Text is character data rendered with escaping.
type Text string

// Comment is an HTML comment without the surrounding markers.
type Comment string

// Raw is markup emitted verbatim, e.g. a doctype or a pre-rendered block.
// The normalizer passes Raw nodes through untouched.
type Raw string

// Group is a transparent container: its children render as if they were
// siblings at the group's position. The normalizer recurses into Groups
// without invoking the caller hook on them.
type Group struct {
	Children []Node
}

func (*Element) node() {}
func (Text) node()     {}
func (Comment) node()  {}
func (Raw) node()      {}
func (Group) node()    {}

// NewElement builds an element with the given attributes.
func NewElement(tag string, attrs ...Attr) *Element {
	return &Element{Tag: tag, Attrs: attrs}
}

// WithChildren returns a copy of e with the given children.
func (e *Element) WithChildren(children ...Node) *Element {
	return &Element{Tag: e.Tag, Attrs: e.Attrs, Children: children}
}

// Attr returns the value of the named unprefixed attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if !a.Prefixed && a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// ID returns the element's non-empty id attribute, if any.
func (e *Element) ID() (string, bool) {
	v, ok := e.Attr("id")
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
