package i18n

import "github.com/liftweb/lift/pkg/htmlnorm"

// LocalizeAttr marks elements whose children should be replaced with a
// localized message. The attribute value is the message key.
const LocalizeAttr = "data-loc"

// LocalizeTree walks nodes and replaces the children of every element
// carrying a data-loc attribute with the localized message for its key.
// The attribute itself is removed from the output. Input nodes are not
// modified.
func (t *Translator) LocalizeTree(lang string, nodes []htmlnorm.Node) []htmlnorm.Node {
	out := make([]htmlnorm.Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, t.localizeNode(lang, n))
	}
	return out
}

func (t *Translator) localizeNode(lang string, n htmlnorm.Node) htmlnorm.Node {
	switch v := n.(type) {
	case *htmlnorm.Element:
		if key, ok := v.Attr(LocalizeAttr); ok {
			attrs := make([]htmlnorm.Attr, 0, len(v.Attrs)-1)
			for _, a := range v.Attrs {
				if !a.Prefixed && a.Name == LocalizeAttr {
					continue
				}
				attrs = append(attrs, a)
			}
			return &htmlnorm.Element{
				Tag:      v.Tag,
				Attrs:    attrs,
				Children: []htmlnorm.Node{htmlnorm.Text(t.T(lang, key))},
			}
		}
		return v.WithChildren(t.LocalizeTree(lang, v.Children)...)
	case htmlnorm.Group:
		return htmlnorm.Group{Children: t.LocalizeTree(lang, v.Children)}
	default:
		return n
	}
}
