package htmlnorm

import "strings"

// EventAttr is one extracted inline handler: the DOM event name without
// its "on" prefix and the JavaScript source that handled it.
type EventAttr struct {
	Name   string
	Script string
}

// urlEventAttrs maps URL-carrying attributes to the event fired when the
// URL would be followed. A javascript: value in one of these attributes is
// really an inline handler for that event.
var urlEventAttrs = map[string]string{
	"action": "submit",
	"href":   "click",
}

const javascriptScheme = "javascript:"

// ExtractEvents walks an element's attribute list once, in order, and
// splits it into the attributes that stay on the element and the inline
// handlers that move to externally attached commands.
//
// Per attribute, in priority order:
//
//  1. A URL attribute holding a javascript: value is removed and recorded
//     as a handler for the matching event, with default navigation
//     suppressed. A blank script still removes the attribute but records
//     nothing.
//  2. The attribute named by urlAttr is replaced in place with its
//     normalized URL.
//  3. An on<event> attribute is removed and recorded as a handler.
//  4. A non-empty id attribute is kept and captured as the element's ID.
//  5. Anything else, including prefixed attributes, passes through.
//
// Output order matches input order for every attribute that survives.
func ExtractEvents(urlAttr string, attrs []Attr, contextPath string, rewriteURL bool, rewrite RewriteFunc) (id string, out []Attr, events []EventAttr) {
	for _, a := range attrs {
		switch {
		case a.Prefixed:
			out = append(out, a)
		case urlEventAttrs[a.Name] != "" && hasJavascriptScheme(a.Value):
			if js := stripJavascriptScheme(a.Value); strings.TrimSpace(js) != "" {
				events = append(events, EventAttr{
					Name:   urlEventAttrs[a.Name],
					Script: suppressDefault(js),
				})
			}
		case a.Name == urlAttr:
			a.Value = NormalizeURL(contextPath, a.Value, rewriteURL, rewrite)
			out = append(out, a)
		case strings.HasPrefix(a.Name, "on") && len(a.Name) > len("on"):
			events = append(events, EventAttr{Name: a.Name[len("on"):], Script: a.Value})
		case a.Name == "id":
			out = append(out, a)
			if a.Value != "" {
				id = a.Value
			}
		default:
			out = append(out, a)
		}
	}
	return id, out, events
}

func hasJavascriptScheme(v string) bool {
	return len(v) >= len(javascriptScheme) &&
		strings.EqualFold(v[:len(javascriptScheme)], javascriptScheme)
}

func stripJavascriptScheme(v string) string {
	v = v[len(javascriptScheme):]
	// javascript:// introduces the script after a comment-style marker.
	return strings.TrimPrefix(v, "//")
}

// suppressDefault appends event.preventDefault() so the browser does not
// also navigate to the original URL. A single trailing semicolon is folded
// so "doThing();" becomes "doThing(); event.preventDefault();".
func suppressDefault(js string) string {
	js = strings.TrimRight(strings.TrimSpace(js), "; \t")
	return js + "; event.preventDefault();"
}
