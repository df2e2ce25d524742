package js

import (
	"github.com/liftweb/lift/pkg/htmlnorm"
)

// OnEvent attaches a handler body to the element with the given ID. The
// body runs with the DOM event in scope as "event".
func OnEvent(elementID, event, body string) Cmd {
	return Raw("lift.onEvent(" + Quote(elementID) + ", " + Quote(event) + ", function(event) {" + body + "});")
}

// SetHTML replaces the inner HTML of the element with the given ID.
func SetHTML(elementID, markup string) Cmd {
	return Raw("lift.setHtml(" + Quote(elementID) + ", " + Quote(markup) + ");")
}

// OnLoad defers a command until the document is ready.
func OnLoad(c Cmd) Cmd {
	return Raw("lift.documentReady(function() {" + c.JS() + "});")
}

// Call invokes a client-side function with the given argument expressions.
func Call(fn string, args ...Exp) Cmd {
	src := fn + "("
	for i, a := range args {
		if i > 0 {
			src += ", "
		}
		src += string(a)
	}
	return Raw(src + ");")
}

// RegisterHandler emits the runtime call attaching one handler extracted
// by the normalizer. The command's Handler field already carries the
// anonymous function source.
func RegisterHandler(c htmlnorm.EventCommand) Cmd {
	return Raw("lift.onEvent(" + Quote(c.ElementID) + ", " + Quote(c.Name) + ", " + c.Handler + ");")
}

// RegisterHandlers converts a normalizer command sequence into runtime
// calls, preserving order.
func RegisterHandlers(cmds htmlnorm.CommandSeq) CmdSeq {
	if len(cmds) == 0 {
		return nil
	}
	out := make(CmdSeq, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, RegisterHandler(c))
	}
	return out
}
