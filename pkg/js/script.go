package js

import (
	"io"
	"strings"
)

// Script wraps the commands in an inline script element, or returns the
// empty string when there is nothing to run. The body is fenced with
// CDATA comment markers so the block survives XHTML serialization.
func Script(cmds CmdSeq) string {
	body := cmds.JS()
	if body == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString("<script type=\"text/javascript\">\n// <![CDATA[\n")
	b.WriteString(body)
	b.WriteString("\n// ]]>\n</script>")
	return b.String()
}

// WriteScript writes the inline script element to w. Nothing is written
// when the sequence is empty.
func WriteScript(w io.Writer, cmds CmdSeq) error {
	s := Script(cmds)
	if s == "" {
		return nil
	}
	_, err := io.WriteString(w, s)
	return err
}
