package js

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Exp is a JavaScript expression, e.g. a function argument.
type Exp string

// Quote renders s as a JavaScript string literal. The result is safe to
// embed in an inline script block: quotes, backslashes, control
// characters, and the line separators U+2028/U+2029 are escaped, and "</"
// is broken up so a value cannot close the surrounding script element.
func Quote(s string) string {
	return safeEmbed(strconv.Quote(s))
}

// JSON serializes v into a JavaScript expression via its JSON form.
// This is how server-side values cross into client commands: the JSON
// grammar is a subset of JavaScript's, so the marshaled text is a valid
// expression.
func JSON(v any) (Exp, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("js: marshal expression: %w", err)
	}
	return Exp(safeEmbed(string(b))), nil
}

// MustJSON is JSON for values known to marshal, such as struct literals.
// It panics on error.
func MustJSON(v any) Exp {
	e, err := JSON(v)
	if err != nil {
		panic(err)
	}
	return e
}

func safeEmbed(s string) string {
	return strings.ReplaceAll(s, "</", `<\/`)
}
