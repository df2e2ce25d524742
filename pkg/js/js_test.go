package js

import (
	"strings"
	"testing"

	"github.com/liftweb/lift/pkg/htmlnorm"
)

func TestCmdSeq_JS(t *testing.T) {
	seq := CmdSeq{Raw("a();"), Noop, Raw("b();")}
	if got := seq.JS(); got != "a();\nb();" {
		t.Errorf("JS() = %q", got)
	}

	var empty CmdSeq
	if got := empty.JS(); got != "" {
		t.Errorf("empty sequence emitted %q", got)
	}
}

func TestCmdSeq_Concat(t *testing.T) {
	a := CmdSeq{Raw("a();")}
	b := CmdSeq{Raw("b();")}

	got := a.Concat(nil, b)
	if len(got) != 2 || got[0].JS() != "a();" || got[1].JS() != "b();" {
		t.Errorf("Concat = %v", got)
	}

	// nil is the identity on the left as well.
	var nilSeq CmdSeq
	if got := nilSeq.Concat(b); len(got) != 1 {
		t.Errorf("nil.Concat = %v", got)
	}
}

func TestOnEvent(t *testing.T) {
	got := OnEvent("x", "click", "f();").JS()
	want := `lift.onEvent("x", "click", function(event) {f();});`
	if got != want {
		t.Errorf("OnEvent = %q, want %q", got, want)
	}
}

func TestSetHTML(t *testing.T) {
	got := SetHTML("panel", "<p>hi</p>").JS()
	want := `lift.setHtml("panel", "<p>hi<\/p>");`
	if got != want {
		t.Errorf("SetHTML = %q, want %q", got, want)
	}
}

func TestRegisterHandlers(t *testing.T) {
	cmds := htmlnorm.CommandSeq{
		{ElementID: "lift-event-js-1", Name: "click", Handler: "function(event) {f();}"},
		{ElementID: "x", Name: "submit", Handler: "function(event) {g();}"},
	}

	seq := RegisterHandlers(cmds)
	if len(seq) != 2 {
		t.Fatalf("got %d commands, want 2", len(seq))
	}
	want := `lift.onEvent("lift-event-js-1", "click", function(event) {f();});`
	if seq[0].JS() != want {
		t.Errorf("first command = %q, want %q", seq[0].JS(), want)
	}

	if RegisterHandlers(nil) != nil {
		t.Error("RegisterHandlers(nil) != nil")
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{"line\nbreak", `"line\nbreak"`},
		{`</script>`, `"<\/script>"`},
	}
	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.want {
			t.Errorf("Quote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestJSON(t *testing.T) {
	e, err := JSON(map[string]any{"n": 1})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if string(e) != `{"n":1}` {
		t.Errorf("JSON = %q", e)
	}

	if _, err := JSON(make(chan int)); err == nil {
		t.Error("JSON accepted an unmarshalable value")
	}
}

func TestCall(t *testing.T) {
	got := Call("lift.update", Exp("1"), MustJSON("a")).JS()
	if got != `lift.update(1, "a");` {
		t.Errorf("Call = %q", got)
	}
}

func TestScript(t *testing.T) {
	if Script(nil) != "" {
		t.Error("Script(nil) emitted markup")
	}

	s := Script(CmdSeq{Raw("f();")})
	if !strings.HasPrefix(s, "<script type=\"text/javascript\">") || !strings.HasSuffix(s, "</script>") {
		t.Errorf("Script = %q", s)
	}
	if !strings.Contains(s, "f();") {
		t.Errorf("Script body missing command: %q", s)
	}
}

func TestOnLoad(t *testing.T) {
	got := OnLoad(Raw("f();")).JS()
	if got != "lift.documentReady(function() {f();});" {
		t.Errorf("OnLoad = %q", got)
	}
}
