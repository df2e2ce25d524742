package htmlnorm

import (
	"strings"
	"testing"
)

func TestAttachEvents_SynthesizesID(t *testing.T) {
	el := NewElement("div", Attr{Name: "onclick", Value: "f();"})

	out, cmds := AttachEvents(el, "src", "", true, nil, "", NewSequentialIDs())

	id, ok := out.ID()
	if !ok {
		t.Fatal("no id synthesized")
	}
	if !strings.HasPrefix(id, EventIDPrefix) {
		t.Errorf("id = %q, want %q prefix", id, EventIDPrefix)
	}
	if len(cmds) != 1 {
		t.Fatalf("got %d commands, want 1", len(cmds))
	}
	if cmds[0].ElementID != id || cmds[0].Name != "click" {
		t.Errorf("command = %+v, want click bound to %q", cmds[0], id)
	}
	if cmds[0].Handler != "function(event) {f();}" {
		t.Errorf("handler = %q", cmds[0].Handler)
	}
}

func TestAttachEvents_ReusesExistingID(t *testing.T) {
	el := NewElement("div",
		Attr{Name: "id", Value: "x"},
		Attr{Name: "onclick", Value: "f();"},
	)

	out, cmds := AttachEvents(el, "src", "", true, nil, "", NewSequentialIDs())

	if id, _ := out.ID(); id != "x" {
		t.Errorf("id = %q, want %q", id, "x")
	}
	if len(cmds) != 1 || cmds[0].ElementID != "x" {
		t.Errorf("commands = %+v, want one bound to x", cmds)
	}
}

func TestAttachEvents_FillsEmptyIDAttribute(t *testing.T) {
	el := NewElement("div",
		Attr{Name: "id", Value: ""},
		Attr{Name: "onclick", Value: "f();"},
	)

	out, cmds := AttachEvents(el, "src", "", true, nil, "", NewSequentialIDs())

	var ids []string
	for _, a := range out.Attrs {
		if !a.Prefixed && a.Name == "id" {
			ids = append(ids, a.Value)
		}
	}
	if len(ids) != 1 {
		t.Fatalf("element has %d id attributes after normalization, want 1: %v", len(ids), ids)
	}
	if !strings.HasPrefix(ids[0], EventIDPrefix) {
		t.Errorf("id = %q, want %q prefix", ids[0], EventIDPrefix)
	}
	if len(cmds) != 1 || cmds[0].ElementID != ids[0] {
		t.Errorf("commands = %+v, want one bound to %q", cmds, ids[0])
	}
}

func TestAttachEvents_NoEventsNoID(t *testing.T) {
	el := NewElement("div", Attr{Name: "class", Value: "c"})

	out, cmds := AttachEvents(el, "src", "", true, nil, "", NewSequentialIDs())

	if _, ok := out.ID(); ok {
		t.Error("id added to element without events")
	}
	if len(cmds) != 0 {
		t.Errorf("commands = %+v, want none", cmds)
	}
}

func TestAttachEvents_RemovedEventsAttribute(t *testing.T) {
	el := NewElement("a",
		Attr{Name: "href", Value: "javascript:nav()"},
		Attr{Name: "onclick", Value: "track();"},
	)

	out, _ := AttachEvents(el, "href", "", true, nil, "data-lift-removed-attrs", NewSequentialIDs())

	v, ok := out.Attr("data-lift-removed-attrs")
	if !ok {
		t.Fatal("diagnostic attribute missing")
	}
	if v != "onclick onclick" {
		t.Errorf("diagnostic attribute = %q, want %q", v, "onclick onclick")
	}
}

func TestAttachEvents_DoesNotMutateInput(t *testing.T) {
	attrs := []Attr{{Name: "onclick", Value: "f();"}}
	el := &Element{Tag: "div", Attrs: attrs}

	AttachEvents(el, "src", "", true, nil, "", NewSequentialIDs())

	if len(el.Attrs) != 1 || el.Attrs[0].Name != "onclick" {
		t.Errorf("input element mutated: %v", el.Attrs)
	}
}

func TestNewSequentialIDs(t *testing.T) {
	next := NewSequentialIDs()
	if a, b := next(), next(); a == b {
		t.Errorf("consecutive ids equal: %q", a)
	}

	// Two generators are independent.
	other := NewSequentialIDs()
	if got := other(); got != "1" {
		t.Errorf("fresh generator started at %q, want %q", got, "1")
	}
}
