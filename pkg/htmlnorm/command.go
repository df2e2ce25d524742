package htmlnorm

// EventCommand instructs the client runtime to attach one event handler:
// bind Name on the element with ElementID to the anonymous function in
// Handler. Serialization into script text is the job of pkg/js.
type EventCommand struct {
	ElementID string
	Name      string
	Handler   string
}

// CommandSeq is an ordered sequence of event commands. nil is the identity
// element and Concat is associative, so sequences produced anywhere in a
// traversal merge uniformly.
type CommandSeq []EventCommand

// Concat returns s followed by the given sequences, in order.
func (s CommandSeq) Concat(seqs ...CommandSeq) CommandSeq {
	out := s
	for _, q := range seqs {
		out = append(out, q...)
	}
	return out
}

// BindEvents produces one command per extracted event, in order, binding
// each handler to the element with the given ID. The handler source is
// wrapped in an anonymous function receiving the DOM event.
func BindEvents(elementID string, events []EventAttr) CommandSeq {
	if len(events) == 0 {
		return nil
	}
	cmds := make(CommandSeq, 0, len(events))
	for _, ev := range events {
		cmds = append(cmds, EventCommand{
			ElementID: elementID,
			Name:      ev.Name,
			Handler:   "function(event) {" + ev.Script + "}",
		})
	}
	return cmds
}
