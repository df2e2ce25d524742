package js

import "strings"

// Cmd is a single client-side command. JS returns executable JavaScript
// source, normally one statement ending with a semicolon.
type Cmd interface {
	JS() string
}

// Raw is a literal piece of JavaScript used verbatim as a command.
type Raw string

// JS implements Cmd.
func (r Raw) JS() string { return string(r) }

// Noop is the identity command: it emits nothing.
const Noop = Raw("")

// CmdSeq is an ordered sequence of commands. A nil sequence is the
// identity and Concat is associative.
type CmdSeq []Cmd

// JS joins the non-empty commands with newlines.
func (s CmdSeq) JS() string {
	var b strings.Builder
	for _, c := range s {
		src := c.JS()
		if src == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(src)
	}
	return b.String()
}

// Concat returns s followed by the given sequences, in order.
func (s CmdSeq) Concat(seqs ...CmdSeq) CmdSeq {
	out := s
	for _, q := range seqs {
		out = append(out, q...)
	}
	return out
}
