// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfsm

import (
	"go4.org/mem"

	"github.com/creachadair/jfsm/ast"
)

// A literalMachine matches a fixed literal token one code point at a time
// and produces a fixed value when the whole token has matched.
type literalMachine struct {
	want mem.RO    // the complete literal, e.g. "true"
	val  ast.Value // the value produced on a full match
	pos  int       // number of code points already matched
	dead bool
}

func newLiteral(text string, val ast.Value) *literalMachine {
	return &literalMachine{want: mem.S(text), val: val}
}

// Feed implements part of the Machine interface.
func (m *literalMachine) Feed(c rune) Outcome {
	if m.dead || m.pos >= m.want.Len() {
		return feedTerminal("literal")
	}
	if c != rune(m.want.At(m.pos)) {
		m.dead = true
		return reject(UnexpectedCharacter, c)
	}
	m.pos++
	if m.pos == m.want.Len() {
		return complete(m.val)
	}
	return pending()
}
