// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfsm

import "github.com/creachadair/jfsm/ast"

// NewValue returns a fresh Machine that decodes a single arbitrary JSON
// value. The machine expects its input with no leading or trailing
// whitespace; whitespace between the tokens of arrays and objects is
// accepted.
//
// Callers feeding the machine directly observe Pending outcomes until the
// value is complete. A top-level number reports Partial outcomes instead,
// since only the caller knows when its input ends; Decode handles that
// bookkeeping for whole inputs.
func NewValue() Machine { return newValueMachine() }

// A valueMachine decodes an arbitrary JSON value. It feeds the first code
// point to every grammar alternative, discards the ones that reject it, and
// forwards all further input to the sole survivor, reporting the survivor's
// outcomes as its own.
type valueMachine struct {
	alts []Machine // remaining alternatives; nil once dispatched
	sub  Machine   // the surviving alternative
	dead bool
}

func newValueMachine() *valueMachine {
	return &valueMachine{
		// The JSON grammar makes the alternatives distinguishable by their
		// first code point. The fixed order gives a deterministic tie-break
		// if that ever fails to hold.
		alts: []Machine{
			newNumber(),
			newObject(),
			newArray(),
			newString(),
			newLiteral("null", ast.Null{}),
			newLiteral("false", ast.Bool(false)),
			newLiteral("true", ast.Bool(true)),
		},
	}
}

// Feed implements part of the Machine interface.
func (m *valueMachine) Feed(c rune) Outcome {
	if m.dead {
		return feedTerminal("value")
	}
	if m.sub != nil {
		out := m.sub.Feed(c)
		if out.Final() {
			m.dead = true
		}
		return out
	}
	for _, alt := range m.alts {
		out := alt.Feed(c)
		if out.Rejected() {
			continue
		}
		m.sub, m.alts = alt, nil
		if out.Final() {
			m.dead = true
		}
		return out
	}
	m.alts, m.dead = nil, true
	return reject(NoMatchingGrammar, c)
}
