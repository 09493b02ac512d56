// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfsm

import (
	"fmt"

	"github.com/creachadair/jfsm/ast"
)

// A Machine incrementally decodes one rule of the JSON grammar. Each call to
// Feed delivers a single Unicode code point and returns the outcome of
// consuming it.
//
// A machine whose outcome reports Done or Rejected is terminal. A terminal
// machine must never be fed again; doing so panics, since it indicates a
// defect in the caller rather than in the input. Construct a fresh machine
// for each value to be decoded.
type Machine interface {
	Feed(c rune) Outcome
}

// An Outcome is the tagged result of feeding one code point to a Machine.
// Exactly one of Pending, Partial, Done, or Rejected reports true.
//
// The tag keeps "no value yet" distinct from every decoded value: null,
// false, zero, and the empty string, array, and object are all carried only
// by Partial or Done outcomes, never conflated with Pending.
type Outcome struct {
	tag outcomeTag
	val ast.Value
	err *SyntaxError
}

type outcomeTag byte

const (
	tagPending outcomeTag = iota
	tagPartial
	tagDone
	tagRejected
)

var tagStr = [...]string{
	tagPending:  "pending",
	tagPartial:  "partial",
	tagDone:     "done",
	tagRejected: "rejected",
}

func (t outcomeTag) String() string { return tagStr[t] }

// Pending reports whether the machine consumed the code point without
// producing a value.
func (o Outcome) Pending() bool { return o.tag == tagPending }

// Partial reports whether the machine holds a provisional value that more
// input may still change. Only number machines produce partial outcomes;
// the caller adopts the last partial value when a delimiter or the end of
// input stops the number.
func (o Outcome) Partial() bool { return o.tag == tagPartial }

// Done reports whether the machine reached a grammar-final state. The
// machine must not be fed again.
func (o Outcome) Done() bool { return o.tag == tagDone }

// Rejected reports whether the machine rejected the code point. The machine
// must not be fed again.
func (o Outcome) Rejected() bool { return o.tag == tagRejected }

// Final reports whether the outcome is terminal (Done or Rejected).
func (o Outcome) Final() bool { return o.tag == tagDone || o.tag == tagRejected }

// Value returns the decoded value of a Partial or Done outcome.
// It panics for Pending and Rejected outcomes.
func (o Outcome) Value() ast.Value {
	if o.tag != tagPartial && o.tag != tagDone {
		panic(fmt.Sprintf("no value in a %v outcome", o.tag))
	}
	return o.val
}

// Err returns the error of a Rejected outcome. It panics otherwise.
func (o Outcome) Err() *SyntaxError {
	if o.tag != tagRejected {
		panic(fmt.Sprintf("no error in a %v outcome", o.tag))
	}
	return o.err
}

// hasValue reports whether o carries a value (Partial or Done). Composite
// machines use it to decide whether a delimiter ends the current element or
// must be forwarded into it.
func (o Outcome) hasValue() bool { return o.tag == tagPartial || o.tag == tagDone }

func pending() Outcome            { return Outcome{tag: tagPending} }
func partial(v ast.Value) Outcome { return Outcome{tag: tagPartial, val: v} }
func complete(v ast.Value) Outcome {
	return Outcome{tag: tagDone, val: v}
}

// reject builds a Rejected outcome for an error discovered by a machine.
// The decode driver fills in the offset.
func reject(kind ErrorKind, c rune) Outcome {
	return Outcome{tag: tagRejected, err: &SyntaxError{Kind: kind, Char: c, Offset: -1}}
}

// rejectErr wraps an error propagated from a child machine.
func rejectErr(err *SyntaxError) Outcome { return Outcome{tag: tagRejected, err: err} }

// feedTerminal reports misuse of a terminal machine.
func feedTerminal(name string) Outcome {
	panic(name + " machine fed after a terminal outcome")
}
