// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfsm

import "github.com/creachadair/jfsm/ast"

// An objectMachine decodes a JSON object. Each member is a string key
// decoded by a fresh string machine, a colon, and a value decoded by a fresh
// value machine. Duplicate keys are allowed; the last value wins, and the
// key keeps its original position.
//
// Separator handling matches arrayMachine: "," and "}" are forwarded into
// the current member value while it has no value yet, and end it otherwise.
type objectMachine struct {
	state objState
	key   *stringMachine // machine for the member key
	name  string         // the decoded key of the current member
	elem  Machine        // machine for the member value
	val   ast.Value      // provisional value of the current member
	has   bool           // whether val is valid
	obj   ast.Object
}

type objState byte

const (
	oExpectOpen  objState = iota // awaiting "{"
	oExpectFirst                 // awaiting the first key or "}"
	oExpectKey                   // awaiting a key after ","
	oInKey                       // feeding the key machine
	oExpectColon                 // awaiting ":" after a key
	oExpectValue                 // awaiting the first code point of a value
	oInValue                     // feeding the member value machine
	oExpectNext                  // awaiting "," or "}" after a member
	oClosed                      // terminal
)

func newObject() *objectMachine { return &objectMachine{obj: ast.Object{}} }

// Feed implements part of the Machine interface.
func (m *objectMachine) Feed(c rune) Outcome {
	switch m.state {
	case oExpectOpen:
		if c != '{' {
			m.state = oClosed
			return reject(UnexpectedCharacter, c)
		}
		m.state = oExpectFirst
		return pending()

	case oExpectFirst, oExpectKey:
		if isSpace(c) {
			return pending()
		}
		switch c {
		case '}':
			if m.state == oExpectKey {
				m.state = oClosed
				return reject(TrailingComma, c)
			}
			m.state = oClosed
			return complete(m.obj)
		case ',':
			m.state = oClosed
			return reject(UnexpectedCloseOrComma, c)
		}
		m.key = newString()
		m.state = oInKey
		return m.feedKey(c)

	case oInKey:
		return m.feedKey(c)

	case oExpectColon:
		if isSpace(c) {
			return pending()
		}
		if c != ':' {
			m.state = oClosed
			return reject(MissingColon, c)
		}
		m.state = oExpectValue
		return pending()

	case oExpectValue:
		if isSpace(c) {
			return pending()
		}
		m.elem, m.val, m.has = newValueMachine(), nil, false
		m.state = oInValue
		return m.feedValue(c)

	case oInValue:
		if m.has && (c == ',' || c == '}') {
			return m.endMember(c)
		}
		if m.has && isSpace(c) {
			m.obj = m.obj.Set(m.name, m.val)
			m.elem, m.has = nil, false
			m.state = oExpectNext
			return pending()
		}
		return m.feedValue(c)

	case oExpectNext:
		if isSpace(c) {
			return pending()
		}
		switch c {
		case ',':
			m.state = oExpectKey
			return pending()
		case '}':
			m.state = oClosed
			return complete(m.obj)
		}
		m.state = oClosed
		return reject(UnexpectedCharacter, c)
	}
	return feedTerminal("object")
}

// feedKey forwards c to the key machine.
func (m *objectMachine) feedKey(c rune) Outcome {
	switch out := m.key.Feed(c); {
	case out.Rejected():
		m.state = oClosed
		return rejectErr(out.Err())
	case out.Done():
		m.name = string(out.Value().(ast.String))
		m.key = nil
		m.state = oExpectColon
	}
	return pending()
}

// feedValue forwards c to the member value machine. As in arrayMachine, the
// provisional value is reset on every feed so that a delimiter reaching a
// mid-production number is forwarded rather than adopted.
func (m *objectMachine) feedValue(c rune) Outcome {
	switch out := m.elem.Feed(c); {
	case out.Rejected():
		m.state = oClosed
		return rejectErr(out.Err())
	case out.Done():
		m.obj = m.obj.Set(m.name, out.Value())
		m.elem, m.has = nil, false
		m.state = oExpectNext
	case out.Partial():
		m.val, m.has = out.Value(), true
	default:
		m.val, m.has = nil, false
	}
	return pending()
}

// endMember adopts the current member's provisional value at a separator.
func (m *objectMachine) endMember(c rune) Outcome {
	m.obj = m.obj.Set(m.name, m.val)
	m.elem, m.val, m.has = nil, nil, false
	if c == '}' {
		m.state = oClosed
		return complete(m.obj)
	}
	m.state = oExpectKey
	return pending()
}
