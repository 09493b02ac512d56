// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfsm

import "github.com/creachadair/jfsm/ast"

// An arrayMachine decodes a JSON array, spawning one fresh value machine for
// each element.
//
// The separators "," and "]" require care: a number gives no other sign that
// it has ended, so the machine inspects them before forwarding. While the
// current element has no value yet they belong to the element itself (a
// nested array or object); once the element has a value they end it.
type arrayMachine struct {
	state arrState
	elem  Machine   // machine for the element being decoded
	val   ast.Value // provisional value of the current element
	has   bool      // whether val is valid
	vals  ast.Array
}

type arrState byte

const (
	aExpectOpen    arrState = iota // awaiting "["
	aExpectFirst                   // awaiting the first element or "]"
	aExpectElement                 // awaiting an element after ","
	aInElement                     // feeding the current element machine
	aExpectNext                    // awaiting "," or "]" after an element
	aClosed                        // terminal
)

func newArray() *arrayMachine { return &arrayMachine{vals: ast.Array{}} }

// Feed implements part of the Machine interface.
func (m *arrayMachine) Feed(c rune) Outcome {
	switch m.state {
	case aExpectOpen:
		if c != '[' {
			m.state = aClosed
			return reject(UnexpectedCharacter, c)
		}
		m.state = aExpectFirst
		return pending()

	case aExpectFirst, aExpectElement:
		if isSpace(c) {
			return pending()
		}
		switch c {
		case ']':
			if m.state == aExpectElement {
				m.state = aClosed
				return reject(TrailingComma, c)
			}
			m.state = aClosed
			return complete(m.vals)
		case ',':
			m.state = aClosed
			return reject(UnexpectedCloseOrComma, c)
		}
		m.elem, m.val, m.has = newValueMachine(), nil, false
		m.state = aInElement
		return m.feedElement(c)

	case aInElement:
		if m.has && (c == ',' || c == ']') {
			return m.endElement(c)
		}
		if m.has && isSpace(c) {
			// Whitespace after a value ends it; the separator comes later.
			m.vals = append(m.vals, m.val)
			m.elem, m.has = nil, false
			m.state = aExpectNext
			return pending()
		}
		return m.feedElement(c)

	case aExpectNext:
		if isSpace(c) {
			return pending()
		}
		switch c {
		case ',':
			m.state = aExpectElement
			return pending()
		case ']':
			m.state = aClosed
			return complete(m.vals)
		}
		m.state = aClosed
		return reject(UnexpectedCharacter, c)
	}
	return feedTerminal("array")
}

// feedElement forwards c to the current element machine. The provisional
// value is reset on every feed: a Pending outcome means the element grammar
// is mid-production (a number inside a fraction or exponent), and a
// delimiter arriving in that state must be forwarded, not adopted.
func (m *arrayMachine) feedElement(c rune) Outcome {
	switch out := m.elem.Feed(c); {
	case out.Rejected():
		m.state = aClosed
		return rejectErr(out.Err())
	case out.Done():
		m.vals = append(m.vals, out.Value())
		m.elem, m.has = nil, false
		m.state = aExpectNext
	case out.Partial():
		m.val, m.has = out.Value(), true
	default:
		m.val, m.has = nil, false
	}
	return pending()
}

// endElement adopts the current element's provisional value at a separator.
func (m *arrayMachine) endElement(c rune) Outcome {
	m.vals = append(m.vals, m.val)
	m.elem, m.val, m.has = nil, nil, false
	if c == ']' {
		m.state = aClosed
		return complete(m.vals)
	}
	m.state = aExpectElement
	return pending()
}
