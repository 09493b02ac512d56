// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfsm

import (
	"strings"

	"github.com/creachadair/jfsm/ast"
)

// A stringMachine decodes a JSON string literal, including the enclosing
// quotation marks. Escape sequences are resolved as they arrive, so the
// machine accumulates the already-decoded text.
type stringMachine struct {
	state stringState
	sb    strings.Builder
	hex   rune // value of the \uXXXX escape being accumulated
	nhex  int  // number of hex digits consumed so far
}

type stringState byte

const (
	sExpectQuote stringState = iota // awaiting the opening quote
	sInBody                         // inside the string body
	sInEscape                       // after a backslash
	sInUnicode                      // inside the digits of a \uXXXX escape
	sClosed                         // terminal
)

func newString() *stringMachine { return new(stringMachine) }

// Feed implements part of the Machine interface.
func (m *stringMachine) Feed(c rune) Outcome {
	switch m.state {
	case sExpectQuote:
		if c != '"' {
			m.state = sClosed
			return reject(ExpectedQuote, c)
		}
		m.state = sInBody
		return pending()

	case sInBody:
		switch c {
		case '"':
			m.state = sClosed
			return complete(ast.String(m.sb.String()))
		case '\\':
			m.state = sInEscape
		default:
			m.sb.WriteRune(c)
		}
		return pending()

	case sInEscape:
		switch c {
		case '"', '\\', '/':
			m.sb.WriteRune(c)
		case 'b':
			m.sb.WriteByte('\b')
		case 'f':
			m.sb.WriteByte('\f')
		case 'n':
			m.sb.WriteByte('\n')
		case 'r':
			m.sb.WriteByte('\r')
		case 't':
			m.sb.WriteByte('\t')
		case 'u':
			m.state = sInUnicode
			m.hex, m.nhex = 0, 0
			return pending()
		default:
			m.state = sClosed
			return reject(InvalidEscape, c)
		}
		m.state = sInBody
		return pending()

	case sInUnicode:
		d, ok := hexValue(c)
		if !ok {
			m.state = sClosed
			return reject(InvalidUnicodeEscape, c)
		}
		m.hex = m.hex<<4 | d
		m.nhex++
		if m.nhex == 4 {
			// Each \uXXXX escape decodes independently; the halves of a
			// surrogate pair are not combined, and a lone surrogate half is
			// stored as U+FFFD.
			m.sb.WriteRune(m.hex)
			m.state = sInBody
		}
		return pending()
	}
	return feedTerminal("string")
}

func hexValue(c rune) (rune, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
