// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfsm

import (
	"fmt"
	"strconv"

	"github.com/creachadair/jfsm/ast"
)

// A numberMachine decodes a JSON number. Numbers have no terminating
// character, so the machine cannot decide on its own when it is finished:
// every digit it accepts yields a Partial outcome carrying the value of the
// digits so far, and the caller stops feeding it when a structural delimiter
// or the end of input arrives, adopting the last Partial value as final.
type numberMachine struct {
	state numState
	buf   []byte // the accepted text of the number
}

type numState byte

const (
	nStart   numState = iota // nothing consumed yet
	nSign                    // consumed a leading "-"
	nZero                    // the integer part is a bare "0"
	nInt                     // inside a nonzero integer part
	nFrac                    // consumed "."; a fraction digit is required
	nFracDig                 // inside the fraction digits
	nExp                     // consumed "e" or "E"; a sign or digit is required
	nExpSign                 // consumed the exponent sign; a digit is required
	nExpDig                  // inside the exponent digits
	nDead                    // terminal
)

func newNumber() *numberMachine { return new(numberMachine) }

// Feed implements part of the Machine interface.
func (m *numberMachine) Feed(c rune) Outcome {
	switch m.state {
	case nStart:
		if c == '-' {
			m.keep(c, nSign)
			return pending()
		}
		return m.intStart(c)

	case nSign:
		return m.intStart(c)

	case nZero:
		// A digit directly after a bare "0" integer part violates the
		// leading-zero rule: the integer part is a single 0 or starts nonzero.
		if isDigit(c) {
			m.state = nDead
			return reject(LeadingZeroViolation, c)
		}
		return m.afterInt(c)

	case nInt:
		if isDigit(c) {
			m.keep(c, nInt)
			return m.value()
		}
		return m.afterInt(c)

	case nFrac:
		if !isDigit(c) {
			m.state = nDead
			return reject(InvalidNumberFormat, c)
		}
		m.keep(c, nFracDig)
		return m.value()

	case nFracDig:
		if isDigit(c) {
			m.keep(c, nFracDig)
			return m.value()
		} else if c == 'e' || c == 'E' {
			m.keep(c, nExp)
			return pending()
		}
		m.state = nDead
		return reject(InvalidNumberFormat, c)

	case nExp:
		if c == '-' || c == '+' {
			m.keep(c, nExpSign)
			return pending()
		}
		fallthrough

	case nExpSign:
		if !isDigit(c) {
			m.state = nDead
			return reject(InvalidNumberFormat, c)
		}
		m.keep(c, nExpDig)
		return m.value()

	case nExpDig:
		if isDigit(c) {
			m.keep(c, nExpDig)
			return m.value()
		}
		m.state = nDead
		return reject(InvalidNumberFormat, c)
	}
	return feedTerminal("number")
}

// intStart consumes the first digit of the integer part.
func (m *numberMachine) intStart(c rune) Outcome {
	if !isDigit(c) {
		m.state = nDead
		return reject(InvalidNumberFormat, c)
	}
	if c == '0' {
		m.keep(c, nZero)
	} else {
		m.keep(c, nInt)
	}
	return m.value()
}

// afterInt consumes the first code point after a complete integer part.
func (m *numberMachine) afterInt(c rune) Outcome {
	switch {
	case c == '.':
		m.keep(c, nFrac)
	case c == 'e' || c == 'E':
		m.keep(c, nExp)
	default:
		m.state = nDead
		return reject(InvalidNumberFormat, c)
	}
	return pending()
}

func (m *numberMachine) keep(c rune, next numState) {
	m.buf = append(m.buf, byte(c))
	m.state = next
}

// value interprets the accepted digits as a provisional number.
func (m *numberMachine) value() Outcome {
	v, err := strconv.ParseFloat(string(m.buf), 64)
	if err != nil {
		// The state machine admits only prefixes ParseFloat accepts.
		panic(fmt.Sprintf("unparseable number %q: %v", m.buf, err))
	}
	return partial(ast.Number(v))
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }
