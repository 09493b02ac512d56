// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfsm

import "fmt"

// An ErrorKind classifies the reason a decode failed.
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	Invalid ErrorKind = iota // invalid error kind

	UnexpectedCharacter    // a code point no rule accepts in its current state
	ExpectedQuote          // a string did not begin with a quotation mark
	UnterminatedString     // input ended inside a string literal
	InvalidEscape          // an unrecognized backslash escape
	InvalidUnicodeEscape   // a malformed \uXXXX escape
	InvalidNumberFormat    // a malformed number
	LeadingZeroViolation   // a number with redundant leading zeroes
	MissingColon           // an object member without ":" after its key
	TrailingComma          // a comma directly before "]" or "}"
	UnexpectedCloseOrComma // a separator with no preceding element
	NoMatchingGrammar      // no grammar rule accepts the first code point
	IncompleteInput        // input ended before the value was complete
)

var kindStr = [...]string{
	Invalid: "invalid error kind",

	UnexpectedCharacter:    "unexpected character",
	ExpectedQuote:          "expected open quote",
	UnterminatedString:     "unterminated string",
	InvalidEscape:          "invalid escape",
	InvalidUnicodeEscape:   "invalid Unicode escape",
	InvalidNumberFormat:    "invalid number format",
	LeadingZeroViolation:   "extra leading zeroes",
	MissingColon:           "missing colon after object key",
	TrailingComma:          "trailing comma",
	UnexpectedCloseOrComma: "unexpected close or comma",
	NoMatchingGrammar:      "no grammar rule matches",
	IncompleteInput:        "incomplete input",
}

func (k ErrorKind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A SyntaxError reports why and where a decode failed. It is the concrete
// type of all errors reported by the decode driver.
//
// Errors constructed by a machine carry Offset -1; the decode driver stamps
// the rune offset of the code point whose feed failed before returning the
// error to its caller.
type SyntaxError struct {
	Kind   ErrorKind // the reason for the failure
	Char   rune      // the offending code point, or zero if none applies
	Offset int       // rune offset of the offending code point, or -1
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	msg := e.Kind.String()
	if e.Char != 0 {
		msg = fmt.Sprintf("%s %q", msg, e.Char)
	}
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s (offset %d)", msg, e.Offset)
	}
	return msg
}

// Is reports whether e matches target. A SyntaxError matches any
// *SyntaxError with the same kind, regardless of position, so that
//
//	errors.Is(err, &jfsm.SyntaxError{Kind: jfsm.TrailingComma})
//
// tests the kind alone.
func (e *SyntaxError) Is(target error) bool {
	t, ok := target.(*SyntaxError)
	return ok && t.Kind == e.Kind
}
