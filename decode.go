// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfsm

import (
	"bufio"
	"io"
	"strings"

	"github.com/creachadair/jfsm/ast"
)

// Decode decodes a single JSON value from r, which it reads one rune at a
// time. The input may have leading and trailing whitespace, but must
// contain exactly one JSON value. In case of a syntax error, the returned
// error has concrete type [*SyntaxError].
//
// Decode does not perform character set conversion: r must deliver UTF-8,
// which bufio decodes into the code points fed to the grammar machines.
func Decode(r io.Reader) (ast.Value, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	type heldRune struct {
		c      rune
		offset int
	}

	m := newValueMachine()
	var (
		last   Outcome    // outcome of the most recent feed
		fed    bool       // at least one code point has been fed
		ended  bool       // a partial value was ended by trailing whitespace
		hold   []heldRune // whitespace deferred while the machine is pending
		offset = -1       // rune offset of the current code point
	)
	for {
		c, _, err := br.ReadRune()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		offset++

		if !fed && isSpace(c) {
			continue // leading whitespace
		}
		if fed && (last.Done() || ended) {
			if isSpace(c) {
				continue // trailing whitespace
			}
			return nil, &SyntaxError{Kind: UnexpectedCharacter, Char: c, Offset: offset}
		}
		if fed && last.Partial() && isSpace(c) {
			// Whitespace ends a top-level number; the last partial value
			// becomes final, and only more whitespace may follow.
			ended = true
			continue
		}
		if fed && last.Pending() && isSpace(c) {
			// Possibly trailing whitespace. Defer it until the next code
			// point shows whether the input continues; whitespace still
			// pending at the end of input is stripped.
			hold = append(hold, heldRune{c, offset})
			continue
		}

		// The input continued, so deferred whitespace was interior after
		// all and belongs to the machine.
		for _, h := range hold {
			last = m.Feed(h.c)
			if last.Rejected() {
				err := last.Err()
				err.Offset = h.offset
				return nil, err
			}
		}
		hold = hold[:0]

		last = m.Feed(c)
		fed = true
		if last.Rejected() {
			err := last.Err()
			err.Offset = offset
			return nil, err
		}
	}

	// Numbers are finalized by the end of input: the machine's last partial
	// value is the result. Anything still pending never completed.
	if fed && last.hasValue() {
		return last.Value(), nil
	}
	return nil, &SyntaxError{Kind: IncompleteInput, Offset: offset + 1}
}

// DecodeString decodes a single JSON value from s.
func DecodeString(s string) (ast.Value, error) { return Decode(strings.NewReader(s)) }

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
