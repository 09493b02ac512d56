// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package escape encodes strings for inclusion in JSON text.
package escape

import (
	"strings"

	"go4.org/mem"
)

var shortEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

const hexDigit = "0123456789abcdef"

// Quote encodes src as a JSON string literal, including the enclosing
// double quotation marks.
func Quote(src mem.RO) string {
	var sb strings.Builder
	sb.Grow(src.Len() + 2)
	sb.WriteByte('"')
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)
		switch {
		case r == '"' || r == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(byte(r))
		case r < ' ':
			if b := shortEsc[r]; b != 0 {
				sb.WriteByte('\\')
				sb.WriteByte(b)
			} else {
				sb.WriteString(`\u00`)
				sb.WriteByte(hexDigit[r>>4])
				sb.WriteByte(hexDigit[r&15])
			}
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
