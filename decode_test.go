// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfsm_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jfsm"
	"github.com/creachadair/jfsm/ast"
	"github.com/google/go-cmp/cmp"
)

func TestDecodeValid(t *testing.T) {
	tests := []struct {
		input string
		want  ast.Value
	}{
		// Constants. Each decodes to a real value, distinct from "no value".
		{`null`, ast.Null{}},
		{`false`, ast.Bool(false)},
		{`true`, ast.Bool(true)},

		// Numbers.
		{`0`, ast.Number(0)},
		{`-15`, ast.Number(-15)},
		{`0.25`, ast.Number(0.25)},
		{`3.25e-5`, ast.Number(3.25e-5)},
		{`5e+9`, ast.Number(5e+9)},
		{`0e2`, ast.Number(0)},
		{`-0.001E-100`, ast.Number(-0.001e-100)},
		{"  42\n", ast.Number(42)},

		// Strings.
		{`""`, ast.String("")},
		{`"a b c"`, ast.String("a b c")},
		{`"\"\\\/\b\f\n\r\t"`, ast.String("\"\\/\b\f\n\r\t")},
		{`"•"`, ast.String("•")},
		{`"\u2022"`, ast.String("•")},
		{`"\u0041\u00e9"`, ast.String("Aé")},

		// Unicode escapes decode one code point each; surrogate halves are
		// not paired, so each degrades to U+FFFD.
		{`"\ud83d\ude00"`, ast.String("\ufffd\ufffd")},

		// Arrays.
		{`[]`, ast.Array{}},
		{`[ ]`, ast.Array{}},
		{`[1,2,3]`, ast.Array{ast.Number(1), ast.Number(2), ast.Number(3)}},
		{`[1 , 2]`, ast.Array{ast.Number(1), ast.Number(2)}},
		{`[ ["nested array"], 1]`, ast.Array{
			ast.Array{ast.String("nested array")},
			ast.Number(1),
		}},
		{`[[],[[]]]`, ast.Array{ast.Array{}, ast.Array{ast.Array{}}}},
		{`[true,null,"x"]`, ast.Array{ast.Bool(true), ast.Null{}, ast.String("x")}},

		// Objects.
		{`{}`, ast.Object{}},
		{`{ "one" : 1 }`, ast.Object{{Key: "one", Value: ast.Number(1)}}},
		{`{"a":1,"a":2}`, ast.Object{{Key: "a", Value: ast.Number(2)}}},
		{`{"a": true, "b":[null, 1, 0.5]}`, ast.Object{
			{Key: "a", Value: ast.Bool(true)},
			{Key: "b", Value: ast.Array{ast.Null{}, ast.Number(1), ast.Number(0.5)}},
		}},
		{`{"x": {"y": [[]]}}`, ast.Object{
			{Key: "x", Value: ast.Object{
				{Key: "y", Value: ast.Array{ast.Array{}}},
			}},
		}},
	}

	for _, test := range tests {
		got, err := jfsm.DecodeString(test.input)
		if err != nil {
			t.Errorf("Decode %#q: unexpected error: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Decode %#q: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		input string
		want  jfsm.ErrorKind
	}{
		// Leading zeroes.
		{`01`, jfsm.LeadingZeroViolation},
		{`00`, jfsm.LeadingZeroViolation},
		{`-01`, jfsm.LeadingZeroViolation},

		// Malformed numbers.
		{`1..2`, jfsm.InvalidNumberFormat},
		{`1e-0.2`, jfsm.InvalidNumberFormat},
		{`1ee4`, jfsm.InvalidNumberFormat},
		{`-x`, jfsm.InvalidNumberFormat},
		{`1.e4`, jfsm.InvalidNumberFormat},

		// A number whose grammar never completed.
		{`0.01e`, jfsm.IncompleteInput},
		{`-`, jfsm.IncompleteInput},
		{`1.`, jfsm.IncompleteInput},
		{"1. ", jfsm.IncompleteInput},
		{"0.01e \n", jfsm.IncompleteInput},

		// A delimiter or space reaching a mid-production number is forwarded
		// into the number machine, which rejects it.
		{`[1.]`, jfsm.InvalidNumberFormat},
		{`[1e]`, jfsm.InvalidNumberFormat},
		{`[1e+]`, jfsm.InvalidNumberFormat},
		{`[0e]`, jfsm.InvalidNumberFormat},
		{`[1.,2]`, jfsm.InvalidNumberFormat},
		{`[1. ]`, jfsm.InvalidNumberFormat},
		{`{"a":1.}`, jfsm.InvalidNumberFormat},
		{`{"a":1e,"b":2}`, jfsm.InvalidNumberFormat},

		// Strings.
		{`"\k"`, jfsm.InvalidEscape},
		{`"\u12g4"`, jfsm.InvalidUnicodeEscape},
		{`"abc`, jfsm.IncompleteInput},
		{`"abc `, jfsm.IncompleteInput},
		{`{1: 2}`, jfsm.ExpectedQuote},

		// Arrays and objects.
		{`[1,]`, jfsm.TrailingComma},
		{`{"a":1,}`, jfsm.TrailingComma},
		{`[,1]`, jfsm.UnexpectedCloseOrComma},
		{`[,]`, jfsm.UnexpectedCloseOrComma},
		{`{,}`, jfsm.UnexpectedCloseOrComma},
		{`[1,,2]`, jfsm.UnexpectedCloseOrComma},
		{`{"a" 1}`, jfsm.MissingColon},
		{`[1}`, jfsm.InvalidNumberFormat}, // "}" forwarded into the number
		{`[1 2]`, jfsm.UnexpectedCharacter},
		{`{"a":1 "b":2}`, jfsm.UnexpectedCharacter},
		{`[1`, jfsm.IncompleteInput},
		{`{"a":`, jfsm.IncompleteInput},

		// Constants.
		{`trux`, jfsm.UnexpectedCharacter},
		{`falze`, jfsm.UnexpectedCharacter},
		{`nul`, jfsm.IncompleteInput},

		// Nothing matches.
		{`.45`, jfsm.NoMatchingGrammar},
		{`@`, jfsm.NoMatchingGrammar},

		// Empty and trailing input.
		{``, jfsm.IncompleteInput},
		{"  \t\n", jfsm.IncompleteInput},
		{`1 2`, jfsm.UnexpectedCharacter},
		{`"a" true`, jfsm.UnexpectedCharacter},
		{`[] []`, jfsm.UnexpectedCharacter},
	}

	for _, test := range tests {
		got, err := jfsm.DecodeString(test.input)
		if err == nil {
			t.Errorf("Decode %#q: got %+v, want %v error", test.input, got, test.want)
			continue
		}
		if !errors.Is(err, &jfsm.SyntaxError{Kind: test.want}) {
			t.Errorf("Decode %#q: got error %v, want kind %v", test.input, err, test.want)
		}
	}
}

func TestDecodeOffsets(t *testing.T) {
	tests := []struct {
		input string
		want  int // rune offset reported in the error
	}{
		{`[1,]`, 3},
		{`{"a":1,}`, 7},
		{`01`, 1},
		{`"\k"`, 2},
		{`  @`, 2},
		{`"a" true`, 4},
		{`[1`, 2},   // where more input was expected
		{``, 0},     // ditto
		{"1. ", 3},  // trailing whitespace is stripped, not fed
		{`[1.]`, 3}, // the "]" rejected inside the number
		{`"日本\k"`, 4}, // offsets count code points, not bytes
	}
	for _, test := range tests {
		_, err := jfsm.DecodeString(test.input)
		var serr *jfsm.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Decode %#q: got %v, want a syntax error", test.input, err)
			continue
		}
		if serr.Offset != test.want {
			t.Errorf("Decode %#q: got offset %d, want %d (error: %v)",
				test.input, serr.Offset, test.want, serr)
		}
	}
}

// Decoding is deterministic: the same text always produces an equal value
// or the same error kind.
func TestDecodeDeterminism(t *testing.T) {
	inputs := []string{
		`{"a": [1, 2.5, "three"], "b": null}`,
		`[0, -1, {"x": true}]`,
		`[1,]`,
		`{"a" 1}`,
		`nulx`,
	}
	for _, input := range inputs {
		v1, err1 := jfsm.DecodeString(input)
		v2, err2 := jfsm.DecodeString(input)
		if (err1 == nil) != (err2 == nil) {
			t.Errorf("Decode %#q: inconsistent errors: %v, %v", input, err1, err2)
			continue
		}
		if err1 != nil {
			if !errors.Is(err1, err2) {
				t.Errorf("Decode %#q: error %v != %v", input, err1, err2)
			}
			continue
		}
		if diff := cmp.Diff(v1, v2); diff != "" {
			t.Errorf("Decode %#q: values differ: (-first, +second)\n%s", input, diff)
		}
	}
}

// A decoded value re-encodes to text that decodes to an equal value.
func TestDecodeReencode(t *testing.T) {
	inputs := []string{
		`null`,
		`-3.75`,
		`"a \"quoted\" string\n"`,
		`[1,[2,[3,[]]]]`,
		`{"a":{"b":[true,false,null]},"c":"d"}`,
	}
	for _, input := range inputs {
		v1, err := jfsm.DecodeString(input)
		if err != nil {
			t.Errorf("Decode %#q: unexpected error: %v", input, err)
			continue
		}
		v2, err := jfsm.DecodeString(v1.JSON())
		if err != nil {
			t.Errorf("Decode %#q: unexpected error: %v", v1.JSON(), err)
			continue
		}
		if diff := cmp.Diff(v1, v2); diff != "" {
			t.Errorf("Reencode %#q: (-decoded, +redecoded)\n%s", input, diff)
		}
	}
}
