// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jfsm_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/creachadair/jfsm"
	"github.com/creachadair/jfsm/ast"
	"github.com/google/go-cmp/cmp"
	"github.com/tailscale/hujson"
)

// TestConformance cross-checks the decoder against independent JSON
// implementations: hujson standardizes each input and encoding/json decodes
// the result, and the resulting value tree must match ours.
func TestConformance(t *testing.T) {
	inputs := []string{
		`null`,
		`true`,
		`-0`,
		`1734.25`,
		`6.02e23`,
		`"a \"quoted\" string with \t and \n"`,
		`[]`,
		`[1, [2, [3, [4, []]]]]`,
		`{}`,
		`{"kind": "test", "values": [null, false, 0, "", [], {}]}`,
		`{"dup": 1, "dup": 2}`,
		`  {
		   "nested": {"deeply": {"ok": true}},
		   "list": [{"x": 1}, {"x": 2}]
		}  `,
	}

	for _, input := range inputs {
		std, err := hujson.Standardize([]byte(input))
		if err != nil {
			t.Fatalf("Standardize %#q: %v", input, err)
		}
		var want any
		if err := json.Unmarshal(std, &want); err != nil {
			t.Fatalf("Unmarshal %#q: %v", input, err)
		}

		v, err := jfsm.DecodeString(input)
		if err != nil {
			t.Errorf("Decode %#q: unexpected error: %v", input, err)
			continue
		}
		if diff := cmp.Diff(want, plain(v)); diff != "" {
			t.Errorf("Decode %#q: (-reference, +got)\n%s", input, diff)
		}
	}
}

// plain converts v to the vocabulary encoding/json uses for untyped
// decoding: nil, bool, float64, string, []any, and map[string]any.
func plain(v ast.Value) any {
	switch t := v.(type) {
	case ast.Null:
		return nil
	case ast.Bool:
		return bool(t)
	case ast.Number:
		return float64(t)
	case ast.String:
		return string(t)
	case ast.Array:
		out := make([]any, len(t))
		for i, elt := range t {
			out[i] = plain(elt)
		}
		return out
	case ast.Object:
		out := make(map[string]any, len(t))
		for _, m := range t {
			out[m.Key] = plain(m.Value)
		}
		return out
	}
	panic(fmt.Sprintf("unknown value type %T", v))
}
