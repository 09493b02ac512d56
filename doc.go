// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jfsm implements an incremental JSON decoder assembled from
// per-rule state machines.
//
// # Machines
//
// Each rule of the JSON grammar (string, number, array, object, the
// constants, and the value rule that unites them) is implemented by a
// Machine, a plain state holder that consumes exactly one Unicode code point
// per call to its Feed method. Feeding a machine returns an Outcome
// reporting whether the machine needs more input (Pending), holds a
// provisional value that further input may extend (Partial, produced only
// while decoding numbers), has completed a value (Done), or has rejected the
// input (Rejected). A machine that reports Done or Rejected is terminal and
// must not be fed again.
//
// Composite machines drive their children synchronously: an array or object
// machine spawns a fresh value machine for each element it decodes, and a
// value machine chooses among the grammar alternatives by feeding the first
// code point to all of them and keeping the sole survivor.
//
// # Decoding
//
// Most callers decode whole inputs with Decode or DecodeString:
//
//	v, err := jfsm.DecodeString(`{"a": [1, 2, 3]}`)
//	if err != nil {
//	   log.Fatalf("Decode failed: %v", err)
//	}
//	fmt.Println(v.JSON())
//
// The result is an ast.Value. In case of error, the returned error has
// concrete type [*SyntaxError] and carries the reason for the failure along
// with the offending code point and its rune offset in the input.
//
// To drive decoding one code point at a time, construct a machine with
// NewValue and feed it directly:
//
//	m := jfsm.NewValue()
//	for _, c := range input {
//	   out := m.Feed(c)
//	   if out.Final() {
//	      break
//	   }
//	}
//
// Feeding machines directly leaves whitespace and end-of-input handling to
// the caller; Decode takes care of both.
package jfsm
