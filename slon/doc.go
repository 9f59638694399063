// Package slon implements SLON, a compact human-readable notation for
// structured data.
//
// SLON is an alternative to JSON-style notations:
//   - Objects use parentheses instead of braces
//   - Array elements are separated by pipes instead of commas
//   - Strings may be single-quoted, double-quoted, or bare words
//   - UTC timestamps are first-class values with a fixed layout
//
// # Data Model
//
// Scalars: null, bool, number (float64), string, date (UTC, millisecond)
// Containers: array (ordered), object (string keys, ascending key order)
//
// # Syntax
//
//	Object:  (status: ok, count: 3)
//	Array:   [1 | 2 | 3]
//	String:  'quoted', "quoted", or bare_word
//	Date:    2024-03-01/18:22:10.001
//	Null:    null
//	Bool:    true / false
//
// # Example
//
//	(
//	  name: 'deploy-7',
//	  ok: true,
//	  started: 2024-03-01/18:22:10.001,
//	  hosts: [web-1 | web-2 | web-3]
//	)
//
// # Usage
//
// Decode turns SLON text into a *Value; Encode renders a *Value back to
// text. Encoding is deterministic: object keys are emitted in ascending
// order and numbers use the shortest representation that round-trips.
//
//	v, err := slon.Decode("(count: 3)")
//	text := slon.Encode(v)
//
// Decoding stops at the first malformed token and reports the byte offset
// of the failure. There is no recovery mode and no configuration surface.
package slon
