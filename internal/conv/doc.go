// Package conv collects tiny helper functions that are not part of the public API
// but aid internal conversions.
//
// Its main use is coercing JSON-RPC request ids, which arrive as strings or
// assorted numeric types, into the canonical string form used as a correlation key.
package conv
