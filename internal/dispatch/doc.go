// Package dispatch resolves binary operators on the runtime kinds of both
// operands.
//
// A Table holds methods registered at (operator, left kind, right kind)
// signatures, where a signature kind may be abstract (Number, Any). Lookup
// selects the unique most-specific applicable method; no applicable method
// and incomparable ties are structured errors, mirroring how the money
// package reports arithmetic failures.
package dispatch
