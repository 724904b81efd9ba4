// Package ledger provides durable storage for a book of credits and
// debits in denominated money.
//
// Entries are append-only, stamped with a monotonic seq for exact
// ordering, and stored as minor-unit totals in SQLite. Debits that would
// take a system's balance below zero are rejected, extending the money
// package's non-negativity to the stored book.
package ledger
