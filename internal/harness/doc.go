// Package harness runs YAML-defined evaluation scenarios end to end.
//
// A scenario names a denomination system and a list of expressions to
// evaluate. Each step can pin the expected rendering or the expected
// error code, and whole runs can be snapshotted against golden files so
// a change in rendering or dispatch behaviour shows up as a diff rather
// than a silent drift.
package harness
