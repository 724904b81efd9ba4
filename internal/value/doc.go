// Package value defines the evaluator's runtime values and their kinds.
//
// Value is a sealed union over Int, Bool, Text, and Money. Kinds form a
// small fixed hierarchy with abstract nodes (Any, Number) that organize
// dispatch and concrete leaves that actual values carry. Kind assertions
// (AsInt, AsMoney, ...) fail with a structured KindError rather than
// panicking.
package value
