// Package money implements exact arithmetic on non-decimal denominated
// amounts, such as pre-decimal sterling (pounds, shillings, pence).
//
// An Amount is an immutable, non-negative quantity in one System. A System
// is an ordered table of units with carry bases: 20 shillings to the pound,
// 12 pence to the shilling for the built-in sterling system. Construction
// normalizes by carrying overflowing fields into the next higher unit, and
// rejects negative fields; all arithmetic is exact and errors instead of
// going negative, wrapping, or crossing systems.
package money
