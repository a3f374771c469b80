// Package ident expands compact job, e-report and drawing identifiers into the
// full list of concrete identifiers they stand for.
//
//	Overview
//
// Users type short tokens on the command line. A token is either a single
// identifier or a range, and a range may elide the leading digits its end
// shares with its start:
//
//   - "123"      → 123
//   - "123-456"  → 123, 124, ..., 456
//   - "120-45"   → 120, 121, ..., 145 (the end borrows "1" from the start)
//   - "1-20"     → 1, 2, ..., 20 (a longer end is taken literally)
//   - "A1-A9"    → A1, A2, ..., A9 (drawing identifiers keep their prefix)
//
//	Variants
//
// Numeric identifiers (job and e-report numbers) are digits only. Drawing
// identifiers are an optional letter prefix followed by digits. The end of a
// drawing range may repeat the prefix; it is ignored and the start's prefix,
// uppercased, is attached to every expanded identifier.
//
//	Carry
//
// Numeric tokens are also shortened relative to the previous token. A
// [Carry] remembers the last identifier emitted and left-pads any shorter
// number with its leading digits:
//
//   - "1234" then "45"    → 1234, 1245
//   - "1234" then "23-25" → 1234, 1223, 1224, 1225
//   - "1234" then "1-5"   → 1234, 1231, ..., 1235
//
// The start of a range is fixed against the carry and the end is fixed
// against the fixed start. After each token the carry holds the last value it
// produced.
//
//	Errors
//
// Text that is not a valid unsigned number yields a [*ParseError]. A range
// whose end ends up below its start yields a [*InvalidRangeError]; bounds are
// never swapped. Both wrap sentinels so callers can use errors.Is.
//
// All processing is pure and synchronous. An [Expander] is not safe for
// concurrent use; create one per ordered token list.
package ident
