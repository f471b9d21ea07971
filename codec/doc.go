// Package codec reads and writes the textual matrix format.
//
// The format is line-oriented:
//
//	rows=<integer>
//	cols=<integer>
//	(<row>, <col>, <value>)
//	(<row>, <col>, <value>)
//	...
//
// Blank lines are ignored everywhere. The two header lines are mandatory,
// in that order, as the first two non-blank lines. Every further non-blank
// line must be exactly three comma-separated integers in parentheses; any
// deviation fails with ErrFormat. Entries are applied in file order through
// sparse.Matrix.Set, so later duplicates overwrite earlier ones and a zero
// value removes the cell.
//
// Encode emits the canonical form: header lines, then stored entries sorted
// ascending by (row, col), one per line, no trailing newline.
//
// Load and Save glue the codec to a store.Store; storage failures surface
// as store.ErrStorage, format failures as ErrFormat — the two kinds never
// mix.
package codec
