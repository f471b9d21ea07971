// Package sparse implements a dictionary-of-keys (DOK) sparse matrix of
// int64 values: only non-zero entries are stored, keyed by their (row, col)
// coordinate.
//
// What:
//
//   - Matrix holds declared dimensions plus a map from Key{Row, Col} to a
//     non-zero int64 value.
//   - At / Set give O(1) element access; storing zero deletes the entry, so
//     the entry set always equals the set of non-zero cells (canonical form).
//   - Add, Sub and Mul build fresh result matrices without touching their
//     operands; union-walk addition and nnz-driven multiplication keep the
//     cost proportional to the stored entries, never to rows×cols.
//
// Why:
//
//   - Adjacency-style and tabular data are frequently > 99% zeros; a dense
//     [][]int64 wastes memory and every arithmetic pass over it wastes time.
//   - The canonical-form invariant makes equality, serialization and nnz
//     accounting trivial: what is stored is exactly what is non-zero.
//
// Complexity:
//
//   - At, Set:  O(1) expected.
//   - Add, Sub: O(nnz(a) + nnz(b)) time, O(nnz(result)) memory.
//   - Mul:      O(nnz(a) × b.Cols()) time, O(nnz(result)) memory.
//   - Keys, String: O(nnz·log nnz) (sorted enumeration).
//
// Errors:
//
//   - ErrDimensionMismatch: operand shapes incompatible for Add/Sub/Mul.
//   - ErrNilMatrix: nil receiver or operand passed to an arithmetic method.
//
// Bounds are advisory: At and Set accept any coordinate, and reads outside
// the declared shape simply return 0. See the codec package for the text
// form and the store package for persistence backends.
package sparse
