// Package sparsemat is a compact toolkit for exact sparse integer matrices —
// dictionary-of-keys storage, arithmetic, a line-oriented text format and
// pluggable persistence.
//
// 🚀 What is sparsemat?
//
//	A small, focused library that brings together:
//		• Core type: Matrix over int64 storing only non-zero cells
//		• Arithmetic: Add, Sub and sparsity-aware Mul, always into fresh results
//		• Text codec: the rows=/cols=/(r, c, v) format with strict validation
//		• Persistence: file and S3 backed stores behind one tiny interface
//		• Visualization: "spy" plots of the sparsity pattern
//
// ✨ Why choose sparsemat?
//
//   - Canonical by construction – a stored zero simply cannot exist
//   - Predictable costs – every operation is bounded by nnz, not rows×cols
//   - Clear failures – sentinel errors per concern, matched with errors.Is
//   - Exact values – int64 entries, no floating point surprises
//
// Everything is organized under four subpackages plus a CLI:
//
//	sparse/        — Matrix, Key, element access and the three arithmetic kernels
//	codec/         — text-format Decode/Encode and store glue (Load/Save)
//	store/         — Store interface with file and S3 implementations
//	spy/           — sparsity-pattern rendering via gonum/plot
//	cmd/sparsemat/ — prompt- or flag-driven add/subtract/multiply and spy tool
//
// Quick ASCII example, a 3×3 with two stored cells:
//
//	rows=3
//	cols=3
//	(0, 2, 7)
//	(2, 0, -1)
//
// Dive into the package docs for contracts, complexity notes and errors.
//
//	go get github.com/katalvlaran/sparsemat
package sparsemat
