// Package matrix offers a generic square matrix built from vector rows.
//
// The matrix package provides:
//
//   - Matrix[T], a Size()×Size() row-major matrix whose storage is a
//     vector.Vector of vector.Vector rows. Copy, move, assignment and
//     equality are delegated to the row vectors.
//   - Two-step element access: Row/RowAt select a row, then the row's own
//     Get/Set (unchecked) or At/SetAt (checked) select the column.
//   - Scale, MulVec, Add, Sub and Mul, each returning a new value and
//     failing with ErrSizeMismatch on incompatible operands.
//   - A text codec (Fscan/Fprint) that writes one row per line.
//   - ToDense/FromDense bridges to gonum.org/v1/gonum/mat.
//
// Only square matrices are supported, with 1 ≤ Size() ≤ MaxMatrixSize.
//
// See the examples in this package for usage patterns.
package matrix
