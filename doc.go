// Package dynamat is a small generic container library: an owning vector
// and a square matrix built from it, both with value semantics and
// arithmetic over any numeric element type.
//
// What is inside?
//
//	• vector/: Vector[T]: owning buffer, deep copy / O(1) move, checked and
//	           unchecked access, scalar ops, element-wise Add/Sub, Dot
//	• matrix/: Matrix[T]: Size()×Size() rows of Vector[T], two-step access,
//	           Scale, MulVec, Add, Sub, Mul, gonum interop
//
// Both containers read and write a whitespace-delimited text form:
//
//	1 2 3 	← vector: every element followed by one space
//	1 2
//	3 4 	← matrix: one row per line
//
// Errors are package sentinels (ErrInvalidSize, ErrIndexOutOfRange,
// ErrSizeMismatch) matched with errors.Is; arithmetic never mutates its
// operands and never returns a partial result.
//
//	go get github.com/katalvlaran/dynamat
package dynamat
