// SPDX-License-Identifier: MIT

// Package matrix: whitespace-delimited text codec.
//
// Wire contract (defaults):
//   - Fprint emits Size() rows in order; each row is written by the row
//     vector's own codec and followed by a line feed.
//   - Fscan performs Size() row reads in order, never resizing.

package matrix

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/dynamat/vector"
)

// Compile-time assertions for io.WriterTo & fmt.Stringer conformance.
var (
	_ io.WriterTo  = (*Matrix[int])(nil)
	_ fmt.Stringer = (*Matrix[float64])(nil)
)

// Fscan reads Size() rows of Size() tokens each from r into m.
// Implementation:
//   - Stage 1: read every row into a clone of m.
//   - Stage 2: swap the clone's rows in only when all rows were read.
//
// Behavior highlights:
//   - A failed read leaves m unchanged.
//   - See vector.Vector.Fscan for reader buffering notes.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Matrix[T]) Fscan(r io.Reader) error {
	tmp := m.Clone()
	for i := 0; i < tmp.Size(); i++ {
		if err := tmp.Row(i).Fscan(r); err != nil {
			return matrixErrorf(ctxFscan, i, err)
		}
	}
	m.rows.MoveAssign(&tmp.rows)

	return nil
}

// Fprint writes every row followed by the row terminator (default "\n")
// and returns the number of bytes written.
func (m *Matrix[T]) Fprint(w io.Writer, opts ...Option) (int, error) {
	term := vector.GatherOptions(opts...).RowTerminator()
	var (
		total, n int
		err      error
	)
	for i := 0; i < m.Size(); i++ {
		if n, err = m.Row(i).Fprint(w, opts...); err != nil {
			return total + n, err
		}
		total += n
		if n, err = io.WriteString(w, term); err != nil {
			return total + n, err
		}
		total += n
	}

	return total, nil
}

// WriteTo writes m with the default codec. It implements io.WriterTo.
func (m *Matrix[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := m.Fprint(w)

	return int64(n), err
}

// String renders m with the default codec, for diagnostics.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	_, _ = m.Fprint(&b)

	return b.String()
}
