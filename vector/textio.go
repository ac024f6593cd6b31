// SPDX-License-Identifier: MIT

// Package vector: whitespace-delimited text codec.
//
// Wire contract (defaults):
//   - Fprint emits exactly Size() tokens, each followed by a single space,
//     with no trailing line break.
//   - Fscan consumes exactly Size() whitespace-separated tokens into the
//     existing buffer; it never resizes.

package vector

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Compile-time assertions for io.WriterTo & fmt.Stringer conformance.
var (
	_ io.WriterTo  = (*Vector[int])(nil)
	_ fmt.Stringer = (*Vector[int])(nil)
)

// Fscan reads Size() whitespace-separated tokens from r into v.
// Implementation:
//   - Stage 1: parse every token into a scratch buffer with fmt.Fscan.
//   - Stage 2: commit the scratch buffer only when all tokens parsed.
//
// Behavior highlights:
//   - A failed read leaves v unchanged; the reader may have been advanced.
//   - fmt.Fscan may consume one extra rune after a token when r is not an
//     io.RuneScanner. Pass a *bufio.Reader or *strings.Reader when several
//     reads share one stream and tokens could be adjacent to non-whitespace.
//
// Errors:
//   - the fmt scan error for the first bad token, wrapped with its index.
//
// Complexity:
//   - Time O(n), Space O(n).
func (v *Vector[T]) Fscan(r io.Reader) error {
	tmp := make([]T, v.sz)
	for i := range tmp {
		if _, err := fmt.Fscan(r, &tmp[i]); err != nil {
			return vectorErrorf(ctxFscan, i, err)
		}
	}
	copy(v.mem, tmp)

	return nil
}

// Fprint writes every element followed by the separator (default one space)
// and returns the number of bytes that reached w, so a failed flush never
// over-reports.
// Complexity: O(n).
func (v *Vector[T]) Fprint(w io.Writer, opts ...Option) (int, error) {
	o := GatherOptions(opts...)
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	for i := 0; i < v.sz; i++ {
		if _, err := fmt.Fprintf(bw, o.verb, v.mem[i]); err != nil {
			return cw.n, err
		}
		if _, err := bw.WriteString(o.separator); err != nil {
			return cw.n, err
		}
	}
	err := bw.Flush()

	return cw.n, err
}

// countingWriter counts the bytes its underlying writer accepted.
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n

	return n, err
}

// WriteTo writes v with the default codec. It implements io.WriterTo.
func (v *Vector[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := v.Fprint(w)

	return int64(n), err
}

// String renders v with the default codec, for diagnostics.
func (v *Vector[T]) String() string {
	var b strings.Builder
	_, _ = v.Fprint(&b)

	return b.String()
}
