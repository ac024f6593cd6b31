// SPDX-License-Identifier: MIT

package vector

// Test-Bridge (White-Box) for storage identity checks.
//
// Purpose:
//   - Let vector_test (and only tests) observe buffer identity, which the
//     public API deliberately hides.

// SameStorage_TestOnly reports whether a and b are backed by the same buffer.
func SameStorage_TestOnly[T any](a, b *Vector[T]) bool {
	if len(a.mem) == 0 || len(b.mem) == 0 {
		return false
	}

	return &a.mem[0] == &b.mem[0]
}

// HasBuffer_TestOnly reports whether v currently owns a buffer.
func HasBuffer_TestOnly[T any](v *Vector[T]) bool {
	return v.mem != nil
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicNilSource_TestOnly            = panicNilSource
	PanicShortSource_TestOnly          = panicShortSource
	PanicSeparatorInvalid_TestOnly     = panicSeparatorInvalid
	PanicRowTerminatorInvalid_TestOnly = panicRowTerminatorInvalid
	PanicVerbInvalid_TestOnly          = panicVerbInvalid
)
