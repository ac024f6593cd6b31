// SPDX-License-Identifier: MIT

// Package vector - owning storage, lifecycle & accessors.
//
// Purpose:
//   - Own exactly one contiguous buffer of Size() elements per Vector.
//   - Never alias: Clone/Assign deep-copy, Move/MoveAssign transfer.
//   - Offer both unchecked (Get/Set/Ptr) and checked (At/SetAt/PtrAt) access.
//
// Complexity quicksheet:
//   - New/FromSlice/Clone/Assign: O(n); Move/MoveAssign/Swap: O(1); access: O(1).

package vector

// MaxVectorSize is the largest number of elements a Vector may hold.
const MaxVectorSize = 100_000_000

const (
	panicNilSource   = "vector: FromSlice: source buffer is nil"
	panicShortSource = "vector: FromSlice: source buffer shorter than requested length"
)

// Vector is an owning, homogeneous sequence of Size() elements.
//   - sz is the element count (1 ≤ sz ≤ MaxVectorSize for a live Vector).
//   - mem is the exclusively owned buffer, len(mem) == sz.
//
// The zero Vector and a moved-from Vector are empty (Size()==0, no buffer);
// they may be assigned to, compared or re-filled by MoveAssign, but must
// not be indexed.
type Vector[T any] struct {
	sz  int // element count
	mem []T // owned buffer, len == sz
}

// deepCopier is implemented by element types that own storage themselves
// (Vector values used as matrix rows). copyElems clones such elements one
// by one instead of copying their headers.
type deepCopier[T any] interface {
	deepCopy() T
}

// New allocates a Vector of size zero-valued elements.
// Implementation:
//   - Stage 1: validate 1 ≤ size ≤ MaxVectorSize.
//   - Stage 2: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidSize (wrapped with the requested size).
//
// Complexity:
//   - Time O(size), Space O(size).
func New[T any](size int) (*Vector[T], error) {
	if err := validateSize(size); err != nil {
		return nil, vectorErrorf(ctxNew, size, err)
	}

	return &Vector[T]{sz: size, mem: make([]T, size)}, nil
}

// FromSlice copies the first n elements of src into a new Vector.
// Implementation:
//   - Stage 1: src must be non-nil and hold at least n elements; a violation
//     is a programmer error and panics.
//   - Stage 2: validate n like New.
//   - Stage 3: copy src[:n] into an owned buffer.
//
// Behavior highlights:
//   - The result never aliases src.
//
// Errors:
//   - ErrInvalidSize when n is outside [1, MaxVectorSize].
//
// Complexity:
//   - Time O(n), Space O(n).
func FromSlice[T any](src []T, n int) (*Vector[T], error) {
	if src == nil {
		panic(panicNilSource)
	}
	if err := validateSize(n); err != nil {
		return nil, vectorErrorf(ctxFromSlice, n, err)
	}
	if len(src) < n {
		panic(panicShortSource)
	}
	mem := make([]T, n)
	copyElems(mem, src[:n])

	return &Vector[T]{sz: n, mem: mem}, nil
}

// validateSize enforces the size invariant shared by every constructor.
func validateSize(size int) error {
	if size <= 0 || size > MaxVectorSize {
		return ErrInvalidSize
	}

	return nil
}

// copyElems copies src into dst (equal lengths), deep-copying elements that
// own storage.
func copyElems[T any](dst, src []T) {
	if len(src) == 0 {
		return
	}
	if _, ok := any(src[0]).(deepCopier[T]); ok {
		for i := range src {
			dst[i] = any(src[i]).(deepCopier[T]).deepCopy()
		}

		return
	}
	copy(dst, src)
}

// deepCopy returns an independent copy of v by value.
func (v Vector[T]) deepCopy() Vector[T] {
	mem := make([]T, v.sz)
	copyElems(mem, v.mem)

	return Vector[T]{sz: v.sz, mem: mem}
}

// Clone returns a deep copy of v backed by a new buffer.
// Mutating either Vector afterwards never affects the other.
// Complexity: O(n).
func (v *Vector[T]) Clone() *Vector[T] {
	cp := v.deepCopy()

	return &cp
}

// Move transfers v's buffer and size into a new Vector and leaves v empty
// (Size()==0, no buffer). v must not be indexed until it is assigned again.
// Complexity: O(1).
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{sz: v.sz, mem: v.mem}
	v.sz, v.mem = 0, nil

	return out
}

// Assign makes v an element-wise copy of src.
// Implementation:
//   - Stage 1: self-assignment is a no-op.
//   - Stage 2: when sizes differ, allocate a buffer of src's size first,
//     then drop the old one; otherwise reuse the existing buffer.
//   - Stage 3: copy elements (rows are deep-copied).
//
// Behavior highlights:
//   - Never fails: a size difference resizes v.
//
// Complexity:
//   - Time O(src.Size()), Space O(src.Size()) when resizing.
func (v *Vector[T]) Assign(src *Vector[T]) {
	if v == src {
		return
	}
	if v.sz != src.sz {
		tmp := make([]T, src.sz)
		v.mem = tmp
		v.sz = src.sz
	}
	copyElems(v.mem, src.mem)
}

// MoveAssign makes v adopt src's size and buffer in O(1). The buffers are
// exchanged, so src ends up owning v's previous buffer together with its
// size and stays internally consistent.
func (v *Vector[T]) MoveAssign(src *Vector[T]) {
	if v == src {
		return
	}
	v.Swap(src)
}

// Swap exchanges the contents of v and other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.sz, other.sz = other.sz, v.sz
	v.mem, other.mem = other.mem, v.mem
}

// Size returns the element count. Complexity: O(1).
func (v *Vector[T]) Size() int { return v.sz }

// Get returns element i without a bounds contract of its own: the caller
// guarantees 0 ≤ i < Size(). Use At for validated access.
func (v *Vector[T]) Get(i int) T { return v.mem[i] }

// Set stores x at i. Unchecked, see Get.
func (v *Vector[T]) Set(i int, x T) { v.mem[i] = x }

// Ptr returns a pointer to element i for in-place updates. Unchecked, see Get.
func (v *Vector[T]) Ptr(i int) *T { return &v.mem[i] }

// checkIndex validates 0 ≤ i < Size().
func (v *Vector[T]) checkIndex(i int) error {
	if i < 0 || i >= v.sz {
		return ErrIndexOutOfRange
	}

	return nil
}

// At returns element i or ErrIndexOutOfRange.
// Negative indices are rejected like indices ≥ Size().
// Complexity: O(1).
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.checkIndex(i); err != nil {
		var zero T
		return zero, vectorErrorf(ctxAt, i, err)
	}

	return v.mem[i], nil
}

// SetAt stores x at i or returns ErrIndexOutOfRange without writing.
func (v *Vector[T]) SetAt(i int, x T) error {
	if err := v.checkIndex(i); err != nil {
		return vectorErrorf(ctxSetAt, i, err)
	}
	v.mem[i] = x

	return nil
}

// PtrAt returns a pointer to element i or ErrIndexOutOfRange.
func (v *Vector[T]) PtrAt(i int) (*T, error) {
	if err := v.checkIndex(i); err != nil {
		return nil, vectorErrorf(ctxPtrAt, i, err)
	}

	return &v.mem[i], nil
}

// Slice returns a copy of the elements. The result never aliases v.
func (v *Vector[T]) Slice() []T {
	out := make([]T, v.sz)
	copyElems(out, v.mem)

	return out
}

// EqualFunc reports whether v and other have the same size and eq holds
// for every pair of elements at the same index. Both must be non-nil.
// Complexity: O(n).
func (v *Vector[T]) EqualFunc(other *Vector[T], eq func(a, b T) bool) bool {
	if v.sz != other.sz {
		return false
	}
	for i := 0; i < v.sz; i++ {
		if !eq(v.mem[i], other.mem[i]) {
			return false
		}
	}

	return true
}

// Equal reports whether a and b have the same size and pairwise equal elements.
// A nil operand is a programmer error and panics.
func Equal[T comparable](a, b *Vector[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}
