// Package vector provides Vector, an owning, fixed-after-construction but
// resizable-on-assignment sequence of homogeneous elements.
//
// The vector package provides:
//
//   - Value semantics: Clone and Assign always deep-copy. Move transfers
//     the buffer and leaves the source empty (Size()==0). MoveAssign swaps:
//     the receiver adopts the source's buffer and the source keeps the
//     receiver's previous one.
//   - Two access paths: Get/Set/Ptr are unchecked (caller guarantees the
//     index), At/SetAt/PtrAt validate it and return ErrIndexOutOfRange.
//   - Arithmetic over the Number constraint: scalar AddScalar/SubScalar/
//     MulScalar, element-wise Add/Sub and the Dot product.
//   - A whitespace-delimited text codec (Fscan, Fprint, WriteTo).
//
// Every arithmetic function builds its result in a fresh Vector; operands
// are never mutated, and a failing call returns no result at all. Add, Sub
// and Dot reject nil operands (ErrNilVector) and moved-from operands
// (ErrInvalidSize).
//
// Sizes are bounded: 1 ≤ Size() ≤ MaxVectorSize.
package vector
