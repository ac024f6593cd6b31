package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dynamat/matrix"
	"github.com/katalvlaran/dynamat/vector"
)

// ExampleMul multiplies two 2×2 matrices and prints the product row by row.
func ExampleMul() {
	a, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]int{{5, 6}, {7, 8}})

	p, _ := matrix.Mul(a, b)
	for i := 0; i < p.Size(); i++ {
		fmt.Println(p.Row(i).Slice())
	}

	// Output:
	// [19 22]
	// [43 50]
}

// ExampleMulVec shows the matrix-vector product and its size check.
func ExampleMulVec() {
	m, _ := matrix.FromRows([][]float64{{2, 0}, {0, 3}})
	v, _ := vector.FromSlice([]float64{1.5, -1}, 2)

	r, _ := matrix.MulVec(m, v)
	fmt.Println(r.Get(0), r.Get(1))

	w, _ := vector.New[float64](3)
	_, err := matrix.MulVec(m, w)
	fmt.Println(errors.Is(err, matrix.ErrSizeMismatch))

	// Output:
	// 3 -3
	// true
}

// ExampleMatrix_RowAt shows two-step checked access.
func ExampleMatrix_RowAt() {
	m, _ := matrix.New[int](3)

	row, _ := m.RowAt(1)
	_ = row.SetAt(2, 7)
	fmt.Println(m.Row(1).Get(2))

	_, err := m.RowAt(3)
	fmt.Println(errors.Is(err, matrix.ErrIndexOutOfRange))
	fmt.Println(errors.Is(row.SetAt(-1, 0), matrix.ErrIndexOutOfRange))

	// Output:
	// 7
	// true
	// true
}
