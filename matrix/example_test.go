// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnet/matrix"
)

// ExampleDot multiplies two 2×2 matrices.
func ExampleDot() {
	a, _ := matrix.NewDense(2, 2, []float64{1, 2, 3, 4})
	b, _ := matrix.NewDense(2, 2, []float64{1, 1, 1, 1})

	p, _ := matrix.Dot(a, b)
	fmt.Print(p)

	// Output:
	// 3 3
	// 7 7
}

// ExampleScalarSub shows the scalar on the left: 1 - M.
func ExampleScalarSub() {
	m, _ := matrix.NewDense(2, 2, []float64{1, 2, 3, 4})

	r, _ := matrix.ScalarSub(1, m)
	fmt.Print(r)

	// Output:
	// 0 -1
	// -2 -3
}

// ExampleDense_T transposes a row vector into a column.
func ExampleDense_T() {
	row, _ := matrix.NewDense(1, 3, []float64{5, 1, 3})
	fmt.Print(row.T())

	// Output:
	// 5
	// 1
	// 3
}

// ExampleDet reports the unsupported routine as an error.
func ExampleDet() {
	m, _ := matrix.NewDense(2, 3, nil)
	_, err := matrix.Det(m)
	fmt.Println(errors.Is(err, matrix.ErrUnsupported), errors.Is(err, matrix.ErrNonSquare))

	// Output:
	// true true
}
