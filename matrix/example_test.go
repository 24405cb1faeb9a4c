// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/quansim/matrix"
	"github.com/katalvlaran/quansim/scalar"
)

// ExampleMul multiplies a 2×2 matrix by a column vector.
func ExampleMul() {
	m, _ := matrix.NewDenseFrom([][]scalar.Real[float64]{
		{scalar.NewReal(1.0), scalar.NewReal(2.0)},
		{scalar.NewReal(3.0), scalar.NewReal(4.0)},
	})
	v, _ := matrix.NewColumn(scalar.NewReal(1.0), scalar.NewReal(1.0))

	out, err := matrix.Mul[scalar.Real[float64]](m, v)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(out)
	// Output:
	// [3]
	// [7]
}

// ExampleKron builds the 4×4 tensor product of X with the identity.
func ExampleKron() {
	x, _ := matrix.NewDenseFrom([][]scalar.Complex{
		{scalar.Zero(), scalar.One()},
		{scalar.One(), scalar.Zero()},
	})
	id, _ := matrix.NewIdentity[scalar.Complex](2)

	k, _ := matrix.Kron[scalar.Complex](x, id)
	fmt.Print(k)
	// Output:
	// [0+0i, 0+0i, 1+0i, 0+0i]
	// [0+0i, 0+0i, 0+0i, 1+0i]
	// [1+0i, 0+0i, 0+0i, 0+0i]
	// [0+0i, 1+0i, 0+0i, 0+0i]
}
