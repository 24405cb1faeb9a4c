// SPDX-License-Identifier: MIT

package register

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/quansim/matrix"
)

// Shape and index errors are the matrix package sentinels, so errors.Is
// matches either name.
var (
	// ErrInvalidDimensions indicates a non-positive qubit count, a register
	// length that is not a power of two, or a gate side that is not a power of two.
	ErrInvalidDimensions = matrix.ErrInvalidDimensions

	// ErrOutOfRange indicates a basis index or qubit index outside bounds, or
	// qubit indices that are not in ascending order.
	ErrOutOfRange = matrix.ErrOutOfRange

	// ErrDimensionMismatch indicates a gate whose size does not fit the chosen
	// qubits (non-square, wrong side for k qubits, or larger than the register).
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
)

var (
	// ErrInvalidState indicates amplitudes whose squared moduli do not sum to 1.
	ErrInvalidState = errors.New("register: invalid state")

	// ErrDuplicateIndex indicates a repeated qubit index in ApplyMulti.
	ErrDuplicateIndex = errors.New("register: duplicate qubit index")

	// ErrMissingArgument indicates a nil gate, an empty qubit list or a nil source.
	ErrMissingArgument = errors.New("register: missing argument")
)

// operation tags
const (
	opNew               = "register.New"
	opNewFromAmplitudes = "register.NewFromAmplitudes"
	opNewRandom         = "register.NewRandom"
	opProba             = "Register.Proba"
	opAmplitude         = "Register.Amplitude"
	opApply             = "Register.Apply"
	opApplyMulti        = "Register.ApplyMulti"
	opRandomDraw        = "Register.RandomDraw"
	opMarginal          = "Register.Marginal"
)

func registerErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
