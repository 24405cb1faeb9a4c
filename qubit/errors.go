// SPDX-License-Identifier: MIT

package qubit

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/quansim/matrix"
)

var (
	// ErrInvalidState indicates amplitudes whose squared moduli do not sum to 1.
	ErrInvalidState = errors.New("qubit: invalid state")

	// ErrMissingArgument indicates a required gate or random source was nil.
	ErrMissingArgument = errors.New("qubit: missing argument")

	// ErrDimensionMismatch indicates a gate that is not 2×2. It is the matrix
	// package sentinel, so errors.Is matches either name.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
)

// operation tags
const (
	opNew        = "qubit.New"
	opNewRandom  = "qubit.NewRandom"
	opApply      = "Qubit.Apply"
	opRandomDraw = "Qubit.RandomDraw"
)

func qubitErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
