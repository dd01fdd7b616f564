package multiexp

import (
	"github.com/consensys/gnark-crypto/ecc"
	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// MultiExp computes a multi exponentiation -- that is, an inner product between points and scalars.
//
// More precisely, the result is set to scalars[0]*points[0] + ... + scalars[n-1]*points[n-1], where n is the length of both slices
// If the slices differ in length, this function returns an error.
//
// numGoRoutines is used to configure the amount of concurrency needed. Setting this
// value to a negative number or 0 will make it default to the number of CPUs.
//
// Returns an error if numGoRoutines exceeds 1024.
func MultiExp(scalars []fr.Element, points []curve.G1Affine, numGoRoutines int) (*curve.G1Affine, error) {
	if err := isValidNumGoRoutines(numGoRoutines); err != nil {
		return nil, err
	}

	if len(scalars) != len(points) {
		return nil, ErrScalarsPointsMismatch
	}

	// If there is no work to do, return the identity point.
	var result curve.G1Affine
	if len(scalars) == 0 {
		return &result, nil
	}

	return result.MultiExp(points, scalars, ecc.MultiExpConfig{NbTasks: numGoRoutines})
}

// isValidNumGoRoutines will return an error if the number
// of go routines to be used is not valid.
//
// Valid meaning that it is less than 1024.
//
// 1024 is chosen here as the underlying gnark-crypto library will
// return an error for more than 1024.
// Instead of waiting until the user tries to call an algorithm
// which requires numGoRoutines, we return the error here instead.
func isValidNumGoRoutines(value int) error {
	if value >= 1024 {
		return ErrTooManyGoRoutines
	}
	return nil
}
