package multiexp

import "errors"

var (
	ErrTooManyGoRoutines     = errors.New("number of go routines must be less than 1024")
	ErrScalarsPointsMismatch = errors.New("number of scalars != number of points")
)
