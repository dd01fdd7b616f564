package polycommitment

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

var (
	// 2^n in the scalar field, n the scalar field's bit length.
	shiftTwoPow fr.Element
	// whether the scalar field modulus is numerically smaller than the
	// base field modulus.
	scalarModulusSmaller bool
)

func init() {
	shiftTwoPow.Exp(fr.NewElement(2), big.NewInt(fr.Bits))
	scalarModulusSmaller = fr.Modulus().Cmp(fp.Modulus()) < 0
}

// ShiftScalar remaps a scalar into the form the in-circuit
// scalar-multiplication gadget expects.
//
// The gadget does not compute g*x directly: it computes g*(2x + 2^n + 1)
// when the scalar field is smaller than the base field, and g*(x + 2^n)
// otherwise, n being the scalar field's bit length. ShiftScalar applies
// the inverse of that map, namely (x - 2^n - 1)/2 in the first case and
// x - 2^n in the second, so that the gadget lands on the intended scalar.
//
// The function is total. Its correctness is a convention contract with
// the gadget, established by construction and by tests; no runtime check
// can detect a mismatch.
func ShiftScalar(x fr.Element) fr.Element {
	var res fr.Element
	res.Sub(&x, &shiftTwoPow)
	if scalarModulusSmaller {
		one := fr.One()
		res.Sub(&res, &one)
		res.Halve()
	}
	return res
}
