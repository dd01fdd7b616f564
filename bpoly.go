package polycommitment

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// BPoly evaluates the challenge polynomial
//
//	b(x) = (1 + chals[0] x^(2^(k-1))) (1 + chals[1] x^(2^(k-2))) ... (1 + chals[k-1] x)
//
// at x. It is "step 8: Define the univariate polynomial" of appendix A.2
// of https://eprint.iacr.org/2020/499.
//
// The evaluation walks the successive squares of x, so the cost is O(k)
// field multiplications rather than a 2^k coefficient expansion.
func BPoly(chals []fr.Element, x fr.Element) fr.Element {
	k := len(chals)
	if k == 0 {
		return fr.One()
	}

	powTwos := make([]fr.Element, k)
	powTwos[0] = x
	for i := 1; i < k; i++ {
		powTwos[i].Square(&powTwos[i-1])
	}

	one := fr.One()
	res := fr.One()
	var term fr.Element
	for i := 0; i < k; i++ {
		term.Mul(&chals[i], &powTwos[k-1-i])
		term.Add(&term, &one)
		res.Mul(&res, &term)
	}
	return res
}

// BPolyCoefficients returns the full coefficient vector of the challenge
// polynomial, length 2^k.
//
// The tensor-product expansion of b is binary-recursive: the second half
// of each power-of-two block is the first half scaled by one challenge.
// Walking the indices once and exploiting that self-similarity costs one
// multiplication per coefficient, instead of the O(k*2^k) of naive
// polynomial multiplication.
//
// An empty challenge list yields the coefficient vector [1].
func BPolyCoefficients(chals []fr.Element) []fr.Element {
	rounds := len(chals)
	sLength := 1 << rounds

	one := fr.One()
	s := make([]fr.Element, sLength)
	for i := range s {
		s[i] = one
	}

	k := 0
	pow := 1
	for i := 1; i < sLength; i++ {
		if i == pow {
			k++
			pow <<= 1
		}
		s[i].Mul(&s[i-(pow>>1)], &chals[rounds-1-(k-1)])
	}
	return s
}
