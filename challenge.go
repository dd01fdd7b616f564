package polycommitment

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/o1-labs/go-poly-commitment/internal/multiexp"
)

// ChallengeLength is the number of low bits of a prechallenge that take
// part in the endomorphism fold. Prover and verifier must agree on it.
const ChallengeLength = multiexp.PrechallengeBits

// ScalarChallenge is a raw squeezed challenge, before the endomorphism
// fold turns it into a full scalar. It only lives between the squeeze and
// the fold.
type ScalarChallenge struct {
	Inner fr.Element
}

func NewScalarChallenge(x fr.Element) ScalarChallenge {
	return ScalarChallenge{Inner: x}
}

// ToField folds the prechallenge into a scalar field element using the
// endomorphism constant endoR.
//
// The low 128 bits are consumed two at a time: both accumulators start at
// 2 and are doubled each step, then one of them gets +-1 depending on the
// bit pair. The result is a*endoR + b. The group-side ladder in
// CombineOneEndo walks the exact same bits in the exact same order; the
// two must never diverge.
func (sc *ScalarChallenge) ToField(endoR *fr.Element) fr.Element {
	var rep big.Int
	sc.Inner.BigInt(&rep)

	one := fr.One()
	var negOne fr.Element
	negOne.Neg(&one)

	a := fr.NewElement(2)
	b := fr.NewElement(2)
	for i := ChallengeLength/2 - 1; i >= 0; i-- {
		a.Double(&a)
		b.Double(&b)

		s := &one
		if rep.Bit(2*i) == 0 {
			s = &negOne
		}
		if rep.Bit(2*i+1) == 1 {
			a.Add(&a, s)
		} else {
			b.Add(&b, s)
		}
	}

	a.Mul(&a, endoR)
	a.Add(&a, &b)
	return a
}

// Sponge is the Fiat-Shamir transcript primitive this package drives.
// Implementations own the permutation; this package only sequences the
// absorb and squeeze calls. Absorption order is part of the protocol and
// must match between prover and verifier bit-for-bit.
type Sponge interface {
	Absorb(points []Point)
	Squeeze() fr.Element
}

// SqueezePrechallenge reads one raw, unfolded challenge from the sponge.
func SqueezePrechallenge(sponge Sponge) ScalarChallenge {
	return NewScalarChallenge(sponge.Squeeze())
}

// SqueezeChallenge squeezes a prechallenge and folds it into a full
// scalar field element via the endomorphism constant endoR.
func SqueezeChallenge(endoR *fr.Element, sponge Sponge) fr.Element {
	pre := SqueezePrechallenge(sponge)
	return pre.ToField(endoR)
}

// AbsorbCommitment feeds every chunk of the commitment into the sponge,
// in chunk order. This is the canonical way a commitment enters the
// transcript; reordering chunks changes the derived challenges.
func AbsorbCommitment(sponge Sponge, commitment *PolyComm) {
	sponge.Absorb(commitment.Elems)
}
