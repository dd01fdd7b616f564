package polycommitment

import (
	"math/big"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/o1-labs/go-poly-commitment/internal/multiexp"
)

// Point is the group element commitments are made of.
//
// The commitment group is fixed at compile time, the same way the teacher
// schemes fix their pairing curve: all of the arithmetic below is over the
// G1 group of BN254.
type Point = curve.G1Affine

// CommitmentCurve is the capability set a curve group must expose to be
// usable as a commitment curve.
//
// The point at infinity is represented as the absence of coordinates.
type CommitmentCurve interface {
	// ToCoordinates returns the affine coordinates of p, with ok = false
	// for the point at infinity.
	ToCoordinates(p Point) (x, y fp.Element, ok bool)
	// OfCoordinates builds the point with the given affine coordinates.
	// No curve membership check is performed.
	OfCoordinates(x, y fp.Element) Point

	// Combine returns, element-wise, x1*g1[i] + x2*g2[i].
	// Panics if the slices differ in length.
	Combine(g1, g2 []Point, x1, x2 fr.Element) []Point
	// CombineOne is Combine specialized to x1 = 1.
	CombineOne(g1, g2 []Point, x2 fr.Element) []Point
}

// EndoCurve extends CommitmentCurve for curves with a cheap endomorphism.
//
// Not every curve admits one, so this is an optional capability: callers
// holding a plain CommitmentCurve can type-assert for it and fall back to
// CombineOneEndoFallback otherwise.
type EndoCurve interface {
	CommitmentCurve

	// Endos returns the endomorphism constant pair (endoQ, endoR):
	// endoQ is a primitive cube root of unity in the base field, endoR the
	// matching cube root in the scalar field, so that (endoQ*x, y) = [endoR](x, y).
	Endos() (fp.Element, fr.Element)

	// CombineOneEndo is CombineOne taking a raw prechallenge instead of a
	// full scalar. Exploiting the endomorphism, the half-length challenge
	// is applied directly, halving the verifier's scalar-multiplication cost.
	CombineOneEndo(g1, g2 []Point, x2 ScalarChallenge) []Point
}

// CombineOneEndoFallback folds the prechallenge into a full scalar and
// combines with the generic window ladder. It is the path for curves
// without a usable endomorphism-accelerated combination.
func CombineOneEndoFallback(c CommitmentCurve, endoR fr.Element, g1, g2 []Point, x2 ScalarChallenge) []Point {
	return c.CombineOne(g1, g2, x2.ToField(&endoR))
}

type bn254Curve struct{}

// BN254 is the commitment curve instantiation over the BN254 G1 group.
// BN254 carries a GLV endomorphism, so the fast combination is available.
var BN254 EndoCurve = bn254Curve{}

func (bn254Curve) ToCoordinates(p Point) (fp.Element, fp.Element, bool) {
	if p.IsInfinity() {
		return fp.Element{}, fp.Element{}, false
	}
	return p.X, p.Y, true
}

func (bn254Curve) OfCoordinates(x, y fp.Element) Point {
	var p Point
	p.X = x
	p.Y = y
	return p
}

func (bn254Curve) Combine(g1, g2 []Point, x1, x2 fr.Element) []Point {
	return multiexp.WindowCombine(g1, g2, x1, x2)
}

func (bn254Curve) CombineOne(g1, g2 []Point, x2 fr.Element) []Point {
	return multiexp.WindowCombineOne(g1, g2, x2)
}

func (bn254Curve) CombineOneEndo(g1, g2 []Point, x2 ScalarChallenge) []Point {
	return multiexp.WindowCombineOneEndo(endoQ, g1, g2, x2.Inner)
}

func (bn254Curve) Endos() (fp.Element, fr.Element) {
	return endoQ, endoR
}

var (
	endoQ fp.Element
	endoR fr.Element
)

// The endomorphism constants are derived rather than hardcoded: a wrong
// literal here would not crash anything, it would silently break the
// challenge folding. Each field has exactly two primitive cube roots of
// unity; the pair is fixed by checking the relation (endoQ*x, y) = [endoR]P
// against the group generator.
func init() {
	q := cubeRootOfUnityFp()
	r := cubeRootOfUnityFr()

	_, _, g, _ := curve.Generators()

	var qSq fp.Element
	qSq.Square(&q)
	var rSq fr.Element
	rSq.Square(&r)

	for _, qc := range []fp.Element{q, qSq} {
		var phi Point
		phi.Y = g.Y
		phi.X.Mul(&g.X, &qc)

		for _, rc := range []fr.Element{r, rSq} {
			var bi big.Int
			rc.BigInt(&bi)
			var mul Point
			mul.ScalarMultiplication(&g, &bi)
			if mul.Equal(&phi) {
				endoQ = qc
				endoR = rc
				return
			}
		}
	}

	panic("polycommitment: no consistent endomorphism pair for BN254")
}

// cubeRootOfUnityFp returns a primitive cube root of unity in the base
// field, as base^((p-1)/3) for the first base that is not a cubic residue.
func cubeRootOfUnityFp() fp.Element {
	exp := new(big.Int).Sub(fp.Modulus(), big.NewInt(1))
	exp.Div(exp, big.NewInt(3))

	one := fp.One()
	for base := uint64(2); ; base++ {
		var root fp.Element
		root.SetUint64(base)
		root.Exp(root, exp)
		if !root.Equal(&one) {
			return root
		}
	}
}

func cubeRootOfUnityFr() fr.Element {
	exp := new(big.Int).Sub(fr.Modulus(), big.NewInt(1))
	exp.Div(exp, big.NewInt(3))

	one := fr.One()
	for base := uint64(2); ; base++ {
		var root fr.Element
		root.SetUint64(base)
		root.Exp(root, exp)
		if !root.Equal(&one) {
			return root
		}
	}
}
