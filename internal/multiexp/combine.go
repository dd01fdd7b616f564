package multiexp

import (
	"math/big"
	"runtime"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/sync/errgroup"
)

// PrechallengeBits is the width of a raw squeezed challenge consumed by
// the endomorphism ladder. Only the low PrechallengeBits bits of a
// prechallenge take part in the fold.
const PrechallengeBits = 128

// WindowCombine returns, element-wise, x1*g1[i] + x2*g2[i].
//
// Each element is computed with an interleaved 2-bit window over both
// scalars (Strauss-Shamir), so the two scalar multiplications share one
// doubling chain instead of running a naive double-and-add twice.
//
// Panics if the point slices differ in length; that is a broken protocol
// invariant upstream, not a recoverable condition.
func WindowCombine(g1, g2 []curve.G1Affine, x1, x2 fr.Element) []curve.G1Affine {
	if len(g1) != len(g2) {
		panic("multiexp: point slices differ in length")
	}

	var s1, s2 big.Int
	x1.BigInt(&s1)
	x2.BigInt(&s2)

	out := make([]curve.G1Affine, len(g1))
	parallelize(len(g1), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = strauss(&g1[i], &g2[i], &s1, &s2)
		}
	})
	return out
}

// WindowCombineOne is WindowCombine specialized to x1 = 1.
func WindowCombineOne(g1, g2 []curve.G1Affine, x2 fr.Element) []curve.G1Affine {
	return WindowCombine(g1, g2, fr.One(), x2)
}

// WindowCombineOneEndo returns, element-wise, g1[i] + chal*g2[i] where chal
// is a raw prechallenge, using the curve endomorphism phi(x, y) = (endoQ*x, y).
//
// The ladder below is the group-side mirror of ScalarChallenge.ToField: it
// walks the same 128 bits in the same two-bit steps, so the result equals
// WindowCombineOne(g1, g2, chal.ToField(endoR)) at half the doubling cost.
// The two walks must stay bit-for-bit identical or soundness silently breaks.
func WindowCombineOneEndo(endoQ fp.Element, g1, g2 []curve.G1Affine, chal fr.Element) []curve.G1Affine {
	if len(g1) != len(g2) {
		panic("multiexp: point slices differ in length")
	}

	var bits big.Int
	chal.BigInt(&bits)

	out := make([]curve.G1Affine, len(g1))
	parallelize(len(g1), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = endoLadder(&g1[i], &g2[i], &endoQ, &bits)
		}
	})
	return out
}

// strauss computes s1*p + s2*q with a shared 2-bit window.
func strauss(p, q *curve.G1Affine, s1, s2 *big.Int) curve.G1Affine {
	// table[4*a+b] = a*p + b*q for a, b in 0..3
	var table [16]curve.G1Jac
	for idx := 1; idx < 16; idx++ {
		if idx < 4 {
			table[idx].Set(&table[idx-1])
			table[idx].AddMixed(q)
		} else {
			table[idx].Set(&table[idx-4])
			table[idx].AddMixed(p)
		}
	}

	var acc curve.G1Jac
	for w := (fr.Bits+1)/2 - 1; w >= 0; w-- {
		acc.DoubleAssign()
		acc.DoubleAssign()
		idx := s1.Bit(2*w+1)<<3 | s1.Bit(2*w)<<2 | s2.Bit(2*w+1)<<1 | s2.Bit(2*w)
		if idx != 0 {
			acc.AddAssign(&table[idx])
		}
	}

	var res curve.G1Affine
	res.FromJacobian(&acc)
	return res
}

// endoLadder computes p + [fold(bits)]q where fold is the endomorphism
// folding rule: starting from a = b = 2, each two-bit step doubles both
// accumulators and adds +-1 to one of them, giving a*endoR + b. Here the
// accumulators live in the group, with a weighting phi(q) and b weighting q.
func endoLadder(p, q *curve.G1Affine, endoQ *fp.Element, bits *big.Int) curve.G1Affine {
	phiQ := *q
	phiQ.X.Mul(&q.X, endoQ)

	var negQ, negPhiQ curve.G1Affine
	negQ.Neg(q)
	negPhiQ.Neg(&phiQ)

	// a = b = 2, i.e. acc = 2*(phi(q) + q)
	var acc curve.G1Jac
	acc.FromAffine(&phiQ)
	acc.AddMixed(q)
	acc.DoubleAssign()

	for i := PrechallengeBits/2 - 1; i >= 0; i-- {
		acc.DoubleAssign()
		var t *curve.G1Affine
		if bits.Bit(2*i+1) == 1 {
			t = &phiQ
			if bits.Bit(2*i) == 0 {
				t = &negPhiQ
			}
		} else {
			t = q
			if bits.Bit(2*i) == 0 {
				t = &negQ
			}
		}
		acc.AddMixed(t)
	}

	acc.AddMixed(p)
	var res curve.G1Affine
	res.FromJacobian(&acc)
	return res
}

// parallelize splits the index range [0, n) across the available CPUs.
// The per-element work is independent, so the split is purely a fan-out.
func parallelize(n int, work func(start, end int)) {
	numCPU := runtime.NumCPU()
	if n < 64 || numCPU == 1 {
		work(0, n)
		return
	}

	chunk := (n + numCPU - 1) / numCPU
	var group errgroup.Group
	for start := 0; start < n; start += chunk {
		start := start
		end := min(start+chunk, n)
		group.Go(func() error {
			work(start, end)
			return nil
		})
	}
	_ = group.Wait() // workers never return errors
}
