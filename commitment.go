// Package polycommitment implements the arithmetic layer of an IPA-style
// polynomial commitment scheme: chunked homomorphic commitments, the
// Fiat-Shamir challenge derivation driving their randomized combination,
// and the batch combination engine that folds many opening claims into a
// single multi-scalar-multiplication check. The opening proof itself is
// produced and verified by an external folding protocol; this package
// only assembles the statement it certifies.
package polycommitment

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/o1-labs/go-poly-commitment/internal/multiexp"
	"golang.org/x/sync/errgroup"
)

// PolyComm is a polynomial commitment: an ordered sequence of curve
// points, one per degree chunk. A polynomial larger than the SRS is
// committed chunk by chunk, so Elems holds ceil(degree/srsSize) points;
// the common case is a single element.
type PolyComm struct {
	Elems []Point
}

// NewPolyComm wraps a point sequence verbatim.
func NewPolyComm(elems []Point) PolyComm {
	return PolyComm{Elems: elems}
}

// NewPolyCommIdentity returns the additive identity: a single-chunk
// commitment holding the point at infinity.
func NewPolyCommIdentity() PolyComm {
	return NewPolyComm(make([]Point, 1))
}

// Len returns the number of chunks in the commitment.
func (c *PolyComm) Len() int {
	return len(c.Elems)
}

// IsEmpty returns true if the commitment has no chunks.
func (c *PolyComm) IsEmpty() bool {
	return len(c.Elems) == 0
}

// Map applies f to every chunk.
func (c *PolyComm) Map(f func(Point) Point) PolyComm {
	elems := make([]Point, len(c.Elems))
	for i := range c.Elems {
		elems[i] = f(c.Elems[i])
	}
	return NewPolyComm(elems)
}

// Zip pairs up the chunks of two commitments.
// Returns ErrChunkCountMismatch if the chunk counts differ.
func (c *PolyComm) Zip(other *PolyComm) ([][2]Point, error) {
	if len(c.Elems) != len(other.Elems) {
		return nil, ErrChunkCountMismatch
	}
	pairs := make([][2]Point, len(c.Elems))
	for i := range c.Elems {
		pairs[i] = [2]Point{c.Elems[i], other.Elems[i]}
	}
	return pairs, nil
}

// Equal reports whether both commitments hold the same chunk sequence.
// Commitments of different chunk counts are never equal.
func (c *PolyComm) Equal(other *PolyComm) bool {
	if len(c.Elems) != len(other.Elems) {
		return false
	}
	for i := range c.Elems {
		if !c.Elems[i].Equal(&other.Elems[i]) {
			return false
		}
	}
	return true
}

// Add adds two commitments chunk-wise. The commitments may have different
// chunk counts: the shorter one is treated as zero-padded, so the longer
// one's extra chunks pass through unchanged.
func (c *PolyComm) Add(other *PolyComm) PolyComm {
	n1, n2 := len(c.Elems), len(other.Elems)
	elems := make([]Point, max(n1, n2))
	for i := range elems {
		switch {
		case i < n1 && i < n2:
			elems[i].Add(&c.Elems[i], &other.Elems[i])
		case i < n1:
			elems[i] = c.Elems[i]
		default:
			elems[i] = other.Elems[i]
		}
	}
	return NewPolyComm(elems)
}

// Sub subtracts other from c chunk-wise, with the same zero-padding rule
// as Add.
func (c *PolyComm) Sub(other *PolyComm) PolyComm {
	n1, n2 := len(c.Elems), len(other.Elems)
	elems := make([]Point, max(n1, n2))
	for i := range elems {
		switch {
		case i < n1 && i < n2:
			elems[i].Sub(&c.Elems[i], &other.Elems[i])
		case i < n1:
			elems[i] = c.Elems[i]
		default:
			elems[i] = other.Elems[i]
		}
	}
	return NewPolyComm(elems)
}

// Scale multiplies every chunk by the same scalar. Each chunk commits to a
// disjoint coefficient range, so scaling them uniformly models s*f(X).
func (c *PolyComm) Scale(s fr.Element) PolyComm {
	var bi big.Int
	s.BigInt(&bi)
	elems := make([]Point, len(c.Elems))
	for i := range c.Elems {
		elems[i].ScalarMultiplication(&c.Elems[i], &bi)
	}
	return NewPolyComm(elems)
}

// MultiScalarMul returns the commitment whose chunk j is
// sum_i scalars[i]*comms[i].Elems[j]. A commitment missing chunk j is
// skipped for that chunk, so ragged inputs are summed over their defined
// range only. If both inputs are empty, the identity commitment is
// returned so that downstream additive combination stays well-defined.
//
// Panics if the two slices differ in length.
func MultiScalarMul(comms []*PolyComm, scalars []fr.Element) PolyComm {
	if len(comms) != len(scalars) {
		panic("polycommitment: commitments and scalars differ in length")
	}

	if len(comms) == 0 {
		return NewPolyCommIdentity()
	}

	numChunks := 0
	for _, c := range comms {
		numChunks = max(numChunks, len(c.Elems))
	}

	// Chunks are independent group sums, so they can be computed in any
	// order and in parallel.
	elems := make([]Point, numChunks)
	var group errgroup.Group
	for chunk := 0; chunk < numChunks; chunk++ {
		chunk := chunk
		group.Go(func() error {
			points := make([]Point, 0, len(comms))
			chunkScalars := make([]fr.Element, 0, len(comms))
			for i, c := range comms {
				if chunk < len(c.Elems) {
					points = append(points, c.Elems[chunk])
					chunkScalars = append(chunkScalars, scalars[i])
				}
			}
			res, err := multiexp.MultiExp(chunkScalars, points, 0)
			if err != nil {
				return err
			}
			elems[chunk] = *res
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		// MultiExp only fails on mismatched inputs, which are built
		// pairwise above.
		panic(err)
	}

	return NewPolyComm(elems)
}
