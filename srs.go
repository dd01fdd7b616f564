package polycommitment

import (
	"encoding/binary"
	"runtime"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/o1-labs/go-poly-commitment/internal/multiexp"
	"golang.org/x/sync/errgroup"
)

// dstSRS is the hash-to-curve domain separation tag for SRS derivation.
const dstSRS = "go-poly-commitment:bn254:srs"

// SRS holds the commitment bases. Unlike a KZG setup there is no secret
// behind the points: every basis is derived by hashing a counter to the
// curve, so the string is nothing-up-my-sleeve and needs no ceremony.
type SRS struct {
	// G are the commitment bases, one per polynomial coefficient.
	G []Point
	// H is the blinding generator, kept distinct from every G[i].
	H Point
}

// NewSRS derives an SRS with size commitment bases.
func NewSRS(size uint64) (*SRS, error) {
	if size < 1 {
		return nil, ErrMinSRSSize
	}

	srs := &SRS{G: make([]Point, size)}

	var group errgroup.Group
	group.SetLimit(runtime.NumCPU())
	for i := uint64(0); i < size; i++ {
		i := i
		group.Go(func() error {
			p, err := hashToBasis(i)
			if err != nil {
				return err
			}
			srs.G[i] = p
			return nil
		})
	}
	group.Go(func() error {
		// The blinding generator uses the counter just past the bases.
		p, err := hashToBasis(size)
		if err != nil {
			return err
		}
		srs.H = p
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return srs, nil
}

func hashToBasis(counter uint64) (Point, error) {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)
	return curve.HashToG1(msg[:], []byte(dstSRS))
}

// MaxPolySize returns the largest number of coefficients a single chunk
// can commit to.
func (s *SRS) MaxPolySize() int {
	return len(s.G)
}

// Commit commits to a polynomial in coefficient form. A polynomial larger
// than the SRS is split into ceil(len(p)/len(G)) chunks, each committed
// against the full basis. The zero polynomial commits to the single-chunk
// identity.
func (s *SRS) Commit(p []fr.Element) (PolyComm, error) {
	if len(p) == 0 {
		return NewPolyCommIdentity(), nil
	}

	n := len(s.G)
	numChunks := (len(p) + n - 1) / n

	elems := make([]Point, numChunks)
	var group errgroup.Group
	for chunk := 0; chunk < numChunks; chunk++ {
		chunk := chunk
		group.Go(func() error {
			coeffs := p[chunk*n : min((chunk+1)*n, len(p))]
			res, err := multiexp.MultiExp(coeffs, s.G[:len(coeffs)], 0)
			if err != nil {
				return err
			}
			elems[chunk] = *res
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return PolyComm{}, err
	}

	return NewPolyComm(elems), nil
}

// CommitChunked commits like Commit but pads the result with identity
// chunks up to numChunks, for callers that fix a chunk budget up front.
// Returns ErrInvalidPolynomialSize if the polynomial needs more chunks
// than the budget allows.
func (s *SRS) CommitChunked(p []fr.Element, numChunks int) (PolyComm, error) {
	comm, err := s.Commit(p)
	if err != nil {
		return PolyComm{}, err
	}
	if comm.Len() > numChunks {
		return PolyComm{}, ErrInvalidPolynomialSize
	}
	for comm.Len() < numChunks {
		comm.Elems = append(comm.Elems, Point{})
	}
	return comm, nil
}
