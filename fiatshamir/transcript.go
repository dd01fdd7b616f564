// Package fiatshamir provides a hash-based transcript implementing the
// sponge capability the commitment layer drives: absorb curve points,
// squeeze scalar challenges.
package fiatshamir

import (
	"crypto/sha256"
	"hash"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/o1-labs/go-poly-commitment/internal/utils"
)

// Transcript is used to create challenge scalars.
// See: Fiat-Shamir
type Transcript struct {
	state hash.Hash
}

func NewTranscript(label string) *Transcript {
	transcript := &Transcript{
		state: sha256.New(),
	}
	transcript.appendMessage([]byte(label))
	return transcript
}

func (t *Transcript) appendMessage(message []byte) {
	t.state.Write(message)
}

// AppendPoint appends a point to the transcript in its compressed form.
func (t *Transcript) AppendPoint(point curve.G1Affine) {
	tmpBytes := point.Bytes()
	t.appendMessage(tmpBytes[:])
}

func (t *Transcript) AppendPoints(points []curve.G1Affine) {
	for _, point := range points {
		t.AppendPoint(point)
	}
}

// AppendScalar appends a scalar to the transcript as 32 bytes,
// little-endian.
func (t *Transcript) AppendScalar(scalar fr.Element) {
	tmpBytes := scalar.Bytes()
	utils.ReverseSlice(tmpBytes[:])
	t.appendMessage(tmpBytes[:])
}

// ChallengeScalar computes a challenge based off of the state of the
// transcript.
//
// The state is hashed and the digest reduced modulo the scalar field
// order. The digest is then fed back into the fresh state, so squeezing
// twice yields two different challenges and the transcript keeps
// mimicking a random oracle.
func (t *Transcript) ChallengeScalar() fr.Element {
	digest := t.state.Sum(nil)

	// Reverse the bytes, so that we reduce the little-endian
	// representation
	utils.ReverseSlice(digest)

	var challenge fr.Element
	challenge.SetBytes(digest)

	// Clear the state and summarise the previous state into it; the
	// digest is collision resistant, so no binding is lost.
	t.state.Reset()
	t.appendMessage(digest)

	return challenge
}

// Absorb and Squeeze make Transcript satisfy the commitment layer's
// sponge capability.

func (t *Transcript) Absorb(points []curve.G1Affine) {
	t.AppendPoints(points)
}

func (t *Transcript) Squeeze() fr.Element {
	return t.ChallengeScalar()
}
