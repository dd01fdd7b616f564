package fiatshamir

import (
	"math/big"
	"testing"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func TestTranscriptDeterministic(t *testing.T) {
	points := testPoints(t, 3)

	a := NewTranscript("test")
	b := NewTranscript("test")
	a.AppendPoints(points)
	b.AppendPoints(points)

	chalA := a.ChallengeScalar()
	chalB := b.ChallengeScalar()
	require.True(t, chalA.Equal(&chalB))
}

func TestTranscriptOrderMatters(t *testing.T) {
	points := testPoints(t, 2)

	a := NewTranscript("test")
	b := NewTranscript("test")
	a.AppendPoint(points[0])
	a.AppendPoint(points[1])
	b.AppendPoint(points[1])
	b.AppendPoint(points[0])

	chalA := a.ChallengeScalar()
	chalB := b.ChallengeScalar()
	require.False(t, chalA.Equal(&chalB), "reordering absorptions must change the challenge")
}

func TestTranscriptLabelsSeparate(t *testing.T) {
	a := NewTranscript("protocol-a")
	b := NewTranscript("protocol-b")

	chalA := a.ChallengeScalar()
	chalB := b.ChallengeScalar()
	require.False(t, chalA.Equal(&chalB))
}

func TestSqueezeTwiceDiffers(t *testing.T) {
	tr := NewTranscript("test")

	first := tr.ChallengeScalar()
	second := tr.ChallengeScalar()
	require.False(t, first.Equal(&second), "the digest is fed back, so successive squeezes differ")
}

func TestScalarAbsorptionChangesChallenge(t *testing.T) {
	a := NewTranscript("test")
	b := NewTranscript("test")
	b.AppendScalar(fr.NewElement(42))

	chalA := a.ChallengeScalar()
	chalB := b.ChallengeScalar()
	require.False(t, chalA.Equal(&chalB))
}

func testPoints(t *testing.T, n int) []curve.G1Affine {
	t.Helper()
	_, _, g, _ := curve.Generators()
	points := make([]curve.G1Affine, n)
	for i := range points {
		points[i].ScalarMultiplication(&g, big.NewInt(int64(i+2)))
	}
	return points
}
