package multiexp

import (
	"math/big"
	"testing"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func TestMultiExpLengthMismatch(t *testing.T) {
	_, _, g, _ := curve.Generators()

	_, err := MultiExp([]fr.Element{fr.One()}, []curve.G1Affine{g, g}, 0)
	require.ErrorIs(t, err, ErrScalarsPointsMismatch)
}

func TestMultiExpEmptyIsIdentity(t *testing.T) {
	res, err := MultiExp(nil, nil, 0)
	require.NoError(t, err)
	require.True(t, res.IsInfinity())
}

func TestMultiExpTooManyGoRoutines(t *testing.T) {
	_, err := MultiExp(nil, nil, 1024)
	require.ErrorIs(t, err, ErrTooManyGoRoutines)
}

func TestWindowCombineMatchesNaive(t *testing.T) {
	g1 := randPoints(t, 8)
	g2 := randPoints(t, 8)
	x1 := randScalar(t)
	x2 := randScalar(t)

	got := WindowCombine(g1, g2, x1, x2)
	require.Len(t, got, 8)

	var b1, b2 big.Int
	x1.BigInt(&b1)
	x2.BigInt(&b2)
	for i := range g1 {
		var lhs, rhs curve.G1Affine
		lhs.ScalarMultiplication(&g1[i], &b1)
		rhs.ScalarMultiplication(&g2[i], &b2)
		lhs.Add(&lhs, &rhs)
		require.True(t, got[i].Equal(&lhs), "element %d differs from naive result", i)
	}
}

func TestWindowCombineOneMatchesNaive(t *testing.T) {
	g1 := randPoints(t, 4)
	g2 := randPoints(t, 4)
	x2 := randScalar(t)

	require.Equal(t, WindowCombine(g1, g2, fr.One(), x2), WindowCombineOne(g1, g2, x2))
}

func TestWindowCombineLengthMismatchPanics(t *testing.T) {
	g1 := randPoints(t, 2)
	g2 := randPoints(t, 3)

	require.Panics(t, func() {
		WindowCombine(g1, g2, fr.One(), fr.One())
	})
}

func randScalar(t *testing.T) fr.Element {
	t.Helper()
	var s fr.Element
	_, err := s.SetRandom()
	require.NoError(t, err)
	return s
}

func randPoints(t *testing.T, n int) []curve.G1Affine {
	t.Helper()
	_, _, g, _ := curve.Generators()
	points := make([]curve.G1Affine, n)
	for i := range points {
		s := randScalar(t)
		var bi big.Int
		s.BigInt(&bi)
		points[i].ScalarMultiplication(&g, &bi)
	}
	return points
}
