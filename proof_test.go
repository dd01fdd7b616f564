package polycommitment_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	polycommitment "github.com/o1-labs/go-poly-commitment"
	"github.com/o1-labs/go-poly-commitment/fiatshamir"
	"github.com/o1-labs/go-poly-commitment/internal/multiexp"
	"github.com/stretchr/testify/require"
)

// opaqueOpening stands in for the opening proof produced by the external
// folding protocol; this layer never looks inside it.
type opaqueOpening struct{}

// Builds a batched verification request the way a verifier would, then
// checks that the two sides of the amortized check agree with direct
// computation: the combined commitment equals the commitment to the
// polyscale-combined polynomial, and the combined inner product equals
// that polynomial's evaluations folded with evalscale.
func TestBatchedCheckConsistency(t *testing.T) {
	const numPolys = 3
	const polySize = 8

	srs := testSRS(t, polySize)

	polys := make([][]fr.Element, numPolys)
	commitments := make([]polycommitment.PolyComm, numPolys)
	for i := range polys {
		polys[i] = randScalars(t, polySize)
		comm, err := srs.Commit(polys[i])
		require.NoError(t, err)
		commitments[i] = comm
	}

	evaluationPoints := []fr.Element{randScalar(t), randScalar(t)}

	// transcript: absorb every commitment in order, then squeeze the two
	// scales
	_, endoR := polycommitment.BN254.Endos()
	sponge := fiatshamir.NewTranscript("batched-check")
	for i := range commitments {
		polycommitment.AbsorbCommitment(sponge, &commitments[i])
	}
	polyscale := polycommitment.SqueezeChallenge(&endoR, sponge)
	evalscale := polycommitment.SqueezeChallenge(&endoR, sponge)

	evaluations := make([]polycommitment.Evaluation, numPolys)
	tables := make([][][]fr.Element, numPolys)
	for i := range polys {
		table := make([][]fr.Element, len(evaluationPoints))
		for j, z := range evaluationPoints {
			table[j] = []fr.Element{hornerEval(polys[i], z)}
		}
		evaluations[i] = polycommitment.Evaluation{
			Commitment:  commitments[i],
			Evaluations: table,
		}
		tables[i] = table
	}

	opening := opaqueOpening{}
	proof := polycommitment.BatchEvaluationProof[opaqueOpening]{
		Sponge:               sponge,
		Evaluations:          evaluations,
		EvaluationPoints:     evaluationPoints,
		PolyScale:            polyscale,
		EvalScale:            evalscale,
		Opening:              &opening,
		CombinedInnerProduct: polycommitment.CombinedInnerProduct(&polyscale, &evalscale, tables),
	}

	// commitments side: fold with the running powers of polyscale
	var scalars []fr.Element
	var points []polycommitment.Point
	polycommitment.CombineCommitments(proof.Evaluations, &scalars, &points, proof.PolyScale, fr.One())

	combined, err := multiexp.MultiExp(scalars, points, 0)
	require.NoError(t, err)

	// the same fold done on the polynomials themselves: q = sum_i ps^i * p_i
	q := make([]fr.Element, polySize)
	xiI := fr.One()
	var tmp fr.Element
	for i := range polys {
		for j := range polys[i] {
			tmp.Mul(&polys[i][j], &xiI)
			q[j].Add(&q[j], &tmp)
		}
		xiI.Mul(&xiI, &proof.PolyScale)
	}

	qComm, err := srs.Commit(q)
	require.NoError(t, err)
	require.Equal(t, 1, qComm.Len())
	require.True(t, combined.Equal(&qComm.Elems[0]),
		"combined commitment must equal the commitment to the combined polynomial")

	// evaluations side: the combined inner product is q evaluated at the
	// points, folded with evalscale
	var expected fr.Element
	for j := len(evaluationPoints) - 1; j >= 0; j-- {
		expected.Mul(&expected, &proof.EvalScale)
		qAtZ := hornerEval(q, evaluationPoints[j])
		expected.Add(&expected, &qAtZ)
	}
	require.True(t, proof.CombinedInnerProduct.Equal(&expected))
}

// Prover and verifier transcripts must derive identical scales from the
// same absorption sequence.
func TestProverVerifierScalesAgree(t *testing.T) {
	_, endoR := polycommitment.BN254.Endos()
	comms := []polycommitment.PolyComm{randPolyComm(t, 1), randPolyComm(t, 2)}

	derive := func() (fr.Element, fr.Element) {
		sponge := fiatshamir.NewTranscript("batched-check")
		for i := range comms {
			polycommitment.AbsorbCommitment(sponge, &comms[i])
		}
		return polycommitment.SqueezeChallenge(&endoR, sponge),
			polycommitment.SqueezeChallenge(&endoR, sponge)
	}

	ps1, es1 := derive()
	ps2, es2 := derive()
	require.True(t, ps1.Equal(&ps2))
	require.True(t, es1.Equal(&es2))
	require.False(t, ps1.Equal(&es1), "successive squeezes must differ")
}
