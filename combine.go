package polycommitment

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Evaluation pairs a polynomial commitment with its evaluation table.
//
// The table is point-major: Evaluations[j][i] is the value of chunk i of
// the polynomial at evaluation point j (for vanilla PlonK the points would
// be zeta and zeta*omega). Rows share their length in well-formed input.
type Evaluation struct {
	Commitment  PolyComm
	Evaluations [][]fr.Element
}

// BatchEvaluationProof is the batched verification request handed to the
// opening-proof check: everything the verifier needs to recompute the
// combined commitment and combined inner product and test them against
// the opening.
//
// It is built once per verification call and consumed immediately; nothing
// mutates it afterwards. The opening proof itself is opaque to this
// package.
type BatchEvaluationProof[Proof any] struct {
	// Sponge used to generate/absorb the challenges of this proof.
	Sponge Sponge
	// Evaluations, one per polynomial.
	Evaluations []Evaluation
	// EvaluationPoints shared by every Evaluation; each Evaluation's table
	// should have this (outer) length.
	EvaluationPoints []fr.Element
	// PolyScale weights distinct polynomials and chunks.
	PolyScale fr.Element
	// EvalScale weights distinct evaluation points within one chunk.
	EvalScale fr.Element
	// Opening is the externally produced opening proof.
	Opening *Proof
	// CombinedInnerProduct is the scalar the opening is expected to certify.
	CombinedInnerProduct fr.Element
}

// CombinedInnerProduct linearizes the evaluations of many (potentially
// chunked) polynomials into a single scalar:
//
//	|polys| |chunks[k]|
//	   sum      sum     polyscale^(running) * (sum_j polys[k][j][i] * evalscale^j)
//	    k        i
//
// Each table in polys is point-major, as in Evaluation. A polynomial whose
// first row is empty carries no evaluation data and is skipped entirely.
//
// The polyscale exponent advances once per chunk and runs continuously
// across polynomial boundaries; it is never reset. The commitment-side
// fold in CombineCommitments assigns exponents with the same running
// power, and the two sequences must match term for term.
func CombinedInnerProduct(polyscale, evalscale *fr.Element, polys [][][]fr.Element) fr.Element {
	var res fr.Element
	xiI := fr.One()

	for _, evalsTr := range polys {
		if len(evalsTr) == 0 || len(evalsTr[0]) == 0 {
			continue
		}

		// Walk the table column by column: column i is the chunk-i row
		// across all evaluation points, evaluated at evalscale by Horner.
		numChunks := len(evalsTr[0])
		for i := 0; i < numChunks; i++ {
			var term fr.Element
			for j := len(evalsTr) - 1; j >= 0; j-- {
				term.Mul(&term, evalscale)
				term.Add(&term, &evalsTr[j][i])
			}

			term.Mul(&term, &xiI)
			res.Add(&res, &term)
			xiI.Mul(&xiI, polyscale)
		}
	}
	return res
}

// CombineCommitments appends to scalars and points the multi-scalar
// multiplication input of the batched check: for every chunk of every
// non-empty commitment, the pair (randBase * polyscale^running, chunk).
//
// With three one-chunk commitments the appended scalars are
//
//	[randBase, randBase*polyscale, randBase*polyscale^2]
//
// The running power is shared across the whole evaluation list, chunk by
// chunk, exactly as in CombinedInnerProduct.
func CombineCommitments(evaluations []Evaluation, scalars *[]fr.Element, points *[]Point, polyscale, randBase fr.Element) {
	xiI := fr.One()

	for i := range evaluations {
		commitment := &evaluations[i].Commitment
		if commitment.IsEmpty() {
			continue
		}

		for _, chunk := range commitment.Elems {
			var s fr.Element
			s.Mul(&randBase, &xiI)
			*scalars = append(*scalars, s)
			*points = append(*points, chunk)

			xiI.Mul(&xiI, &polyscale)
		}
	}
}

// CombineEvaluations is the scalar-side dual of CombineCommitments: it
// accumulates, per evaluation point, the chunk evaluations weighted by
// the same running powers of polyscale.
//
// The accumulator is shaped by the first evaluation's point count. All
// included evaluations are assumed to share that count; this is a caller
// obligation, not a checked invariant -- a longer table is silently
// truncated to the accumulator's length.
func CombineEvaluations(evaluations []Evaluation, polyscale fr.Element) []fr.Element {
	xiI := fr.One()

	numEvals := 0
	if len(evaluations) > 0 {
		numEvals = len(evaluations[0].Evaluations)
	}
	acc := make([]fr.Element, numEvals)

	for i := range evaluations {
		ev := &evaluations[i]
		if ev.Commitment.IsEmpty() || len(ev.Evaluations) == 0 {
			continue
		}

		var tmp fr.Element
		numChunks := len(ev.Evaluations[0])
		for chunk := 0; chunk < numChunks; chunk++ {
			for pt := 0; pt < len(ev.Evaluations) && pt < len(acc); pt++ {
				tmp.Mul(&ev.Evaluations[pt][chunk], &xiI)
				acc[pt].Add(&acc[pt], &tmp)
			}
			xiI.Mul(&xiI, &polyscale)
		}
	}

	return acc
}
