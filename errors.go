package polycommitment

import "errors"

var (
	// ErrChunkCountMismatch is returned by chunk-wise pairing operations
	// given commitments of different chunk counts.
	ErrChunkCountMismatch = errors.New("commitments have different chunk counts")

	// ErrShiftedCommitment is returned when a serialized commitment
	// carries the deprecated shifted chunk. Such payloads are rejected,
	// never coerced.
	ErrShiftedCommitment = errors.New("shifted commitments are deprecated and must not be used")

	// ErrInvalidCommitmentEncoding is returned for malformed commitment
	// payloads.
	ErrInvalidCommitmentEncoding = errors.New("invalid commitment encoding")

	// ErrInvalidPolynomialSize is returned when committing to a
	// polynomial the SRS cannot accommodate.
	ErrInvalidPolynomialSize = errors.New("invalid polynomial size (larger than requested chunk budget)")

	// ErrMinSRSSize is returned when asking for an SRS too small to
	// commit to anything.
	ErrMinSRSSize = errors.New("minimum srs size is 1")
)
