package polycommitment_test

import (
	"testing"

	polycommitment "github.com/o1-labs/go-poly-commitment"
	"github.com/stretchr/testify/require"
)

func TestCommitmentRoundTrip(t *testing.T) {
	for _, numChunks := range []int{1, 2, 5} {
		comm := randPolyComm(t, numChunks)

		data := polycommitment.SerializeCommitment(&comm)
		back, err := polycommitment.DeserializeCommitment(data)
		require.NoError(t, err)
		require.True(t, back.Equal(&comm), "numChunks=%d", numChunks)
	}
}

func TestIdentityCommitmentRoundTrip(t *testing.T) {
	comm := polycommitment.NewPolyCommIdentity()

	data := polycommitment.SerializeCommitment(&comm)
	back, err := polycommitment.DeserializeCommitment(data)
	require.NoError(t, err)
	require.True(t, back.Equal(&comm))
}

func TestDeserializeRejectsShiftedCommitment(t *testing.T) {
	comm := randPolyComm(t, 2)

	data := polycommitment.SerializeCommitment(&comm)
	data[0] |= 0x01 // legacy shifted flag

	_, err := polycommitment.DeserializeCommitment(data)
	require.ErrorIs(t, err, polycommitment.ErrShiftedCommitment)
}

func TestDeserializeRejectsUnknownFlags(t *testing.T) {
	comm := randPolyComm(t, 1)

	data := polycommitment.SerializeCommitment(&comm)
	data[0] |= 0x80

	_, err := polycommitment.DeserializeCommitment(data)
	require.ErrorIs(t, err, polycommitment.ErrInvalidCommitmentEncoding)
}

func TestDeserializeRejectsTruncatedPayload(t *testing.T) {
	comm := randPolyComm(t, 2)

	data := polycommitment.SerializeCommitment(&comm)

	_, err := polycommitment.DeserializeCommitment(data[:len(data)-1])
	require.ErrorIs(t, err, polycommitment.ErrInvalidCommitmentEncoding)

	_, err = polycommitment.DeserializeCommitment(data[:3])
	require.ErrorIs(t, err, polycommitment.ErrInvalidCommitmentEncoding)
}

func TestDeserializeRejectsInvalidPoint(t *testing.T) {
	comm := randPolyComm(t, 1)

	data := polycommitment.SerializeCommitment(&comm)
	// corrupt the point payload
	data[len(data)-1] ^= 0xff

	_, err := polycommitment.DeserializeCommitment(data)
	require.Error(t, err)
}
