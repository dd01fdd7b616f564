package polycommitment

import (
	"encoding/binary"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
)

// Wire format of a commitment: one flags byte, a big-endian uint32 chunk
// count, then the chunks as compressed points in chunk order.
//
// The flags byte exists for one reason: legacy payloads could carry an
// extra "shifted" commitment after the chunk list. That form is deprecated
// and deserialization must reject it fatally rather than drop it.
const (
	commitmentHeaderSize = 5
	flagShiftedChunk     = 0x01
)

// SerializeCommitment encodes the commitment as its ordered chunk list.
func SerializeCommitment(c *PolyComm) []byte {
	buf := make([]byte, commitmentHeaderSize+len(c.Elems)*curve.SizeOfG1AffineCompressed)
	binary.BigEndian.PutUint32(buf[1:commitmentHeaderSize], uint32(len(c.Elems)))
	for i := range c.Elems {
		chunk := c.Elems[i].Bytes()
		copy(buf[commitmentHeaderSize+i*curve.SizeOfG1AffineCompressed:], chunk[:])
	}
	return buf
}

// DeserializeCommitment decodes a commitment, validating every chunk
// point (curve membership and subgroup).
//
// A payload flagging a shifted chunk is rejected with
// ErrShiftedCommitment; unknown flags and malformed lengths are rejected
// with ErrInvalidCommitmentEncoding.
func DeserializeCommitment(data []byte) (PolyComm, error) {
	if len(data) < commitmentHeaderSize {
		return PolyComm{}, ErrInvalidCommitmentEncoding
	}

	flags := data[0]
	if flags&flagShiftedChunk != 0 {
		return PolyComm{}, ErrShiftedCommitment
	}
	if flags != 0 {
		return PolyComm{}, ErrInvalidCommitmentEncoding
	}

	numChunks := binary.BigEndian.Uint32(data[1:commitmentHeaderSize])
	expected := commitmentHeaderSize + int(numChunks)*curve.SizeOfG1AffineCompressed
	if len(data) != expected {
		return PolyComm{}, ErrInvalidCommitmentEncoding
	}

	elems := make([]Point, numChunks)
	for i := range elems {
		offset := commitmentHeaderSize + i*curve.SizeOfG1AffineCompressed
		if _, err := elems[i].SetBytes(data[offset : offset+curve.SizeOfG1AffineCompressed]); err != nil {
			return PolyComm{}, err
		}
	}

	return NewPolyComm(elems), nil
}
