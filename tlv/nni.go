package tlv

import (
	"encoding"
	"math"

	"golang.org/x/exp/constraints"
)

// NNI is a non-negative integer.
// Its wire encoding is a plain big-endian integer of 1, 2, 4, or 8 octets,
// where the width is implied by the TLV-LENGTH of the enclosing element.
type NNI uint64

var (
	_ encoding.BinaryMarshaler   = NNI(0)
	_ encoding.BinaryUnmarshaler = (*NNI)(nil)
)

// NNIFrom converts an integer to NNI.
// ok is false if the value is negative.
func NNIFrom[V constraints.Integer](v V) (n NNI, ok bool) {
	if v < 0 {
		return 0, false
	}
	return NNI(v), true
}

// Size returns the wire encoding size, the minimal of {1, 2, 4, 8}.
func (n NNI) Size() int {
	switch {
	case n <= math.MaxUint8:
		return 1
	case n <= math.MaxUint16:
		return 2
	case n <= math.MaxUint32:
		return 4
	default:
		return 8
	}
}

// Encode appends this number to a buffer.
func (n NNI) Encode(b []byte) []byte {
	switch {
	case n <= math.MaxUint8:
		b = append(b, byte(n))
	case n <= math.MaxUint16:
		b = append(b, byte(n>>8), byte(n))
	case n <= math.MaxUint32:
		b = append(b, byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
	default:
		b = append(b, byte(n>>56), byte(n>>48), byte(n>>40), byte(n>>32),
			byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
	}
	return b
}

// MarshalBinary encodes this number.
func (n NNI) MarshalBinary() ([]byte, error) {
	return n.Encode(nil), nil
}

// UnmarshalBinary decodes this number.
// Widths other than 1, 2, 4, 8 octets are rejected with ErrNNILength.
func (n *NNI) UnmarshalBinary(wire []byte) error {
	switch len(wire) {
	case 1:
		*n = NNI(wire[0])
	case 2:
		*n = (NNI(wire[0]) << 8) | NNI(wire[1])
	case 4:
		*n = (NNI(wire[0]) << 24) | (NNI(wire[1]) << 16) | (NNI(wire[2]) << 8) | NNI(wire[3])
	case 8:
		*n = (NNI(wire[0]) << 56) | (NNI(wire[1]) << 48) | (NNI(wire[2]) << 40) | (NNI(wire[3]) << 32) |
			(NNI(wire[4]) << 24) | (NNI(wire[5]) << 16) | (NNI(wire[6]) << 8) | NNI(wire[7])
	default:
		return ErrNNILength
	}
	return nil
}
