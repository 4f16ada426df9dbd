// Package tlv implements NDN Type-Length-Value (TLV) wire encoding.
package tlv

import "math"

// VarNum represents a number in variable size encoding for TLV-TYPE or TLV-LENGTH.
//
// This codec handles the 1, 3, and 5 octet forms.
// The 8-octet form (leading octet 0xFF) is not part of the supported wire format:
// encoding never produces it and decoding rejects it with ErrVarNum8.
type VarNum uint64

// Size returns the wire encoding size.
// n must not exceed math.MaxUint32.
func (n VarNum) Size() int {
	switch {
	case n < 0xFD:
		return 1
	case n <= math.MaxUint16:
		return 3
	default:
		return 5
	}
}

// Encode appends this number to a buffer, always in the shortest applicable form.
// n must not exceed math.MaxUint32; EncodingBuffer and Decoder enforce this bound.
func (n VarNum) Encode(buf []byte) []byte {
	switch {
	case n < 0xFD:
		return append(buf, byte(n))
	case n <= math.MaxUint16:
		return append(buf, 0xFD, byte(n>>8), byte(n))
	default:
		return append(buf, 0xFE, byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
	}
}

// Decode extracts a VarNum from the buffer.
func (n *VarNum) Decode(wire []byte) (rest []byte, e error) {
	if len(wire) == 0 {
		return nil, ErrIncomplete
	}
	switch first := wire[0]; {
	case first < 0xFD:
		*n = VarNum(first)
		return wire[1:], nil
	case first == 0xFD:
		if len(wire) < 3 {
			return nil, ErrIncomplete
		}
		*n = (VarNum(wire[1]) << 8) | VarNum(wire[2])
		return wire[3:], nil
	case first == 0xFE:
		if len(wire) < 5 {
			return nil, ErrIncomplete
		}
		*n = (VarNum(wire[1]) << 24) | (VarNum(wire[2]) << 16) | (VarNum(wire[3]) << 8) | VarNum(wire[4])
		return wire[5:], nil
	default:
		return nil, ErrVarNum8
	}
}
