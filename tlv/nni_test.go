package tlv_test

import (
	"testing"

	"github.com/ndnwire/ndnclient/tlv"
)

func TestNNI(t *testing.T) {
	assert, _ := makeAR(t)

	tests := []struct {
		v    uint64
		wire string
	}{
		{0x00, "00"},
		{0xFF, "FF"},
		{0x0100, "0100"},
		{0xFFFF, "FFFF"},
		{0x010000, "00010000"},
		{0xFFFFFFFF, "FFFFFFFF"},
		{0x0100000000, "0000000100000000"},
		{0xFFFFFFFFFFFFFFFF, "FFFFFFFFFFFFFFFF"},
	}
	for _, tt := range tests {
		wire := bytesFromHex(tt.wire)
		n := tlv.NNI(tt.v)
		assert.Equal(len(wire), n.Size(), tt.wire)
		assert.Equal(wire, n.Encode(nil), tt.wire)

		var decoded tlv.NNI
		if assert.NoError(decoded.UnmarshalBinary(wire), tt.wire) {
			assert.EqualValues(tt.v, decoded, tt.wire)
		}
	}

	var n tlv.NNI
	assert.ErrorIs(n.UnmarshalBinary(bytesFromHex("A0A1A2")), tlv.ErrNNILength)
	assert.ErrorIs(n.UnmarshalBinary(bytesFromHex("A0A1A2A3A4")), tlv.ErrNNILength)
	assert.ErrorIs(n.UnmarshalBinary(nil), tlv.ErrNNILength)

	nn, ok := tlv.NNIFrom(-1)
	assert.False(ok)
	assert.EqualValues(0, nn)
	nn, ok = tlv.NNIFrom(0x0100)
	assert.True(ok)
	assert.EqualValues(0x0100, nn)
}
