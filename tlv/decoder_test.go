package tlv_test

import (
	"testing"

	"github.com/ndnwire/ndnclient/an"
	"github.com/ndnwire/ndnclient/tlv"
)

func TestDecoderBlob(t *testing.T) {
	assert, require := makeAR(t)

	wire := bytesFromHex("15 05 68656C6C6F")
	d := tlv.NewDecoder(wire)
	value, e := d.ReadBlob(an.TtContent)
	require.NoError(e)
	assert.Equal([]byte("hello"), value)
	assert.Equal(7, d.Position())
	assert.True(d.EOF())

	// zero-copy: value aliases the input
	wire[2] = 'H'
	assert.Equal([]byte("Hello"), value)
}

func TestDecoderTypeMismatch(t *testing.T) {
	assert, _ := makeAR(t)

	d := tlv.NewDecoder(bytesFromHex("15 05 68656C6C6F"))
	_, e := d.ReadBlob(an.TtName)
	assert.ErrorIs(e, tlv.ErrType)
}

func TestDecoderTruncated(t *testing.T) {
	assert, _ := makeAR(t)

	wire := bytesFromHex("16 07 1B0100 1C021234")
	for i := range wire {
		d := tlv.NewDecoder(wire[:i])
		end, e := d.ReadNestedStart(0x16)
		if e == nil {
			e = d.FinishNested(end)
		}
		assert.Error(e, "%d", i)
	}

	d := tlv.NewDecoder(wire)
	end, e := d.ReadNestedStart(0x16)
	if assert.NoError(e) {
		assert.NoError(d.FinishNested(end))
	}
}

func TestDecoderForwardCompat(t *testing.T) {
	assert, require := makeAR(t)

	decode := func(wire []byte) (contentType uint64) {
		d := tlv.NewDecoder(wire)
		end, e := d.ReadNestedStart(an.TtMetaInfo)
		require.NoError(e)
		contentType, ok, e := d.ReadOptionalNNITlv(an.TtContentType, end)
		require.NoError(e)
		require.True(ok)
		require.NoError(d.FinishNested(end))
		return contentType
	}

	known := bytesFromHex("14 03 180102")
	// same structure with an unrecognized trailing child appended by a newer producer
	extended := bytesFromHex("14 08 180102 FD03E80130")
	assert.EqualValues(2, decode(known))
	assert.EqualValues(2, decode(extended))
}

func TestDecoderNestingMismatch(t *testing.T) {
	assert, require := makeAR(t)

	// child TLV-LENGTH runs past the parent's declared end
	d := tlv.NewDecoder(bytesFromHex("14 03 18020000"))
	end, e := d.ReadNestedStart(an.TtMetaInfo)
	require.NoError(e)
	assert.ErrorIs(d.FinishNested(end), tlv.ErrNesting)
}

func TestDecoderLengthExceedsBuffer(t *testing.T) {
	assert, _ := makeAR(t)

	d := tlv.NewDecoder(bytesFromHex("15 05 6865"))
	_, e := d.ReadBlob(an.TtContent)
	assert.ErrorIs(e, tlv.ErrLength)
}

func TestDecoderOptional(t *testing.T) {
	assert, require := makeAR(t)

	wire := bytesFromHex("05 0D 0703080141 2100 0A04A0A1A2A3")
	d := tlv.NewDecoder(wire)
	end, e := d.ReadNestedStart(an.TtInterest)
	require.NoError(e)

	nameBegin := d.Position()
	name, e := d.ReadBlob(an.TtName)
	require.NoError(e)
	assert.Len(name, 3)
	assert.Equal(bytesFromHex("0703080141"), d.Slice(nameBegin, d.Position()))

	canBePrefix, e := d.ReadBooleanTlv(an.TtCanBePrefix, end)
	require.NoError(e)
	assert.True(canBePrefix)

	mustBeFresh, e := d.ReadBooleanTlv(an.TtMustBeFresh, end)
	require.NoError(e)
	assert.False(mustBeFresh)

	hint, e := d.ReadOptionalBlob(an.TtForwardingHint, end)
	require.NoError(e)
	assert.Nil(hint)

	nonce, e := d.ReadOptionalBlob(an.TtNonce, end)
	require.NoError(e)
	assert.Equal(bytesFromHex("A0A1A2A3"), nonce)

	lifetime, ok, e := d.ReadOptionalNNITlv(an.TtInterestLifetime, end)
	require.NoError(e)
	assert.False(ok)
	assert.EqualValues(0, lifetime)

	assert.NoError(d.FinishNested(end))
	assert.True(d.EOF())
}

func TestDecoderPeekType(t *testing.T) {
	assert, _ := makeAR(t)

	wire := bytesFromHex("FD0320 01 80")
	d := tlv.NewDecoder(wire)
	assert.True(d.PeekType(0x0320, len(wire)))
	assert.False(d.PeekType(an.TtNackReason, len(wire)))
	assert.Equal(0, d.Position()) // peek never consumes
	assert.False(d.PeekType(0x0320, 0))
}
