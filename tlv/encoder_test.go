package tlv_test

import (
	"bytes"
	"testing"

	"github.com/ndnwire/ndnclient/an"
	"github.com/ndnwire/ndnclient/tlv"
)

func TestEncodingBuffer(t *testing.T) {
	assert, require := makeAR(t)

	var eb tlv.EncodingBuffer
	assert.Equal(0, eb.Length())

	eb.PrependBlob(an.TtContent, []byte("hello"))
	assert.Equal(7, eb.Length())
	wire, e := eb.Output()
	require.NoError(e)
	assert.Equal(bytesFromHex("15 05 68656C6C6F"), wire)
}

func TestEncodingBufferNested(t *testing.T) {
	assert, require := makeAR(t)

	// innermost fields first: MetaInfo wrapping ContentType and FreshnessPeriod
	var eb tlv.EncodingBuffer
	snapshot := eb.Length()
	eb.PrependNNITlv(an.TtFreshnessPeriod, 4000)
	eb.PrependNNITlv(an.TtContentType, 0)
	eb.PrependTypeAndLength(an.TtMetaInfo, eb.Length()-snapshot)

	wire, e := eb.Output()
	require.NoError(e)
	assert.Equal(bytesFromHex("14 07 180100 19020FA0"), wire)
}

func TestEncodingBufferNestedLengths(t *testing.T) {
	assert, require := makeAR(t)

	// children of varying sizes, including omitted optionals, inside one parent
	var eb tlv.EncodingBuffer
	before := eb.Length()
	eb.PrependBlob(0x09, make([]byte, 300))
	eb.PrependOptionalNNITlv(0x0C, -1)       // omitted
	eb.PrependOptionalBlob(0x0A, nil)        // omitted
	eb.PrependBooleanTlv(an.TtMustBeFresh, false) // omitted
	eb.PrependBooleanTlv(an.TtCanBePrefix, true)
	eb.PrependNNITlv(0x0C, 4000)
	childrenSize := eb.Length() - before
	eb.PrependTypeAndLength(an.TtInterest, childrenSize)

	wire, e := eb.Output()
	require.NoError(e)

	// children: 0C 02 0FA0 (4) + 21 00 (2) + 09 FD012C value (304)
	assert.Equal(4+2+3+1+300, childrenSize)

	d := tlv.NewDecoder(wire)
	end, e := d.ReadNestedStart(an.TtInterest)
	require.NoError(e)
	assert.Equal(len(wire), end)
	v, ok, e := d.ReadOptionalNNITlv(0x0C, end)
	require.NoError(e)
	assert.True(ok)
	assert.EqualValues(4000, v)
	canBePrefix, e := d.ReadBooleanTlv(an.TtCanBePrefix, end)
	require.NoError(e)
	assert.True(canBePrefix)
	blob, e := d.ReadBlob(0x09)
	require.NoError(e)
	assert.Len(blob, 300)
	assert.True(bytes.Equal(blob, make([]byte, 300)))
	assert.NoError(d.FinishNested(end))
}

func TestEncodingBufferGrowth(t *testing.T) {
	assert, require := makeAR(t)

	payload := make([]byte, 5000)
	for i := range payload {
		payload[i] = byte(i)
	}

	var eb tlv.EncodingBuffer
	eb.PrependBytes(payload[2500:])
	eb.PrependBytes(payload[:2500]) // forces reallocation; suffix must survive the copy
	eb.PrependTypeAndLength(an.TtContent, eb.Length())

	wire, e := eb.Output()
	require.NoError(e)
	assert.Equal(append(bytesFromHex("15 FD1388"), payload...), wire)
}

func TestEncodingBufferErrors(t *testing.T) {
	assert, _ := makeAR(t)

	var eb tlv.EncodingBuffer
	eb.PrependNNI(-1)
	eb.PrependBlob(an.TtContent, []byte{0xA0}) // ignored after the error
	_, e := eb.Output()
	assert.ErrorIs(e, tlv.ErrRange)
}
