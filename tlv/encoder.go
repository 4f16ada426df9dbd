package tlv

import "math"

// EncodingBuffer builds TLV wire encoding from back to front.
//
// TLV places length before value on the wire, but a length is only known after
// its value has been encoded. The buffer therefore grows toward the front:
// callers encode the innermost fields first, then prepend each enclosing
// header. The written region is a suffix of the underlying storage; when no
// room remains at the front, the storage is reallocated and the suffix copied
// to the tail of the larger region.
//
// Zero value is an empty buffer.
// The first error is accumulated in the EncodingBuffer and reported by Output.
type EncodingBuffer struct {
	b   []byte
	pos int
	err error
}

// Length returns the number of bytes written so far.
//
// Callers snapshot Length before and after prepending a sequence of children
// to recover exactly how many bytes that sequence occupies, which is the value
// for the enclosing PrependTypeAndLength call.
func (eb *EncodingBuffer) Length() int {
	return len(eb.b) - eb.pos
}

// prepend reserves n bytes at the front of the written region.
func (eb *EncodingBuffer) prepend(n int) []byte {
	if eb.pos < n {
		written := len(eb.b) - eb.pos
		size := max(2*len(eb.b), 256)
		for size < written+n {
			size *= 2
		}
		b := make([]byte, size)
		copy(b[size-written:], eb.b[eb.pos:])
		eb.b, eb.pos = b, size-written
	}
	eb.pos -= n
	return eb.b[eb.pos : eb.pos+n : eb.pos+n]
}

// PrependByte prepends a single byte.
func (eb *EncodingBuffer) PrependByte(b byte) {
	if eb.err != nil {
		return
	}
	eb.prepend(1)[0] = b
}

// PrependBytes prepends a byte span verbatim, without any header.
func (eb *EncodingBuffer) PrependBytes(p []byte) {
	if eb.err != nil {
		return
	}
	copy(eb.prepend(len(p)), p)
}

// PrependVarNum prepends a VAR-NUMBER in the shortest applicable form.
// Values above math.MaxUint32 would need the unsupported 8-octet form and fail.
func (eb *EncodingBuffer) PrependVarNum(n uint64) {
	if eb.err != nil {
		return
	}
	if n > math.MaxUint32 {
		eb.err = ErrVarNum8
		return
	}
	v := VarNum(n)
	v.Encode(eb.prepend(v.Size())[:0])
}

// PrependTypeAndLength prepends TLV-LENGTH then TLV-TYPE, so that the buffer
// afterwards reads type, length, previously written value.
func (eb *EncodingBuffer) PrependTypeAndLength(typ uint32, length int) {
	eb.PrependVarNum(uint64(length))
	eb.PrependVarNum(uint64(typ))
}

// PrependBlob prepends a TLV element with opaque value.
// A nil or empty value produces a zero-length element.
func (eb *EncodingBuffer) PrependBlob(typ uint32, value []byte) {
	eb.PrependBytes(value)
	eb.PrependTypeAndLength(typ, len(value))
}

// PrependOptionalBlob prepends a TLV element with opaque value, or nothing if
// the value is absent or empty.
func (eb *EncodingBuffer) PrependOptionalBlob(typ uint32, value []byte) {
	if len(value) == 0 {
		return
	}
	eb.PrependBlob(typ, value)
}

// PrependNNI prepends a NonNegativeInteger in the minimal fixed width of
// {1, 2, 4, 8} octets. Negative values fail with ErrRange.
func (eb *EncodingBuffer) PrependNNI(v int64) {
	if eb.err != nil {
		return
	}
	if v < 0 {
		eb.err = ErrRange
		return
	}
	n := NNI(v)
	n.Encode(eb.prepend(n.Size())[:0])
}

// PrependNNITlv prepends a TLV element whose value is a NonNegativeInteger.
func (eb *EncodingBuffer) PrependNNITlv(typ uint32, v int64) {
	length := eb.Length()
	eb.PrependNNI(v)
	eb.PrependTypeAndLength(typ, eb.Length()-length)
}

// PrependOptionalNNITlv prepends a NonNegativeInteger TLV element, or nothing
// if v is negative (the absent sentinel).
func (eb *EncodingBuffer) PrependOptionalNNITlv(typ uint32, v int64) {
	if v < 0 {
		return
	}
	eb.PrependNNITlv(typ, v)
}

// PrependBooleanTlv prepends a zero-length TLV element if v is true, or
// nothing if v is false.
func (eb *EncodingBuffer) PrependBooleanTlv(typ uint32, v bool) {
	if !v {
		return
	}
	eb.PrependTypeAndLength(typ, 0)
}

// Output returns the written region and the accumulated error.
// The returned slice aliases the buffer storage; it stays valid only until the
// next Prepend call.
func (eb *EncodingBuffer) Output() ([]byte, error) {
	if eb.err != nil {
		return nil, eb.err
	}
	return eb.b[eb.pos:], nil
}
