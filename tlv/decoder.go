package tlv

// Decoder is a forward cursor over an immutable TLV input buffer.
//
// The decoder never copies the input: blob reads and Slice return sub-ranges
// aliasing the caller's buffer. The caller must not mutate or release the
// input while such a slice is in use downstream, e.g. held for later
// signature verification.
//
// All failures are returned to the caller without partial recovery; after an
// error the cursor position is unspecified and the decoder should be
// discarded.
type Decoder struct {
	input []byte
	pos   int
}

// NewDecoder creates a Decoder over the input buffer.
func NewDecoder(input []byte) *Decoder {
	return &Decoder{input: input}
}

// Position returns the current cursor offset.
func (d *Decoder) Position() int {
	return d.pos
}

// EOF returns true if the cursor is at end of input.
func (d *Decoder) EOF() bool {
	return d.pos >= len(d.input)
}

// Slice returns the input bytes in [begin, end) as a zero-copy sub-range.
// This allows a caller to retain the exact encoding of a sub-structure, such
// as the signed portion of a packet.
func (d *Decoder) Slice(begin, end int) []byte {
	return d.input[begin:end:end]
}

// ReadVarNum reads a VAR-NUMBER at the cursor.
func (d *Decoder) ReadVarNum() (uint64, error) {
	var n VarNum
	rest, e := n.Decode(d.input[d.pos:])
	if e != nil {
		return 0, e
	}
	d.pos = len(d.input) - len(rest)
	return uint64(n), nil
}

// ReadTypeAndLength reads a TLV-TYPE that must equal typ, then a TLV-LENGTH
// that must not exceed the remaining input.
func (d *Decoder) ReadTypeAndLength(typ uint32) (length int, e error) {
	actualType, e := d.ReadVarNum()
	if e != nil {
		return 0, e
	}
	if actualType != uint64(typ) {
		return 0, ErrType
	}
	n, e := d.ReadVarNum()
	if e != nil {
		return 0, e
	}
	if n > uint64(len(d.input)-d.pos) {
		return 0, ErrLength
	}
	return int(n), nil
}

// ReadNestedStart reads the type and length of an element whose value is a
// concatenation of child elements, and returns the absolute offset at which
// the value ends. Callers loop over children while Position() < end, then
// call FinishNested(end).
func (d *Decoder) ReadNestedStart(typ uint32) (end int, e error) {
	length, e := d.ReadTypeAndLength(typ)
	if e != nil {
		return 0, e
	}
	return d.pos + length, nil
}

// FinishNested skips any remaining unrecognized child elements up to end, and
// verifies that the cursor lands exactly on end. Unknown trailing children
// appended by a newer producer are thereby tolerated; a child whose length
// disagrees with the parent's declared end fails with ErrNesting.
func (d *Decoder) FinishNested(end int) error {
	for d.pos < end {
		_, e := d.ReadVarNum()
		if e != nil {
			return e
		}
		length, e := d.ReadVarNum()
		if e != nil {
			return e
		}
		if length > uint64(len(d.input)-d.pos) {
			return ErrLength
		}
		d.pos += int(length)
	}
	if d.pos != end {
		return ErrNesting
	}
	return nil
}

// PeekType reads the TLV-TYPE at the cursor without consuming it, and reports
// whether it equals typ. Returns false without error if the cursor is at or
// past end, or if the bytes at the cursor do not form a valid VAR-NUMBER.
func (d *Decoder) PeekType(typ uint32, end int) bool {
	if d.pos >= end {
		return false
	}
	saved := d.pos
	actualType, e := d.ReadVarNum()
	d.pos = saved
	return e == nil && actualType == uint64(typ)
}

// ReadBlob reads an element of the given type and returns its value as a
// zero-copy sub-range of the input.
func (d *Decoder) ReadBlob(typ uint32) ([]byte, error) {
	length, e := d.ReadTypeAndLength(typ)
	if e != nil {
		return nil, e
	}
	value := d.input[d.pos : d.pos+length : d.pos+length]
	d.pos += length
	return value, nil
}

// ReadOptionalBlob reads an element of the given type if it appears at the
// cursor before end, and returns nil without moving the cursor otherwise.
func (d *Decoder) ReadOptionalBlob(typ uint32, end int) ([]byte, error) {
	if !d.PeekType(typ, end) {
		return nil, nil
	}
	return d.ReadBlob(typ)
}

// ReadNNITlv reads an element of the given type whose value is a
// NonNegativeInteger.
func (d *Decoder) ReadNNITlv(typ uint32) (uint64, error) {
	value, e := d.ReadBlob(typ)
	if e != nil {
		return 0, e
	}
	var n NNI
	if e := n.UnmarshalBinary(value); e != nil {
		return 0, e
	}
	return uint64(n), nil
}

// ReadOptionalNNITlv reads a NonNegativeInteger element of the given type if
// it appears at the cursor before end. ok is false, and the cursor does not
// move, if the element is absent.
func (d *Decoder) ReadOptionalNNITlv(typ uint32, end int) (v uint64, ok bool, e error) {
	if !d.PeekType(typ, end) {
		return 0, false, nil
	}
	v, e = d.ReadNNITlv(typ)
	return v, e == nil, e
}

// ReadBooleanTlv reads an element of the given type if it appears at the
// cursor before end, skipping its value, and reports its presence.
func (d *Decoder) ReadBooleanTlv(typ uint32, end int) (bool, error) {
	if !d.PeekType(typ, end) {
		return false, nil
	}
	length, e := d.ReadTypeAndLength(typ)
	if e != nil {
		return false, e
	}
	d.pos += length
	return true, nil
}
