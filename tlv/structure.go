package tlv

// StructureDecoder locates the boundary of the first complete TLV element in
// a byte stream that arrives in arbitrary fragments.
//
// The caller accumulates incoming bytes in one buffer and passes the entire
// buffer to FindElementEnd after each arrival. The decoder resumes from its
// saved offset, so each byte is examined once regardless of how the stream
// was fragmented. A stream transport uses this to carve discrete packets out
// of a TCP or Unix socket without buffering beyond what has arrived.
//
// A StructureDecoder belongs to a single stream and must not be shared across
// connections or used concurrently. To abandon a partially parsed element,
// simply discard or Reset the decoder.
//
// Zero value is ready for the first element.
type StructureDecoder struct {
	state       structureState
	offset      int
	bytesNeeded int
	spill       [4]byte
	spillLen    int
	found       bool
}

type structureState uint8

const (
	stReadType structureState = iota
	stReadTypeBytes
	stReadLength
	stReadLengthBytes
	stReadValueBytes
)

// Offset returns the number of bytes processed so far.
// After FindElementEnd returns true, this is the end offset of the element
// that starts at offset 0 of the stream buffer.
func (sd *StructureDecoder) Offset() int {
	return sd.offset
}

// Reset returns the decoder to its initial state, ready for the next element.
func (sd *StructureDecoder) Reset() {
	*sd = StructureDecoder{}
}

// FindElementEnd determines whether buffer contains a complete TLV element
// starting at offset 0. buffer must be the entire accumulated stream buffer,
// not just the newest fragment; previously processed bytes are not examined
// again. Returns false when more bytes are needed. Once it has returned true,
// it keeps returning true without advancing until Reset.
//
// An element using the unsupported 8-octet VAR-NUMBER form fails with
// ErrVarNum8; after any error the stream is unparseable and must be
// abandoned.
func (sd *StructureDecoder) FindElementEnd(buffer []byte) (bool, error) {
	if sd.found {
		return true, nil
	}

	for {
		if sd.offset >= len(buffer) {
			return false, nil
		}

		switch sd.state {
		case stReadType:
			first := buffer[sd.offset]
			sd.offset++
			switch {
			case first < 0xFD:
				sd.state = stReadLength
			case first == 0xFD:
				sd.bytesNeeded = 2
				sd.state = stReadTypeBytes
			case first == 0xFE:
				sd.bytesNeeded = 4
				sd.state = stReadTypeBytes
			default:
				return false, ErrVarNum8
			}

		case stReadTypeBytes:
			// the numeric TLV-TYPE is irrelevant to framing, so these bytes
			// are skipped rather than collected
			remaining := len(buffer) - sd.offset
			if remaining < sd.bytesNeeded {
				sd.offset += remaining
				sd.bytesNeeded -= remaining
				return false, nil
			}
			sd.offset += sd.bytesNeeded
			sd.state = stReadLength

		case stReadLength:
			first := buffer[sd.offset]
			sd.offset++
			switch {
			case first < 0xFD:
				if first == 0 {
					sd.found = true
					return true, nil
				}
				sd.bytesNeeded = int(first)
				sd.state = stReadValueBytes
			case first == 0xFD:
				sd.bytesNeeded = 2
				sd.spillLen = 0
				sd.state = stReadLengthBytes
			case first == 0xFE:
				sd.bytesNeeded = 4
				sd.spillLen = 0
				sd.state = stReadLengthBytes
			default:
				return false, ErrVarNum8
			}

		case stReadLengthBytes:
			remaining := len(buffer) - sd.offset
			if remaining < sd.bytesNeeded {
				// length field straddles a fragment boundary: hold the tail
				// until the rest arrives
				sd.spillLen += copy(sd.spill[sd.spillLen:], buffer[sd.offset:])
				sd.offset += remaining
				sd.bytesNeeded -= remaining
				return false, nil
			}
			var length int
			if sd.spillLen > 0 {
				n := copy(sd.spill[sd.spillLen:sd.spillLen+sd.bytesNeeded], buffer[sd.offset:])
				sd.offset += n
				length = beInt(sd.spill[:sd.spillLen+n])
				sd.spillLen = 0
			} else {
				length = beInt(buffer[sd.offset : sd.offset+sd.bytesNeeded])
				sd.offset += sd.bytesNeeded
			}
			if length == 0 {
				sd.found = true
				return true, nil
			}
			sd.bytesNeeded = length
			sd.state = stReadValueBytes

		case stReadValueBytes:
			remaining := len(buffer) - sd.offset
			if remaining < sd.bytesNeeded {
				sd.offset += remaining
				sd.bytesNeeded -= remaining
				return false, nil
			}
			sd.offset += sd.bytesNeeded
			sd.found = true
			return true, nil
		}
	}
}

// beInt interprets 1-4 bytes as a big-endian unsigned integer.
func beInt(b []byte) (v int) {
	for _, octet := range b {
		v = v<<8 | int(octet)
	}
	return v
}
