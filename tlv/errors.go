package tlv

import "errors"

// Error conditions.
var (
	// ErrIncomplete indicates a read that needs more bytes than remain in the buffer.
	ErrIncomplete = errors.New("incomplete input")

	// ErrType indicates a TLV-TYPE different from what the schema expects at this position.
	ErrType = errors.New("unexpected TLV-TYPE")

	// ErrLength indicates a TLV-LENGTH that exceeds the enclosing buffer.
	ErrLength = errors.New("TLV-LENGTH exceeds buffer")

	// ErrNesting indicates that child TLV-LENGTH fields are inconsistent with the parent's.
	ErrNesting = errors.New("TLV-LENGTH inconsistent with element nesting")

	// ErrVarNum8 indicates the unsupported 8-octet VAR-NUMBER form.
	ErrVarNum8 = errors.New("8-octet VAR-NUMBER is not supported")

	// ErrRange indicates a negative or out-of-range value passed to an encoder.
	ErrRange = errors.New("value out of range")

	// ErrNNILength indicates a NonNegativeInteger whose TLV-LENGTH is not 1, 2, 4, or 8.
	ErrNNILength = errors.New("bad NonNegativeInteger length")
)
