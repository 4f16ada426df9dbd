// Package der implements the subset of X.690 DER encoding used for
// certificate and key material.
package der

import "errors"

// Universal tags of the supported node kinds.
// Sequence carries the constructed bit.
const (
	TagBoolean         = 0x01
	TagInteger         = 0x02
	TagBitString       = 0x03
	TagOctetString     = 0x04
	TagNull            = 0x05
	TagOID             = 0x06
	TagPrintableString = 0x13
	TagGeneralizedTime = 0x18
	TagSequence        = 0x30
)

// tagExplicit is the base tag of a context-specific explicitly tagged node.
const tagExplicit = 0xA0

// Error conditions.
var (
	ErrIncomplete = errors.New("incomplete DER input")
	ErrLength     = errors.New("bad DER length")
	ErrTag        = errors.New("unexpected DER tag")
	ErrValue      = errors.New("bad DER value")
)
