package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/ndnwire/ndnclient/tlv"
)

// dumpElements prints each element in wire as a line "type len [value]",
// recursing into values that are themselves well-formed TLV sequences.
func dumpElements(w io.Writer, wire []byte, indent int) error {
	for len(wire) > 0 {
		var typ, length tlv.VarNum
		rest, e := typ.Decode(wire)
		if e != nil {
			return e
		}
		if rest, e = length.Decode(rest); e != nil {
			return e
		}
		if int(length) > len(rest) {
			return tlv.ErrLength
		}
		value := rest[:length]
		wire = rest[length:]

		prefix := strings.Repeat("  ", indent)
		switch {
		case length == 0:
			fmt.Fprintf(w, "%s0x%02X len=0\n", prefix, uint64(typ))
		case isElementSequence(value):
			fmt.Fprintf(w, "%s0x%02X len=%d\n", prefix, uint64(typ), uint64(length))
			if e := dumpElements(w, value, indent+1); e != nil {
				return e
			}
		default:
			fmt.Fprintf(w, "%s0x%02X len=%d %s\n", prefix, uint64(typ), uint64(length), hex.EncodeToString(value))
		}
	}
	return nil
}

// isElementSequence reports whether value parses completely as a
// concatenation of TLV elements.
func isElementSequence(value []byte) bool {
	for len(value) > 0 {
		var typ, length tlv.VarNum
		rest, e := typ.Decode(value)
		if e != nil {
			return false
		}
		if rest, e = length.Decode(rest); e != nil {
			return false
		}
		if int(length) > len(rest) {
			return false
		}
		value = rest[length:]
	}
	return true
}
