package der

import (
	"strconv"
	"strings"
)

// OID is an object identifier as a list of integer components.
type OID []int

func (oid OID) String() string {
	parts := make([]string, len(oid))
	for i, comp := range oid {
		parts[i] = strconv.Itoa(comp)
	}
	return strings.Join(parts, ".")
}

// Equal compares two object identifiers.
func (oid OID) Equal(other OID) bool {
	if len(oid) != len(other) {
		return false
	}
	for i, comp := range oid {
		if comp != other[i] {
			return false
		}
	}
	return true
}

// ParseOID parses dotted notation such as "1.2.840.10045.2.1".
func ParseOID(s string) (OID, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return nil, ErrValue
	}
	oid := make(OID, len(parts))
	for i, part := range parts {
		comp, e := strconv.Atoi(part)
		if e != nil || comp < 0 {
			return nil, ErrValue
		}
		oid[i] = comp
	}
	return oid, nil
}

// encode produces OID content octets: the first two components pack into one
// value as 40*first+second, then each value is base-128 encoded with the
// continuation bit 0x80 on all but its last octet.
func (oid OID) encode() []byte {
	if len(oid) < 2 {
		return nil
	}
	b := appendBase128(nil, 40*oid[0]+oid[1])
	for _, comp := range oid[2:] {
		b = appendBase128(b, comp)
	}
	return b
}

func appendBase128(b []byte, v int) []byte {
	count := 1
	for l := v; l >= 0x80; l >>= 7 {
		count++
	}
	for i := count - 1; i >= 0; i-- {
		octet := byte(v>>(7*i)) & 0x7F
		if i > 0 {
			octet |= 0x80
		}
		b = append(b, octet)
	}
	return b
}

func decodeOID(content []byte) (OID, error) {
	if len(content) == 0 {
		return nil, ErrValue
	}
	var values []int
	v := 0
	for i, octet := range content {
		v = v<<7 | int(octet&0x7F)
		if octet&0x80 == 0 {
			values = append(values, v)
			v = 0
		} else if i == len(content)-1 {
			return nil, ErrIncomplete
		}
	}

	oid := make(OID, 0, len(values)+1)
	first := values[0]
	switch {
	case first < 40:
		oid = append(oid, 0, first)
	case first < 80:
		oid = append(oid, 1, first-40)
	default:
		oid = append(oid, 2, first-80)
	}
	return append(oid, values[1:]...), nil
}
