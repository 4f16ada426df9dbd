package der

// Parse extracts the first DER node from wire and returns the unconsumed
// remainder. A constructed node's payload is recursively parsed as its
// children; the children must fill the declared length exactly.
//
// Leaf payloads alias the input buffer; the caller must not mutate wire while
// the returned tree is in use.
func Parse(wire []byte) (n *Node, rest []byte, e error) {
	if len(wire) < 2 {
		return nil, nil, ErrIncomplete
	}
	tag := wire[0]
	length, header, e := decodeLength(wire[1:])
	if e != nil {
		return nil, nil, e
	}
	content := wire[1+header:]
	if len(content) < length {
		return nil, nil, ErrIncomplete
	}
	rest = content[length:]
	content = content[:length:length]

	n = &Node{tag: tag}
	if !n.Constructed() {
		n.value = content
		return n, rest, nil
	}

	for len(content) > 0 {
		var child *Node
		if child, content, e = Parse(content); e != nil {
			return nil, nil, e
		}
		child.parent = n
		n.children = append(n.children, child)
	}
	n.cached = length
	return n, rest, nil
}

// decodeLength reads X.690 length octets, returning the content length and
// the number of octets consumed. The indefinite form (0x80) is not DER and is
// rejected.
func decodeLength(b []byte) (length, consumed int, e error) {
	if len(b) == 0 {
		return 0, 0, ErrIncomplete
	}
	first := b[0]
	if first < 0x80 {
		return int(first), 1, nil
	}
	count := int(first & 0x7F)
	if count == 0 || count > 4 {
		return 0, 0, ErrLength
	}
	if len(b) < 1+count {
		return 0, 0, ErrIncomplete
	}
	for _, octet := range b[1 : 1+count] {
		length = length<<8 | int(octet)
	}
	return length, 1 + count, nil
}
