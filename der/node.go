package der

import (
	"time"
)

const generalizedTimeFormat = "20060102150405Z"

// Node is one node of a DER tag-length-value tree.
//
// A leaf node owns its payload bytes. A constructed node (Sequence or an
// explicitly tagged node) owns an ordered list of children and caches its
// encoded payload size; appending a child invalidates the cache of the node
// and of every ancestor, so sizes are recomputed lazily on the next encode.
type Node struct {
	tag      byte
	value    []byte
	children []*Node
	parent   *Node
	cached   int
	dirty    bool
}

// NewBoolean creates a Boolean node.
func NewBoolean(v bool) *Node {
	payload := []byte{0x00}
	if v {
		payload[0] = 0xFF
	}
	return &Node{tag: TagBoolean, value: payload}
}

// NewInteger creates an Integer node with minimal two's complement payload.
func NewInteger(v int64) *Node {
	payload := make([]byte, 8)
	for i := range payload {
		payload[i] = byte(v >> (56 - 8*i))
	}
	for len(payload) > 1 &&
		((payload[0] == 0x00 && payload[1]&0x80 == 0) ||
			(payload[0] == 0xFF && payload[1]&0x80 != 0)) {
		payload = payload[1:]
	}
	return &Node{tag: TagInteger, value: payload}
}

// NewBitString creates a BitString node.
// unusedBits is the count of unused trailing bits in the last octet.
func NewBitString(bits []byte, unusedBits int) *Node {
	payload := make([]byte, 1+len(bits))
	payload[0] = byte(unusedBits)
	copy(payload[1:], bits)
	return &Node{tag: TagBitString, value: payload}
}

// NewOctetString creates an OctetString node.
func NewOctetString(p []byte) *Node {
	return &Node{tag: TagOctetString, value: p}
}

// NewNull creates a Null node.
func NewNull() *Node {
	return &Node{tag: TagNull}
}

// NewOID creates an ObjectIdentifier node.
func NewOID(oid OID) *Node {
	return &Node{tag: TagOID, value: oid.encode()}
}

// NewPrintableString creates a PrintableString node.
func NewPrintableString(s string) *Node {
	return &Node{tag: TagPrintableString, value: []byte(s)}
}

// NewGeneralizedTime creates a GeneralizedTime node in UTC.
func NewGeneralizedTime(t time.Time) *Node {
	return &Node{tag: TagGeneralizedTime, value: []byte(t.UTC().Format(generalizedTimeFormat))}
}

// NewSequence creates a Sequence node with the given children.
func NewSequence(children ...*Node) *Node {
	n := &Node{tag: TagSequence, dirty: true}
	n.Append(children...)
	return n
}

// NewExplicit creates a context-specific explicitly tagged node wrapping inner.
func NewExplicit(number int, inner *Node) *Node {
	n := &Node{tag: tagExplicit | byte(number), dirty: true}
	n.Append(inner)
	return n
}

// Tag returns the tag octet.
func (n *Node) Tag() byte {
	return n.tag
}

// Constructed reports whether this is a structural node owning children.
func (n *Node) Constructed() bool {
	return n.tag&0x20 != 0
}

// Children returns the ordered child list of a constructed node.
func (n *Node) Children() []*Node {
	return n.children
}

// Value returns the payload of a leaf node.
// The slice must not be modified.
func (n *Node) Value() []byte {
	return n.value
}

// Append adds children to a constructed node.
// Panics on a leaf node; appending to a leaf is a programming error.
func (n *Node) Append(children ...*Node) {
	if !n.Constructed() {
		panic("der: Append on non-constructed node")
	}
	for _, child := range children {
		child.parent = n
		n.children = append(n.children, child)
	}
	n.markDirty()
}

// markDirty invalidates the size cache of this node and its ancestors,
// stopping at the first ancestor that is already dirty.
func (n *Node) markDirty() {
	for p := n; p != nil && !p.dirty; p = p.parent {
		p.dirty = true
	}
}

// contentSize returns the payload size, recomputing lazily if dirty.
func (n *Node) contentSize() int {
	if !n.Constructed() {
		return len(n.value)
	}
	if n.dirty {
		sum := 0
		for _, child := range n.children {
			sum += child.Size()
		}
		n.cached = sum
		n.dirty = false
	}
	return n.cached
}

// Size returns the total encoded size including tag and length octets.
func (n *Node) Size() int {
	content := n.contentSize()
	return headerSize(content) + content
}

func headerSize(length int) int {
	size := 2 // tag octet and short-form length
	if length >= 0x80 {
		for l := length; l > 0; l >>= 8 {
			size++
		}
	}
	return size
}

// Encode returns the DER encoding of the subtree rooted at this node.
func (n *Node) Encode() []byte {
	return n.encodeTo(make([]byte, 0, n.Size()))
}

func (n *Node) encodeTo(b []byte) []byte {
	b = append(b, n.tag)
	b = appendLength(b, n.contentSize())
	if n.Constructed() {
		for _, child := range n.children {
			b = child.encodeTo(b)
		}
		return b
	}
	return append(b, n.value...)
}

// appendLength appends X.690 length octets: short form below 128, otherwise
// long form 0x80|count followed by count big-endian octets.
func appendLength(b []byte, length int) []byte {
	if length < 0x80 {
		return append(b, byte(length))
	}
	count := 0
	for l := length; l > 0; l >>= 8 {
		count++
	}
	b = append(b, 0x80|byte(count))
	for i := count - 1; i >= 0; i-- {
		b = append(b, byte(length>>(8*i)))
	}
	return b
}

// Bool interprets a Boolean node.
func (n *Node) Bool() (bool, error) {
	if n.tag != TagBoolean || len(n.value) != 1 {
		return false, ErrValue
	}
	return n.value[0] != 0, nil
}

// Int interprets an Integer node as a two's complement number.
func (n *Node) Int() (int64, error) {
	if n.tag != TagInteger || len(n.value) == 0 || len(n.value) > 8 {
		return 0, ErrValue
	}
	v := int64(int8(n.value[0])) // sign-extend
	for _, octet := range n.value[1:] {
		v = v<<8 | int64(octet)
	}
	return v, nil
}

// BitString interprets a BitString node, returning the bit payload and the
// count of unused trailing bits.
func (n *Node) BitString() (bits []byte, unusedBits int, e error) {
	if n.tag != TagBitString || len(n.value) == 0 || n.value[0] > 7 {
		return nil, 0, ErrValue
	}
	return n.value[1:], int(n.value[0]), nil
}

// OID interprets an ObjectIdentifier node.
func (n *Node) OID() (OID, error) {
	if n.tag != TagOID {
		return nil, ErrValue
	}
	return decodeOID(n.value)
}

// Time interprets a GeneralizedTime node.
func (n *Node) Time() (time.Time, error) {
	if n.tag != TagGeneralizedTime {
		return time.Time{}, ErrValue
	}
	t, e := time.Parse(generalizedTimeFormat, string(n.value))
	if e != nil {
		return time.Time{}, ErrValue
	}
	return t, nil
}
