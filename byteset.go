package jsua

// byteSet is a bitset over the 256 possible byte values. It is the
// building block for all of the tokenizer's byte-class membership tests.
type byteSet [4]uint64

// newByteSet returns a set containing every byte in s.
func newByteSet(s string) *byteSet {
	var set byteSet
	for i := 0; i < len(s); i++ {
		set.set(s[i])
	}
	return &set
}

// newByteSetRange returns a set containing every byte in [lo, hi]
// inclusive.
func newByteSetRange(lo, hi byte) *byteSet {
	var set byteSet
	for b := int(lo); b <= int(hi); b++ {
		set.set(byte(b))
	}
	return &set
}

// get reports whether b holds the byte x.
func (b *byteSet) get(x uint8) bool {
	return b[x>>6]&(1<<(x&63)) != 0
}

// set ensures that x is in the set.
func (b *byteSet) set(x uint8) {
	b[x>>6] |= 1 << (x & 63)
}

// union returns the union of b and b1.
func (b *byteSet) union(b1 *byteSet) *byteSet {
	r := *b
	for i := range r {
		r[i] |= b1[i]
	}
	return &r
}
