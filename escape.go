package jsua

// escapeTable maps the byte following a backslash in a JSON string to the
// single decoded byte it represents. The 'u' escape is handled separately
// by the tokenizer because it expands to more than one output byte, and
// is passed through raw rather than decoded (see SPEC_FULL.md's resolved
// open question on surrogate passthrough).
type escapeTable struct {
	decode [256]byte // escape char -> decoded byte (0 = no one-byte mapping)
}

func newEscapeTable(pairs map[byte]byte) *escapeTable {
	var e escapeTable
	for esc, decoded := range pairs {
		e.decode[esc] = decoded
	}
	return &e
}

// decodeEscape reports the decoded byte for the character following a
// backslash, and whether it names a recognized one-byte escape.
func (e *escapeTable) decodeEscape(b byte) (decoded byte, ok bool) {
	d := e.decode[b]
	return d, d != 0
}

// jsonEscapes is the decode table for the escape sequences of section
// 4.3.1. \u is not listed here: it is validated and copied through raw
// by the string sub-state rather than decoded.
var jsonEscapes = newEscapeTable(map[byte]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  0x08,
	'f':  0x0C,
	'n':  0x0A,
	'r':  0x0D,
	't':  0x09,
})
