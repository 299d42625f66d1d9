package jsua

// Byte classes shared by the synchronizer and the tokenizer's sub-states.
var (
	digitSet      = newByteSetRange('0', '9')
	hexDigitSet   = digitSet.union(newByteSetRange('a', 'f')).union(newByteSetRange('A', 'F'))
	whitespaceSet = newByteSet("\t\n\r ")
)

func isDigit(b byte) bool         { return digitSet.get(b) }
func isHexDigit(b byte) bool      { return hexDigitSet.get(b) }
func isWhitespaceByte(b byte) bool { return whitespaceSet.get(b) }
