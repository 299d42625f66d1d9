package jsua

import "fmt"

// ErrKind identifies the class of a fatal, terminal parse failure.
type ErrKind uint8

const (
	_ ErrKind = iota
	KindUnterminatedString
	KindUnterminatedNumber
	KindUnterminatedLiteral
	KindUnexpectedChar
)

var errKindNames = []string{
	KindUnterminatedString:  "UnterminatedString",
	KindUnterminatedNumber:  "UnterminatedNumber",
	KindUnterminatedLiteral: "UnterminatedLiteral",
	KindUnexpectedChar:      "UnexpectedChar",
}

func (k ErrKind) String() string {
	if int(k) < len(errKindNames) && errKindNames[k] != "" {
		return errKindNames[k]
	}
	return fmt.Sprintf("ErrKind(%d)", uint8(k))
}

// sampleSize bounds the context window kept around a failing byte.
const sampleSize = 32

// Error describes a fatal, terminal parse failure. Once a Parser returns
// an Error from Feed, it is poisoned: every subsequent Feed returns the
// same Error.
type Error struct {
	Kind ErrKind

	// Sample holds up to sampleSize bytes of context ending at (and,
	// unless the failure was an end-of-input condition, including) the
	// failing byte.
	Sample     [sampleSize]byte
	SampleSize int

	// Offset is the index of the failing byte within Sample[:SampleSize].
	// It is one past the last sample byte when the failure was detected
	// at end of input rather than on a concrete byte.
	Offset int

	msg string
}

func (e *Error) Error() string {
	if e.msg == "" {
		return fmt.Sprintf("jsua: %s", e.Kind)
	}
	return fmt.Sprintf("jsua: %s: %s", e.Kind, e.msg)
}

// newError builds an Error from the trailing bytes of buf ending at pos.
// atEOF indicates the failure was end-of-input rather than a specific
// offending byte at buf[pos-1].
func newError(kind ErrKind, msg string, buf []byte, pos int, atEOF bool) *Error {
	if pos > len(buf) {
		pos = len(buf)
	}
	if pos < 0 {
		pos = 0
	}
	start := pos - sampleSize
	if start < 0 {
		start = 0
	}
	e := &Error{Kind: kind, msg: msg}
	n := copy(e.Sample[:], buf[start:pos])
	e.SampleSize = n
	if atEOF {
		e.Offset = n
	} else {
		e.Offset = n - 1
	}
	return e
}
