package jsua

// classVal is the four-valued synchronization classification from the
// design notes: True/False are resolved, Unknown/AntiUnknown are not.
// AntiUnknown carries real information ("one quote has been seen, so
// evidence reads inverted") and is never collapsed into a plain boolean
// with a flag.
type classVal int

const (
	classUnknown classVal = iota
	classAntiUnknown
	classTrue
	classFalse
)

func (v classVal) invert() classVal {
	switch v {
	case classUnknown:
		return classAntiUnknown
	case classAntiUnknown:
		return classUnknown
	case classTrue:
		return classFalse
	default:
		return classTrue
	}
}

var (
	syncYesBytes     = newByteSet("\\'")
	syncNoBytes      = newByteSetRange(0x00, 0x1F)
	syncContextBytes = newByteSet(":]},")
)

type syncPhase int

const (
	syncPhaseClassify syncPhase = iota
	syncPhaseSkipString
	syncPhaseDone
)

// synchronizer drives the one-time, resumable synchronization preamble:
// classify whether the starting offset is inside a string, then either
// skip to that string's closing quote or hand off directly to the
// ordinary tokenizer. Unlike the heuristic this is grounded on, there is
// no separate "discard to the next safe-landing byte" step for the
// not-in-string case: the classification loop itself already consumes
// only bytes it needs to resolve in/out-of-string, so whatever remains
// after rewind begins exactly where the tokenizer's own dispatch (which
// already skips whitespace) can safely pick up. A separate discard step
// would risk swallowing the first byte of a value that was never part
// of the ambiguous region at all.
type synchronizer struct {
	phase       syncPhase
	class       classVal
	prevComma   bool
	escaped     bool
	markStarted bool
}

func newSynchronizer() *synchronizer {
	return &synchronizer{phase: syncPhaseClassify}
}

// classifyStep advances the classifier by one byte and reports whether
// classification has resolved to True or False.
func (s *synchronizer) classifyStep(b byte) bool {
	switch {
	case b == '"':
		s.class = s.class.invert()
	case syncYesBytes.get(b):
		switch s.class {
		case classUnknown:
			s.class = classTrue
		case classAntiUnknown:
			s.class = classFalse
		}
	case syncNoBytes.get(b):
		switch s.class {
		case classUnknown:
			s.class = classFalse
		case classAntiUnknown:
			s.class = classTrue
		}
	case s.prevComma && syncContextBytes.get(b):
		// After a ',', seeing one of : ] } , implies we were in a
		// string (an unescaped occurrence of any of those bytes
		// immediately after a bare comma is otherwise nonsensical
		// JSON at this classification depth).
		switch s.class {
		case classUnknown:
			s.class = classTrue
		case classAntiUnknown:
			s.class = classFalse
		}
	}
	if !isWhitespaceByte(b) {
		s.prevComma = b == ','
	}
	return s.class == classTrue || s.class == classFalse
}

// classifyEOF resolves a classification that ran out of input. A
// well-formed JSON document cannot end mid-string, so the end of input is
// evidence of "not inside one" at that point; like any other evidence it
// is read through the quote parity seen so far: Unknown resolves to False,
// AntiUnknown to True.
func (s *synchronizer) classifyEOF() {
	if s.class == classAntiUnknown {
		s.class = classTrue
	} else {
		s.class = classFalse
	}
}

// run advances synchronization as far as the current chunk allows. It
// reports done=true once synchronization has finished, successfully or
// fatally; done=false means the caller must return from Feed and call
// run again on the next one.
func (s *synchronizer) run(w *window) (bool, *Error) {
	if s.phase == syncPhaseClassify {
		if !s.markStarted {
			w.mark()
			s.markStarted = true
		}
		for {
			b, outcome := w.read()
			if outcome == readSuspend {
				return false, nil
			}
			if outcome == readEOF {
				s.classifyEOF()
				break
			}
			if s.classifyStep(b) {
				break
			}
		}
		w.rewind()
		if s.class == classTrue {
			s.phase = syncPhaseSkipString
		} else {
			s.phase = syncPhaseDone
			return true, nil
		}
	}

	// syncPhaseSkipString: consume through the closing quote of the
	// string we landed inside. The tokenizer never sees these bytes.
	for {
		b, outcome := w.read()
		if outcome == readSuspend {
			return false, nil
		}
		if outcome == readEOF {
			return true, newError(KindUnterminatedString,
				"end of input while synchronizing inside a string literal",
				w.buf, w.pos, true)
		}
		if s.escaped {
			s.escaped = false
			continue
		}
		if b == '\\' {
			s.escaped = true
			continue
		}
		if b == '"' {
			s.phase = syncPhaseDone
			return true, nil
		}
	}
}
