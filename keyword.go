package jsua

// keywordSub is the resumable state of a true/false/null literal match.
// Keywords are always emitted atomically (Completed is always true when
// emitted): there is no use case for a caller to observe a half-matched
// "tru", so a suspension here produces no event at all, matching the
// core's matched-count-only resumption.
type keywordSub struct {
	lit     []byte
	kind    EventKind
	matched int
}

var (
	trueLit  = []byte("true")
	falseLit = []byte("false")
	nullLit  = []byte("null")
)

func (p *Parser) beginKeyword(lit []byte, kind EventKind) {
	p.kw.lit = lit
	p.kw.kind = kind
	p.kw.matched = 1 // the byte that triggered this (t/f/n) was already consumed
	p.sub = subKeyword
}

// resumeKeyword advances the keyword match as far as the current chunk
// allows.
func (p *Parser) resumeKeyword() (bool, *Error) {
	for p.kw.matched < len(p.kw.lit) {
		b, outcome := p.win.read()
		if outcome == readSuspend {
			return false, nil
		}
		if outcome == readEOF || b != p.kw.lit[p.kw.matched] {
			return true, p.errorAt(KindUnterminatedLiteral, "unrecognized literal", outcome == readEOF)
		}
		p.kw.matched++
	}
	p.emit(Event{Kind: p.kw.kind, Completed: true, Data: p.kw.lit, Container: p.stack.peek()})
	p.previous = p.kw.kind
	p.sub = subNone
	return true, nil
}
