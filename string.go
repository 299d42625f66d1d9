package jsua

// stringSubState tracks where a string literal's sub-state machine is
// within an escape sequence, so it can suspend and resume across Feed
// calls without losing that context.
type stringSubState int

const (
	strNormal stringSubState = iota
	strBackslash
	strUnicodeHex
)

// stringSub is the resumable state of the string sub-state (section
// 4.3.1). Like the number sub-state, it owns a scratch buffer rather
// than slicing the current chunk directly: decoding an escape can start
// in one Feed call and finish in another, by which point the chunk that
// held the backslash is gone. The buffer only ever holds the bytes
// accumulated since the last emitted sub-event.
type stringSub struct {
	buf     []byte
	state   stringSubState
	hexLeft int
	hexVal  int
}

func (p *Parser) beginString() {
	p.str.state = strNormal
	if p.str.buf == nil {
		p.str.buf = make([]byte, 0, 32)
	}
	p.str.buf = p.str.buf[:0]
	p.sub = subString
}

func (p *Parser) flushString(final bool) {
	p.emit(Event{Kind: EventValStr, Completed: final, Data: p.str.buf, Container: p.stack.peek()})
	p.str.buf = p.str.buf[:0]
}

// resumeString advances the string sub-state as far as the current
// chunk allows.
func (p *Parser) resumeString() (bool, *Error) {
	for {
		b, outcome := p.win.read()
		if outcome == readSuspend {
			if len(p.str.buf) > 0 {
				p.flushString(false)
			}
			return false, nil
		}
		if outcome == readEOF {
			return true, p.errorAt(KindUnterminatedString, "unexpected end of input in string literal", true)
		}

		switch p.str.state {
		case strUnicodeHex:
			if !isHexDigit(b) {
				return true, p.errorAt(KindUnterminatedString, "invalid \\u escape", false)
			}
			p.str.buf = append(p.str.buf, b)
			p.str.hexVal = p.str.hexVal<<4 | hexVal(b)
			p.str.hexLeft--
			if p.str.hexLeft == 0 {
				if p.str.hexVal >= 0xD800 && p.str.hexVal <= 0xDFFF {
					p.stats = p.stats.set(StatSurrogateEscape)
				}
				p.str.state = strNormal
			}
		case strBackslash:
			switch b {
			case 'u':
				p.str.buf = append(p.str.buf, '\\', 'u')
				p.str.state = strUnicodeHex
				p.str.hexLeft = 4
				p.str.hexVal = 0
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				d, _ := jsonEscapes.decodeEscape(b)
				p.str.buf = append(p.str.buf, d)
				p.str.state = strNormal
			default:
				return true, p.errorAt(KindUnterminatedString, "invalid escape character", false)
			}
		default: // strNormal
			switch {
			case b == '"':
				p.flushString(true)
				p.sub = subNone
				p.previous = EventValStr
				return true, nil
			case b == '\\':
				p.str.state = strBackslash
			case b < 0x20:
				return true, p.errorAt(KindUnterminatedString, "control byte in string literal", false)
			default:
				p.str.buf = append(p.str.buf, b)
			}
		}
	}
}

func hexVal(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	default:
		return int(b-'A') + 10
	}
}
