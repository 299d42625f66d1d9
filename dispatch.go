package jsua

// dispatch handles one byte at the top level (outside any sub-state),
// implementing the structural table of section 4.3.
func (p *Parser) dispatch(b byte) *Error {
	switch {
	case isWhitespaceByte(b):
		return nil

	case b == '{':
		p.stack.push(ContainerObject)
		p.emit(Event{Kind: EventObjStart, Completed: true, Container: ContainerObject})
		p.previous = EventNone
		return nil

	case b == '[':
		p.stack.push(ContainerArray)
		p.emit(Event{Kind: EventArrStart, Completed: true, Container: ContainerArray})
		p.previous = EventNone
		return nil

	case b == '}':
		newTop, absorbed, ok := p.stack.pop(ContainerObject)
		if !ok {
			return p.errorAt(KindUnexpectedChar, "unexpected '}'", false)
		}
		if absorbed {
			p.stats = p.stats.set(StatRootCloseAbsorbed)
			p.stack.resetComma()
		}
		p.emit(Event{Kind: EventObjEnd, Completed: true, Container: newTop})
		p.previous = EventObjEnd
		return nil

	case b == ']':
		newTop, absorbed, ok := p.stack.pop(ContainerArray)
		if !ok {
			return p.errorAt(KindUnexpectedChar, "unexpected ']'", false)
		}
		if absorbed {
			p.stats = p.stats.set(StatRootCloseAbsorbed)
			p.stack.resetComma()
		}
		p.emit(Event{Kind: EventArrEnd, Completed: true, Container: newTop})
		p.previous = EventArrEnd
		return nil

	case b == ':':
		// A colon only makes sense following a string key, or with no
		// prior value observed at all (EventNone) when synchronization
		// landed mid-object. Either way it resolves an Unknown container
		// to Object.
		if p.previous != EventValStr && p.previous != EventNone {
			return p.errorAt(KindUnexpectedChar, "unexpected ':'", false)
		}
		if wasUnknown, ok := p.stack.set(ContainerObject); ok && wasUnknown {
			p.stats = p.stats.set(StatColonResolvedObject)
		} else if !ok {
			return p.errorAt(KindUnexpectedChar, "':' inside array", false)
		}
		p.stack.resetComma()
		p.emit(Event{Kind: EventColon, Completed: true, Container: p.stack.peek()})
		p.previous = EventNone
		return nil

	case b == ',':
		if p.stack.incComma() {
			p.stats = p.stats.set(StatCommaResolvedArray)
		}
		p.emit(Event{Kind: EventComma, Completed: true, Container: p.stack.peek()})
		p.previous = EventNone
		return nil

	case b == '"':
		p.beginString()
		return nil

	case b == '-' || isDigit(b):
		p.beginNumber(b)
		return nil

	case b == 't':
		p.beginKeyword(trueLit, EventValBool)
		return nil

	case b == 'f':
		p.beginKeyword(falseLit, EventValBool)
		return nil

	case b == 'n':
		p.beginKeyword(nullLit, EventValNull)
		return nil

	default:
		return p.errorAt(KindUnexpectedChar, "unexpected character", false)
	}
}
