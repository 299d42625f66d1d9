// Package jsua implements a streaming, event-driven JSON tokenizer that
// can begin reading at an arbitrary byte offset within a document,
// resynchronizing onto structurally valid ground before reporting any
// events.
package jsua

// subState identifies which sub-state machine, if any, tokenize is
// currently resuming.
type subState int

const (
	subNone subState = iota
	subString
	subNumber
	subKeyword
)

// Option configures a Parser at construction time.
type Option func(*Parser)

// Synchronizing controls whether the Parser runs the synchronization
// preamble before tokenizing (enabled by default). Disabling it is only
// correct when the caller guarantees Feed's first call begins exactly at
// a document boundary.
func Synchronizing(enabled bool) Option {
	return func(p *Parser) { p.syncEnabled = enabled }
}

// Parser is a resumable, push-based JSON tokenizer. Feed may be called
// any number of times with successive chunks of a byte stream; the
// configured EventFunc is invoked synchronously from within Feed for
// every token or structural byte recognized.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	cb          EventFunc
	syncEnabled bool

	win   *window
	sync  *synchronizer
	stack *containerStack

	sub subState
	str stringSub
	num numberSub
	kw  keywordSub

	// previous is the EventKind of the last structurally significant
	// event emitted, used by dispatch's ':' rule. EventNone means no
	// value has been observed yet at the current nesting level.
	previous EventKind

	stats Stats
	err   *Error
}

// New creates a Parser that invokes cb for each recognized event.
func New(cb EventFunc, opts ...Option) *Parser {
	p := &Parser{
		cb:          cb,
		syncEnabled: true,
		win:         newWindow(),
		stack:       newContainerStack(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.syncEnabled {
		p.sync = newSynchronizer()
	} else {
		p.sync = &synchronizer{phase: syncPhaseDone}
	}
	return p
}

// Feed supplies the next chunk of the input stream. A nil or empty data
// slice marks end of input: no further Feed calls are permitted after
// one returns with data == nil in length 0 form used as final (every
// call with len(data) == 0 is treated as the terminal chunk).
//
// Feed returns the same poisoning Error on every call after the Parser
// has encountered a fatal parse failure.
func (p *Parser) Feed(data []byte) error {
	if p.err != nil {
		return p.err
	}

	final := len(data) == 0
	p.win.reset(data, final)

	if err := p.run(); err != nil {
		p.err = err
		return err
	}
	return nil
}

// Err returns the fatal error that poisoned the Parser, if any.
func (p *Parser) Err() error {
	if p.err == nil {
		return nil
	}
	return p.err
}

// Stats returns the diagnostic bitmask accumulated so far.
func (p *Parser) Stats() Stats {
	return p.stats
}

// run drives synchronization (once, if enabled) and then the tokenize
// loop, over as much of the current chunk as is available.
func (p *Parser) run() *Error {
	if p.sync.phase != syncPhaseDone {
		done, err := p.sync.run(p.win)
		if err != nil {
			return err
		}
		if !done {
			return nil
		}
		if p.sync.class == classTrue {
			p.stats = p.stats.set(StatSyncedInString)
		}
	}
	return p.tokenize()
}

// tokenize resumes whatever sub-state is active, then reads and
// dispatches fresh bytes, until the chunk is exhausted or a fatal error
// occurs.
func (p *Parser) tokenize() *Error {
	for {
		switch p.sub {
		case subString:
			advanced, err := p.resumeString()
			if err != nil {
				return err
			}
			if !advanced {
				return nil
			}
			continue
		case subNumber:
			advanced, err := p.resumeNumber()
			if err != nil {
				return err
			}
			if !advanced {
				return nil
			}
			continue
		case subKeyword:
			advanced, err := p.resumeKeyword()
			if err != nil {
				return err
			}
			if !advanced {
				return nil
			}
			continue
		}

		b, outcome := p.win.read()
		if outcome == readSuspend {
			return nil
		}
		if outcome == readEOF {
			return nil
		}
		if err := p.dispatch(b); err != nil {
			return err
		}
	}
}

func (p *Parser) emit(e Event) {
	p.cb(e)
}

// errorAt builds an Error anchored at the window's current position.
func (p *Parser) errorAt(kind ErrKind, msg string, atEOF bool) *Error {
	return newError(kind, msg, p.win.buf, p.win.pos, atEOF)
}
