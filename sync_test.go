package jsua

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func classify(s string) classVal {
	sy := newSynchronizer()
	for i := 0; i < len(s); i++ {
		if sy.classifyStep(s[i]) {
			return sy.class
		}
	}
	// Input ran out unresolved: apply the end-of-input rule, as run does.
	sy.classifyEOF()
	return sy.class
}

func TestClassifyStepPlainStructuralIsFalse(t *testing.T) {
	c := qt.New(t)
	c.Assert(classify(","), qt.Equals, classFalse)
	c.Assert(classify("]"), qt.Equals, classFalse)
}

func TestClassifyStepQuoteThenYesByteInverts(t *testing.T) {
	c := qt.New(t)
	// A leading quote flips classification parity; a YES byte after that
	// reifies against the inverted state, landing on False here.
	c.Assert(classify("\"\\"), qt.Equals, classFalse)
	// Two quotes back to back cancel the inversion, so the same YES byte
	// now reifies to True.
	c.Assert(classify("\"\"\\"), qt.Equals, classTrue)
}

func TestClassifyStepControlByteIsFalseOutsideString(t *testing.T) {
	c := qt.New(t)
	c.Assert(classify("\n"), qt.Equals, classFalse)
}

func TestClassifyStepContextualCommaRule(t *testing.T) {
	c := qt.New(t)
	// After a bare comma, seeing ':' only makes sense if the comma and
	// colon were both literal string content (an unescaped ':' right
	// after a structural comma is not otherwise legal JSON). Neither the
	// leading letter nor the comma resolves anything on its own, so only
	// the contextual rule can resolve the ':'.
	c.Assert(classify("x,:"), qt.Equals, classTrue)
}

func TestSynchronizerRunNotInString(t *testing.T) {
	c := qt.New(t)
	w := newWindow()
	w.reset([]byte("9,8,"), true)
	sy := newSynchronizer()
	done, err := sy.run(w)
	c.Assert(err, qt.IsNil)
	c.Assert(done, qt.IsTrue)
	c.Assert(sy.class, qt.Equals, classFalse)
	// All bytes must have been rewound for the tokenizer to see.
	b, outcome := w.read()
	c.Assert(outcome, qt.Equals, readOK)
	c.Assert(b, qt.Equals, byte('9'))
}

func TestSynchronizerRunInString(t *testing.T) {
	c := qt.New(t)
	w := newWindow()
	w.reset([]byte("lo\",8"), true)
	sy := newSynchronizer()
	done, err := sy.run(w)
	c.Assert(err, qt.IsNil)
	c.Assert(done, qt.IsTrue)
	c.Assert(sy.class, qt.Equals, classTrue)
	// The closing quote and everything before it must be consumed; the
	// tokenizer should see only what follows the string.
	b, outcome := w.read()
	c.Assert(outcome, qt.Equals, readOK)
	c.Assert(b, qt.Equals, byte(','))
}

func TestSynchronizerRunInStringUnterminatedIsFatal(t *testing.T) {
	c := qt.New(t)
	w := newWindow()
	w.reset([]byte("lo\\"), true)
	sy := newSynchronizer()
	_, err := sy.run(w)
	c.Assert(err, qt.IsNotNil)
	c.Assert(err.Kind, qt.Equals, KindUnterminatedString)
}

func TestSynchronizerRunSuspendsAcrossFeeds(t *testing.T) {
	c := qt.New(t)
	w := newWindow()
	w.reset([]byte("ab"), false)
	sy := newSynchronizer()
	done, err := sy.run(w)
	c.Assert(err, qt.IsNil)
	c.Assert(done, qt.IsFalse)

	w.reset([]byte(","), true)
	done, err = sy.run(w)
	c.Assert(err, qt.IsNil)
	c.Assert(done, qt.IsTrue)
	c.Assert(sy.class, qt.Equals, classFalse)
}
