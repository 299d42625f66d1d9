package jsua

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestByteSetBasic(t *testing.T) {
	c := qt.New(t)
	s := newByteSet("abc")
	c.Assert(s.get('a'), qt.IsTrue)
	c.Assert(s.get('b'), qt.IsTrue)
	c.Assert(s.get('c'), qt.IsTrue)
	c.Assert(s.get('d'), qt.IsFalse)
	c.Assert(s.get(0), qt.IsFalse)
}

func TestByteSetRange(t *testing.T) {
	c := qt.New(t)
	s := newByteSetRange('0', '9')
	for b := byte('0'); b <= '9'; b++ {
		c.Assert(s.get(b), qt.IsTrue, qt.Commentf("byte %q", b))
	}
	c.Assert(s.get('a'), qt.IsFalse)
	c.Assert(s.get('/'), qt.IsFalse)
	c.Assert(s.get(':'), qt.IsFalse)
}

func TestByteSetUnion(t *testing.T) {
	c := qt.New(t)
	s := newByteSetRange('a', 'f').union(newByteSetRange('A', 'F')).union(newByteSetRange('0', '9'))
	c.Assert(s.get('a'), qt.IsTrue)
	c.Assert(s.get('F'), qt.IsTrue)
	c.Assert(s.get('5'), qt.IsTrue)
	c.Assert(s.get('g'), qt.IsFalse)
	c.Assert(s.get('G'), qt.IsFalse)
}

func TestByteSetSet(t *testing.T) {
	c := qt.New(t)
	var s byteSet
	c.Assert(s.get('x'), qt.IsFalse)
	s.set('x')
	c.Assert(s.get('x'), qt.IsTrue)
}
