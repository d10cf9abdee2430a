package arith_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/arith"
)

func FuzzTokenize(f *testing.F) {
	f.Add("1+1")
	f.Add(" -1 * .5")
	f.Add("1.12.3")
	f.Add("..123")
	f.Fuzz(func(t *testing.T, s string) {
		toks, err := arith.Tokenize([]byte(s))
		if err != nil {
			var ie arith.InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%q: error %v has no position", s, err)
			}
			if ie.Pos() < 0 || ie.Pos() >= len(s) {
				t.Fatalf("%q: error position %d out of range", s, ie.Pos())
			}
			return
		}
		for _, tok := range toks {
			if tok.Start < 0 || tok.End > len(s) || tok.End <= tok.Start {
				t.Fatalf("%q: bad span on %v", s, tok)
			}
		}
	})
}

func FuzzEval(f *testing.F) {
	f.Add("1+2*4+1")
	f.Add("1/0")
	f.Add("1++1")
	f.Add("1 2")
	f.Fuzz(func(t *testing.T, s string) {
		arith.EvalString(s)
	})
}
