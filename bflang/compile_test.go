package bflang

import (
	"testing"

	"github.com/reusee/bf/bfvm"
)

func compile(t *testing.T, src string) *bfvm.Function {
	t.Helper()
	fn, err := CompileString("test", src)
	if err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestCompileEmpty(t *testing.T) {
	if fn := compile(t, ""); len(fn.Code) != 0 {
		t.Fatalf("got %v", fn.Code)
	}
}

func TestCompileCommentsOnly(t *testing.T) {
	fn := compile(t, "this whole program\nis a comment: no commands here at all!\n")
	if len(fn.Code) != 0 {
		t.Fatalf("got %v", fn.Code)
	}
}

func TestCompileRunLength(t *testing.T) {
	fn := compile(t, "+++")
	if len(fn.Code) != 1 {
		t.Fatalf("got %v", fn.Code)
	}
	if fn.Code[0] != bfvm.OpInc.With(3) {
		t.Fatalf("got %v", fn.Code[0])
	}
}

func TestCompileMergeAcrossComments(t *testing.T) {
	a := compile(t, "+ + +")
	b := compile(t, "+++")
	if len(a.Code) != 1 || a.Code[0] != b.Code[0] {
		t.Fatalf("got %v vs %v", a.Code, b.Code)
	}

	c := compile(t, "+++ some comment +++")
	if len(c.Code) != 1 || c.Code[0] != bfvm.OpInc.With(6) {
		t.Fatalf("got %v", c.Code)
	}
}

func TestCompileRunBreaks(t *testing.T) {
	fn := compile(t, "+++---")
	if len(fn.Code) != 2 {
		t.Fatalf("got %v", fn.Code)
	}
	if fn.Code[0] != bfvm.OpInc.With(3) || fn.Code[1] != bfvm.OpDec.With(3) {
		t.Fatalf("got %v", fn.Code)
	}
}

func TestCompileBracketsNeverMerge(t *testing.T) {
	fn := compile(t, "[[]]")
	want := []bfvm.OpCode{
		bfvm.OpLoopBegin.With(1),
		bfvm.OpLoopBegin.With(1),
		bfvm.OpLoopEnd.With(1),
		bfvm.OpLoopEnd.With(1),
	}
	if len(fn.Code) != len(want) {
		t.Fatalf("got %v", fn.Code)
	}
	for i, inst := range want {
		if fn.Code[i] != inst {
			t.Fatalf("got %v", fn.Code)
		}
	}
}

func TestCompileUnbalancedAccepted(t *testing.T) {
	// bracket matching is an execution-time concern
	fn := compile(t, "]")
	if len(fn.Code) != 1 || fn.Code[0] != bfvm.OpLoopEnd.With(1) {
		t.Fatalf("got %v", fn.Code)
	}
}

func TestCompileMixed(t *testing.T) {
	fn := compile(t, "++[>+<-].")
	want := []bfvm.OpCode{
		bfvm.OpInc.With(2),
		bfvm.OpLoopBegin.With(1),
		bfvm.OpRight.With(1),
		bfvm.OpInc.With(1),
		bfvm.OpLeft.With(1),
		bfvm.OpDec.With(1),
		bfvm.OpLoopEnd.With(1),
		bfvm.OpOut.With(1),
	}
	if len(fn.Code) != len(want) {
		t.Fatalf("got %v", fn.Code)
	}
	for i, inst := range want {
		if fn.Code[i] != inst {
			t.Fatalf("at %d got %v, want %v", i, fn.Code[i], inst)
		}
	}
}
