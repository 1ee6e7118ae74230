package bfvm

import (
	"errors"
	"testing"
)

func TestTapeGrowth(t *testing.T) {
	for _, k := range []int{0, 1, 7, 1024, 100_000} {
		tape := NewTape(1)
		tape.Advance(k)
		if tape.Cursor != k {
			t.Fatalf("cursor %d, want %d", tape.Cursor, k)
		}
		if b := tape.Read(); b != 0 {
			t.Fatalf("fresh cell at %d is %d", k, b)
		}
	}
}

func TestTapeGrowthKeepsCells(t *testing.T) {
	tape := NewTape(1)
	tape.Write(42)
	tape.Advance(1000)
	if err := tape.Retreat(1000); err != nil {
		t.Fatal(err)
	}
	if b := tape.Read(); b != 42 {
		t.Fatalf("got %d", b)
	}
}

func TestTapeWrap(t *testing.T) {
	tape := NewTape(1)

	tape.Write(255)
	tape.Add(1)
	if b := tape.Read(); b != 0 {
		t.Fatalf("255+1 = %d", b)
	}

	tape.Write(0)
	tape.Sub(1)
	if b := tape.Read(); b != 255 {
		t.Fatalf("0-1 = %d", b)
	}

	tape.Write(0)
	tape.Add(256 + 7)
	if b := tape.Read(); b != 7 {
		t.Fatalf("0+263 = %d", b)
	}
}

func TestTapeUnderflow(t *testing.T) {
	tape := NewTape(1)
	if err := tape.Retreat(1); !errors.Is(err, ErrTapeUnderflow) {
		t.Fatalf("got %v", err)
	}
	// the failed retreat must not move the cursor
	if tape.Cursor != 0 {
		t.Fatal()
	}

	tape.Advance(3)
	if err := tape.Retreat(4); !errors.Is(err, ErrTapeUnderflow) {
		t.Fatalf("got %v", err)
	}
	if err := tape.Retreat(3); err != nil {
		t.Fatal(err)
	}
}
