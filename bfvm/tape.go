package bfvm

// Tape is the byte memory a program operates on. It grows to the right as
// the cursor advances and never shrinks. Cells are zero until written.
type Tape struct {
	Cells  []byte
	Cursor int
}

func NewTape(prealloc int) *Tape {
	if prealloc < 1 {
		prealloc = 1
	}
	return &Tape{
		Cells: make([]byte, prealloc),
	}
}

func (t *Tape) Read() byte {
	return t.Cells[t.Cursor]
}

func (t *Tape) Write(b byte) {
	t.Cells[t.Cursor] = b
}

func (t *Tape) Advance(n int) {
	t.Cursor += n
	if t.Cursor >= len(t.Cells) {
		t.Cells = append(t.Cells, make([]byte, t.Cursor+1-len(t.Cells))...)
	}
}

func (t *Tape) Retreat(n int) error {
	if n > t.Cursor {
		return ErrTapeUnderflow
	}
	t.Cursor -= n
	return nil
}

// Add and Sub use wrapping 8-bit arithmetic, as the language requires.

func (t *Tape) Add(n int) {
	t.Cells[t.Cursor] += byte(n)
}

func (t *Tape) Sub(n int) {
	t.Cells[t.Cursor] -= byte(n)
}
