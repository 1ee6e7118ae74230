package bfvm

import (
	"bufio"
	"bytes"
	"io"
)

type VM struct {
	Fun       *Function
	IP        int
	Tape      *Tape
	LoopStack []int

	// unexported so gob snapshots carry state only
	trace func(ip int, inst OpCode)

	in  *bufio.Reader
	out io.Writer
}

// SetTrace installs a hook observing every instruction before it executes.
func (v *VM) SetTrace(fn func(ip int, inst OpCode)) {
	v.trace = fn
}

func NewVM(fn *Function, in io.Reader, out io.Writer) *VM {
	if in == nil {
		in = bytes.NewReader(nil)
	}
	if out == nil {
		out = io.Discard
	}
	return &VM{
		Fun:  fn,
		Tape: NewTape(1),
		in:   bufio.NewReader(in),
		out:  out,
	}
}

// Reset rewinds the VM to a fresh program start, keeping the tape.
func (v *VM) Reset(fn *Function) {
	v.Fun = fn
	v.IP = 0
	v.LoopStack = v.LoopStack[:0]
}
