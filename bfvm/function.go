package bfvm

import (
	"fmt"
	"io"
)

type Function struct {
	Name string
	Code []OpCode
}

// Dump writes the instruction sequence, one per line.
func (f *Function) Dump(w io.Writer) {
	for i, inst := range f.Code {
		fmt.Fprintf(w, "%d\t%s\n", i, inst)
	}
}
