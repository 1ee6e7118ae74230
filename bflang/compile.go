package bflang

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/reusee/bf/bfvm"
)

// Compile turns a character stream into a run-length-encoded instruction
// sequence. Bytes outside the eight command symbols are comments and are
// invisible: runs of the same command merge across them. Loop brackets are
// control-flow sites and never merge. Brackets are not matched here; a
// mismatch surfaces when the VM reaches it.
func Compile(name string, r io.Reader) (*bfvm.Function, error) {
	fn := &bfvm.Function{
		Name: name,
	}
	src := bufio.NewReader(r)

	cmd, op, err := nextCommand(src)
	for err == nil {

		if op == bfvm.OpLoopBegin || op == bfvm.OpLoopEnd {
			fn.Code = append(fn.Code, op.With(1))
			cmd, op, err = nextCommand(src)
			continue
		}

		count := 1
		var next byte
		var nextOp bfvm.OpCode
		for next, nextOp, err = nextCommand(src); err == nil && next == cmd; next, nextOp, err = nextCommand(src) {
			count++
			if count == bfvm.MaxCount {
				fn.Code = append(fn.Code, op.With(count))
				count = 0
			}
		}
		if count > 0 {
			fn.Code = append(fn.Code, op.With(count))
		}
		cmd, op = next, nextOp
	}

	if !errors.Is(err, io.EOF) {
		return nil, err
	}
	return fn, nil
}

func CompileString(name string, src string) (*bfvm.Function, error) {
	return Compile(name, strings.NewReader(src))
}

// nextCommand skips comment bytes and returns the next command byte with
// its opcode. io.EOF means the stream is exhausted.
func nextCommand(src *bufio.Reader) (byte, bfvm.OpCode, error) {
	for {
		b, err := src.ReadByte()
		if err != nil {
			return 0, 0, err
		}
		if op, ok := bfvm.FromSymbol(b); ok {
			return b, op, nil
		}
	}
}
