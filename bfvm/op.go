package bfvm

import "fmt"

// OpCode packs the command in the low byte and the repeat count in the
// upper bits.
type OpCode uint32

const (
	OpRight OpCode = iota + 1
	OpLeft
	OpInc
	OpDec
	OpOut
	OpIn
	OpLoopBegin
	OpLoopEnd
)

// MaxCount is the largest repeat count one instruction can carry. Longer
// runs are split by the compiler.
const MaxCount = 1<<24 - 1

func (o OpCode) With(count int) OpCode {
	return o | OpCode(count)<<8
}

func (o OpCode) Base() OpCode {
	return o & 0xff
}

func (o OpCode) Count() int {
	return int(o >> 8)
}

// FromSymbol maps a source byte to its command. The second return is false
// for comment bytes.
func FromSymbol(b byte) (OpCode, bool) {
	switch b {
	case '>':
		return OpRight, true
	case '<':
		return OpLeft, true
	case '+':
		return OpInc, true
	case '-':
		return OpDec, true
	case '.':
		return OpOut, true
	case ',':
		return OpIn, true
	case '[':
		return OpLoopBegin, true
	case ']':
		return OpLoopEnd, true
	}
	return 0, false
}

func (o OpCode) Symbol() byte {
	switch o.Base() {
	case OpRight:
		return '>'
	case OpLeft:
		return '<'
	case OpInc:
		return '+'
	case OpDec:
		return '-'
	case OpOut:
		return '.'
	case OpIn:
		return ','
	case OpLoopBegin:
		return '['
	case OpLoopEnd:
		return ']'
	}
	return '?'
}

func (o OpCode) String() string {
	return fmt.Sprintf("%c x%d", o.Symbol(), o.Count())
}
