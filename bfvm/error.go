package bfvm

import "errors"

var (
	// ErrTapeUnderflow reports a cursor moved left of the origin.
	ErrTapeUnderflow = errors.New("tape underflow")

	// ErrUnbalancedLoop reports a loop-end with no open loop, or a
	// loop-begin whose end is missing. Brackets are not validated at
	// compile time, so this surfaces only on the executed path.
	ErrUnbalancedLoop = errors.New("unbalanced loop")
)
