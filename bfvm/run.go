package bfvm

import (
	"errors"
	"fmt"
	"io"
)

// Run is the fetch-execute loop, shaped as an error sequence:
//
//	for err := range vm.Run { ... }
//
// Yielded errors are fatal; the loop stops after the first one. A run that
// walks past the end of the code halts without yielding.
func (v *VM) Run(yield func(error) bool) {
	for {
		if v.IP < 0 || v.IP >= len(v.Fun.Code) {
			return
		}

		inst := v.Fun.Code[v.IP]
		if v.trace != nil {
			v.trace(v.IP, inst)
		}
		count := inst.Count()

		switch inst.Base() {

		case OpRight:
			v.Tape.Advance(count)
			v.IP++

		case OpLeft:
			if err := v.Tape.Retreat(count); err != nil {
				yield(err)
				return
			}
			v.IP++

		case OpInc:
			v.Tape.Add(count)
			v.IP++

		case OpDec:
			v.Tape.Sub(count)
			v.IP++

		case OpOut:
			b := v.Tape.Read()
			for range count {
				if _, err := v.out.Write([]byte{b}); err != nil {
					yield(err)
					return
				}
			}
			v.IP++

		case OpIn:
			for range count {
				b, err := v.in.ReadByte()
				if errors.Is(err, io.EOF) {
					// exhausted input leaves the cell unchanged
					break
				}
				if err != nil {
					yield(err)
					return
				}
				v.Tape.Write(b)
			}
			v.IP++

		case OpLoopBegin:
			if v.Tape.Read() == 0 {
				ip, err := v.skipLoop()
				if err != nil {
					yield(err)
					return
				}
				v.IP = ip
			} else {
				v.LoopStack = append(v.LoopStack, v.IP)
				v.IP++
			}

		case OpLoopEnd:
			n := len(v.LoopStack)
			if n == 0 {
				yield(fmt.Errorf("%w: loop-end at %d with no open loop", ErrUnbalancedLoop, v.IP))
				return
			}
			// jump back to the loop-begin so it re-evaluates the cell
			v.IP = v.LoopStack[n-1]
			v.LoopStack = v.LoopStack[:n-1]

		default:
			yield(fmt.Errorf("invalid opcode at %d: %d", v.IP, inst.Base()))
			return
		}
	}
}

// skipLoop scans from the loop-begin at IP to its matching loop-end,
// tracking nesting depth, and returns the position just past the end.
func (v *VM) skipLoop() (int, error) {
	depth := 0
	ip := v.IP
	for {
		if ip >= len(v.Fun.Code) {
			return 0, fmt.Errorf("%w: loop-begin at %d has no matching end", ErrUnbalancedLoop, v.IP)
		}
		switch v.Fun.Code[ip].Base() {
		case OpLoopBegin:
			depth++
		case OpLoopEnd:
			depth--
		}
		ip++
		if depth == 0 {
			return ip, nil
		}
	}
}
