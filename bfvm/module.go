package bfvm

import (
	"io"

	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/vars"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}

// VM provides a factory applying the configured tape preallocation and
// instruction tracing.
func (Module) VM(
	logger logs.Logger,
	loader configs.Loader,
) func(fn *Function, in io.Reader, out io.Writer) *VM {
	return func(fn *Function, in io.Reader, out io.Writer) *VM {
		vm := NewVM(fn, in, out)

		prealloc := vars.FirstNonZero(
			configs.First[int](loader, "tape.prealloc"),
			1,
		)
		if prealloc > 1 {
			vm.Tape = NewTape(prealloc)
		}

		if configs.First[bool](loader, "trace") {
			vm.SetTrace(func(ip int, inst OpCode) {
				logger.Debug("exec",
					"ip", ip,
					"op", inst.String(),
					"cursor", vm.Tape.Cursor,
				)
			})
		}

		return vm
	}
}
