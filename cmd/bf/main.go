package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reusee/bf/bflang"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/bf/vars"
	"github.com/reusee/dscope"
	"github.com/reusee/e5"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

var (
	evalSource = cmds.Var[string]("-e")
	dumpCode   = cmds.Switch("-dump")
	replMode   = cmds.Switch("-repl")
	debugMode  = cmds.Switch("-debug")
)

func main() {
	args := cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(bfvm.Module),
		new(debugs.Module),
		modes.ForProduction(),
	)

	if *replMode {
		scope.Call(runREPL)
		return
	}

	fn, err := load(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *dumpCode {
		fn.Dump(os.Stdout)
		return
	}

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		newVM func(fn *bfvm.Function, in io.Reader, out io.Writer) *bfvm.VM,
		tap debugs.Tap,
	) {
		ctx, _ := newSpan(context.Background(), "")

		vm := newVM(fn, os.Stdin, os.Stdout)
		for err := range vm.Run {
			if err != nil {
				err = logs.WrapSpan(ctx, err)
				logger.ErrorContext(ctx, "execution failed",
					"program", fn.Name,
					"error", err,
				)
				if *debugMode {
					tap(ctx, "vm state", vmGlobals(vm))
				}
				os.Exit(1)
			}
		}
	})
}

// load resolves the program source: inline via -e, else a single source
// file path.
func load(args []string) (*bfvm.Function, error) {
	if src := vars.DerefOrZero(evalSource); src != "" {
		fn, err := bflang.CompileString("-e", src)
		if err != nil {
			return nil, wrap.With(e5.Info("compile inline source"))(err)
		}
		return fn, nil
	}

	if len(args) != 1 {
		return nil, fmt.Errorf("usage: bf [options] <source-file>")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, wrap.With(e5.Info("open %s", args[0]))(err)
	}
	defer f.Close()

	fn, err := bflang.Compile(args[0], f)
	if err != nil {
		return nil, wrap.With(e5.Info("compile %s", args[0]))(err)
	}
	return fn, nil
}

func vmGlobals(vm *bfvm.VM) map[string]any {
	// a window of cells around the cursor
	lo := max(vm.Tape.Cursor-16, 0)
	hi := min(vm.Tape.Cursor+16, len(vm.Tape.Cells)-1)
	return map[string]any{
		"ip":     vm.IP,
		"cursor": vm.Tape.Cursor,
		"cells":  vm.Tape.Cells[lo : hi+1],
		"stack":  vm.LoopStack,
		"code":   vm.Fun.Code,
		"dump": func() string {
			var sb strings.Builder
			vm.Fun.Dump(&sb)
			return sb.String()
		},
	}
}
