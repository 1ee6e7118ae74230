package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/reusee/bf/bflang"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/logs"
)

// runREPL compiles and runs one line at a time against a persistent tape.
// Loops must be balanced within a line.
func runREPL(
	logger logs.Logger,
	newVM func(fn *bfvm.Function, in io.Reader, out io.Writer) *bfvm.VM,
) {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".bf_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "bf> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()

	vm := newVM(&bfvm.Function{Name: "repl"}, os.Stdin, os.Stdout)

	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		if line == "" {
			continue
		}

		fn, err := bflang.CompileString("repl", line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}

		vm.Reset(fn)
		for err := range vm.Run {
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				logger.Debug("repl line failed",
					"line", line,
					"ip", vm.IP,
				)
				break
			}
		}
	}
}
