package cmds

import (
	"fmt"
	"os"
)

var defaultExecutor = NewExecutor()

func Define(name string, command *Command) {
	defaultExecutor.Define(name, command)
}

// Execute runs args against the default executor and returns positional
// arguments. Command errors are reported and terminate the process.
func Execute(args []string) []string {
	positionals, err := defaultExecutor.Execute(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return positionals
}

func PrintUsage() {
	defaultExecutor.PrintUsage()
}
