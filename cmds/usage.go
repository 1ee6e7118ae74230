package cmds

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	printCommands(p.commands, 0)
}

func printCommands(commands map[string]*Command, indent int) {
	names := slices.Sorted(maps.Keys(commands))
	printed := make(map[*Command]bool)
	for _, name := range names {
		command := commands[name]
		if printed[command] {
			continue
		}
		printed[command] = true

		label := name
		if len(command.Aliases) > 0 {
			label += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		fmt.Fprintf(os.Stderr, "%s%s\n", strings.Repeat("  ", indent+1), label)
		if command.Description != "" {
			fmt.Fprintf(os.Stderr, "%s%s\n", strings.Repeat("  ", indent+2), command.Description)
		}
		if len(command.Subs) > 0 {
			printCommands(command.Subs, indent+1)
		}
	}
}
