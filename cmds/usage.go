package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	printCommands(os.Stdout, p.commands, "")
}

func printCommands(w io.Writer, commands map[string]*Command, indent string) {
	// group aliases of the same command
	names := make(map[*Command][]string)
	for name, command := range commands {
		names[command] = append(names[command], name)
	}

	type entry struct {
		names   []string
		command *Command
	}
	var entries []entry
	for command, ns := range names {
		slices.Sort(ns)
		entries = append(entries, entry{
			names:   ns,
			command: command,
		})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return strings.Compare(a.names[0], b.names[0])
	})

	for _, entry := range entries {
		fmt.Fprintf(w, "%s%s", indent, strings.Join(entry.names, " | "))
		if entry.command.Description != "" {
			fmt.Fprintf(w, "\n%s    %s", indent, entry.command.Description)
		}
		fmt.Fprintln(w)
		if len(entry.command.Subs) > 0 {
			printCommands(w, entry.command.Subs, indent+"    ")
		}
	}
}
