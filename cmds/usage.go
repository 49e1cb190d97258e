package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stdout)
}

func (p *Executor) WriteUsage(w io.Writer) {
	writeCommands(w, p.commands, 0)
}

func writeCommands(w io.Writer, commands map[string]*Command, depth int) {
	// names of a command and its aliases
	names := make(map[*Command][]string)
	for name, command := range commands {
		if command == nil {
			continue
		}
		names[command] = append(names[command], name)
	}

	var lines []usageLine
	for command, ns := range names {
		// primary name first, then aliases
		slices.SortFunc(ns, func(a, b string) int {
			aliasA := slices.Contains(command.Aliases, a)
			aliasB := slices.Contains(command.Aliases, b)
			if aliasA != aliasB {
				if aliasA {
					return 1
				}
				return -1
			}
			return strings.Compare(a, b)
		})
		lines = append(lines, usageLine{
			names:   ns,
			command: command,
		})
	}
	slices.SortFunc(lines, func(a, b usageLine) int {
		return strings.Compare(a.names[0], b.names[0])
	})

	indent := strings.Repeat("  ", depth)
	for _, line := range lines {
		text := indent + strings.Join(line.names, ", ")
		if line.command.Description != "" {
			text += "\t" + line.command.Description
		}
		fmt.Fprintln(w, text)
		if len(line.command.Subs) > 0 {
			writeCommands(w, line.command.Subs, depth+1)
		}
	}
}

type usageLine struct {
	names   []string
	command *Command
}
