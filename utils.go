package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	nameStyle  = lipgloss.NewStyle().Bold(true)
	flagStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

func copyFile(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return err
	}
	defer source.Close()

	destination, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destination.Close()

	if _, err := io.Copy(destination, source); err != nil {
		return err
	}
	return destination.Close()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// printCommands writes a listing of the table, subcommands indented under
// their parent
func printCommands(w io.Writer, path string, table CommandTable) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s (%d commands)", path, len(table))))
	printCommandTree(w, table, 0)
}

func printCommandTree(w io.Writer, table CommandTable, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, name := range table.Names() {
		def := table[name]

		var flags []string
		if def.AdminOnly {
			flags = append(flags, "admin")
		}
		if def.Hidden {
			flags = append(flags, "hidden")
		}
		line := fmt.Sprintf("%s%s [%s] %s", indent, nameStyle.Render(name), def.Value.Kind, def.Value.Payload)
		if len(flags) > 0 {
			line += " " + flagStyle.Render("("+strings.Join(flags, ", ")+")")
		}
		fmt.Fprintln(w, line)

		if len(def.Subcommands) > 0 {
			printCommandTree(w, CommandTable(def.Subcommands), depth+1)
		}
	}
}
