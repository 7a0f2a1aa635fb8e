package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	progName    = "ned"
	progVersion = "v0.1"
	usageWidth  = 16
)

var helpCommands = []struct {
	usage string
	desc  string
}{
	{"[address]a", "Append text after address"},
	{"[address]i", "Insert text before address"},
	{"[range]c", "Change lines in range"},
	{"[range]d", "Delete lines in range"},
	{"[range]p", "Print lines in range"},
	{"w", "Write buffer to file"},
	{"q", "Quit editor"},
}

// theme renders the banner. The zero value leaves text untouched.
type theme struct {
	title   func(...string) string
	command func(...string) string
}

func plain(strs ...string) string { return strings.Join(strs, " ") }

func newTheme(w io.Writer, color bool) theme {
	if !color {
		return theme{title: plain, command: plain}
	}
	r := lipgloss.NewRenderer(w)
	return theme{
		title:   r.NewStyle().Bold(true).Render,
		command: r.NewStyle().Foreground(lipgloss.Color("6")).Render,
	}
}

func (t theme) render(s string, style func(...string) string) string {
	if style == nil {
		return s
	}
	return style(s)
}

// banner writes the command summary shown before the first prompt.
func (ed *Editor) banner() {
	fmt.Fprintln(ed.stdout, ed.theme.render(progName+" "+progVersion+" - Commands:", ed.theme.title))
	for _, c := range helpCommands {
		pad := strings.Repeat(" ", max(usageWidth-len(c.usage), 1))
		fmt.Fprintf(ed.stdout, "  %s%s%s\n", ed.theme.render(c.usage, ed.theme.command), pad, c.desc)
	}
	fmt.Fprintln(ed.stdout)
}
