package main

import (
	"strconv"
	"strings"
	"unicode"
)

type cursor struct {
	first  int
	second int
}

type cmdKind int

const (
	cmdNone cmdKind = iota // no command letter on the line
	cmdPrint
	cmdDelete
	cmdAppend
	cmdInsert
	cmdChange
	cmdWrite
	cmdQuit
	cmdUnknown
)

// command is a single parsed input line.
type command struct {
	kind cmdKind
	addr string // address expression preceding the command letter
	r    rune   // command letter, 0 for cmdNone
}

var cmds = map[rune]cmdKind{
	'a': cmdAppend,
	'c': cmdChange,
	'd': cmdDelete,
	'i': cmdInsert,
	'p': cmdPrint,
}

// parseCommand splits a trimmed, non-empty line at its first letter.
// Everything before the letter is the address expression and anything
// after it is ignored. The quit and write commands are only recognized
// when they make up the whole line.
func parseCommand(line string) command {
	switch line {
	case "q":
		return command{kind: cmdQuit, r: 'q'}
	case "w":
		return command{kind: cmdWrite, r: 'w'}
	}
	var in input
	in.doInput(line)
	for !in.eof() && !unicode.IsLetter(in.token()) {
		in.consume()
	}
	if in.eof() {
		return command{kind: cmdNone, addr: line}
	}
	c := command{
		kind: cmdUnknown,
		addr: strings.TrimSpace(line[:in.pos]),
		r:    in.token(),
	}
	if kind, ok := cmds[c.r]; ok {
		c.kind = kind
	}
	return c
}

// resolveAddress maps a single address to a line number. "$" is the
// last line, a decimal number is taken as is and anything else falls
// back to line 1.
func resolveAddress(s string, last int) int {
	if s == "$" {
		return last
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 1
	}
	return n
}

// resolveRange resolves an address expression against a buffer of
// last lines. A comma separates the first and second address, a lone
// address selects a single line and an empty expression selects the
// whole buffer. The result is neither clamped nor ordered.
func resolveRange(expr string, last int) cursor {
	expr = strings.TrimSpace(expr)
	if first, second, ok := strings.Cut(expr, ","); ok {
		return cursor{
			first:  resolveAddress(strings.TrimSpace(first), last),
			second: resolveAddress(strings.TrimSpace(second), last),
		}
	}
	if expr != "" {
		n := resolveAddress(expr, last)
		return cursor{first: n, second: n}
	}
	return cursor{first: 1, second: last}
}
