package main

import (
	"bufio"
	"errors"
	"io"
	"log"
	"strings"
	"unicode/utf8"
)

const EOF rune = -1

// input is the line reader shared by the command loop and the text
// collectors. The current line doubles as a rune tokenizer. Lines have
// no length limit.
type input struct {
	*bufio.Reader
	buf string
	pos int
	err error // first read error, io.EOF included
}

func newInput(r io.Reader) input {
	return input{Reader: bufio.NewReader(r)}
}

func (i *input) doInput(s string) { i.buf, i.pos = s, 0 }

func (i *input) eof() bool { return i.pos >= len(i.buf) }

func (i *input) consume() {
	if i.eof() {
		return
	}
	_, n := utf8.DecodeRuneInString(i.buf[i.pos:])
	i.pos += n
}

func (i *input) token() rune {
	if i.eof() {
		return EOF
	}
	tok, _ := utf8.DecodeRuneInString(i.buf[i.pos:])
	return tok
}

// Scan reads the next line without its newline and a carriage return
// preceding it. A final line without a newline is still returned.
func (i *input) Scan() bool {
	if i.err != nil {
		i.doInput("")
		return false
	}
	ln, err := i.ReadString('\n')
	if err != nil {
		i.err = err
		if ln == "" {
			i.doInput("")
			return false
		}
	}
	ln = strings.TrimSuffix(ln, "\n")
	i.doInput(strings.TrimSuffix(ln, "\r"))
	return true
}

// Err returns the first read error other than io.EOF.
func (i *input) Err() error {
	if errors.Is(i.err, io.EOF) {
		return nil
	}
	return i.err
}

// collect reads lines verbatim until a line consisting of a single "."
// which is consumed and not returned. End of input terminates the block
// with whatever was read so far.
func (ed *Editor) collect() []string {
	var lines []string
	for ed.input.Scan() {
		if ed.input.buf == "." {
			return lines
		}
		lines = append(lines, ed.input.buf)
	}
	if err := ed.input.Err(); err != nil {
		log.Printf("collect: %v", err)
	}
	log.Printf("collect: end of input after %d lines", len(lines))
	return lines
}
