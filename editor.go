package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

var (
	ErrCannotWriteFile = errors.New("cannot write file")
	ErrNoCmd           = errors.New("no command")
	ErrNoFileName      = errors.New("no current filename")
	ErrUnknownCmd      = errors.New("unknown command")
)

type Editor struct {
	file
	cursor
	input

	prompt string // printed before each command
	silent bool   // suppress the banner and write counts
	theme  theme
	done   bool // set by quit or end of input

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

type Option func(*Editor)

func WithStdin(stdin io.Reader) Option {
	return func(ed *Editor) {
		ed.stdin = stdin
		ed.input = newInput(ed.stdin)
	}
}

func WithStdout(stdout io.Writer) Option {
	return func(ed *Editor) { ed.stdout = stdout }
}

func WithStderr(stderr io.Writer) Option {
	return func(ed *Editor) { ed.stderr = stderr }
}

func WithSilent(t bool) Option {
	return func(ed *Editor) { ed.silent = t }
}

func WithPrompt(prompt string) Option {
	return func(ed *Editor) { ed.prompt = prompt }
}

// WithColor styles the banner for the current stdout. It should be
// applied after WithStdout.
func WithColor(t bool) Option {
	return func(ed *Editor) { ed.theme = newTheme(ed.stdout, t) }
}

// WithFile loads path into the buffer. A file that cannot be read
// starts the session with an empty buffer bound to path.
func WithFile(path string) Option {
	return func(ed *Editor) {
		ed.file = file{path: path}
		if err := ed.read(path); err != nil {
			log.Printf("read %s: %v", path, err)
		}
	}
}

func NewEditor(opts ...Option) *Editor {
	ed := &Editor{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	ed.input = newInput(ed.stdin)
	for _, opt := range opts {
		opt(ed)
	}
	return ed
}

func (ed *Editor) read(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	lines, err := readLines(f)
	if err != nil {
		return err
	}
	ed.file = file{lines: lines, path: path}
	log.Printf("read %d lines from %s", len(lines), path)
	return nil
}

func (ed *Editor) write() error {
	if ed.path == "" {
		return ErrNoFileName
	}
	if err := writeFile(ed.path, ed.lines); err != nil {
		log.Printf("write %s: %v", ed.path, err)
		return fmt.Errorf("%w: %v", ErrCannotWriteFile, err)
	}
	ed.dirty = false
	log.Printf("wrote %d lines to %s", len(ed.lines), ed.path)
	if !ed.silent {
		fmt.Fprintf(ed.stdout, "%d lines written\n", len(ed.lines))
	}
	return nil
}

func (ed *Editor) doPrompt() {
	if ed.prompt != "" {
		fmt.Fprint(ed.stdout, ed.prompt)
	}
}

func (ed *Editor) errorln(err error) {
	log.Printf("error: %v", err)
	fmt.Fprintln(ed.stderr, err)
}

// run reads and executes a single command line.
func (ed *Editor) run() error {
	ed.doPrompt()
	if !ed.input.Scan() {
		if err := ed.input.Err(); err != nil {
			log.Printf("read command: %v", err)
		}
		ed.done = true
		return nil
	}
	line := strings.TrimSpace(ed.input.buf)
	if line == "" {
		return nil
	}
	return ed.exec(parseCommand(line))
}

// Run executes commands until quit or end of input.
func (ed *Editor) Run() {
	if !ed.silent {
		ed.banner()
	}
	for !ed.done {
		if err := ed.run(); err != nil {
			ed.errorln(err)
		}
	}
	if ed.dirty {
		log.Printf("discarding unsaved changes to %s", ed.path)
	}
}

func (ed *Editor) print(start, end int) {
	for i, ln := range ed.file.between(start, end) {
		fmt.Fprintf(ed.stdout, "%d %s\n", i, ln)
	}
}

func (ed *Editor) delete(start, end int) {
	if !ed.file.valid(start, end) {
		log.Printf("delete %d,%d: out of range", start, end)
		return
	}
	ed.file.delete(start, end)
}

// append adds text after end, or after the last line when end is not
// an existing line.
func (ed *Editor) append(end int) {
	dest := len(ed.file.lines)
	if end >= 1 && end <= len(ed.file.lines) {
		dest = end
	}
	ed.file.append(dest, ed.collect())
}

// insert adds text before start, or at the top of the buffer when
// start is not an existing line.
func (ed *Editor) insert(start int) {
	dest := 0
	if start >= 1 && start <= len(ed.file.lines) {
		dest = start - 1
	}
	ed.file.append(dest, ed.collect())
}

// change replaces the lines from start to end with text. Nothing is
// read when the range is not valid.
func (ed *Editor) change(start, end int) {
	if !ed.file.valid(start, end) {
		log.Printf("change %d,%d: out of range", start, end)
		return
	}
	ed.file.delete(start, end)
	ed.file.append(start-1, ed.collect())
}
