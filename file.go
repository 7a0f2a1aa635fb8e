package main

import (
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

type file struct {
	dirty bool     // modified state
	lines []string // file content
	path  string   // full file path to the file
}

func (f *file) append(dest int, lines []string) {
	f.lines = append(f.lines[:dest], append(lines, f.lines[dest:]...)...)
	f.dirty = true
}

func (f *file) delete(start, end int) {
	f.lines = append(f.lines[:start-1], f.lines[end:]...)
	f.dirty = true
}

// valid reports whether start and end address an existing, non-inverted
// block of lines.
func (f *file) valid(start, end int) bool {
	return start >= 1 && end >= start && end <= len(f.lines)
}

// between yields the line number and content of every line from start
// to end that exists in the buffer. Positions outside the buffer are
// skipped.
func (f *file) between(start, end int) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := max(start, 1); i <= min(end, len(f.lines)); i++ {
			if !yield(i, f.lines[i-1]) {
				return
			}
		}
	}
}

// readLines splits r on line boundaries. A trailing newline does not
// produce an empty last line and a carriage return before the newline
// is dropped.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	in := newInput(r)
	for in.Scan() {
		lines = append(lines, in.buf)
	}
	return lines, in.Err()
}

// writeFile replaces path with lines joined by a single newline. The
// content is written to a temporary file next to path which is renamed
// over the destination, so a failed write leaves the original intact.
// A symbolic link is followed and the file it points to is replaced.
func writeFile(path string, lines []string) (err error) {
	if target, err := filepath.EvalSymlinks(path); err == nil {
		path = target
	}
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if _, err = io.WriteString(tmp, strings.Join(lines, "\n")); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Chmod(mode); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
