package main

import (
	"fmt"
	"log"
)

// exec resolves the address expression of c against the current buffer
// and runs it.
func (ed *Editor) exec(c command) error {
	ed.cursor = resolveRange(c.addr, len(ed.file.lines))
	log.Printf("exec %q addr=%q first=%d second=%d", c.r, c.addr, ed.first, ed.second)
	switch c.kind {
	case cmdPrint:
		ed.print(ed.first, ed.second)
	case cmdDelete:
		ed.delete(ed.first, ed.second)
	case cmdAppend:
		ed.append(ed.second)
	case cmdInsert:
		ed.insert(ed.first)
	case cmdChange:
		ed.change(ed.first, ed.second)
	case cmdWrite:
		return ed.write()
	case cmdQuit:
		ed.done = true
	case cmdUnknown:
		return fmt.Errorf("%w: %c", ErrUnknownCmd, c.r)
	case cmdNone:
		return fmt.Errorf("%w: %s", ErrNoCmd, c.addr)
	default:
		panic(fmt.Sprintf("unhandled command kind %d", c.kind))
	}
	return nil
}
