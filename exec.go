package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/thimc/led/internal/logger"
)

type cmd func(ed *Editor) error

var cmds map[rune]cmd

func init() {
	cmds = map[rune]cmd{
		'd':  cmdDelete,
		'H':  cmdHelp,
		'h':  cmdHelp,
		'i':  cmdInsert,
		'n':  cmdPrint,
		'p':  cmdPrint,
		'q':  cmdQuit,
		'w':  cmdWrite,
		'\n': cmdNone,
		EOF:  cmdNone,
	}
}

func (ed *Editor) exec() error {
	ed.cmd = ed.token()
	logger.Debugf("exec %q first=%d second=%d addrc=%d dot=%d", ed.cmd, ed.first, ed.second, ed.addrc, ed.dot)
	if cmd, ok := cmds[ed.cmd]; ok {
		return cmd(ed)
	}
	return cmdUnknown(ed)
}

func cmdDelete(ed *Editor) error {
	ed.consume()
	if err := ed.getSuffix(); err != nil {
		return err
	}
	if err := ed.validate(ed.dot, ed.dot); err != nil {
		return err
	}
	end := ed.second == ed.file.len()
	ed.file.delete(ed.first, ed.second)
	ed.dirty = true
	ed.dot = ed.first
	if end {
		ed.dot = ed.file.len()
	}
	return nil
}

func cmdHelp(ed *Editor) error {
	r := ed.token()
	ed.consume()
	if err := ed.getSuffix(); err != nil {
		return err
	}
	if err := ed.ensureNoAddress(); err != nil {
		return err
	}
	if r == 'H' {
		ed.verbose = !ed.verbose
	}
	if (r == 'h' || ed.verbose) && ed.err != nil {
		fmt.Fprintln(ed.stderr, ed.err)
	}
	return nil
}

func cmdInsert(ed *Editor) error {
	ed.consume()
	if err := ed.getSuffix(); err != nil {
		return err
	}
	if ed.first != 0 || ed.second != 0 {
		if err := ed.validate(ed.dot, ed.dot); err != nil {
			return err
		}
	}
	dest := max(ed.second, 1) - 1
	if n := ed.insertMode(dest); n > 0 {
		ed.dirty = true
		ed.dot = dest + n
	} else {
		ed.dot = ed.second
	}
	return nil
}

func cmdPrint(ed *Editor) error {
	r := ed.token()
	ed.consume()
	if err := ed.getSuffix(); err != nil {
		return err
	}
	if err := ed.validate(ed.dot, ed.dot); err != nil {
		return err
	}
	ed.display(ed.first, ed.second, r == 'n')
	return nil
}

func cmdQuit(ed *Editor) error {
	ed.consume()
	if err := ed.getSuffix(); err != nil {
		return err
	}
	if err := ed.ensureNoAddress(); err != nil {
		return err
	}
	if ed.dirty && !ed.quit {
		ed.quit = true
		return ErrFileModified
	}
	ed.done = true
	return nil
}

func cmdWrite(ed *Editor) error {
	ed.consume()
	path, err := ed.scanPath()
	if err != nil {
		return err
	}
	if err := ed.ensureNoAddress(); err != nil {
		return err
	}
	if path == "" {
		if ed.path == "" {
			return ErrNoFileName
		}
		path = ed.path
	}
	return ed.write(path)
}

// scanPath returns the file name following a command. Leading white
// space is skipped, everything else up to the line terminator is
// part of the name.
func (ed *Editor) scanPath() (string, error) {
	if r := ed.token(); r == EOF || r == '\n' {
		return "", nil
	} else if !unicode.IsSpace(r) {
		return "", ErrUnexpectedCmdSuffix
	}
	ed.skipWhitespace()
	path := strings.TrimSuffix(ed.rest(), "\n")
	ed.pos = len(ed.buf)
	return path, nil
}

func cmdNone(ed *Editor) error {
	ed.consume()
	if err := ed.validate(ed.dot+1, ed.dot+1); err != nil {
		return err
	}
	ed.display(ed.first, ed.second, false)
	return nil
}

func cmdUnknown(ed *Editor) error {
	if ed.addrc > 0 {
		if err := ed.validate(ed.dot, ed.dot); err != nil {
			return err
		}
	}
	return ErrUnknownCmd
}

// display prints the lines start to end and moves the current line
// to end. enumerate prefixes every line with its number.
func (ed *Editor) display(start, end int, enumerate bool) {
	for i := start; i <= end; i++ {
		if enumerate {
			fmt.Fprintf(ed.stdout, "%d\t", i)
		}
		fmt.Fprint(ed.stdout, ed.file.line(i))
	}
	ed.dot = end
}
