package main

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

const EOF rune = -1

// input reads the raw user input one line at a time and keeps a
// cursor into the line that was read last.
type input struct {
	*bufio.Reader
	buf string
	pos int
	err error
}

func newInput(r io.Reader) input { return input{Reader: bufio.NewReader(r)} }

func (i *input) match(s string) bool { return strings.ContainsRune(s, i.token()) }

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

// rest returns the unconsumed part of the line.
func (i *input) rest() string {
	if i.eof() {
		return ""
	}
	return i.buf[i.pos:]
}

// Scan reads the next line, terminator included. It returns false
// when there is nothing left to read; a final line without a newline
// is still returned.
func (i *input) Scan() bool {
	ln, err := i.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		i.err = err
	}
	i.doInput(ln)
	return ln != ""
}

// Err returns the first non-EOF error encountered while reading.
func (i *input) Err() error { return i.err }
