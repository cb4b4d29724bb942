package main

import (
	"strconv"
)

type addrTermType int

const (
	termNumber addrTermType = iota
	termDot             // .
	termLast            // $
)

// addrTerm is a single address as typed by the user.
type addrTerm struct {
	typ addrTermType
	n   int
}

type addrType int

const (
	addrNone addrType = iota
	addrSingle
	addrRange
)

// address is the address part of a command: nothing, one term or a
// comma separated pair of terms.
type address struct {
	typ    addrType
	first  addrTerm
	second addrTerm
}

// parse parses the address of the current input line and resolves it
// into ed.first and ed.second. The current token is left at the
// command character.
func (ed *Editor) parse() error {
	addr, err := ed.parseAddress()
	if err != nil {
		return err
	}
	ed.resolve(addr)
	return nil
}

// parseAddress reads the address grammar:
//
//	N,M  X,Y  X,M  N,Y  N  .  $
//
// where N and M are (signed) decimal numbers and X and Y are either '.'
// or '$'. A ',' that is not followed by a second address is left
// for the command parser.
func (ed *Editor) parseAddress() (address, error) {
	first, ok, err := ed.nextTerm()
	if err != nil || !ok {
		return address{}, err
	}
	if ed.token() != ',' {
		return address{typ: addrSingle, first: first}, nil
	}
	pos := ed.pos
	ed.consume()
	second, ok, err := ed.nextTerm()
	if err != nil {
		return address{}, err
	} else if !ok {
		ed.pos = pos
		return address{typ: addrSingle, first: first}, nil
	}
	return address{typ: addrRange, first: first, second: second}, nil
}

// nextTerm scans a single address. Numbers may be preceded by white
// space and carry a sign, '.' and '$' have to appear right away. The
// input is not advanced if there is no address.
func (ed *Editor) nextTerm() (addrTerm, bool, error) {
	switch ed.token() {
	case '.':
		ed.consume()
		return addrTerm{typ: termDot}, true, nil
	case '$':
		ed.consume()
		return addrTerm{typ: termLast}, true, nil
	}
	pos := ed.pos
	ed.skipWhitespace()
	start := ed.pos
	if ed.match("+-") {
		ed.consume()
	}
	if !isDigit(ed.token()) {
		ed.pos = pos
		return addrTerm{}, false, nil
	}
	for isDigit(ed.token()) {
		ed.consume()
	}
	n, err := strconv.Atoi(ed.buf[start:ed.pos])
	if err != nil {
		return addrTerm{}, false, ErrInvalidAddress
	}
	return addrTerm{typ: termNumber, n: n}, true, nil
}

// resolve turns the parsed address into line numbers. A negative
// number is an offset from the current line.
func (ed *Editor) resolve(addr address) {
	ed.first, ed.second = ed.dot, ed.dot
	switch addr.typ {
	case addrNone:
		ed.addrc = 0
	case addrSingle:
		ed.addrc = 1
		ed.first = ed.value(addr.first)
		ed.second = ed.first
	case addrRange:
		ed.addrc = 2
		ed.first = ed.value(addr.first)
		ed.second = ed.value(addr.second)
	}
}

func (ed *Editor) value(t addrTerm) int {
	switch t.typ {
	case termDot:
		return ed.dot
	case termLast:
		return ed.file.len()
	}
	if t.n < 0 {
		return ed.dot + t.n
	}
	return t.n
}

// validate checks that first and second address a range within the
// buffer. f and s are used if the user did not enter an address.
func (ed *Editor) validate(f, s int) error {
	if ed.addrc == 0 {
		ed.first = f
		ed.second = s
	}
	if ed.first > ed.second || ed.first < 1 || ed.second > ed.file.len() {
		return ErrInvalidAddress
	}
	return nil
}

// ensureNoAddress rejects any address given to a command that does
// not take one. The address is validated first.
func (ed *Editor) ensureNoAddress() error {
	if ed.addrc == 0 {
		return nil
	}
	if err := ed.validate(ed.dot, ed.dot); err != nil {
		return err
	}
	return ErrUnexpectedAddress
}

// getSuffix makes sure that nothing but the line terminator follows
// the command.
func (ed *Editor) getSuffix() error {
	if r := ed.rest(); r != "" && r != "\n" {
		return ErrInvalidCmdSuffix
	}
	return nil
}

func (ed *Editor) skipWhitespace() {
	for ed.match(" \t\n\v\f\r") {
		ed.consume()
	}
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }
