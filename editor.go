package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/thimc/led/internal/logger"
)

// Ed is limited to displaying these error messages.
var (
	ErrDefault             = errors.New("?") // descriptive error message, don't you think?
	ErrCannotOpenFile      = errors.New("cannot open input file")
	ErrCannotOpenOutput    = errors.New("cannot open output file")
	ErrCannotWriteFile     = errors.New("cannot write file")
	ErrFileModified        = errors.New("warning: buffer modified")
	ErrInvalidAddress      = errors.New("invalid address")
	ErrInvalidCmdSuffix    = errors.New("invalid command suffix")
	ErrNoFileName          = errors.New("no current filename")
	ErrUnexpectedAddress   = errors.New("unexpected address")
	ErrUnexpectedCmdSuffix = errors.New("unexpected command suffix")
	ErrUnknownCmd          = errors.New("unknown command")
)

type Editor struct {
	file
	cursor
	input

	err    error // previous error
	failed bool  // the last command ended in an error
	cmd    rune  // the last command
	quit   bool  // a modified buffer warning was issued by q
	done   bool  // end of input or q

	prompt  string // user prompt
	verbose bool   // toggle verbose errors
	silent  bool   // suppress byte counts
	load    bool   // read file.path on start up

	stdout io.Writer
	stderr io.Writer
}

type Option func(*Editor)

func WithStdin(stdin io.Reader) Option {
	return func(ed *Editor) { ed.input = newInput(stdin) }
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

func WithVerbose(t bool) Option {
	return func(ed *Editor) { ed.verbose = t }
}

func WithPrompt(prompt string) Option {
	return func(ed *Editor) { ed.prompt = prompt }
}

// WithFile makes the editor read path into the buffer once every other
// option has been applied.
func WithFile(path string) Option {
	return func(ed *Editor) { ed.path, ed.load = path, path != "" }
}

func NewEditor(opts ...Option) *Editor {
	ed := &Editor{
		input:  newInput(os.Stdin),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(ed)
	}
	if ed.load {
		if err := ed.read(ed.path); err != nil {
			ed.err, ed.failed = err, true
		}
	}
	return ed
}

// read loads the file at path into the buffer and prints its size. On
// failure the buffer stays empty and the reason is printed to stderr.
func (ed *Editor) read(path string) error {
	f, err := os.Open(path)
	if err != nil {
		logger.Errorf("read %q: %v", path, err)
		fmt.Fprintf(ed.stderr, "%s: %s\n", path, unwrapPathError(err))
		return ErrCannotOpenFile
	}
	defer f.Close()
	if err := ed.file.load(f); err != nil {
		logger.Errorf("read %q: %v", path, err)
		fmt.Fprintf(ed.stderr, "%s: %s\n", path, unwrapPathError(err))
		return ErrCannotOpenFile
	}
	ed.dot = ed.file.len()
	logger.Debugf("read %q: %d lines, %d bytes", path, ed.file.len(), ed.size)
	if !ed.silent {
		fmt.Fprintln(ed.stdout, ed.size)
	}
	return nil
}

// write stores the whole buffer in the file at path and prints the
// number of bytes written.
func (ed *Editor) write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		logger.Errorf("write %q: %v", path, err)
		fmt.Fprintf(ed.stderr, "%s: %s\n", path, unwrapPathError(err))
		return ErrCannotOpenOutput
	}
	siz, err := ed.file.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		logger.Errorf("write %q: %v", path, err)
		fmt.Fprintf(ed.stderr, "%s: %s\n", path, unwrapPathError(err))
		return ErrCannotWriteFile
	}
	logger.Debugf("wrote %q: %d lines, %d bytes", path, ed.file.len(), siz)
	if ed.path == "" {
		ed.path = path
	}
	ed.dirty = false
	if !ed.silent {
		fmt.Fprintln(ed.stdout, siz)
	}
	return nil
}

func unwrapPathError(err error) error {
	var perr *os.PathError
	if errors.As(err, &perr) {
		return perr.Err
	}
	return err
}

func (ed *Editor) doPrompt() {
	if ed.prompt != "" {
		fmt.Fprint(ed.stdout, ed.prompt)
	}
}

func (ed *Editor) errorln(err error) {
	ed.err = err
	fmt.Fprintln(ed.stderr, ErrDefault)
	if ed.verbose {
		fmt.Fprintln(ed.stderr, err)
	}
}

// insertMode reads lines until a line containing a single '.' or the
// end of input and inserts them after dest. It returns the number of
// lines inserted.
func (ed *Editor) insertMode(dest int) int {
	var lines []string
	for ed.input.Scan() {
		ln := ed.input.buf
		if ln == ".\n" || ln == "." {
			break
		}
		lines = append(lines, ln)
	}
	ed.file.append(dest, lines)
	logger.Debugf("inserted %d lines after %d", len(lines), dest)
	return len(lines)
}

func (ed *Editor) run() error {
	ed.doPrompt()
	if !ed.input.Scan() {
		ed.done = true
		if err := ed.input.Err(); err != nil {
			return err
		}
		return io.EOF
	}
	if err := ed.parse(); err != nil {
		return err
	}
	return ed.exec()
}

// Run reads and executes commands until the input is exhausted or the
// user quits. It returns the error of the last command, if it failed.
func (ed *Editor) Run() error {
	for !ed.done {
		err := ed.run()
		switch {
		case ed.done && errors.Is(err, io.EOF):
		case err != nil:
			ed.errorln(err)
			ed.failed = true
		default:
			if ed.cmd != 'q' {
				ed.quit = false
			}
			ed.failed = false
		}
	}
	if ed.failed {
		return ed.err
	}
	return nil
}
