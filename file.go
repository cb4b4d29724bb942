package main

import (
	"bufio"
	"errors"
	"io"
)

type cursor struct {
	first  int
	second int
	dot    int // current address
	addrc  int // address count
}

type file struct {
	dirty bool     // modified state
	lines []string // file content, every line keeps its terminator
	size  int      // sum of the length of every line
	path  string   // full file path to the file
}

// load replaces the content of the buffer with the lines read from r.
// A trailing line without a newline is kept as is. The buffer is left
// untouched if r fails.
func (f *file) load(r io.Reader) error {
	var (
		lines []string
		size  int
		br    = bufio.NewReader(r)
	)
	for {
		ln, err := br.ReadString('\n')
		if ln != "" {
			lines = append(lines, ln)
			size += len(ln)
		}
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return err
		}
	}
	f.lines, f.size = lines, size
	return nil
}

// line returns the nth line, n being 1-based.
func (f *file) line(n int) string { return f.lines[n-1] }

func (f *file) len() int { return len(f.lines) }

// append inserts lines after dest, zero inserts at the head.
func (f *file) append(dest int, lines []string) {
	if len(lines) < 1 {
		return
	}
	buf := make([]string, 0, len(f.lines)+len(lines))
	buf = append(buf, f.lines[:dest]...)
	buf = append(buf, lines...)
	f.lines = append(buf, f.lines[dest:]...)
	for _, ln := range lines {
		f.size += len(ln)
	}
}

// delete removes the lines start to end (inclusive).
func (f *file) delete(start, end int) {
	for _, ln := range f.lines[start-1 : end] {
		f.size -= len(ln)
	}
	n := copy(f.lines[start-1:], f.lines[end:])
	clear(f.lines[start-1+n:])
	f.lines = f.lines[:start-1+n]
}

// WriteTo writes every line to w and returns the number of bytes
// written.
func (f *file) WriteTo(w io.Writer) (int64, error) {
	var siz int64
	bw := bufio.NewWriter(w)
	for _, ln := range f.lines {
		n, err := bw.WriteString(ln)
		siz += int64(n)
		if err != nil {
			return siz, err
		}
	}
	return siz, bw.Flush()
}
