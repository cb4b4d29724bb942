package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func drawLines(t *rapid.T, label string, lo, hi int) []string {
	lines := rapid.SliceOfN(rapid.StringMatching(`[a-zA-Z0-9 ]{0,20}`), lo, hi).Draw(t, label)
	for i := range lines {
		lines[i] += "\n"
	}
	return lines
}

// assertLines compares buffers without telling nil and empty apart.
func assertLines(t require.TestingT, want, got []string) {
	assert.Equal(t, len(want), len(got))
	assert.Equal(t, strings.Join(want, ""), strings.Join(got, ""))
}

func newTestEditor(in string, lines []string, stdout io.Writer) *Editor {
	return NewEditor(
		WithStdin(strings.NewReader(in)),
		WithStdout(stdout),
		WithStderr(io.Discard),
		withBuffer(lines),
	)
}

// TestProperty_SymbolicAddresses verifies '.' and '$' resolve to the
// current and the last line wherever the current line is.
func TestProperty_SymbolicAddresses(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := drawLines(t, "lines", 0, 30)
		dot := rapid.IntRange(0, len(lines)).Draw(t, "dot")

		ed := newTestEditor("", lines, io.Discard)
		ed.dot = dot

		ed.doInput(".,$p\n")
		require.NoError(t, ed.parse())
		assert.Equal(t, cursor{first: dot, second: len(lines), dot: dot, addrc: 2}, ed.cursor)

		ed.doInput("$,.p\n")
		require.NoError(t, ed.parse())
		assert.Equal(t, cursor{first: len(lines), second: dot, dot: dot, addrc: 2}, ed.cursor)
	})
}

// TestProperty_PrintRange verifies a range is printed only when it lies
// inside the buffer and that a rejected range changes nothing.
func TestProperty_PrintRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := drawLines(t, "lines", 0, 20)
		first := rapid.IntRange(0, len(lines)+3).Draw(t, "first")
		second := rapid.IntRange(0, len(lines)+3).Draw(t, "second")

		var stdout bytes.Buffer
		ed := newTestEditor(fmt.Sprintf("%d,%dp\n", first, second), lines, &stdout)
		err := ed.run()

		if first < 1 || first > second || second > len(lines) {
			assert.Equal(t, ErrInvalidAddress, err)
			assert.Empty(t, stdout.String())
			assert.Equal(t, len(lines), ed.dot)
		} else {
			require.NoError(t, err)
			assert.Equal(t, strings.Join(lines[first-1:second], ""), stdout.String())
			assert.Equal(t, second, ed.dot)
		}
		assertLines(t, lines, ed.file.lines)
		assert.False(t, ed.dirty)
	})
}

// TestProperty_InsertDelete verifies deleting the lines just inserted
// restores the buffer.
func TestProperty_InsertDelete(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := drawLines(t, "lines", 0, 20)
		text := drawLines(t, "text", 1, 5)
		addr := rapid.IntRange(0, len(lines)).Draw(t, "addr")

		start := max(addr, 1)
		end := start + len(text) - 1
		in := fmt.Sprintf("%di\n%s.\n%d,%dd\n", addr, strings.Join(text, ""), start, end)
		ed := newTestEditor(in, lines, io.Discard)

		require.NoError(t, ed.run())
		assert.Equal(t, len(lines)+len(text), ed.file.len())
		assert.Equal(t, end, ed.dot)
		assert.Equal(t, text, ed.file.lines[start-1:end])

		require.NoError(t, ed.run())
		assertLines(t, lines, ed.file.lines)
		assert.Equal(t, len(strings.Join(lines, "")), ed.size)
		assert.True(t, ed.dirty)
	})
}

// TestProperty_WriteLoad verifies a buffer survives being written and
// read back, a missing final newline included.
func TestProperty_WriteLoad(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := drawLines(t, "lines", 0, 20)
		if n := len(lines); n > 0 && lines[n-1] != "\n" && rapid.Bool().Draw(t, "noeol") {
			lines[n-1] = strings.TrimSuffix(lines[n-1], "\n")
		}
		src := newFile(lines)

		var b bytes.Buffer
		n, err := src.WriteTo(&b)
		require.NoError(t, err)
		assert.Equal(t, int64(src.size), n)

		var dst file
		require.NoError(t, dst.load(&b))
		assert.Equal(t, src.len(), dst.len())
		assert.Equal(t, src.size, dst.size)
		for i := 1; i <= src.len(); i++ {
			assert.Equal(t, src.line(i), dst.line(i))
		}
	})
}

// TestProperty_QuitConfirmation verifies a modified buffer is abandoned
// only by two q commands with no successful command between them.
func TestProperty_QuitConfirmation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seq := rapid.SliceOfN(rapid.SampledFrom([]string{"p", "q", "x"}), 1, 20).Draw(t, "seq")

		var (
			armed   bool
			done    bool
			printed int
		)
		for _, c := range seq {
			switch c {
			case "p":
				armed = false
				printed++
			case "q":
				done = armed
				armed = true
			}
			if done {
				break
			}
		}

		var stdout bytes.Buffer
		ed := newTestEditor(strings.Join(seq, "\n")+"\n", []string{"a\n", "b\n", "c\n"}, &stdout)
		ed.dirty = true
		_ = ed.Run()

		assert.Equal(t, done, ed.done && ed.input.buf == "q\n")
		assert.Equal(t, strings.Repeat("c\n", printed), stdout.String())
		assert.True(t, ed.dirty)
	})
}
