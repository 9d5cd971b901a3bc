// internal/input/input.go

// Package input is the keyboard boundary: raw single-character reads when
// the terminal supports it, a line-buffered prompt otherwise.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// KeyReader yields one control token at a time, blocking until available.
type KeyReader interface {
	ReadKey() (rune, error)
	Close() error
}

// Open picks the raw reader when stdin is a terminal, else the line-buffered
// fallback. The choice is made once; the reader lives for the whole run.
func Open() (KeyReader, error) {
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return openRaw(int(os.Stdin.Fd()))
	}
	return NewLineReader(os.Stdin, os.Stdout), nil
}

type rawReader struct {
	fd  int
	old *term.State
	in  io.Reader
	buf [1]byte
}

func openRaw(fd int) (*rawReader, error) {
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	return &rawReader{fd: fd, old: old, in: os.Stdin}, nil
}

func (r *rawReader) ReadKey() (rune, error) {
	n, err := r.in.Read(r.buf[:])
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, io.EOF
	}
	return rune(r.buf[0]), nil
}

// Close restores the terminal settings saved when raw mode was entered.
func (r *rawReader) Close() error {
	return term.Restore(r.fd, r.old)
}

// LineReader is the degraded fallback: it prompts, reads a whole line and
// treats the line's first rune as the key. An empty line counts as the
// capture token, since a lone space is invisible in line mode.
type LineReader struct {
	sc  *bufio.Scanner
	out io.Writer
}

func NewLineReader(in io.Reader, out io.Writer) *LineReader {
	return &LineReader{sc: bufio.NewScanner(in), out: out}
}

func (l *LineReader) ReadKey() (rune, error) {
	fmt.Fprint(l.out, "\nPress SPACE/enter to capture, R to refresh, Q to quit: ")
	if !l.sc.Scan() {
		if err := l.sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	line := strings.TrimSpace(l.sc.Text())
	if line == "" {
		return ' ', nil
	}
	key, _ := utf8.DecodeRuneInString(line)
	return key, nil
}

func (l *LineReader) Close() error {
	return nil
}
