package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// StreamReader reads lines from a non-interactive stream.
//
// A single goroutine owns the underlying reader and hands lines over a
// channel, so a ReadLine abandoned because of cancellation does not lose
// the line that eventually arrives.
type StreamReader struct {
	out   io.Writer
	src   *bufio.Reader
	once  sync.Once
	lines chan streamLine
}

type streamLine struct {
	text string
	err  error
}

// NewStreamReader creates a StreamReader over in. Prompts go to out; a nil
// out discards them.
func NewStreamReader(in io.Reader, out io.Writer) *StreamReader {
	if out == nil {
		out = io.Discard
	}
	return &StreamReader{
		out:   out,
		src:   bufio.NewReader(in),
		lines: make(chan streamLine),
	}
}

// ReadLine prints prompt and waits for the next line.
func (r *StreamReader) ReadLine(ctx context.Context, prompt string) Result {
	if prompt != "" {
		fmt.Fprint(r.out, prompt)
	}
	if ctx.Err() != nil {
		return Interrupted()
	}

	r.once.Do(func() { go r.pump() })

	select {
	case <-ctx.Done():
		return Interrupted()
	case l, ok := <-r.lines:
		if !ok {
			return EndOfInput()
		}
		return streamResult(l)
	}
}

func (r *StreamReader) pump() {
	defer close(r.lines)
	for {
		text, err := r.src.ReadString('\n')
		if text == "" && err != nil {
			return
		}
		r.lines <- streamLine{text: text, err: err}
		if err != nil {
			return
		}
	}
}

// streamResult turns a raw read into a Result. A partial last line without
// a terminator still counts as a line.
func streamResult(l streamLine) Result {
	if l.text == "" && l.err != nil {
		return EndOfInput()
	}
	return Line(trimEOL(l.text))
}

func trimEOL(s string) string {
	if !strings.HasSuffix(s, "\n") {
		return s
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
