package input

import (
	"context"
	"errors"
	"io"

	"github.com/chzyer/readline"
)

// ReadlineReader reads lines with editing and history. It is meant for
// the long-running task loop on an interactive terminal.
type ReadlineReader struct {
	rl *readline.Instance
}

// NewReadlineReader creates a ReadlineReader. historyFile may be empty to
// keep history in memory only.
func NewReadlineReader(in io.Reader, out io.Writer, historyFile string) (*ReadlineReader, error) {
	rc, ok := in.(io.ReadCloser)
	if !ok {
		rc = io.NopCloser(in)
	}

	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		Stdin:           rc,
		Stdout:          out,
	})
	if err != nil {
		return nil, err
	}
	return &ReadlineReader{rl: rl}, nil
}

// ReadLine shows prompt and waits for a line. Cancelling ctx closes the
// underlying instance and the read reports an interrupt.
func (r *ReadlineReader) ReadLine(ctx context.Context, prompt string) Result {
	if ctx.Err() != nil {
		return Interrupted()
	}

	stop := context.AfterFunc(ctx, func() { _ = r.rl.Close() })
	defer stop()

	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if ctx.Err() != nil {
		return Interrupted()
	}
	return readlineResult(line, err)
}

// Close releases the terminal.
func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}

func readlineResult(line string, err error) Result {
	switch {
	case err == nil:
		return Line(line)
	case errors.Is(err, readline.ErrInterrupt):
		return Interrupted()
	default:
		return EndOfInput()
	}
}
