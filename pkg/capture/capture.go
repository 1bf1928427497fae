// Package capture asks the user for one instruction and saves it.
//
// A run always produces exactly one Command. When a line is read the
// command is that line; otherwise it is one of the fixed fallbacks. The
// fallbacks are opaque to perch and only mean something to whatever reads
// the command file.
package capture

import (
	"context"
	"errors"
	"fmt"

	"github.com/simonhull/firebird-suite/perch/pkg/input"
	"github.com/simonhull/firebird-suite/perch/pkg/logger"
	"github.com/simonhull/firebird-suite/perch/pkg/output"
)

// Command is the single instruction produced by a run.
type Command struct {
	Text string
}

// Sink persists a command's text.
type Sink interface {
	Save(text string) error
}

// Outcome describes what a run read and what it saved.
type Outcome struct {
	Result  input.Result
	Command Command
}

// Resolve maps a read result to the command to persist.
func Resolve(r input.Result) Command {
	switch r.Kind {
	case input.KindEndOfInput:
		return Command{Text: FallbackEndOfInput}
	case input.KindInterrupted:
		return Command{Text: FallbackInterrupted}
	default:
		return Command{Text: r.Text}
	}
}

// Capture runs the prompt, echo and save sequence.
type Capture struct {
	Reader  input.Reader
	Printer *output.Printer
	Sink    Sink
	Logger  logger.Logger
}

// Run prompts once, reports what happened and saves the resulting command.
// Only a failure to save is returned as an error.
func (c *Capture) Run(ctx context.Context) (Outcome, error) {
	if c.Reader == nil || c.Sink == nil {
		return Outcome{}, errors.New("capture needs a reader and a sink")
	}
	p := c.Printer
	if p == nil {
		p = output.NewPrinter(nil)
	}
	log := c.Logger
	if log == nil {
		log = logger.NewSilentLogger()
	}

	p.Prompt(InstructionPrompt)
	res := c.Reader.ReadLine(ctx, LinePrompt)
	log.Debug("read finished", logger.F("kind", res.Kind))

	Report(p, res)

	cmd := Resolve(res)
	if err := c.Sink.Save(cmd.Text); err != nil {
		return Outcome{Result: res, Command: cmd}, fmt.Errorf("saving command: %w", err)
	}
	log.Info("command saved", logger.F("kind", res.Kind), logger.F("bytes", len(cmd.Text)))

	return Outcome{Result: res, Command: cmd}, nil
}

// Report prints the console message that goes with a read result.
func Report(p *output.Printer, res input.Result) {
	switch res.Kind {
	case input.KindLine:
		p.Echo(EchoLabel, res.Text)
	case input.KindEndOfInput:
		p.Notice(EndOfInputNotice)
	case input.KindInterrupted:
		p.Println("")
		p.Notice(InterruptNotice)
	}
}
