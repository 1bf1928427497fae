package input

import "context"

// Kind tells which of the three outcomes a read produced.
type Kind int

const (
	// KindLine means a line (possibly empty) was read.
	KindLine Kind = iota
	// KindEndOfInput means the stream ended before any character arrived.
	KindEndOfInput
	// KindInterrupted means the user interrupted the wait.
	KindInterrupted
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindEndOfInput:
		return "end-of-input"
	case KindInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Result is the outcome of reading one line. Text is only meaningful for
// KindLine.
type Result struct {
	Kind Kind
	Text string
}

// Line returns a KindLine result holding text.
func Line(text string) Result {
	return Result{Kind: KindLine, Text: text}
}

// EndOfInput returns a KindEndOfInput result.
func EndOfInput() Result {
	return Result{Kind: KindEndOfInput}
}

// Interrupted returns a KindInterrupted result.
func Interrupted() Result {
	return Result{Kind: KindInterrupted}
}

// Reader reads one line at a time, showing prompt first.
type Reader interface {
	ReadLine(ctx context.Context, prompt string) Result
}
