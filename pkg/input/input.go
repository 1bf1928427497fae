package input

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// IsTerminal reports whether r is a file attached to a terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// New returns a TerminalReader when in is a terminal and a StreamReader
// otherwise.
func New(in io.Reader, out io.Writer) Reader {
	if IsTerminal(in) {
		return NewTerminalReader(in, out)
	}
	return NewStreamReader(in, out)
}

// NewLoopReader returns a ReadlineReader when in is a terminal and a
// StreamReader otherwise. The returned close function is never nil.
func NewLoopReader(in io.Reader, out io.Writer, historyFile string) (Reader, func() error, error) {
	if IsTerminal(in) {
		rl, err := NewReadlineReader(in, out, historyFile)
		if err != nil {
			return nil, nil, fmt.Errorf("starting line editor: %w", err)
		}
		return rl, rl.Close, nil
	}
	return NewStreamReader(in, out), func() error { return nil }, nil
}

// Prompt asks the user for text input with an optional default value.
// If the user presses Enter without typing anything, or input cannot be
// read, the default is returned.
//
// Example:
//
//	path := input.Prompt(ctx, r, "Config path", "perch.yml")
//	// Displays: Config path (perch.yml): _
func Prompt(ctx context.Context, r Reader, message, defaultValue string) string {
	prompt := promptStyle.Render(message) + ": "
	if defaultValue != "" {
		prompt = promptStyle.Render(message) + " " +
			hintStyle.Render(fmt.Sprintf("(%s)", defaultValue)) + ": "
	}

	res := r.ReadLine(ctx, prompt)
	if res.Kind != KindLine {
		return defaultValue
	}

	text := strings.TrimSpace(res.Text)
	if text == "" {
		return defaultValue
	}
	return text
}

// Confirm asks the user a yes/no question.
// Returns true if the user answers yes (y/Y/yes/YES), false otherwise.
// Empty input returns defaultYes. An interrupt always returns false.
func Confirm(ctx context.Context, r Reader, message string, defaultYes bool) bool {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	res := r.ReadLine(ctx, promptStyle.Render(message)+" "+hintStyle.Render(hint)+": ")
	switch res.Kind {
	case KindInterrupted:
		return false
	case KindEndOfInput:
		return defaultYes
	}

	answer := strings.TrimSpace(strings.ToLower(res.Text))
	if answer == "" {
		return defaultYes
	}
	return answer == "y" || answer == "yes"
}
