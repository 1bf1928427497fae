package input

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TerminalReader reads a line from an interactive terminal using a
// bubbletea text input. Each ReadLine runs its own short-lived program.
type TerminalReader struct {
	in  io.Reader
	out io.Writer
}

// NewTerminalReader creates a TerminalReader bound to in and out.
func NewTerminalReader(in io.Reader, out io.Writer) *TerminalReader {
	return &TerminalReader{in: in, out: out}
}

// ReadLine shows prompt in front of an editable field and waits for Enter,
// Ctrl+C or Ctrl+D.
func (r *TerminalReader) ReadLine(ctx context.Context, prompt string) Result {
	if ctx.Err() != nil {
		return Interrupted()
	}

	p := tea.NewProgram(newLineModel(prompt),
		tea.WithContext(ctx),
		tea.WithInput(r.in),
		tea.WithOutput(r.out),
	)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) || errors.Is(err, tea.ErrProgramKilled) || ctx.Err() != nil {
			return Interrupted()
		}
		return EndOfInput()
	}

	m, ok := final.(*lineModel)
	if !ok || !m.done {
		return EndOfInput()
	}
	return m.result
}

// lineModel is the bubbletea model behind TerminalReader.
type lineModel struct {
	input  textinput.Model
	result Result
	done   bool
}

func newLineModel(prompt string) *lineModel {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.CharLimit = 0
	ti.Focus()
	return &lineModel{input: ti}
}

func (m *lineModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *lineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			return m.finish(Line(m.input.Value()))
		case tea.KeyCtrlC:
			return m.finish(Interrupted())
		case tea.KeyCtrlD:
			if m.input.Value() == "" {
				return m.finish(EndOfInput())
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *lineModel) finish(r Result) (tea.Model, tea.Cmd) {
	m.result = r
	m.done = true
	m.input.Blur()
	return m, tea.Quit
}

// View leaves the submitted line on screen once the program exits.
func (m *lineModel) View() string {
	if !m.done {
		return m.input.View()
	}
	if m.result.Kind == KindLine {
		return m.input.Prompt + m.result.Text + "\n"
	}
	return m.input.Prompt
}
