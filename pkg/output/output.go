package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled console messages to a single writer.
type Printer struct {
	w       io.Writer
	verbose bool

	promptStyle  lipgloss.Style
	labelStyle   lipgloss.Style
	noticeStyle  lipgloss.Style
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	stepStyle    lipgloss.Style
}

// NewPrinter creates a Printer for w. A nil writer means stdout.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	r := lipgloss.NewRenderer(w)

	return &Printer{
		w:            w,
		promptStyle:  r.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true),
		labelStyle:   r.NewStyle().Foreground(lipgloss.Color("240")),
		noticeStyle:  r.NewStyle().Foreground(lipgloss.Color("yellow")),
		successStyle: r.NewStyle().Foreground(lipgloss.Color("green")).Bold(true),
		errorStyle:   r.NewStyle().Foreground(lipgloss.Color("red")).Bold(true),
		infoStyle:    r.NewStyle().Foreground(lipgloss.Color("cyan")),
		stepStyle:    r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// SetVerbose enables or disables Verbose output on this printer.
func (p *Printer) SetVerbose(v bool) {
	p.verbose = v
}

// Print writes msg as-is without a trailing newline.
func (p *Printer) Print(msg string) {
	fmt.Fprint(p.w, msg)
}

// Println writes msg as-is followed by a newline.
func (p *Printer) Println(msg string) {
	fmt.Fprintln(p.w, msg)
}

// Prompt prints a question for the user on its own line.
func (p *Printer) Prompt(msg string) {
	fmt.Fprintln(p.w, p.promptStyle.Render(msg))
}

// Echo prints a styled label followed by the raw text.
func (p *Printer) Echo(label, text string) {
	fmt.Fprintln(p.w, p.labelStyle.Render(label)+text)
}

// Notice prints a diagnostic the user should see but that is not a failure.
func (p *Printer) Notice(msg string) {
	fmt.Fprintln(p.w, p.noticeStyle.Render(msg))
}

// Success prints a success message with 🔥 emoji and green color.
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.w, p.successStyle.Render("🔥 "+msg))
}

// Error prints an error message with ❌ emoji and red color.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.w, p.errorStyle.Render("❌ "+msg))
}

// Info prints an informational message with ℹ️ emoji and cyan color.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.w, p.infoStyle.Render("ℹ️  "+msg))
}

// Step prints an indented line in gray.
func (p *Printer) Step(msg string) {
	fmt.Fprintln(p.w, p.stepStyle.Render("   "+msg))
}

// Verbose prints a debug line with 🔍 emoji only if verbose mode is enabled.
func (p *Printer) Verbose(msg string) {
	if p.verbose {
		fmt.Fprintln(p.w, p.stepStyle.Render("🔍 "+msg))
	}
}

var verboseMode bool

func stdout() *Printer {
	p := NewPrinter(os.Stdout)
	p.SetVerbose(verboseMode)
	return p
}

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Success prints a success message to stdout.
//
// Example:
//
//	output.Success("Wrote perch.yml")
func Success(msg string) {
	stdout().Success(msg)
}

// Error prints an error message to stdout.
func Error(msg string) {
	stdout().Error(msg)
}

// Info prints an informational message to stdout.
func Info(msg string) {
	stdout().Info(msg)
}

// Step prints an indented step to stdout.
func Step(msg string) {
	stdout().Step(msg)
}

// Verbose prints a debug message to stdout when verbose mode is on.
func Verbose(msg string) {
	stdout().Verbose(msg)
}
