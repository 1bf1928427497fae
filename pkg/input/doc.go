// Package input reads lines from the console.
//
// # Overview
//
// Every reader returns a Result instead of an error. A Result is one of
// three things: a line of text, the end of the input stream, or an
// interrupt from the user. Callers decide what each of those means.
//
// # Readers
//
//   - StreamReader: pipes, redirected files and tests. Interrupts arrive as
//     context cancellation.
//   - TerminalReader: an interactive TTY, using a bubbletea text input.
//   - ReadlineReader: an interactive TTY with line editing and history,
//     used by the task loop.
//
// New picks between StreamReader and TerminalReader based on whether the
// input is a terminal:
//
//	r := input.New(os.Stdin, os.Stdout)
//	res := r.ReadLine(ctx, "prompt: ")
//	switch res.Kind {
//	case input.KindLine:
//	    // res.Text holds the line without its terminator
//	case input.KindEndOfInput:
//	case input.KindInterrupted:
//	}
//
// # Questions
//
// Prompt and Confirm ask a question with a default answer on top of any
// Reader. They are used by commands that need a yes/no before touching
// files.
package input
