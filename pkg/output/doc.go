// Package output provides styled console output for perch.
//
// # Overview
//
// A Printer is bound to one io.Writer and renders through a lipgloss
// renderer created for that writer. Terminals get colour; pipes, files and
// test buffers get the plain text.
//
// # Usage
//
//	p := output.NewPrinter(os.Stdout)
//	p.Prompt("请输入您的指令 (输入 'stop' 退出):")
//	p.Echo("您输入的内容: ", text)
//
// The package-level helpers (Success, Error, Info, Step, Verbose) write to
// stdout and are what the cobra commands use for their own status lines.
//
// # Styling
//
//   - Prompt: cyan bold
//   - Notice: yellow
//   - Success: green bold
//   - Error: red bold
//   - Info: cyan
//   - Step and Verbose: gray
//
// Echo never styles the user's text, so it is shown exactly as captured.
package output
