package output

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// captureOutput captures stdout during test execution
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestPrinter_PlainWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Prompt("请输入您的指令 (输入 'stop' 退出):")
	p.Notice("用户中断操作")

	assert.Equal(t, "请输入您的指令 (输入 'stop' 退出):\n用户中断操作\n", buf.String())
}

func TestPrinter_EchoKeepsTextVerbatim(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Echo("您输入的内容: ", "  tabs\tand  spaces ")

	assert.Equal(t, "您输入的内容:   tabs\tand  spaces \n", buf.String())
}

func TestPrinter_PrintHasNoNewline(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Print("prompt: ")
	p.Println("done")

	assert.Equal(t, "prompt: done\n", buf.String())
}

func TestPrinter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Verbose("hidden")
	assert.Empty(t, buf.String())

	p.SetVerbose(true)
	p.Verbose("shown")
	assert.Contains(t, buf.String(), "🔍")
	assert.Contains(t, buf.String(), "shown")
}

func TestSuccess(t *testing.T) {
	out := captureOutput(func() {
		Success("Test message")
	})

	assert.Contains(t, out, "🔥")
	assert.Contains(t, out, "Test message")
}

func TestError(t *testing.T) {
	out := captureOutput(func() {
		Error("Error message")
	})

	assert.Contains(t, out, "❌")
	assert.Contains(t, out, "Error message")
}

func TestStep(t *testing.T) {
	out := captureOutput(func() {
		Step("Step message")
	})

	assert.Contains(t, out, "   Step message")
}

func TestVerbose(t *testing.T) {
	out := captureOutput(func() {
		Verbose("Debug message")
	})
	assert.Empty(t, out, "Verbose output should be empty when verbose mode is off")

	SetVerbose(true)
	defer SetVerbose(false)

	out = captureOutput(func() {
		Verbose("Debug message")
	})
	assert.Contains(t, out, "Debug message")
}
