package input

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted replays fixed results, one per ReadLine.
type scripted struct {
	results []Result
	prompts []string
}

func (s *scripted) ReadLine(_ context.Context, prompt string) Result {
	s.prompts = append(s.prompts, prompt)
	if len(s.results) == 0 {
		return EndOfInput()
	}
	r := s.results[0]
	s.results = s.results[1:]
	return r
}

func TestNew_StreamForNonTerminal(t *testing.T) {
	r := New(strings.NewReader(""), io.Discard)
	_, ok := r.(*StreamReader)
	assert.True(t, ok, "expected StreamReader, got %T", r)
	assert.False(t, IsTerminal(strings.NewReader("")))
}

func TestNewLoopReader_StreamForNonTerminal(t *testing.T) {
	r, closeFn, err := NewLoopReader(strings.NewReader("a\n"), io.Discard, "")
	require.NoError(t, err)
	require.NotNil(t, closeFn)
	defer closeFn()

	assert.Equal(t, Line("a"), r.ReadLine(context.Background(), ""))
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{"typed value", Line("  custom.yml "), "custom.yml"},
		{"empty uses default", Line(""), "perch.yml"},
		{"end of input uses default", EndOfInput(), "perch.yml"},
		{"interrupt uses default", Interrupted(), "perch.yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &scripted{results: []Result{tt.result}}
			got := Prompt(context.Background(), r, "Config path", "perch.yml")
			assert.Equal(t, tt.want, got)
			require.Len(t, r.prompts, 1)
			assert.Contains(t, r.prompts[0], "Config path")
			assert.Contains(t, r.prompts[0], "(perch.yml)")
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		result     Result
		defaultYes bool
		want       bool
	}{
		{"yes", Line("y"), false, true},
		{"YES", Line("YES"), false, true},
		{"no", Line("n"), true, false},
		{"empty default yes", Line(""), true, true},
		{"empty default no", Line(""), false, false},
		{"end of input default", EndOfInput(), true, true},
		{"interrupt never confirms", Interrupted(), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &scripted{results: []Result{tt.result}}
			assert.Equal(t, tt.want, Confirm(context.Background(), r, "Overwrite?", tt.defaultYes))
		})
	}
}

func TestReadlineResult(t *testing.T) {
	assert.Equal(t, Line("status"), readlineResult("status", nil))
	assert.Equal(t, Interrupted(), readlineResult("", readline.ErrInterrupt))
	assert.Equal(t, EndOfInput(), readlineResult("", io.EOF))
	assert.Equal(t, EndOfInput(), readlineResult("", errors.New("tty gone")))
}
