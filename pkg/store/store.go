// Package store persists the captured command to a flat text file.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultPath is where the command is written when nothing else is
// configured. It is relative to the working directory.
const DefaultPath = "user_command.txt"

// CommandFile is the file a downstream consumer reads the command from.
// Every Save replaces the whole file.
type CommandFile struct {
	Path string
}

// New returns a CommandFile at path, or at DefaultPath when path is empty.
func New(path string) *CommandFile {
	if path == "" {
		path = DefaultPath
	}
	return &CommandFile{Path: path}
}

// Save truncates the file and writes text as UTF-8 with nothing appended.
// The file is synced and closed before Save returns, whatever happened.
func (c *CommandFile) Save(text string) (err error) {
	if dir := filepath.Dir(c.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("cannot create directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(c.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("opening command file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing command file: %w", cerr))
		}
	}()

	w := transform.NewWriter(f, unicode.UTF8.NewEncoder())
	if _, err := w.Write([]byte(text)); err != nil {
		return fmt.Errorf("writing command file: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("flushing command file: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("syncing command file: %w", err)
	}
	return nil
}

// Load returns the file's contents. A missing file is reported as
// os.ErrNotExist.
func (c *CommandFile) Load() (string, error) {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return "", fmt.Errorf("reading command file: %w", err)
	}
	return string(data), nil
}
