// Package textlog provides append-only line sinks backing the audit
// trail and the announcement board.
package textlog

import (
	"bufio"
	"fmt"
	"os"
)

// Sink appends lines to a text file, creating it on first use. Reads of
// a missing file yield no lines rather than an error.
type Sink struct {
	path string
}

func New(path string) *Sink {
	return &Sink{path: path}
}

// Append writes one line to the end of the file.
func (s *Sink) Append(line string) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, line); err != nil {
		return fmt.Errorf("failed to append to %s: %w", s.path, err)
	}
	return nil
}

// Lines reads back every line in append order.
func (s *Sink) Lines() ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	return lines, nil
}
