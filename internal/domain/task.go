package domain

import (
	"fmt"
	"strings"
)

// Task is a single roadmap entry as held by a store. Filename is the only
// source of truth for completion and repetition state.
type Task struct {
	Filename  string `json:"filename" yaml:"filename"`
	Content   string `json:"content" yaml:"content"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// ValidateTaskFilename checks that filename is usable as a task name.
func ValidateTaskFilename(filename string) error {
	trimmed := strings.TrimSpace(filename)
	if trimmed == "" {
		return fmt.Errorf("task filename is required")
	}
	if trimmed == "." || trimmed == ".." || strings.ContainsAny(filename, `/\`) {
		return fmt.Errorf("task filename %q is not a valid file name", filename)
	}
	return nil
}
