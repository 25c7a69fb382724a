package repository

import (
	"fmt"
	"strings"
	"time"
)

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func projectNotFound(name string) error {
	return fmt.Errorf("project %q: %w", name, ErrNotFound)
}

func taskNotFound(project, filename string) error {
	return fmt.Errorf("task %q in project %q: %w", filename, project, ErrNotFound)
}
