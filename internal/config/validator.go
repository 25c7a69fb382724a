package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

func ValidBackends() []string {
	return []string{BackendSQLite, BackendDir}
}

func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

func ValidLogFormats() []string {
	return []string{"text", "json", "logfmt"}
}

// Validate checks the Config and returns every problem found.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	if !slices.Contains(ValidBackends(), c.Store.Backend) {
		errs = append(errs, ValidationError{
			Field:   "store.backend",
			Value:   c.Store.Backend,
			Message: fmt.Sprintf("must be one of %s", strings.Join(ValidBackends(), ", ")),
		})
	}
	if c.Store.Backend == BackendSQLite && c.Store.DBPath == "" {
		errs = append(errs, ValidationError{Field: "store.db_path", Value: c.Store.DBPath, Message: "required for the sqlite backend"})
	}
	if c.Store.Backend == BackendDir && c.Store.RootDir == "" {
		errs = append(errs, ValidationError{Field: "store.root_dir", Value: c.Store.RootDir, Message: "required for the dir backend"})
	}

	if c.Server.Addr == "" {
		errs = append(errs, ValidationError{Field: "server.addr", Value: c.Server.Addr, Message: "must not be empty"})
	}

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Log.Level)) {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Value:   c.Log.Level,
			Message: fmt.Sprintf("must be one of %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}
	if !slices.Contains(ValidLogFormats(), strings.ToLower(c.Log.Format)) {
		errs = append(errs, ValidationError{
			Field:   "log.format",
			Value:   c.Log.Format,
			Message: fmt.Sprintf("must be one of %s", strings.Join(ValidLogFormats(), ", ")),
		})
	}

	if err := c.RepetitionSchedule().Validate(); err != nil {
		errs = append(errs, ValidationError{Field: "schedule.intervals", Value: c.Schedule.Intervals, Message: err.Error()})
	}

	return errs
}
