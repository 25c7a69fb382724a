package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/trailmap/internal/domain"
	"github.com/alexanderramin/trailmap/internal/repository"
	"github.com/alexanderramin/trailmap/internal/taskname"
)

// resolveProject accepts a project's stored name or its display name
// without the training marker, case-insensitively.
func resolveProject(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project name is required")
	}

	projects, err := app.Planner.ListProjects(ctx)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if p == input {
			return p, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.EqualFold(domain.DisplayName(p), domain.DisplayName(input)) {
			matches = append(matches, p)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project %q: %w", input, repository.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project name %q is ambiguous (%s)", input, strings.Join(matches, ", "))
	}
}

// resolveTask finds a task by exact filename, by name without extension,
// or by a unique case-insensitive prefix.
func resolveTask(ctx context.Context, app *App, project, input string) (string, error) {
	tasks, err := app.Planner.ListTasks(ctx, project)
	if err != nil {
		return "", err
	}

	for _, t := range tasks {
		if t.Filename == input {
			return t.Filename, nil
		}
	}
	for _, t := range tasks {
		if taskname.StripExt(t.Filename) == input {
			return t.Filename, nil
		}
	}

	var matches []string
	lower := strings.ToLower(input)
	for _, t := range tasks {
		if strings.HasPrefix(strings.ToLower(t.Filename), lower) {
			matches = append(matches, t.Filename)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task %q in %s: %w", input, project, repository.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task %q is ambiguous (%d matches)", input, len(matches))
	}
}
