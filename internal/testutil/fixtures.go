package testutil

import (
	"context"
	"testing"

	"github.com/alexanderramin/trailmap/internal/repository"
)

// TaskSeed is a task to create through SeedProject.
type TaskSeed struct {
	Filename string
	Content  string
}

// Tasks turns bare filenames into seeds with empty content.
func Tasks(filenames ...string) []TaskSeed {
	seeds := make([]TaskSeed, 0, len(filenames))
	for _, f := range filenames {
		seeds = append(seeds, TaskSeed{Filename: f})
	}
	return seeds
}

// SeedProject creates project in store and adds tasks in order.
func SeedProject(t *testing.T, store repository.TaskStore, project string, tasks []TaskSeed) {
	t.Helper()
	ctx := context.Background()
	if err := store.CreateProject(ctx, project); err != nil {
		t.Fatalf("seeding project %q: %v", project, err)
	}
	for _, task := range tasks {
		if err := store.CreateTask(ctx, project, task.Filename, task.Content); err != nil {
			t.Fatalf("seeding task %q: %v", task.Filename, err)
		}
	}
}
