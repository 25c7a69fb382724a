package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/trailmap/internal/domain"
	"github.com/alexanderramin/trailmap/internal/repository"
	"github.com/alexanderramin/trailmap/internal/roadmap"
)

var (
	// ErrAlreadyComplete is returned when completing a task that has no
	// repetitions or completion left to record.
	ErrAlreadyComplete = errors.New("task already complete")
	ErrInvalidName     = repository.ErrInvalidName
)

// ProjectSummary is one line of the project overview.
type ProjectSummary struct {
	Project string             `json:"project" yaml:"project"`
	Name    string             `json:"name" yaml:"name"`
	Kind    domain.ProjectKind `json:"kind" yaml:"kind"`
	Tasks   int                `json:"tasks" yaml:"tasks"`
	Percent int                `json:"percent" yaml:"percent"`
}

// DueTask is a training task whose next repetition date has arrived.
type DueTask struct {
	Project  string      `json:"project" yaml:"project"`
	Filename string      `json:"filename" yaml:"filename"`
	Title    string      `json:"title" yaml:"title"`
	DueDate  domain.Date `json:"due_date" yaml:"due_date"`
}

type PlannerService interface {
	ListProjects(ctx context.Context) ([]string, error)
	Summaries(ctx context.Context) ([]ProjectSummary, error)
	CreateProject(ctx context.Context, name string) error
	// ToggleTraining flips the training marker and returns the new name.
	ToggleTraining(ctx context.Context, project string) (string, error)

	ListTasks(ctx context.Context, project string) ([]domain.Task, error)
	Roadmap(ctx context.Context, project, selected string) (*roadmap.Roadmap, error)
	Due(ctx context.Context) ([]DueTask, error)

	CreateTask(ctx context.Context, project, filename, content string) error
	UpdateContent(ctx context.Context, project, filename, content string) error
	RenameTask(ctx context.Context, project, oldFilename, newFilename string) error
	// UpdateTask applies a rename and a content change together; either
	// both land or neither does.
	UpdateTask(ctx context.Context, project, filename string, upd repository.TaskUpdate) error
	DeleteTask(ctx context.Context, project, filename string) error
	// CompleteTask records a repetition (training) or marks the task done
	// (ordinary) and returns the task's new filename.
	CompleteTask(ctx context.Context, project, filename string) (string, error)
}
