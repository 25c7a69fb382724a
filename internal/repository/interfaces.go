package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/trailmap/internal/domain"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrExists      = errors.New("already exists")
	ErrInvalidName = errors.New("invalid name")
)

// TaskUpdate describes a rename and/or content change of one task.
// Nil fields are left untouched.
type TaskUpdate struct {
	NewFilename *string
	Content     *string
}

// TaskStore holds projects and their ordered tasks. Project names carry the
// training marker as-is; task Completed flags are derived from filenames.
type TaskStore interface {
	ListProjects(ctx context.Context) ([]string, error)
	CreateProject(ctx context.Context, name string) error
	RenameProject(ctx context.Context, oldName, newName string) error

	ListTasks(ctx context.Context, project string) ([]domain.Task, error)
	CreateTask(ctx context.Context, project, filename, content string) error
	UpdateTask(ctx context.Context, project, oldFilename string, upd TaskUpdate) error
	DeleteTask(ctx context.Context, project, filename string) error
}
