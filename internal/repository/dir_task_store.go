package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/trailmap/internal/domain"
	"github.com/alexanderramin/trailmap/internal/taskname"
	"github.com/spf13/afero"
)

// DirTaskStore keeps one folder per project under root and one file per
// task inside it. File names are task filenames; file bodies are contents.
// Listings are sorted by name. Hidden entries are ignored.
type DirTaskStore struct {
	fs   afero.Fs
	root string
}

// NewDirTaskStore creates a store rooted at root on fs.
func NewDirTaskStore(fs afero.Fs, root string) *DirTaskStore {
	return &DirTaskStore{fs: fs, root: root}
}

var _ TaskStore = (*DirTaskStore)(nil)

func (s *DirTaskStore) ListProjects(ctx context.Context) ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.root)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading root %s: %w", s.root, err)
	}
	names := []string{}
	for _, e := range entries {
		if e.IsDir() && !hidden(e.Name()) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

func (s *DirTaskStore) CreateProject(ctx context.Context, name string) error {
	dir, err := s.projectPath(name)
	if err != nil {
		return err
	}
	if ok, _ := afero.Exists(s.fs, dir); ok {
		return fmt.Errorf("project %q: %w", name, ErrExists)
	}
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating project folder: %w", err)
	}
	return nil
}

func (s *DirTaskStore) RenameProject(ctx context.Context, oldName, newName string) error {
	oldDir, err := s.existingProject(oldName)
	if err != nil {
		return err
	}
	newDir, err := s.projectPath(newName)
	if err != nil {
		return err
	}
	if ok, _ := afero.Exists(s.fs, newDir); ok {
		return fmt.Errorf("project %q: %w", newName, ErrExists)
	}
	if err := s.fs.Rename(oldDir, newDir); err != nil {
		return fmt.Errorf("renaming project folder: %w", err)
	}
	return nil
}

func (s *DirTaskStore) ListTasks(ctx context.Context, project string) ([]domain.Task, error) {
	dir, err := s.existingProject(project)
	if err != nil {
		return nil, err
	}
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("reading project folder: %w", err)
	}

	tasks := []domain.Task{}
	for _, e := range entries {
		if e.IsDir() || hidden(e.Name()) {
			continue
		}
		body, err := afero.ReadFile(s.fs, filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading task %s: %w", e.Name(), err)
		}
		tasks = append(tasks, domain.Task{
			Filename:  e.Name(),
			Content:   string(body),
			Completed: taskname.IsCompleted(e.Name()),
		})
	}
	return tasks, nil
}

func (s *DirTaskStore) CreateTask(ctx context.Context, project, filename, content string) error {
	path, err := s.taskPath(project, filename)
	if err != nil {
		return err
	}
	if ok, _ := afero.Exists(s.fs, path); ok {
		return fmt.Errorf("task %q: %w", filename, ErrExists)
	}
	if err := afero.WriteFile(s.fs, path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing task: %w", err)
	}
	return nil
}

func (s *DirTaskStore) UpdateTask(ctx context.Context, project, oldFilename string, upd TaskUpdate) error {
	path, err := s.existingTask(project, oldFilename)
	if err != nil {
		return err
	}

	target := path
	if upd.NewFilename != nil && *upd.NewFilename != oldFilename {
		target, err = s.taskPath(project, *upd.NewFilename)
		if err != nil {
			return err
		}
		if ok, _ := afero.Exists(s.fs, target); ok {
			return fmt.Errorf("task %q: %w", *upd.NewFilename, ErrExists)
		}
	}

	if upd.Content != nil {
		if err := afero.WriteFile(s.fs, path, []byte(*upd.Content), 0644); err != nil {
			return fmt.Errorf("writing task: %w", err)
		}
	}
	if target != path {
		if err := s.fs.Rename(path, target); err != nil {
			return fmt.Errorf("renaming task: %w", err)
		}
	}
	return nil
}

func (s *DirTaskStore) DeleteTask(ctx context.Context, project, filename string) error {
	path, err := s.existingTask(project, filename)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(path); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

func (s *DirTaskStore) projectPath(name string) (string, error) {
	if err := domain.ValidateProjectName(name); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidName, err)
	}
	return filepath.Join(s.root, name), nil
}

func (s *DirTaskStore) existingProject(name string) (string, error) {
	dir, err := s.projectPath(name)
	if err != nil {
		return "", err
	}
	if ok, _ := afero.DirExists(s.fs, dir); !ok {
		return "", projectNotFound(name)
	}
	return dir, nil
}

// taskPath validates both names and requires the project folder to exist.
func (s *DirTaskStore) taskPath(project, filename string) (string, error) {
	dir, err := s.existingProject(project)
	if err != nil {
		return "", err
	}
	if err := domain.ValidateTaskFilename(filename); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidName, err)
	}
	return filepath.Join(dir, filename), nil
}

func (s *DirTaskStore) existingTask(project, filename string) (string, error) {
	path, err := s.taskPath(project, filename)
	if err != nil {
		return "", err
	}
	if ok, _ := afero.Exists(s.fs, path); !ok {
		return "", taskNotFound(project, filename)
	}
	return path, nil
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
