package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/trailmap/internal/domain"
	"github.com/alexanderramin/trailmap/internal/repository"
	"github.com/alexanderramin/trailmap/internal/roadmap"
	"github.com/alexanderramin/trailmap/internal/scheduler"
	"github.com/alexanderramin/trailmap/internal/taskname"
)

type plannerService struct {
	store    repository.TaskStore
	schedule scheduler.Schedule
	now      func() time.Time
	observer UseCaseObserver
}

// Option customizes a planner service.
type Option func(*plannerService)

// WithClock replaces time.Now, which decides the date written on completion.
func WithClock(now func() time.Time) Option {
	return func(s *plannerService) { s.now = now }
}

func WithObserver(obs UseCaseObserver) Option {
	return func(s *plannerService) {
		s.observer = useCaseObserverOrNoop([]UseCaseObserver{obs})
	}
}

func NewPlannerService(store repository.TaskStore, schedule scheduler.Schedule, opts ...Option) PlannerService {
	s := &plannerService{
		store:    store,
		schedule: schedule,
		now:      time.Now,
		observer: NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *plannerService) today() domain.Date {
	return domain.DateOf(s.now())
}

// observe reports a write use case once it returns.
func (s *plannerService) observe(ctx context.Context, name string, fields map[string]any, startedAt time.Time, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func (s *plannerService) ListProjects(ctx context.Context) ([]string, error) {
	return s.store.ListProjects(ctx)
}

func (s *plannerService) Summaries(ctx context.Context) ([]ProjectSummary, error) {
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	out := make([]ProjectSummary, 0, len(projects))
	for _, p := range projects {
		tasks, err := s.store.ListTasks(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("loading tasks of %s: %w", p, err)
		}
		kind := domain.KindOf(p)
		out = append(out, ProjectSummary{
			Project: p,
			Name:    domain.DisplayName(p),
			Kind:    kind,
			Tasks:   len(tasks),
			Percent: scheduler.ComputeProgress(kind, tasks, s.schedule),
		})
	}
	return out, nil
}

func (s *plannerService) CreateProject(ctx context.Context, name string) (err error) {
	startedAt := time.Now()
	defer func() { s.observe(ctx, "create-project", map[string]any{"project": name}, startedAt, err) }()

	if err = domain.ValidateProjectName(name); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidName, err)
	}
	return s.store.CreateProject(ctx, name)
}

func (s *plannerService) ToggleTraining(ctx context.Context, project string) (newName string, err error) {
	startedAt := time.Now()
	fields := map[string]any{"project": project}
	defer func() { s.observe(ctx, "toggle-training", fields, startedAt, err) }()

	newName = domain.ToggleTraining(project)
	if err = domain.ValidateProjectName(newName); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidName, err)
	}
	if err = s.store.RenameProject(ctx, project, newName); err != nil {
		return "", err
	}
	fields["new_name"] = newName
	return newName, nil
}

func (s *plannerService) ListTasks(ctx context.Context, project string) ([]domain.Task, error) {
	return s.store.ListTasks(ctx, project)
}

func (s *plannerService) Roadmap(ctx context.Context, project, selected string) (*roadmap.Roadmap, error) {
	tasks, err := s.store.ListTasks(ctx, project)
	if err != nil {
		return nil, err
	}
	rm := roadmap.Project(roadmap.Input{
		Project:  project,
		Tasks:    tasks,
		Schedule: s.schedule,
		Selected: selected,
	})
	return &rm, nil
}

func (s *plannerService) Due(ctx context.Context) ([]DueTask, error) {
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	today := s.today()
	due := []DueTask{}
	for _, p := range projects {
		if domain.KindOf(p) != domain.KindTraining {
			continue
		}
		tasks, err := s.store.ListTasks(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("loading tasks of %s: %w", p, err)
		}
		for _, t := range tasks {
			parsed := taskname.Parse(t.Filename)
			state := s.schedule.StateFor(parsed, t.Completed)
			if !s.schedule.IsDue(state, today) {
				continue
			}
			date, _ := s.schedule.NextDueDate(state)
			due = append(due, DueTask{Project: p, Filename: t.Filename, Title: parsed.Core, DueDate: date})
		}
	}
	return due, nil
}

func (s *plannerService) CreateTask(ctx context.Context, project, filename, content string) (err error) {
	startedAt := time.Now()
	defer func() {
		s.observe(ctx, "create-task", map[string]any{"project": project, "filename": filename}, startedAt, err)
	}()

	if err = domain.ValidateTaskFilename(filename); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidName, err)
	}
	return s.store.CreateTask(ctx, project, filename, content)
}

func (s *plannerService) UpdateContent(ctx context.Context, project, filename, content string) (err error) {
	startedAt := time.Now()
	defer func() {
		s.observe(ctx, "update-content", map[string]any{"project": project, "filename": filename}, startedAt, err)
	}()

	return s.store.UpdateTask(ctx, project, filename, repository.TaskUpdate{Content: &content})
}

func (s *plannerService) RenameTask(ctx context.Context, project, oldFilename, newFilename string) (err error) {
	startedAt := time.Now()
	defer func() {
		s.observe(ctx, "rename-task", map[string]any{"project": project, "filename": oldFilename, "new_filename": newFilename}, startedAt, err)
	}()

	if err = domain.ValidateTaskFilename(newFilename); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidName, err)
	}
	return s.store.UpdateTask(ctx, project, oldFilename, repository.TaskUpdate{NewFilename: &newFilename})
}

func (s *plannerService) UpdateTask(ctx context.Context, project, filename string, upd repository.TaskUpdate) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"project": project, "filename": filename}
	if upd.NewFilename != nil {
		fields["new_filename"] = *upd.NewFilename
	}
	defer func() { s.observe(ctx, "update-task", fields, startedAt, err) }()

	if upd.NewFilename != nil {
		if err = domain.ValidateTaskFilename(*upd.NewFilename); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidName, err)
		}
	}
	return s.store.UpdateTask(ctx, project, filename, upd)
}

func (s *plannerService) DeleteTask(ctx context.Context, project, filename string) (err error) {
	startedAt := time.Now()
	defer func() {
		s.observe(ctx, "delete-task", map[string]any{"project": project, "filename": filename}, startedAt, err)
	}()

	return s.store.DeleteTask(ctx, project, filename)
}

func (s *plannerService) CompleteTask(ctx context.Context, project, filename string) (newName string, err error) {
	startedAt := time.Now()
	fields := map[string]any{"project": project, "filename": filename}
	defer func() { s.observe(ctx, "complete-task", fields, startedAt, err) }()

	var task *domain.Task
	task, err = s.findTask(ctx, project, filename)
	if err != nil {
		return "", err
	}

	today := s.today()
	if domain.KindOf(project) == domain.KindTraining {
		state := s.schedule.StateFor(taskname.Parse(task.Filename), task.Completed)
		if state.Phase == domain.PhaseComplete {
			err = fmt.Errorf("completing %s: %w", filename, ErrAlreadyComplete)
			return "", err
		}
		newName = taskname.AddRepetition(task.Filename, today)
	} else {
		if task.Completed {
			err = fmt.Errorf("completing %s: %w", filename, ErrAlreadyComplete)
			return "", err
		}
		newName = taskname.MarkCompleted(task.Filename, today)
	}

	if err = s.store.UpdateTask(ctx, project, filename, repository.TaskUpdate{NewFilename: &newName}); err != nil {
		return "", fmt.Errorf("renaming completed task: %w", err)
	}
	fields["new_filename"] = newName
	return newName, nil
}

func (s *plannerService) findTask(ctx context.Context, project, filename string) (*domain.Task, error) {
	tasks, err := s.store.ListTasks(ctx, project)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].Filename == filename {
			return &tasks[i], nil
		}
	}
	return nil, fmt.Errorf("task %q in project %q: %w", filename, project, repository.ErrNotFound)
}
