package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/trailmap/internal/db"
	"github.com/alexanderramin/trailmap/internal/domain"
	"github.com/alexanderramin/trailmap/internal/taskname"
	"github.com/google/uuid"
)

func (s *SQLiteTaskStore) ListTasks(ctx context.Context, project string) ([]domain.Task, error) {
	pid, err := projectID(ctx, s.db, project)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT filename, content FROM tasks WHERE project_id = ? ORDER BY order_index, created_at`, pid)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.Filename, &t.Content); err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		t.Completed = taskname.IsCompleted(t.Filename)
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (s *SQLiteTaskStore) CreateTask(ctx context.Context, project, filename, content string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		pid, err := projectID(ctx, tx, project)
		if err != nil {
			return err
		}

		var next int
		err = tx.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(order_index), -1) + 1 FROM tasks WHERE project_id = ?`, pid).Scan(&next)
		if err != nil {
			return fmt.Errorf("allocating task order: %w", err)
		}

		now := nowUTC()
		_, err = tx.ExecContext(ctx,
			`INSERT INTO tasks (id, project_id, filename, content, order_index, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), pid, filename, content, next, now, now)
		if isUniqueViolation(err) {
			return fmt.Errorf("task %q: %w", filename, ErrExists)
		}
		if err != nil {
			return fmt.Errorf("inserting task: %w", err)
		}
		return nil
	})
}

func (s *SQLiteTaskStore) UpdateTask(ctx context.Context, project, oldFilename string, upd TaskUpdate) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		pid, err := projectID(ctx, tx, project)
		if err != nil {
			return err
		}

		var id string
		err = tx.QueryRowContext(ctx,
			`SELECT id FROM tasks WHERE project_id = ? AND filename = ?`, pid, oldFilename).Scan(&id)
		if errors.Is(err, sql.ErrNoRows) {
			return taskNotFound(project, oldFilename)
		}
		if err != nil {
			return fmt.Errorf("looking up task: %w", err)
		}

		now := nowUTC()
		if upd.Content != nil {
			if _, err := tx.ExecContext(ctx,
				`UPDATE tasks SET content = ?, updated_at = ? WHERE id = ?`, *upd.Content, now, id); err != nil {
				return fmt.Errorf("updating task content: %w", err)
			}
		}
		if upd.NewFilename != nil && *upd.NewFilename != oldFilename {
			_, err := tx.ExecContext(ctx,
				`UPDATE tasks SET filename = ?, updated_at = ? WHERE id = ?`, *upd.NewFilename, now, id)
			if isUniqueViolation(err) {
				return fmt.Errorf("task %q: %w", *upd.NewFilename, ErrExists)
			}
			if err != nil {
				return fmt.Errorf("renaming task: %w", err)
			}
		}
		return nil
	})
}

func (s *SQLiteTaskStore) DeleteTask(ctx context.Context, project, filename string) error {
	pid, err := projectID(ctx, s.db, project)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE project_id = ? AND filename = ?`, pid, filename)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	if n == 0 {
		return taskNotFound(project, filename)
	}
	return nil
}
