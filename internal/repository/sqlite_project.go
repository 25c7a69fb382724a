package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/trailmap/internal/db"
	"github.com/google/uuid"
)

// SQLiteTaskStore implements TaskStore on the SQLite schema from db.Migrate.
type SQLiteTaskStore struct {
	db  *sql.DB
	uow db.UnitOfWork
}

// NewSQLiteTaskStore creates a store whose multi-statement writes run
// inside uow.
func NewSQLiteTaskStore(database *sql.DB, uow db.UnitOfWork) *SQLiteTaskStore {
	return &SQLiteTaskStore{db: database, uow: uow}
}

var _ TaskStore = (*SQLiteTaskStore)(nil)

func (s *SQLiteTaskStore) ListProjects(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM projects ORDER BY order_index, name`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return names, nil
}

func (s *SQLiteTaskStore) CreateProject(ctx context.Context, name string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var next int
		if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(order_index), -1) + 1 FROM projects`).Scan(&next); err != nil {
			return fmt.Errorf("allocating project order: %w", err)
		}
		now := nowUTC()
		_, err := tx.ExecContext(ctx,
			`INSERT INTO projects (id, name, order_index, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
			uuid.New().String(), name, next, now, now)
		if isUniqueViolation(err) {
			return fmt.Errorf("project %q: %w", name, ErrExists)
		}
		if err != nil {
			return fmt.Errorf("inserting project: %w", err)
		}
		return nil
	})
}

func (s *SQLiteTaskStore) RenameProject(ctx context.Context, oldName, newName string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE projects SET name = ?, updated_at = ? WHERE name = ?`,
		newName, nowUTC(), oldName)
	if isUniqueViolation(err) {
		return fmt.Errorf("project %q: %w", newName, ErrExists)
	}
	if err != nil {
		return fmt.Errorf("renaming project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("renaming project: %w", err)
	}
	if n == 0 {
		return projectNotFound(oldName)
	}
	return nil
}

// projectID resolves a project name to its row id.
func projectID(ctx context.Context, q db.DBTX, name string) (string, error) {
	var id string
	err := q.QueryRowContext(ctx, `SELECT id FROM projects WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", projectNotFound(name)
	}
	if err != nil {
		return "", fmt.Errorf("looking up project: %w", err)
	}
	return id, nil
}
