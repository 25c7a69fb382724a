package db_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/trailmap/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func insertProject(ctx context.Context, tx db.DBTX, id, name string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := tx.ExecContext(ctx,
		`INSERT INTO projects (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		id, name, now, now)
	return err
}

func projectExists(t *testing.T, uow *db.SQLiteUnitOfWork, id string) bool {
	t.Helper()
	var found bool
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		var n int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects WHERE id = ?`, id).Scan(&n); err != nil {
			return err
		}
		found = n > 0
		return nil
	})
	require.NoError(t, err)
	return found
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertProject(ctx, tx, "p1", "Release")
	})
	require.NoError(t, err)
	assert.True(t, projectExists(t, uow, "p1"), "row should exist after commit")
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertProject(ctx, tx, "p2", "Release"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")
	assert.False(t, projectExists(t, uow, "p2"), "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertProject(ctx, tx, "p3", "Release")
			panic("boom")
		})
	})
	assert.False(t, projectExists(t, uow, "p3"), "row should not exist after panic rollback")
}
