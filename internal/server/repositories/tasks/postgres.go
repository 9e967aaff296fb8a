// Package tasks provides the PostgreSQL-backed repository for task
// persistence. Every statement carries the owner identity in its predicate,
// so "does not exist" and "belongs to someone else" are indistinguishable
// by construction and no read-then-write race is possible.
package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// PostgresRepository implements task storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns all tasks owned by ownerID, most recently created first.
// No rows is a successful empty (non-nil) slice.
func (r *PostgresRepository) List(ctx context.Context, ownerID string) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, title, description, done, created_at FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Task, 0)
	for rows.Next() {
		var item models.Task
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Title, &item.Description, &item.Done, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts a task for ownerID and returns the stored row. The done
// flag and creation timestamp are assigned by the database.
func (r *PostgresRepository) Create(ctx context.Context, ownerID, title string, description *string) (*models.Task, error) {
	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO tasks (user_id, title, description)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, title, description, done, created_at
	`, ownerID, title, description).Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description, &task.Done, &task.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

// Update applies a partial merge as a single conditional statement: fields
// absent from the patch keep their stored values, and the ownership check is
// part of the WHERE predicate rather than a separate read. Zero matched rows
// surface as common.ErrorNotFound whether the task is missing or owned by
// another user.
func (r *PostgresRepository) Update(ctx context.Context, ownerID, taskID string, patch models.TaskPatch) (*models.Task, error) {
	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, `
		UPDATE tasks SET
			title = COALESCE($1, title),
			description = COALESCE($2, description),
			done = COALESCE($3, done)
		WHERE id = $4 AND user_id = $5
		RETURNING id, user_id, title, description, done, created_at
	`, patch.Title, patch.Description, patch.Done, taskID, ownerID).Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description, &task.Done, &task.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

// Delete removes the task if taskID is owned by ownerID. Zero affected rows
// surface as common.ErrorNotFound, with the same indistinguishability as
// Update.
func (r *PostgresRepository) Delete(ctx context.Context, ownerID, taskID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM tasks
		WHERE id = $1 AND user_id = $2
	`, taskID, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
