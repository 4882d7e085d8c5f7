package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tasklight/core/internal/domain/entities"
	"github.com/tasklight/core/internal/ports"
)

// TaskRepositoryImpl implements the TaskRepository interface
type TaskRepositoryImpl struct {
	db *sqlx.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *sqlx.DB) ports.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

const taskColumns = `id, user_id, text, description, priority, group_id, due_date, planned_date, completed, created_at, completed_at`

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *entities.Task) error {
	query := `
		INSERT INTO todos (user_id, text, description, priority, group_id, due_date, planned_date, completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, false)
		RETURNING id, completed, created_at`

	err := r.db.QueryRowContext(ctx, query,
		task.UserID, task.Text, task.Description, task.Priority,
		task.ListID, task.DueDate, task.PlannedDate,
	).Scan(&task.ID, &task.Completed, &task.CreatedAt)

	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, ownerID, id int64) (*entities.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM todos
		WHERE id = $1 AND user_id = $2`

	var task entities.Task
	err := r.db.GetContext(ctx, &task, query, id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task by id: %w", err)
	}

	return &task, nil
}

func (r *TaskRepositoryImpl) ListByOwner(ctx context.Context, ownerID int64) ([]entities.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM todos
		WHERE user_id = $1
		ORDER BY created_at, id`

	tasks := []entities.Task{}
	if err := r.db.SelectContext(ctx, &tasks, query, ownerID); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

// Update applies only the supplied patch fields in a single UPDATE. A
// completed transition rewrites completed_at in the same statement: a
// false→true flip stamps it, true→false clears it, and re-applying the
// current value leaves the existing timestamp alone.
func (r *TaskRepositoryImpl) Update(ctx context.Context, ownerID, id int64, patch ports.TaskPatch) (*entities.Task, error) {
	if patch.IsEmpty() {
		return nil, entities.ErrNothingToUpdate
	}

	set := make([]string, 0, 7)
	args := []interface{}{id, ownerID}

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Text != nil {
		add("text", *patch.Text)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Priority != nil {
		add("priority", *patch.Priority)
	}
	if patch.ListIDSet {
		add("group_id", patch.ListID)
	}
	if patch.DueDateSet {
		add("due_date", patch.DueDate)
	}
	if patch.PlannedDateSet {
		add("planned_date", patch.PlannedDate)
	}
	if patch.Completed != nil {
		args = append(args, *patch.Completed)
		flag := len(args)
		args = append(args, time.Now().UTC())
		now := len(args)
		set = append(set, fmt.Sprintf("completed = $%d", flag))
		set = append(set, fmt.Sprintf(
			"completed_at = CASE WHEN $%d AND NOT completed THEN $%d::timestamptz WHEN NOT $%d THEN NULL ELSE completed_at END",
			flag, now, flag))
	}

	query := fmt.Sprintf(`
		UPDATE todos
		SET %s
		WHERE id = $1 AND user_id = $2
		RETURNING %s`, joinClauses(set), taskColumns)

	var task entities.Task
	err := r.db.GetContext(ctx, &task, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}

	return &task, nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, ownerID, id int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM todos WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entities.ErrTaskNotFound
	}

	return nil
}

func joinClauses(set []string) string {
	return strings.Join(set, ", ")
}
