package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tasklight/core/internal/domain/entities"
	"github.com/tasklight/core/internal/ports"
)

// ListRepositoryImpl implements the ListRepository interface
type ListRepositoryImpl struct {
	db *sqlx.DB
}

// NewListRepository creates a new list repository
func NewListRepository(db *sqlx.DB) ports.ListRepository {
	return &ListRepositoryImpl{db: db}
}

func (r *ListRepositoryImpl) Create(ctx context.Context, list *entities.List) error {
	query := `
		INSERT INTO groups (user_id, name, color)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		list.UserID, list.Name, list.Color,
	).Scan(&list.ID, &list.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return entities.ErrConflict
		}
		return fmt.Errorf("create list: %w", err)
	}

	return nil
}

func (r *ListRepositoryImpl) GetByID(ctx context.Context, ownerID, id int64) (*entities.List, error) {
	query := `
		SELECT id, user_id, name, color, created_at
		FROM groups
		WHERE id = $1 AND user_id = $2`

	var list entities.List
	err := r.db.GetContext(ctx, &list, query, id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrListNotFound
		}
		return nil, fmt.Errorf("get list by id: %w", err)
	}

	return &list, nil
}

func (r *ListRepositoryImpl) ListByOwner(ctx context.Context, ownerID int64) ([]entities.List, error) {
	query := `
		SELECT id, user_id, name, color, created_at
		FROM groups
		WHERE user_id = $1
		ORDER BY created_at, id`

	lists := []entities.List{}
	if err := r.db.SelectContext(ctx, &lists, query, ownerID); err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}

	return lists, nil
}

// Update applies only the supplied fields. The id and owner resolve
// together, so a hit on another user's list reads as not found.
func (r *ListRepositoryImpl) Update(ctx context.Context, ownerID, id int64, patch ports.ListPatch) (*entities.List, error) {
	if patch.IsEmpty() {
		return nil, entities.ErrNothingToUpdate
	}

	set := make([]string, 0, 2)
	args := []interface{}{id, ownerID}
	if patch.Name != nil {
		args = append(args, *patch.Name)
		set = append(set, fmt.Sprintf("name = $%d", len(args)))
	}
	if patch.Color != nil {
		args = append(args, *patch.Color)
		set = append(set, fmt.Sprintf("color = $%d", len(args)))
	}

	query := fmt.Sprintf(`
		UPDATE groups
		SET %s
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, name, color, created_at`, joinClauses(set))

	var list entities.List
	err := r.db.GetContext(ctx, &list, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrListNotFound
		}
		if isUniqueViolation(err) {
			return nil, entities.ErrConflict
		}
		return nil, fmt.Errorf("update list: %w", err)
	}

	return &list, nil
}

// Delete removes the list. Member tasks keep existing: the group_id
// foreign key carries ON DELETE SET NULL, so their list reference clears
// in the same statement's transaction.
func (r *ListRepositoryImpl) Delete(ctx context.Context, ownerID, id int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM groups WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete list: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entities.ErrListNotFound
	}

	return nil
}
