package ports

import (
	"context"
	"time"

	"github.com/tasklight/core/internal/domain/entities"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	Delete(ctx context.Context, id int64) error
}

// ListRepository defines the interface for list ("group") data operations.
// Every operation is scoped to the owning user: reads filter on the owner,
// writes resolve primary key and owner together.
type ListRepository interface {
	Create(ctx context.Context, list *entities.List) error
	GetByID(ctx context.Context, ownerID, id int64) (*entities.List, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]entities.List, error)
	Update(ctx context.Context, ownerID, id int64, patch ListPatch) (*entities.List, error)
	// Delete removes the list and, atomically, nulls the list reference of
	// every task of the same owner that pointed at it.
	Delete(ctx context.Context, ownerID, id int64) error
}

// TaskRepository defines the interface for task data operations, scoped to
// the owning user like ListRepository.
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	GetByID(ctx context.Context, ownerID, id int64) (*entities.Task, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]entities.Task, error)
	Update(ctx context.Context, ownerID, id int64, patch TaskPatch) (*entities.Task, error)
	Delete(ctx context.Context, ownerID, id int64) error
}

// ListPatch is a partial list update; nil fields are left untouched.
type ListPatch struct {
	Name  *string
	Color *string
}

// IsEmpty reports whether the patch carries no field at all.
func (p ListPatch) IsEmpty() bool {
	return p.Name == nil && p.Color == nil
}

// TaskPatch is a partial task update; nil fields are left untouched.
// ListID distinguishes "not supplied" (nil) from "clear the reference"
// (pointer to nil) via the Set flag.
type TaskPatch struct {
	Text           *string
	Description    *string
	Priority       *entities.Priority
	ListID         *int64
	ListIDSet      bool
	DueDate        *time.Time
	DueDateSet     bool
	PlannedDate    *time.Time
	PlannedDateSet bool
	Completed      *bool
}

// IsEmpty reports whether the patch carries no field at all.
func (p TaskPatch) IsEmpty() bool {
	return p.Text == nil && p.Description == nil && p.Priority == nil &&
		!p.ListIDSet && !p.DueDateSet && !p.PlannedDateSet && p.Completed == nil
}
