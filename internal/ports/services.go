package ports

import (
	"time"

	"github.com/tasklight/core/internal/domain/entities"
)

// Claims carries the verified identity extracted from a bearer token.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// RegisterRequest is the payload for account registration.
type RegisterRequest struct {
	Username string  `json:"username" validate:"required"`
	Password string  `json:"password" validate:"required,min=6"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is returned on successful registration.
type TokenResponse struct {
	Token string `json:"token"`
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

// AuthUser is the public identity slice embedded in AuthResponse.
type AuthUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// CreateListRequest is the payload for list creation.
type CreateListRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color,omitempty"`
}

// UpdateListRequest is the payload for a partial list update.
type UpdateListRequest struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

// CreateTaskRequest is the payload for task creation.
type CreateTaskRequest struct {
	Text        string     `json:"text" validate:"required"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	ListID      *int64     `json:"list_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	PlannedDate *time.Time `json:"planned_date,omitempty"`
}

// UpdateTaskRequest is the payload for a partial task update. Optional
// JSON fields map onto TaskPatch; absent fields stay untouched.
type UpdateTaskRequest struct {
	Text        *string       `json:"text,omitempty"`
	Description *string       `json:"description,omitempty"`
	Priority    *string       `json:"priority,omitempty"`
	ListID      OptionalInt64 `json:"list_id,omitempty"`
	DueDate     OptionalTime  `json:"due_date,omitempty"`
	PlannedDate OptionalTime  `json:"planned_date,omitempty"`
	Completed   *bool         `json:"completed,omitempty"`
}

// Patch converts the request into the repository patch shape. Priority
// normalization happens in the service, not here.
func (r UpdateTaskRequest) Patch(priority *entities.Priority) TaskPatch {
	return TaskPatch{
		Text:           r.Text,
		Description:    r.Description,
		Priority:       priority,
		ListID:         r.ListID.Value,
		ListIDSet:      r.ListID.Set,
		DueDate:        r.DueDate.Value,
		DueDateSet:     r.DueDate.Set,
		PlannedDate:    r.PlannedDate.Value,
		PlannedDateSet: r.PlannedDate.Set,
		Completed:      r.Completed,
	}
}

// UpdateResponse acknowledges a task update with the fields that changed.
type UpdateResponse struct {
	Message string   `json:"message"`
	ID      int64    `json:"id"`
	Changes []string `json:"changes,omitempty"`
}

// MessageResponse is a minimal acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}
