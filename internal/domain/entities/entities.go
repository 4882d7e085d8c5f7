package entities

import (
	"errors"
	"strings"
	"time"
)

// Common errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrListNotFound       = errors.New("list not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrNothingToUpdate    = errors.New("nothing to update")
)

// DefaultListColor is applied when a list is created without a color.
const DefaultListColor = "#007aff"

// NoListColor is the color of the synthetic "no list" bucket in statistics.
const NoListColor = "#8e8e93"

// Priority is the three-value task priority
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// NormalizePriority canonicalizes arbitrary-cased input ('low', 'LOW', 'Low')
// to the stored form. The empty string maps to Medium. Unknown values are
// rejected so bad input never reaches the store.
func NormalizePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	default:
		return "", ErrInvalidInput
	}
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// User represents a registered account
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        *string   `json:"email,omitempty" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// List is a named, colored bucket a user organizes tasks into
type List struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Color     string    `json:"color" db:"color"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Task represents a single to-do item owned by a user
type Task struct {
	ID          int64      `json:"id" db:"id"`
	UserID      int64      `json:"user_id" db:"user_id"`
	Text        string     `json:"text" db:"text"`
	Description string     `json:"description" db:"description"`
	Priority    Priority   `json:"priority" db:"priority"`
	ListID      *int64     `json:"list_id" db:"group_id"`
	DueDate     *time.Time `json:"due_date" db:"due_date"`
	PlannedDate *time.Time `json:"planned_date" db:"planned_date"`
	Completed   bool       `json:"completed" db:"completed"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	CompletedAt *time.Time `json:"completed_at" db:"completed_at"`
}

// EffectivePriority treats missing or unrecognized priorities as Medium,
// mirroring how the statistics views bucket them.
func (t *Task) EffectivePriority() Priority {
	if t.Priority.IsValid() {
		return t.Priority
	}
	return PriorityMedium
}

// IsOverdue reports whether the task has a past due date and is still open.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.Completed {
		return false
	}
	return t.DueDate.Before(now)
}

// IsDueOn reports whether the task is open and due on the same calendar
// day as the given time.
func (t *Task) IsDueOn(day time.Time) bool {
	if t.DueDate == nil || t.Completed {
		return false
	}
	return sameDay(*t.DueDate, day)
}

// IsPlannedOn reports whether the task is open and planned for the same
// calendar day as the given time.
func (t *Task) IsPlannedOn(day time.Time) bool {
	if t.PlannedDate == nil || t.Completed {
		return false
	}
	return sameDay(*t.PlannedDate, day)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
