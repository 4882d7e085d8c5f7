package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tasklight/core/internal/domain/entities"
	"github.com/tasklight/core/internal/ports"
)

// In-memory repositories mirroring the Postgres adapters' contract:
// owner-scoped lookups, unique constraints surfacing as ErrConflict,
// and the completed_at policy applied inside Update.

type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*entities.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int64]*entities.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return fmt.Errorf("%w: username taken", entities.ErrConflict)
		}
		if u.Email != nil && user.Email != nil && *u.Email == *user.Email {
			return fmt.Errorf("%w: email taken", entities.ErrConflict)
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (r *memUserRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return entities.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type memListRepo struct {
	mu     sync.Mutex
	nextID int64
	lists  map[int64]*entities.List
	tasks  *memTaskRepo // for nulling references on delete, may be nil
}

func newMemListRepo() *memListRepo {
	return &memListRepo{lists: make(map[int64]*entities.List)}
}

func (r *memListRepo) Create(_ context.Context, list *entities.List) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.lists {
		if l.UserID == list.UserID && l.Name == list.Name {
			return fmt.Errorf("%w: list name taken", entities.ErrConflict)
		}
	}
	r.nextID++
	list.ID = r.nextID
	list.CreatedAt = time.Now()
	clone := *list
	r.lists[list.ID] = &clone
	return nil
}

func (r *memListRepo) GetByID(_ context.Context, ownerID, id int64) (*entities.List, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lists[id]
	if !ok || l.UserID != ownerID {
		return nil, entities.ErrListNotFound
	}
	clone := *l
	return &clone, nil
}

func (r *memListRepo) ListByOwner(_ context.Context, ownerID int64) ([]entities.List, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.List, 0)
	for _, l := range r.lists {
		if l.UserID == ownerID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *memListRepo) Update(_ context.Context, ownerID, id int64, patch ports.ListPatch) (*entities.List, error) {
	if patch.IsEmpty() {
		return nil, entities.ErrNothingToUpdate
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lists[id]
	if !ok || l.UserID != ownerID {
		return nil, entities.ErrListNotFound
	}
	if patch.Name != nil {
		for _, other := range r.lists {
			if other.ID != id && other.UserID == ownerID && other.Name == *patch.Name {
				return nil, fmt.Errorf("%w: list name taken", entities.ErrConflict)
			}
		}
		l.Name = *patch.Name
	}
	if patch.Color != nil {
		l.Color = *patch.Color
	}
	clone := *l
	return &clone, nil
}

func (r *memListRepo) Delete(_ context.Context, ownerID, id int64) error {
	r.mu.Lock()
	l, ok := r.lists[id]
	if !ok || l.UserID != ownerID {
		r.mu.Unlock()
		return entities.ErrListNotFound
	}
	delete(r.lists, id)
	r.mu.Unlock()

	if r.tasks != nil {
		r.tasks.clearListRefs(id)
	}
	return nil
}

type memTaskRepo struct {
	mu     sync.Mutex
	nextID int64
	tasks  map[int64]*entities.Task
	now    func() time.Time
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: make(map[int64]*entities.Task), now: time.Now}
}

func (r *memTaskRepo) Create(_ context.Context, task *entities.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	task.ID = r.nextID
	task.Completed = false
	task.CompletedAt = nil
	task.CreatedAt = r.now()
	clone := *task
	r.tasks[task.ID] = &clone
	return nil
}

func (r *memTaskRepo) GetByID(_ context.Context, ownerID, id int64) (*entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok || t.UserID != ownerID {
		return nil, entities.ErrTaskNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *memTaskRepo) ListByOwner(_ context.Context, ownerID int64) ([]entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Task, 0)
	for _, t := range r.tasks {
		if t.UserID == ownerID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *memTaskRepo) Update(_ context.Context, ownerID, id int64, patch ports.TaskPatch) (*entities.Task, error) {
	if patch.IsEmpty() {
		return nil, entities.ErrNothingToUpdate
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok || t.UserID != ownerID {
		return nil, entities.ErrTaskNotFound
	}
	if patch.Text != nil {
		t.Text = *patch.Text
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.ListIDSet {
		t.ListID = patch.ListID
	}
	if patch.DueDateSet {
		t.DueDate = patch.DueDate
	}
	if patch.PlannedDateSet {
		t.PlannedDate = patch.PlannedDate
	}
	if patch.Completed != nil {
		switch {
		case *patch.Completed && !t.Completed:
			now := r.now()
			t.CompletedAt = &now
		case !*patch.Completed:
			t.CompletedAt = nil
		}
		t.Completed = *patch.Completed
	}
	clone := *t
	return &clone, nil
}

func (r *memTaskRepo) Delete(_ context.Context, ownerID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok || t.UserID != ownerID {
		return entities.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *memTaskRepo) clearListRefs(listID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tasks {
		if t.ListID != nil && *t.ListID == listID {
			t.ListID = nil
		}
	}
}
