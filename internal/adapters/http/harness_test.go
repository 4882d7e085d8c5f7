package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/tasklight/core/internal/application/services"
	"github.com/tasklight/core/internal/domain/entities"
	"github.com/tasklight/core/internal/infrastructure/config"
	"github.com/tasklight/core/internal/infrastructure/events"
	"github.com/tasklight/core/internal/infrastructure/logger"
	"github.com/tasklight/core/internal/ports"
)

// The harness runs the real handlers and services over in-memory stores.
// Authentication is replaced by a header middleware so each request can
// impersonate any owner without minting tokens.

const testUserHeader = "X-Test-User"

type testValidator struct{ v *validator.Validate }

func (tv *testValidator) Validate(i interface{}) error { return tv.v.Struct(i) }

type testAPI struct {
	echo *echo.Echo
	hub  *events.Hub
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	userRepo := &fakeUserRepo{users: make(map[int64]*entities.User)}
	listRepo := &fakeListRepo{lists: make(map[int64]*entities.List)}
	taskRepo := &fakeTaskRepo{tasks: make(map[int64]*entities.Task)}
	listRepo.tasks = taskRepo

	log := logger.NewNop()
	jwtCfg := config.JWTConfig{Secret: "test-secret", ExpiresIn: time.Hour, Issuer: "tasklight-api"}
	authService := services.NewAuthService(userRepo, jwtCfg, log)
	listService := services.NewListService(listRepo, log)
	taskService := services.NewTaskService(taskRepo, listRepo, log)
	statsService := services.NewStatsService(taskRepo, listRepo, log)

	hub := events.NewHub()
	authHandler := NewAuthHandler(authService, log)
	listHandler := NewListHandler(listService, log)
	taskHandler := NewTaskHandler(taskService, hub, log)
	statsHandler := NewStatsHandler(statsService, log)
	eventsHandler := NewEventsHandler(hub, log)

	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}

	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	auth := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := strconv.ParseInt(c.Request().Header.Get(testUserHeader), 10, 64)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}
			c.Set("user_id", id)
			return next(c)
		}
	}

	todos := e.Group("/todos", auth)
	todos.GET("", taskHandler.ListTasks)
	todos.POST("", taskHandler.CreateTask)
	todos.GET("/stats", statsHandler.Statistics)
	todos.GET("/groups", listHandler.ListLists)
	todos.POST("/groups", listHandler.CreateList)
	todos.PUT("/groups/:id", listHandler.UpdateList)
	todos.DELETE("/groups/:id", listHandler.DeleteList)
	todos.PUT("/:id", taskHandler.UpdateTask)
	todos.DELETE("/:id", taskHandler.DeleteTask)
	e.GET("/events", eventsHandler.Stream)

	return &testAPI{echo: e, hub: hub}
}

func (a *testAPI) do(t *testing.T, userID int64, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if userID > 0 {
		req.Header.Set(testUserHeader, strconv.FormatInt(userID, 10))
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)
	return rec
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "body: %s", rec.Body.String())
}

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*entities.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return fmt.Errorf("%w: username taken", entities.ErrConflict)
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entities.User, error) {
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

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return entities.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeListRepo struct {
	mu     sync.Mutex
	nextID int64
	lists  map[int64]*entities.List
	tasks  *fakeTaskRepo
}

func (r *fakeListRepo) Create(_ context.Context, list *entities.List) error {
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

func (r *fakeListRepo) GetByID(_ context.Context, ownerID, id int64) (*entities.List, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lists[id]
	if !ok || l.UserID != ownerID {
		return nil, entities.ErrListNotFound
	}
	clone := *l
	return &clone, nil
}

func (r *fakeListRepo) ListByOwner(_ context.Context, ownerID int64) ([]entities.List, error) {
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

func (r *fakeListRepo) Update(_ context.Context, ownerID, id int64, patch ports.ListPatch) (*entities.List, error) {
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

func (r *fakeListRepo) Delete(_ context.Context, ownerID, id int64) error {
	r.mu.Lock()
	l, ok := r.lists[id]
	if !ok || l.UserID != ownerID {
		r.mu.Unlock()
		return entities.ErrListNotFound
	}
	delete(r.lists, id)
	r.mu.Unlock()

	r.tasks.clearListRefs(id)
	return nil
}

type fakeTaskRepo struct {
	mu     sync.Mutex
	nextID int64
	tasks  map[int64]*entities.Task
}

func (r *fakeTaskRepo) Create(_ context.Context, task *entities.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	task.ID = r.nextID
	task.Completed = false
	task.CompletedAt = nil
	task.CreatedAt = time.Now()
	clone := *task
	r.tasks[task.ID] = &clone
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, ownerID, id int64) (*entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok || t.UserID != ownerID {
		return nil, entities.ErrTaskNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *fakeTaskRepo) ListByOwner(_ context.Context, ownerID int64) ([]entities.Task, error) {
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

func (r *fakeTaskRepo) Update(_ context.Context, ownerID, id int64, patch ports.TaskPatch) (*entities.Task, error) {
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
			now := time.Now()
			t.CompletedAt = &now
		case !*patch.Completed:
			t.CompletedAt = nil
		}
		t.Completed = *patch.Completed
	}
	clone := *t
	return &clone, nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, ownerID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok || t.UserID != ownerID {
		return entities.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) clearListRefs(listID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tasks {
		if t.ListID != nil && *t.ListID == listID {
			t.ListID = nil
		}
	}
}
