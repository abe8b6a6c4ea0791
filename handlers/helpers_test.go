package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/biosecret/go-crud/events"
	"github.com/biosecret/go-crud/handlers"
	"github.com/biosecret/go-crud/logging"
	"github.com/biosecret/go-crud/models"
	"github.com/biosecret/go-crud/repository"
	"github.com/biosecret/go-crud/router"
	"github.com/biosecret/go-crud/store"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	createdAt = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	fixedNow  = time.Date(2024, 5, 2, 12, 30, 0, 0, time.UTC)
	errDB     = errors.New("connection refused")
)

type env struct {
	app    *fiber.App
	todos  *store.TodoStore
	posts  *fakePosts
	users  *fakeUsers
	hasher *fakeHasher
	events *recordingPublisher
}

func newEnv(t *testing.T) *env {
	t.Helper()
	e := &env{
		todos:  store.NewTodoStore(),
		posts:  newFakePosts(),
		users:  newFakeUsers(),
		hasher: &fakeHasher{},
		events: &recordingPublisher{},
	}
	h := handlers.New(handlers.Deps{
		Todos:  e.todos,
		Posts:  e.posts,
		Users:  e.users,
		Hasher: e.hasher,
		Events: e.events,
		Logger: logging.Nop(),
		Now:    func() time.Time { return fixedNow },
	})
	e.app = newApp(h)
	return e
}

func newApp(h *handlers.Handler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler(logging.Nop())})
	router.SetupRoutes(app, h)
	return app
}

// do gửi request tới app; body khác nil được mã hóa JSON (string được gửi nguyên văn)
func do(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

type envelope[T any] struct {
	Status  string `json:"status"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

type fakePosts struct {
	mu         sync.Mutex
	posts      map[uuid.UUID]models.Post
	order      []uuid.UUID
	err        error
	lastLimit  int
	lastOffset int
}

func newFakePosts() *fakePosts {
	return &fakePosts{posts: make(map[uuid.UUID]models.Post)}
}

func (f *fakePosts) seed(title, body string) models.Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := models.Post{ID: uuid.New(), Title: title, Body: body, CreatedAt: createdAt, UpdatedAt: createdAt}
	f.posts[p.ID] = p
	f.order = append(f.order, p.ID)
	return p
}

func (f *fakePosts) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.posts)
}

func (f *fakePosts) List(_ context.Context, limit, offset int) ([]models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastLimit, f.lastOffset = limit, offset
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Post{}
	for i := offset; i < len(f.order) && len(out) < limit; i++ {
		out = append(out, f.posts[f.order[i]])
	}
	return out, nil
}

func (f *fakePosts) Create(_ context.Context, title, body string) (models.Post, error) {
	if f.err != nil {
		return models.Post{}, f.err
	}
	return f.seed(title, body), nil
}

func (f *fakePosts) Get(_ context.Context, id uuid.UUID) (models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.Post{}, f.err
	}
	p, ok := f.posts[id]
	if !ok {
		return models.Post{}, repository.ErrNotFound
	}
	return p, nil
}

func (f *fakePosts) Update(_ context.Context, id uuid.UUID, title, body string, updatedAt time.Time) (models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok {
		return models.Post{}, repository.ErrNotFound
	}
	p.Title, p.Body, p.UpdatedAt = title, body, updatedAt
	f.posts[id] = p
	return p, nil
}

func (f *fakePosts) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.posts, id)
	return nil
}

type fakeUsers struct {
	mu    sync.Mutex
	users map[uuid.UUID]models.User
	err   error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: make(map[uuid.UUID]models.User)}
}

func (f *fakeUsers) Create(_ context.Context, email, hash string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.User{}, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return models.User{}, repository.ErrDuplicate
		}
	}
	u := models.User{ID: uuid.New(), Email: email, Password: hash, CreatedAt: createdAt, UpdatedAt: createdAt}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUsers) Get(_ context.Context, id uuid.UUID) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.User{}, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

type fakeHasher struct {
	hashErr   error
	verifyErr error
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hashed:" + password, nil
}

func (f *fakeHasher) Verify(password, encoded string) (bool, error) {
	if f.verifyErr != nil {
		return false, f.verifyErr
	}
	return encoded == "hashed:"+password, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordingPublisher) Publish(ev events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recordingPublisher) all() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.Event(nil), r.events...)
}
