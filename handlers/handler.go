package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/biosecret/go-crud/events"
	"github.com/biosecret/go-crud/models"
	"github.com/google/uuid"
)

type TodoStore interface {
	List(offset, limit int) []models.Todo
	Get(id uuid.UUID) (models.Todo, bool)
	Create(text string) models.Todo
}

type PostRepository interface {
	List(ctx context.Context, limit, offset int) ([]models.Post, error)
	Create(ctx context.Context, title, body string) (models.Post, error)
	Get(ctx context.Context, id uuid.UUID) (models.Post, error)
	Update(ctx context.Context, id uuid.UUID, title, body string, updatedAt time.Time) (models.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string) (models.User, error)
	Get(ctx context.Context, id uuid.UUID) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}

// Handler chứa các phụ thuộc dùng chung cho mọi request.
// Posts và Users có thể nil khi không cấu hình database.
type Handler struct {
	todos  TodoStore
	posts  PostRepository
	users  UserRepository
	hasher PasswordHasher
	events events.Publisher
	log    *slog.Logger
	now    func() time.Time
}

type Deps struct {
	Todos  TodoStore
	Posts  PostRepository
	Users  UserRepository
	Hasher PasswordHasher
	Events events.Publisher
	Logger *slog.Logger
	Now    func() time.Time // mặc định time.Now
}

func New(d Deps) *Handler {
	h := &Handler{
		todos:  d.Todos,
		posts:  d.Posts,
		users:  d.Users,
		hasher: d.Hasher,
		events: d.Events,
		log:    d.Logger,
		now:    time.Now,
	}
	if h.events == nil {
		h.events = events.Nop{}
	}
	if h.log == nil {
		h.log = slog.Default()
	}
	if d.Now != nil {
		h.now = d.Now
	}
	return h
}

// HasDatabase cho biết các route posts/users có được phục vụ hay không
func (h *Handler) HasDatabase() bool {
	return h.posts != nil && h.users != nil
}

func (h *Handler) publish(action, resource string, id uuid.UUID) {
	h.events.Publish(events.Event{Action: action, Resource: resource, ID: id})
}
