// Package memory provides mutex-guarded in-memory implementations of
// the repository ports. They back the service and handler test suites
// and mirror the visibility semantics of the Postgres adapters.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taskloop/core/internal/domain/entities"
	"github.com/taskloop/core/internal/ports"
)

// TaskRepository stores tasks in insertion order.
type TaskRepository struct {
	mu     sync.RWMutex
	nextID int64
	tasks  []*entities.Task
}

// NewTaskRepository creates an empty in-memory task repository.
func NewTaskRepository() *TaskRepository {
	return &TaskRepository{nextID: 1}
}

func (r *TaskRepository) Create(ctx context.Context, task *entities.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task.ID = r.nextID
	r.nextID++

	stored := *task
	r.tasks = append(r.tasks, &stored)
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, ownerID uuid.UUID, id int64) (*entities.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, task := range r.tasks {
		if task.ID == id && task.IsOwnedBy(ownerID) && task.IsVisible() {
			copied := *task
			return &copied, nil
		}
	}
	return nil, entities.ErrTaskNotFound
}

func (r *TaskRepository) Update(ctx context.Context, task *entities.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, stored := range r.tasks {
		if stored.ID == task.ID && stored.IsOwnedBy(task.OwnerID) {
			copied := *task
			r.tasks[i] = &copied
			return nil
		}
	}
	return entities.ErrTaskNotFound
}

func (r *TaskRepository) List(ctx context.Context, ownerID uuid.UUID, filter ports.TaskFilter) ([]*entities.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*entities.Task{}
	for _, task := range r.tasks {
		if !task.IsOwnedBy(ownerID) || !task.IsVisible() {
			continue
		}
		if filter.DueDate != nil && !task.DueDate.Equal(*filter.DueDate) {
			continue
		}
		if filter.Search != nil &&
			!strings.Contains(strings.ToLower(task.Title), strings.ToLower(*filter.Search)) {
			continue
		}
		copied := *task
		result = append(result, &copied)
	}
	return result, nil
}

// UserRepository stores users keyed by id.
type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*entities.User
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[uuid.UUID]*entities.User)}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return entities.ErrUserAlreadyExists
		}
	}

	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

// AuthRepository stores refresh tokens keyed by hash.
type AuthRepository struct {
	mu     sync.Mutex
	nextID int64
	tokens map[string]*ports.RefreshToken
}

// NewAuthRepository creates an empty in-memory auth repository.
func NewAuthRepository() *AuthRepository {
	return &AuthRepository{nextID: 1, tokens: make(map[string]*ports.RefreshToken)}
}

func (r *AuthRepository) CreateRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[tokenHash] = &ports.RefreshToken{
		ID:        r.nextID,
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	r.nextID++
	return nil
}

func (r *AuthRepository) GetRefreshToken(ctx context.Context, tokenHash string) (*ports.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.tokens[tokenHash]
	if !ok {
		return nil, fmt.Errorf("refresh token not found")
	}
	copied := *token
	return &copied, nil
}

func (r *AuthRepository) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.tokens[tokenHash]
	if !ok {
		return fmt.Errorf("refresh token not found")
	}
	if token.RevokedAt == nil {
		now := time.Now()
		token.RevokedAt = &now
	}
	return nil
}

func (r *AuthRepository) RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for _, token := range r.tokens {
		if token.UserID == userID && token.RevokedAt == nil {
			token.RevokedAt = &now
		}
	}
	return nil
}
