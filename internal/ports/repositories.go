package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/taskloop/core/internal/domain/entities"
)

// TaskRepository defines the interface for task data operations. It
// deals in plain Task values: timestamps and the deletion flag are set
// by the service layer and persisted as given, never mutated here.
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	// GetByID returns a non-deleted task owned by ownerID, or
	// entities.ErrTaskNotFound. Deleted and foreign-owned tasks are
	// indistinguishable from missing ones.
	GetByID(ctx context.Context, ownerID uuid.UUID, id int64) (*entities.Task, error)
	Update(ctx context.Context, task *entities.Task) error
	List(ctx context.Context, ownerID uuid.UUID, filter TaskFilter) ([]*entities.Task, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
}

// AuthRepository defines the interface for refresh token operations
type AuthRepository interface {
	CreateRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	GetRefreshToken(ctx context.Context, tokenHash string) (*RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
	RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error
}

// TaskFilter narrows task listings. Nil fields are ignored.
type TaskFilter struct {
	// DueDate matches tasks due on exactly this calendar date.
	DueDate *entities.Date
	// Search matches tasks whose title contains this substring,
	// case-insensitively.
	Search *string
}

// RefreshToken represents a stored refresh token record
type RefreshToken struct {
	ID        int64      `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

// IsExpired checks if the refresh token is expired
func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// IsRevoked checks if the refresh token is revoked
func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}
