package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskloop/core/internal/domain/entities"
)

// TaskService interface for task management operations. Every call
// carries the resolved owner ID explicitly; there is no implicit
// current-user state anywhere below the HTTP layer.
type TaskService interface {
	CreateTask(ctx context.Context, ownerID uuid.UUID, req CreateTaskRequest) (*entities.Task, error)
	GetTask(ctx context.Context, ownerID uuid.UUID, id int64) (*entities.Task, error)
	UpdateTask(ctx context.Context, ownerID uuid.UUID, id int64, req UpdateTaskRequest) (*entities.Task, error)
	SoftDeleteTask(ctx context.Context, ownerID uuid.UUID, id int64) error
	ListTasks(ctx context.Context, ownerID uuid.UUID, filter TaskFilter) ([]*entities.Task, error)
}

// AuthService interface for registration and authentication
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*entities.User, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	ValidateToken(tokenString string) (*Claims, error)
}

// Request/Response Types

// CreateTaskRequest carries the inputs for task creation. Fields are
// pointers so the service can distinguish missing from blank.
type CreateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
}

// UpdateTaskRequest carries a partial or full task update. Only
// supplied fields are validated and applied.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Claims is the resolved identity attached to each authenticated call.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

type MessageResponse struct {
	Detail string `json:"detail"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationErrorResponse struct {
	Errors map[string][]string `json:"errors"`
}
