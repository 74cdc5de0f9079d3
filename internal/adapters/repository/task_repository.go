package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/taskloop/core/internal/domain/entities"
	"github.com/taskloop/core/internal/ports"
)

// TaskRepositoryImpl implements the TaskRepository interface
type TaskRepositoryImpl struct {
	db *sqlx.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *sqlx.DB) ports.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *entities.Task) error {
	query := `
		INSERT INTO tasks (title, description, due_date, created_at, updated_at, is_deleted, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		task.Title, task.Description, task.DueDate, task.CreatedAt,
		task.UpdatedAt, task.IsDeleted, task.OwnerID,
	).Scan(&task.ID)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

// GetByID restricts the lookup to non-deleted rows owned by ownerID,
// so deleted and foreign-owned tasks surface as ErrTaskNotFound.
func (r *TaskRepositoryImpl) GetByID(ctx context.Context, ownerID uuid.UUID, id int64) (*entities.Task, error) {
	query := `
		SELECT id, title, description, due_date, created_at, updated_at, is_deleted, owner_id
		FROM tasks
		WHERE id = $1 AND owner_id = $2 AND is_deleted = FALSE`

	var task entities.Task
	err := r.db.GetContext(ctx, &task, query, id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task by id: %w", err)
	}

	return &task, nil
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, task *entities.Task) error {
	query := `
		UPDATE tasks
		SET title = $2, description = $3, due_date = $4, updated_at = $5, is_deleted = $6
		WHERE id = $1 AND owner_id = $7`

	result, err := r.db.ExecContext(ctx, query,
		task.ID, task.Title, task.Description, task.DueDate,
		task.UpdatedAt, task.IsDeleted, task.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update task rows affected: %w", err)
	}
	if rows == 0 {
		return entities.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepositoryImpl) List(ctx context.Context, ownerID uuid.UUID, filter ports.TaskFilter) ([]*entities.Task, error) {
	query := `
		SELECT id, title, description, due_date, created_at, updated_at, is_deleted, owner_id
		FROM tasks
		WHERE owner_id = $1 AND is_deleted = FALSE`

	args := []interface{}{ownerID}

	if filter.DueDate != nil {
		args = append(args, *filter.DueDate)
		query += fmt.Sprintf(" AND due_date = $%d", len(args))
	}

	if filter.Search != nil {
		args = append(args, "%"+escapeLikePattern(*filter.Search)+"%")
		query += fmt.Sprintf(" AND title ILIKE $%d", len(args))
	}

	query += " ORDER BY id"

	tasks := []*entities.Task{}
	if err := r.db.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

// escapeLikePattern neutralizes LIKE metacharacters so a search term
// matches literally. Backslash is the Postgres default escape char.
func escapeLikePattern(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
