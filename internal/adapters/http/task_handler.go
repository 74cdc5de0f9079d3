package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/taskloop/core/internal/application/services"
	"github.com/taskloop/core/internal/domain/entities"
	"github.com/taskloop/core/internal/infrastructure/logger"
	"github.com/taskloop/core/internal/ports"
)

// TaskHandler handles task-related requests
type TaskHandler struct {
	taskService *services.TaskService
	logger      *logger.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService *services.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// CreateTask handles POST /tasks
func (h *TaskHandler) CreateTask(c echo.Context) error {
	ownerID := getUserIDFromContext(c)

	var req ports.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), ownerID, req)
	if err != nil {
		return taskError(c, err)
	}

	return c.JSON(http.StatusCreated, task)
}

// ListTasks handles GET /tasks with optional due_date and search
// query parameters.
func (h *TaskHandler) ListTasks(c echo.Context) error {
	ownerID := getUserIDFromContext(c)

	filter := ports.TaskFilter{}

	if dueDateStr := c.QueryParam("due_date"); dueDateStr != "" {
		dueDate, err := entities.ParseDate(dueDateStr)
		if err != nil {
			verr := entities.NewValidationError()
			verr.Add("due_date", entities.MsgDueDateInvalid)
			return c.JSON(http.StatusBadRequest, verr)
		}
		filter.DueDate = &dueDate
	}

	if search := c.QueryParam("search"); search != "" {
		filter.Search = &search
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), ownerID, filter)
	if err != nil {
		h.logger.Errorw("List tasks failed", "error", err, "owner_id", ownerID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve tasks")
	}

	return c.JSON(http.StatusOK, tasks)
}

// GetTask handles GET /tasks/:id
func (h *TaskHandler) GetTask(c echo.Context) error {
	ownerID := getUserIDFromContext(c)

	id, err := parseTaskID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(c.Request().Context(), ownerID, id)
	if err != nil {
		return taskError(c, err)
	}

	return c.JSON(http.StatusOK, task)
}

// UpdateTask handles PUT and PATCH /tasks/:id. Both apply a partial
// update: only supplied fields change.
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	ownerID := getUserIDFromContext(c)

	id, err := parseTaskID(c)
	if err != nil {
		return err
	}

	var req ports.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), ownerID, id, req)
	if err != nil {
		return taskError(c, err)
	}

	return c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/:id. The task is soft-deleted and
// the response carries an acknowledgment, not the task body.
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	ownerID := getUserIDFromContext(c)

	id, err := parseTaskID(c)
	if err != nil {
		return err
	}

	if err := h.taskService.SoftDeleteTask(c.Request().Context(), ownerID, id); err != nil {
		return taskError(c, err)
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Detail: "Task deleted successfully"})
}

func parseTaskID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid task ID")
	}
	return id, nil
}
