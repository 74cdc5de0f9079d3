package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskloop/core/internal/adapters/repository/memory"
	"github.com/taskloop/core/internal/application/services"
	"github.com/taskloop/core/internal/infrastructure/logger"
)

type handlerFixture struct {
	echo    *echo.Echo
	handler *TaskHandler
	owner   uuid.UUID
}

func newHandlerFixture() *handlerFixture {
	taskService := services.NewTaskService(memory.NewTaskRepository(), logger.NewNop())
	return &handlerFixture{
		echo:    echo.New(),
		handler: NewTaskHandler(taskService, logger.NewNop()),
		owner:   uuid.New(),
	}
}

// request builds an echo context authenticated as the fixture owner.
func (f *handlerFixture) request(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)
	c.Set("user", f.owner.String())
	return c, rec
}

func (f *handlerFixture) createTask(t *testing.T, body string) int64 {
	t.Helper()

	c, rec := f.request(http.MethodPost, "/api/v1/tasks", body)
	require.NoError(t, f.handler.CreateTask(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	return created.ID
}

const validTaskBody = `{"title": "Buy milk", "description": "Buy milk at the store", "due_date": "2099-01-01"}`

func TestCreateTaskResponseShape(t *testing.T) {
	f := newHandlerFixture()

	c, rec := f.request(http.MethodPost, "/api/v1/tasks", validTaskBody)
	require.NoError(t, f.handler.CreateTask(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
	assert.Equal(t, "Buy milk", fields["title"])
	assert.Equal(t, "Buy milk at the store", fields["description"])
	assert.Equal(t, "2099-01-01", fields["due_date"])
	assert.Contains(t, fields, "id")
	assert.Contains(t, fields, "created_at")
	assert.Contains(t, fields, "updated_at")
	assert.NotContains(t, fields, "is_deleted")
	assert.NotContains(t, fields, "owner_id")
}

func TestCreateTaskValidationResponse(t *testing.T) {
	f := newHandlerFixture()

	c, rec := f.request(http.MethodPost, "/api/v1/tasks", `{}`)
	require.NoError(t, f.handler.CreateTask(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"This field is required."}, resp.Errors["title"])
	assert.Equal(t, []string{"This field is required."}, resp.Errors["description"])
	assert.Equal(t, []string{"This field is required."}, resp.Errors["due_date"])
}

func TestGetTaskNotFoundResponse(t *testing.T) {
	f := newHandlerFixture()

	c, rec := f.request(http.MethodGet, "/api/v1/tasks/999", "")
	c.SetParamNames("id")
	c.SetParamValues("999")

	require.NoError(t, f.handler.GetTask(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail": "Not found."}`, rec.Body.String())
}

func TestDeleteTaskResponse(t *testing.T) {
	f := newHandlerFixture()
	id := f.createTask(t, validTaskBody)

	c, rec := f.request(http.MethodDelete, fmt.Sprintf("/api/v1/tasks/%d", id), "")
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprintf("%d", id))

	require.NoError(t, f.handler.DeleteTask(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"detail": "Task deleted successfully"}`, rec.Body.String())

	// The deleted task is gone from list and retrieve alike.
	c, rec = f.request(http.MethodGet, "/api/v1/tasks", "")
	require.NoError(t, f.handler.ListTasks(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	c, rec = f.request(http.MethodDelete, fmt.Sprintf("/api/v1/tasks/%d", id), "")
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprintf("%d", id))
	require.NoError(t, f.handler.DeleteTask(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateTaskPartialViaHandler(t *testing.T) {
	f := newHandlerFixture()
	id := f.createTask(t, validTaskBody)

	c, rec := f.request(http.MethodPatch, fmt.Sprintf("/api/v1/tasks/%d", id), `{"title": "Buy oat milk"}`)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprintf("%d", id))

	require.NoError(t, f.handler.UpdateTask(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
	assert.Equal(t, "Buy oat milk", fields["title"])
	assert.Equal(t, "Buy milk at the store", fields["description"])
}

func TestListTasksWithQueryParams(t *testing.T) {
	f := newHandlerFixture()
	f.createTask(t, validTaskBody)
	f.createTask(t, `{"title": "Walk the dog", "description": "Around the block", "due_date": "2099-06-15"}`)

	tests := []struct {
		name       string
		query      string
		wantTitles []string
	}{
		{name: "no filter", query: "", wantTitles: []string{"Buy milk", "Walk the dog"}},
		{name: "due date filter", query: "?due_date=2099-06-15", wantTitles: []string{"Walk the dog"}},
		{name: "search", query: "?search=Buy", wantTitles: []string{"Buy milk"}},
		{name: "search case insensitive", query: "?search=walk", wantTitles: []string{"Walk the dog"}},
		{name: "search no match", query: "?search=nothing", wantTitles: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := f.request(http.MethodGet, "/api/v1/tasks"+tt.query, "")
			require.NoError(t, f.handler.ListTasks(c))
			require.Equal(t, http.StatusOK, rec.Code)

			var tasks []struct {
				Title string `json:"title"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))

			titles := []string{}
			for _, task := range tasks {
				titles = append(titles, task.Title)
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}

func TestListTasksRejectsMalformedDueDate(t *testing.T) {
	f := newHandlerFixture()

	c, rec := f.request(http.MethodGet, "/api/v1/tasks?due_date=01-01-2099", "")
	require.NoError(t, f.handler.ListTasks(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "due_date")
}

func TestOwnershipIsolationViaHandlers(t *testing.T) {
	taskService := services.NewTaskService(memory.NewTaskRepository(), logger.NewNop())
	handler := NewTaskHandler(taskService, logger.NewNop())
	e := echo.New()

	alice := &handlerFixture{echo: e, handler: handler, owner: uuid.New()}
	bob := &handlerFixture{echo: e, handler: handler, owner: uuid.New()}

	id := alice.createTask(t, validTaskBody)

	c, rec := bob.request(http.MethodGet, fmt.Sprintf("/api/v1/tasks/%d", id), "")
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprintf("%d", id))
	require.NoError(t, handler.GetTask(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = bob.request(http.MethodGet, "/api/v1/tasks", "")
	require.NoError(t, handler.ListTasks(c))
	assert.JSONEq(t, `[]`, rec.Body.String())
}
