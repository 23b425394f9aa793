package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"thelist/internal/application/command"
	"thelist/internal/application/interfaces"
	"thelist/internal/application/query"
)

type TaskHandler struct {
	todoService interfaces.TodoService
}

func NewTaskHandler(todoService interfaces.TodoService) *TaskHandler {
	return &TaskHandler{todoService: todoService}
}

func taskIDFromPath(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("taskID"))
	return id, err == nil
}

func (h *TaskHandler) ListTasks(c echo.Context) error {
	listID, ok := listIDFromPath(c)
	if !ok {
		return sendJSONError(c, http.StatusNotFound, "list not found", nil)
	}

	result, err := h.todoService.ListTasks(ownerFromContext(c), listID, &query.ListTasksQuery{
		Search: c.QueryParam("search"),
		Filter: c.QueryParam("filter"),
		Sort:   c.QueryParam("sort"),
	})
	if err != nil {
		return sendServiceError(c, err)
	}

	return sendJSONResponse(c, http.StatusOK, result)
}

func (h *TaskHandler) CreateTask(c echo.Context) error {
	listID, ok := listIDFromPath(c)
	if !ok {
		return sendJSONError(c, http.StatusNotFound, "list not found", nil)
	}

	var cmd command.CreateTaskCommand
	if err := c.Bind(&cmd); err != nil {
		return sendJSONError(c, http.StatusBadRequest, "invalid input data", nil)
	}

	result, err := h.todoService.CreateTask(ownerFromContext(c), listID, &cmd)
	if err != nil {
		return sendServiceError(c, err)
	}

	return sendJSONResponse(c, http.StatusCreated, result)
}

func (h *TaskHandler) EditTask(c echo.Context) error {
	listID, ok := listIDFromPath(c)
	if !ok {
		return sendJSONError(c, http.StatusNotFound, "list not found", nil)
	}
	taskID, ok := taskIDFromPath(c)
	if !ok {
		return sendJSONError(c, http.StatusNotFound, "task not found", nil)
	}

	var cmd command.UpdateTaskCommand
	if err := c.Bind(&cmd); err != nil {
		return sendJSONError(c, http.StatusBadRequest, "invalid input data", nil)
	}

	result, err := h.todoService.EditTask(ownerFromContext(c), listID, taskID, &cmd)
	if err != nil {
		return sendServiceError(c, err)
	}

	return sendJSONResponse(c, http.StatusOK, result)
}

func (h *TaskHandler) DeleteTask(c echo.Context) error {
	listID, ok := listIDFromPath(c)
	if !ok {
		return sendJSONError(c, http.StatusNotFound, "list not found", nil)
	}
	taskID, ok := taskIDFromPath(c)
	if !ok {
		return sendJSONError(c, http.StatusNotFound, "task not found", nil)
	}

	if err := h.todoService.DeleteTask(ownerFromContext(c), listID, taskID); err != nil {
		return sendServiceError(c, err)
	}

	return sendJSONResponse(c, http.StatusOK, map[string]string{
		"message": "task deleted successfully",
	})
}

func (h *TaskHandler) ToggleTaskCompletion(c echo.Context) error {
	listID, ok := listIDFromPath(c)
	if !ok {
		return sendJSONError(c, http.StatusNotFound, "list not found", nil)
	}
	taskID, ok := taskIDFromPath(c)
	if !ok {
		return sendJSONError(c, http.StatusNotFound, "task not found", nil)
	}

	result, err := h.todoService.ToggleTaskCompletion(ownerFromContext(c), listID, taskID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return sendJSONResponse(c, http.StatusOK, result)
}
