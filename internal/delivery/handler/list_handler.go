package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"thelist/internal/application/command"
	"thelist/internal/application/interfaces"
	"thelist/internal/application/query"
)

type ListHandler struct {
	todoService interfaces.TodoService
}

func NewListHandler(todoService interfaces.TodoService) *ListHandler {
	return &ListHandler{todoService: todoService}
}

func listIDFromPath(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	return id, err == nil
}

func (h *ListHandler) ListLists(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))

	result, err := h.todoService.ListLists(ownerFromContext(c), &query.ListListsQuery{
		Search: c.QueryParam("search"),
		Filter: c.QueryParam("filter"),
		Sort:   c.QueryParam("sort"),
		Page:   page,
	})
	if err != nil {
		return sendServiceError(c, err)
	}

	return sendJSONResponse(c, http.StatusOK, result)
}

func (h *ListHandler) CreateList(c echo.Context) error {
	var cmd command.CreateListCommand
	if err := c.Bind(&cmd); err != nil {
		return sendJSONError(c, http.StatusBadRequest, "invalid input data", nil)
	}

	result, err := h.todoService.CreateList(ownerFromContext(c), &cmd)
	if err != nil {
		return sendServiceError(c, err)
	}

	return sendJSONResponse(c, http.StatusCreated, result)
}

func (h *ListHandler) EditList(c echo.Context) error {
	listID, ok := listIDFromPath(c)
	if !ok {
		return sendJSONError(c, http.StatusNotFound, "list not found", nil)
	}

	var cmd command.UpdateListCommand
	if err := c.Bind(&cmd); err != nil {
		return sendJSONError(c, http.StatusBadRequest, "invalid input data", nil)
	}

	result, err := h.todoService.EditList(ownerFromContext(c), listID, &cmd)
	if err != nil {
		return sendServiceError(c, err)
	}

	return sendJSONResponse(c, http.StatusOK, result)
}

// PatchList handles the partial-update endpoint. Unknown JSON keys are
// ignored, not rejected.
func (h *ListHandler) PatchList(c echo.Context) error {
	listID, ok := listIDFromPath(c)
	if !ok {
		return sendJSONError(c, http.StatusNotFound, "list not found", nil)
	}

	var cmd command.PatchListCommand
	if err := c.Bind(&cmd); err != nil {
		return sendJSONError(c, http.StatusBadRequest, "invalid JSON data", nil)
	}

	result, err := h.todoService.PatchList(ownerFromContext(c), listID, &cmd)
	if err != nil {
		return sendServiceError(c, err)
	}

	return sendJSONResponse(c, http.StatusOK, result)
}

func (h *ListHandler) DeleteList(c echo.Context) error {
	listID, ok := listIDFromPath(c)
	if !ok {
		return sendJSONError(c, http.StatusNotFound, "list not found", nil)
	}

	if err := h.todoService.DeleteList(ownerFromContext(c), listID); err != nil {
		return sendServiceError(c, err)
	}

	return sendJSONResponse(c, http.StatusOK, map[string]string{
		"message": "list and all its tasks deleted successfully",
	})
}

func (h *ListHandler) ToggleListCompletion(c echo.Context) error {
	listID, ok := listIDFromPath(c)
	if !ok {
		return sendJSONError(c, http.StatusNotFound, "list not found", nil)
	}

	result, err := h.todoService.ToggleListCompletion(ownerFromContext(c), listID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return sendJSONResponse(c, http.StatusOK, result)
}
