package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"thelist/internal/application/interfaces"
)

// AdminHandler serves the cross-owner overviews the admin screen shows:
// every list with its owner and progress, and every task with its list and
// owner.
type AdminHandler struct {
	todoService interfaces.TodoService
}

func NewAdminHandler(todoService interfaces.TodoService) *AdminHandler {
	return &AdminHandler{todoService: todoService}
}

func (h *AdminHandler) ListOverview(c echo.Context) error {
	result, err := h.todoService.AdminListOverview()
	if err != nil {
		return sendServiceError(c, err)
	}

	return sendJSONResponse(c, http.StatusOK, result)
}

func (h *AdminHandler) TaskOverview(c echo.Context) error {
	result, err := h.todoService.AdminTaskOverview()
	if err != nil {
		return sendServiceError(c, err)
	}

	return sendJSONResponse(c, http.StatusOK, result)
}
