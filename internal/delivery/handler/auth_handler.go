package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"thelist/internal/application/command"
	"thelist/internal/application/interfaces"
)

type AuthHandler struct {
	userService interfaces.UserService
}

func NewAuthHandler(userService interfaces.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var cmd command.RegisterUserCommand
	if err := c.Bind(&cmd); err != nil {
		return sendJSONError(c, http.StatusBadRequest, "invalid input data", nil)
	}

	result, err := h.userService.Register(&cmd)
	if err != nil {
		return sendServiceError(c, err)
	}

	return sendJSONResponse(c, http.StatusCreated, result)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var cmd command.LoginUserCommand
	if err := c.Bind(&cmd); err != nil {
		return sendJSONError(c, http.StatusBadRequest, "invalid input data", nil)
	}
	if cmd.Username == "" || cmd.Password == "" {
		return sendJSONError(c, http.StatusBadRequest, "please fill in all fields", nil)
	}

	result, err := h.userService.Login(&cmd)
	if err != nil {
		return sendServiceError(c, err)
	}

	return sendJSONResponse(c, http.StatusOK, result)
}

func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var cmd command.RequestPasswordResetCommand
	if err := c.Bind(&cmd); err != nil {
		return sendJSONError(c, http.StatusBadRequest, "invalid input data", nil)
	}

	result, err := h.userService.RequestPasswordReset(&cmd)
	if err != nil {
		return sendServiceError(c, err)
	}

	return sendJSONResponse(c, http.StatusOK, result)
}

func (h *AuthHandler) ConfirmPasswordReset(c echo.Context) error {
	var cmd command.ConfirmPasswordResetCommand
	if err := c.Bind(&cmd); err != nil {
		return sendJSONError(c, http.StatusBadRequest, "invalid input data", nil)
	}

	result, err := h.userService.ConfirmPasswordReset(&cmd)
	if err != nil {
		return sendServiceError(c, err)
	}

	return sendJSONResponse(c, http.StatusOK, result)
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	result, err := h.userService.FindUserById(ownerFromContext(c))
	if err != nil {
		return sendServiceError(c, err)
	}

	return sendJSONResponse(c, http.StatusOK, result)
}
