package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"thelist/internal/application/interfaces"
	"thelist/internal/infrastructure"
)

const ownerContextKey = "owner_id"

// JWTAuth resolves the owner identity from the Authorization header and
// stores it on the request context. Handlers pass it explicitly into every
// service call.
func JWTAuth(jwtService *infrastructure.JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				return sendJSONError(c, http.StatusUnauthorized, "missing or malformed token", nil)
			}

			userID, err := jwtService.ParseToken(token)
			if err != nil {
				return sendJSONError(c, http.StatusUnauthorized, "invalid or expired token", nil)
			}

			ownerID, err := uuid.Parse(userID)
			if err != nil {
				return sendJSONError(c, http.StatusUnauthorized, "invalid or expired token", nil)
			}

			c.Set(ownerContextKey, ownerID)
			return next(c)
		}
	}
}

func ownerFromContext(c echo.Context) uuid.UUID {
	ownerID, _ := c.Get(ownerContextKey).(uuid.UUID)
	return ownerID
}

// AdminOnly allows only users whose account carries the admin flag.
func AdminOnly(userService interfaces.UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			result, err := userService.FindUserById(ownerFromContext(c))
			if err != nil {
				return sendJSONError(c, http.StatusUnauthorized, "invalid or expired token", nil)
			}
			if !result.Result.IsAdmin {
				return sendJSONError(c, http.StatusForbidden, "admin access required", nil)
			}
			return next(c)
		}
	}
}
