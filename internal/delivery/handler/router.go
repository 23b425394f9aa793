package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"thelist/internal/application/interfaces"
	"thelist/internal/infrastructure"
)

const rateLimitRequestsPerSecond = 20

// NewRouter wires every route onto a fresh Echo instance.
func NewRouter(
	userService interfaces.UserService,
	todoService interfaces.TodoService,
	jwtService *infrastructure.JWTService,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(rateLimitRequestsPerSecond))))

	authHandler := NewAuthHandler(userService)
	listHandler := NewListHandler(todoService)
	taskHandler := NewTaskHandler(todoService)
	adminHandler := NewAdminHandler(todoService)

	api := e.Group("/api")

	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)
	api.POST("/password-reset", authHandler.RequestPasswordReset)
	api.POST("/password-reset/confirm", authHandler.ConfirmPasswordReset)

	authed := api.Group("", JWTAuth(jwtService))
	authed.GET("/me", authHandler.Me)

	authed.GET("/lists", listHandler.ListLists)
	authed.POST("/lists", listHandler.CreateList)
	authed.PUT("/lists/:id", listHandler.EditList)
	authed.PATCH("/lists/:id", listHandler.PatchList)
	authed.DELETE("/lists/:id", listHandler.DeleteList)
	authed.POST("/lists/:id/toggle", listHandler.ToggleListCompletion)

	authed.GET("/lists/:id/tasks", taskHandler.ListTasks)
	authed.POST("/lists/:id/tasks", taskHandler.CreateTask)
	authed.PUT("/lists/:id/tasks/:taskID", taskHandler.EditTask)
	authed.DELETE("/lists/:id/tasks/:taskID", taskHandler.DeleteTask)
	authed.POST("/lists/:id/tasks/:taskID/toggle", taskHandler.ToggleTaskCompletion)

	admin := authed.Group("/admin", AdminOnly(userService))
	admin.GET("/lists", adminHandler.ListOverview)
	admin.GET("/tasks", adminHandler.TaskOverview)

	return e
}
