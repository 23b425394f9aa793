package common

import (
	"time"

	"github.com/google/uuid"
)

type UserResult struct {
	Id        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsAdmin   bool      `json:"is_admin"`
}

// ListResult carries the list together with its derived task metrics. The
// percentage is rounded to one decimal for display.
type ListResult struct {
	Id                   uuid.UUID `json:"id"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	IsCompleted          bool      `json:"is_completed"`
	TotalTasks           int64     `json:"total_tasks"`
	CompletedTasks       int64     `json:"completed_tasks"`
	PendingTasks         int64     `json:"pending_tasks"`
	CompletionPercentage float64   `json:"completion_percentage"`
}

type TaskResult struct {
	Id          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsCompleted bool      `json:"is_completed"`
	TodoListId  uuid.UUID `json:"todo_list_id"`
}
