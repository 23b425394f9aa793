package mapper

import (
	"math"

	"thelist/internal/application/common"
	"thelist/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		Id:        user.Id,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		IsAdmin:   user.IsAdmin,
	}
}

func NewListResultFromEntity(list *entities.TodoList, counts entities.TaskCounts) *common.ListResult {
	return &common.ListResult{
		Id:                   list.Id,
		CreatedAt:            list.CreatedAt,
		UpdatedAt:            list.UpdatedAt,
		Title:                list.Title,
		Description:          list.Description,
		IsCompleted:          list.IsCompleted,
		TotalTasks:           counts.Total,
		CompletedTasks:       counts.Completed,
		PendingTasks:         counts.Pending(),
		CompletionPercentage: roundToOneDecimal(counts.CompletionPercentage()),
	}
}

func NewTaskResultFromEntity(task *entities.Task) *common.TaskResult {
	return &common.TaskResult{
		Id:          task.Id,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		Title:       task.Title,
		Description: task.Description,
		IsCompleted: task.IsCompleted,
		TodoListId:  task.TodoListId,
	}
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
