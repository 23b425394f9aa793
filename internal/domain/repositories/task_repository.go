package repositories

import (
	"github.com/google/uuid"

	"thelist/internal/domain/entities"
)

// AdminTaskRow is one row of the cross-owner task overview.
type AdminTaskRow struct {
	Task          *entities.Task
	ListTitle     string
	OwnerUsername string
}

type TaskRepository interface {
	Create(task *entities.ValidatedTask) (*entities.Task, error)
	// FindByIdInList returns (nil, nil) when no such task exists under the
	// given list.
	FindByIdInList(id, todoListId uuid.UUID) (*entities.Task, error)
	Update(task *entities.Task) (*entities.Task, error)
	Delete(id uuid.UUID) error
	ListForList(todoListId uuid.UUID, params ListTasksParams) ([]*entities.Task, error)
	// CountForList counts over the full task set of the list, unaffected by
	// any search or filter.
	CountForList(todoListId uuid.UUID) (entities.TaskCounts, error)
	ListAll() ([]*AdminTaskRow, error)
}
