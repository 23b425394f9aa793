package repositories

import (
	"github.com/google/uuid"

	"thelist/internal/domain/entities"
)

const DefaultPageSize = 15

// Sort keys accepted by ListForUser. A leading dash means descending, the
// same convention the query string uses.
var validListSorts = map[string]bool{
	"created_at": true, "-created_at": true,
	"updated_at": true, "-updated_at": true,
	"title": true, "-title": true,
}

var validTaskSorts = map[string]bool{
	"created_at": true, "-created_at": true,
	"title": true, "-title": true,
}

// NormalizeListSort maps unknown sort keys to the default ordering instead of
// rejecting them.
func NormalizeListSort(sort string) string {
	if validListSorts[sort] {
		return sort
	}
	return "-created_at"
}

func NormalizeTaskSort(sort string) string {
	if validTaskSorts[sort] {
		return sort
	}
	return "created_at"
}

type ListListsParams struct {
	Search   string
	Filter   string // all | completed | active; anything else behaves as all
	Sort     string
	Page     int
	PageSize int
}

type ListTasksParams struct {
	Search string
	Filter string // all | completed | pending; anything else behaves as all
	Sort   string
}

// AdminListRow is one row of the cross-owner admin overview.
type AdminListRow struct {
	List          *entities.TodoList
	OwnerUsername string
	Counts        entities.TaskCounts
}

type TodoListRepository interface {
	Create(list *entities.ValidatedTodoList) (*entities.TodoList, error)
	// FindByIdForUser returns (nil, nil) when the list does not exist or
	// belongs to another user.
	FindByIdForUser(id, userId uuid.UUID) (*entities.TodoList, error)
	Update(list *entities.TodoList) (*entities.TodoList, error)
	// DeleteWithTasks removes the list and all its tasks in one transaction.
	DeleteWithTasks(id uuid.UUID) error
	// ListForUser returns one page of the user's lists plus the total number
	// of lists matching the search/filter (for pagination).
	ListForUser(userId uuid.UUID, params ListListsParams) ([]*entities.TodoList, int64, error)
	// CountForUser counts over the unfiltered owner set.
	CountForUser(userId uuid.UUID) (total, completed int64, err error)
	ListAll() ([]*AdminListRow, error)
}
