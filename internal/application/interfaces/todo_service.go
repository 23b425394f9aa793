package interfaces

import (
	"github.com/google/uuid"

	"thelist/internal/application/command"
	"thelist/internal/application/query"
)

// TodoService is the mutation and query API over lists and tasks. Every
// method takes the requesting owner's id explicitly; a list or task owned by
// someone else is reported as not found.
type TodoService interface {
	CreateList(owner uuid.UUID, cmd *command.CreateListCommand) (*command.CreateListCommandResult, error)
	EditList(owner, listId uuid.UUID, cmd *command.UpdateListCommand) (*command.UpdateListCommandResult, error)
	PatchList(owner, listId uuid.UUID, cmd *command.PatchListCommand) (*command.UpdateListCommandResult, error)
	DeleteList(owner, listId uuid.UUID) error
	ToggleListCompletion(owner, listId uuid.UUID) (*command.ToggleListCommandResult, error)

	CreateTask(owner, listId uuid.UUID, cmd *command.CreateTaskCommand) (*command.CreateTaskCommandResult, error)
	EditTask(owner, listId, taskId uuid.UUID, cmd *command.UpdateTaskCommand) (*command.UpdateTaskCommandResult, error)
	DeleteTask(owner, listId, taskId uuid.UUID) error
	ToggleTaskCompletion(owner, listId, taskId uuid.UUID) (*command.ToggleTaskCommandResult, error)

	ListLists(owner uuid.UUID, q *query.ListListsQuery) (*query.ListListsQueryResult, error)
	ListTasks(owner, listId uuid.UUID, q *query.ListTasksQuery) (*query.ListTasksQueryResult, error)

	AdminListOverview() (*query.AdminListOverviewResult, error)
	AdminTaskOverview() (*query.AdminTaskOverviewResult, error)
}
