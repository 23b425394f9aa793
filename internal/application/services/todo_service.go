package services

import (
	"github.com/google/uuid"

	"thelist/internal/application/command"
	"thelist/internal/application/common"
	"thelist/internal/application/interfaces"
	"thelist/internal/application/mapper"
	"thelist/internal/application/query"
	"thelist/internal/domain/entities"
	"thelist/internal/domain/errs"
	"thelist/internal/domain/repositories"
)

type TodoService struct {
	listRepo repositories.TodoListRepository
	taskRepo repositories.TaskRepository
}

func NewTodoService(listRepo repositories.TodoListRepository, taskRepo repositories.TaskRepository) interfaces.TodoService {
	return &TodoService{
		listRepo: listRepo,
		taskRepo: taskRepo,
	}
}

// findOwnedList reports a list owned by someone else as not found, the same
// as a missing one.
func (s *TodoService) findOwnedList(owner, listId uuid.UUID) (*entities.TodoList, error) {
	list, err := s.listRepo.FindByIdForUser(listId, owner)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, errs.NewNotFound("list")
	}
	return list, nil
}

func (s *TodoService) CreateList(owner uuid.UUID, cmd *command.CreateListCommand) (*command.CreateListCommandResult, error) {
	newList := entities.NewTodoList(owner, cmd.Title, cmd.Description)
	validatedList, err := entities.NewValidatedTodoList(newList)
	if err != nil {
		return nil, err
	}

	createdList, err := s.listRepo.Create(validatedList)
	if err != nil {
		return nil, err
	}

	return &command.CreateListCommandResult{
		Result: mapper.NewListResultFromEntity(createdList, entities.TaskCounts{}),
	}, nil
}

func (s *TodoService) EditList(owner, listId uuid.UUID, cmd *command.UpdateListCommand) (*command.UpdateListCommandResult, error) {
	list, err := s.findOwnedList(owner, listId)
	if err != nil {
		return nil, err
	}

	if err := list.Rename(cmd.Title, cmd.Description); err != nil {
		return nil, err
	}

	updatedList, err := s.listRepo.Update(list)
	if err != nil {
		return nil, err
	}

	counts, err := s.taskRepo.CountForList(listId)
	if err != nil {
		return nil, err
	}

	return &command.UpdateListCommandResult{
		Result: mapper.NewListResultFromEntity(updatedList, counts),
	}, nil
}

// PatchList applies a partial update. A missing title is a validation error;
// a missing description leaves the stored one unchanged.
func (s *TodoService) PatchList(owner, listId uuid.UUID, cmd *command.PatchListCommand) (*command.UpdateListCommandResult, error) {
	list, err := s.findOwnedList(owner, listId)
	if err != nil {
		return nil, err
	}

	if cmd.Title == nil {
		return nil, errs.NewValidation("title is required")
	}

	description := list.Description
	if cmd.Description != nil {
		description = *cmd.Description
	}

	if err := list.Rename(*cmd.Title, description); err != nil {
		return nil, err
	}

	updatedList, err := s.listRepo.Update(list)
	if err != nil {
		return nil, err
	}

	counts, err := s.taskRepo.CountForList(listId)
	if err != nil {
		return nil, err
	}

	return &command.UpdateListCommandResult{
		Result: mapper.NewListResultFromEntity(updatedList, counts),
	}, nil
}

func (s *TodoService) DeleteList(owner, listId uuid.UUID) error {
	if _, err := s.findOwnedList(owner, listId); err != nil {
		return err
	}

	return s.listRepo.DeleteWithTasks(listId)
}

// ToggleListCompletion flips the list's own flag and leaves its tasks alone.
func (s *TodoService) ToggleListCompletion(owner, listId uuid.UUID) (*command.ToggleListCommandResult, error) {
	list, err := s.findOwnedList(owner, listId)
	if err != nil {
		return nil, err
	}

	list.ToggleCompletion()

	updatedList, err := s.listRepo.Update(list)
	if err != nil {
		return nil, err
	}

	return &command.ToggleListCommandResult{Completed: updatedList.IsCompleted}, nil
}

func (s *TodoService) CreateTask(owner, listId uuid.UUID, cmd *command.CreateTaskCommand) (*command.CreateTaskCommandResult, error) {
	if _, err := s.findOwnedList(owner, listId); err != nil {
		return nil, err
	}

	newTask := entities.NewTask(listId, cmd.Title, cmd.Description)
	validatedTask, err := entities.NewValidatedTask(newTask)
	if err != nil {
		return nil, err
	}

	createdTask, err := s.taskRepo.Create(validatedTask)
	if err != nil {
		return nil, err
	}

	return &command.CreateTaskCommandResult{
		Result: mapper.NewTaskResultFromEntity(createdTask),
	}, nil
}

// findOwnedTask resolves ownership transitively through the parent list.
func (s *TodoService) findOwnedTask(owner, listId, taskId uuid.UUID) (*entities.Task, error) {
	if _, err := s.findOwnedList(owner, listId); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.FindByIdInList(taskId, listId)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errs.NewNotFound("task")
	}
	return task, nil
}

func (s *TodoService) EditTask(owner, listId, taskId uuid.UUID, cmd *command.UpdateTaskCommand) (*command.UpdateTaskCommandResult, error) {
	task, err := s.findOwnedTask(owner, listId, taskId)
	if err != nil {
		return nil, err
	}

	if err := task.Rename(cmd.Title, cmd.Description); err != nil {
		return nil, err
	}

	updatedTask, err := s.taskRepo.Update(task)
	if err != nil {
		return nil, err
	}

	return &command.UpdateTaskCommandResult{
		Result: mapper.NewTaskResultFromEntity(updatedTask),
	}, nil
}

func (s *TodoService) DeleteTask(owner, listId, taskId uuid.UUID) error {
	task, err := s.findOwnedTask(owner, listId, taskId)
	if err != nil {
		return err
	}

	return s.taskRepo.Delete(task.Id)
}

func (s *TodoService) ToggleTaskCompletion(owner, listId, taskId uuid.UUID) (*command.ToggleTaskCommandResult, error) {
	task, err := s.findOwnedTask(owner, listId, taskId)
	if err != nil {
		return nil, err
	}

	task.ToggleCompletion()

	updatedTask, err := s.taskRepo.Update(task)
	if err != nil {
		return nil, err
	}

	return &command.ToggleTaskCommandResult{
		Result: mapper.NewTaskResultFromEntity(updatedTask),
	}, nil
}

func (s *TodoService) ListLists(owner uuid.UUID, q *query.ListListsQuery) (*query.ListListsQueryResult, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = repositories.DefaultPageSize
	}

	lists, filteredCount, err := s.listRepo.ListForUser(owner, repositories.ListListsParams{
		Search:   q.Search,
		Filter:   q.Filter,
		Sort:     q.Sort,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}

	resultRows, err := s.mapListsWithCounts(lists)
	if err != nil {
		return nil, err
	}

	totalLists, completedLists, err := s.listRepo.CountForUser(owner)
	if err != nil {
		return nil, err
	}

	totalPages := int((filteredCount + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}

	return &query.ListListsQueryResult{
		Results:        resultRows,
		Page:           page,
		PageSize:       pageSize,
		TotalPages:     totalPages,
		FilteredCount:  filteredCount,
		TotalLists:     totalLists,
		CompletedLists: completedLists,
	}, nil
}

func (s *TodoService) ListTasks(owner, listId uuid.UUID, q *query.ListTasksQuery) (*query.ListTasksQueryResult, error) {
	list, err := s.findOwnedList(owner, listId)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListForList(listId, repositories.ListTasksParams{
		Search: q.Search,
		Filter: q.Filter,
		Sort:   q.Sort,
	})
	if err != nil {
		return nil, err
	}

	// Counts cover the full task set, not the filtered page.
	counts, err := s.taskRepo.CountForList(listId)
	if err != nil {
		return nil, err
	}

	results := mapTasks(tasks)

	return &query.ListTasksQueryResult{
		List:           mapper.NewListResultFromEntity(list, counts),
		Results:        results,
		TotalTasks:     counts.Total,
		CompletedTasks: counts.Completed,
		PendingTasks:   counts.Pending(),
	}, nil
}

// mapListsWithCounts recomputes each list's derived metrics at read time.
func (s *TodoService) mapListsWithCounts(lists []*entities.TodoList) ([]*common.ListResult, error) {
	results := make([]*common.ListResult, 0, len(lists))
	for _, list := range lists {
		counts, err := s.taskRepo.CountForList(list.Id)
		if err != nil {
			return nil, err
		}
		results = append(results, mapper.NewListResultFromEntity(list, counts))
	}
	return results, nil
}

func mapTasks(tasks []*entities.Task) []*common.TaskResult {
	results := make([]*common.TaskResult, 0, len(tasks))
	for _, task := range tasks {
		results = append(results, mapper.NewTaskResultFromEntity(task))
	}
	return results
}

func (s *TodoService) AdminListOverview() (*query.AdminListOverviewResult, error) {
	rows, err := s.listRepo.ListAll()
	if err != nil {
		return nil, err
	}

	results := make([]*query.AdminListOverviewRow, 0, len(rows))
	for _, row := range rows {
		results = append(results, &query.AdminListOverviewRow{
			List:          mapper.NewListResultFromEntity(row.List, row.Counts),
			OwnerUsername: row.OwnerUsername,
		})
	}

	return &query.AdminListOverviewResult{Results: results}, nil
}

func (s *TodoService) AdminTaskOverview() (*query.AdminTaskOverviewResult, error) {
	rows, err := s.taskRepo.ListAll()
	if err != nil {
		return nil, err
	}

	results := make([]*query.AdminTaskOverviewRow, 0, len(rows))
	for _, row := range rows {
		results = append(results, &query.AdminTaskOverviewRow{
			Task:          mapper.NewTaskResultFromEntity(row.Task),
			ListTitle:     row.ListTitle,
			OwnerUsername: row.OwnerUsername,
		})
	}

	return &query.AdminTaskOverviewResult{Results: results}, nil
}
