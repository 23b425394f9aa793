package entities

import (
	"time"

	"github.com/google/uuid"

	"thelist/internal/domain/errs"
)

// Task is an atomic to-do item belonging to exactly one list. Its owner is
// transitively the owner of the parent list.
type Task struct {
	Id          uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Title       string
	Description string
	IsCompleted bool
	TodoListId  uuid.UUID
}

func NewTask(todoListId uuid.UUID, title, description string) *Task {
	now := time.Now()
	return &Task{
		Id:          uuid.New(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Title:       title,
		Description: description,
		TodoListId:  todoListId,
	}
}

func (t *Task) validate() []string {
	return validateTitleAndDescription(t.Title, t.Description)
}

func (t *Task) Rename(title, description string) error {
	if violations := validateTitleAndDescription(title, description); len(violations) > 0 {
		return errs.NewValidation(violations...)
	}
	t.Title = title
	t.Description = description
	t.UpdatedAt = time.Now()
	return nil
}

func (t *Task) ToggleCompletion() {
	t.IsCompleted = !t.IsCompleted
	t.UpdatedAt = time.Now()
}

type ValidatedTask struct {
	*Task
}

func NewValidatedTask(task *Task) (*ValidatedTask, error) {
	if violations := task.validate(); len(violations) > 0 {
		return nil, errs.NewValidation(violations...)
	}

	return &ValidatedTask{Task: task}, nil
}

func (vt *ValidatedTask) GetTask() *Task {
	return vt.Task
}
