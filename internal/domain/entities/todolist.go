package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"thelist/internal/domain/errs"
)

const (
	TitleMaxLength       = 200
	DescriptionMaxLength = 10000
)

// TodoList is a named collection of tasks owned by exactly one user.
type TodoList struct {
	Id          uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Title       string
	Description string
	IsCompleted bool
	UserId      uuid.UUID
}

func NewTodoList(userId uuid.UUID, title, description string) *TodoList {
	now := time.Now()
	return &TodoList{
		Id:          uuid.New(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Title:       title,
		Description: description,
		UserId:      userId,
	}
}

func (l *TodoList) validate() []string {
	return validateTitleAndDescription(l.Title, l.Description)
}

func validateTitleAndDescription(title, description string) []string {
	var violations []string

	if title == "" {
		violations = append(violations, "title is required")
	} else if len(title) > TitleMaxLength {
		violations = append(violations, fmt.Sprintf("title must be less than %d characters", TitleMaxLength))
	}

	if len(description) > DescriptionMaxLength {
		violations = append(violations, fmt.Sprintf("description must be less than %d characters", DescriptionMaxLength))
	}

	return violations
}

func (l *TodoList) Rename(title, description string) error {
	if violations := validateTitleAndDescription(title, description); len(violations) > 0 {
		return errs.NewValidation(violations...)
	}
	l.Title = title
	l.Description = description
	l.UpdatedAt = time.Now()
	return nil
}

// ToggleCompletion flips the list's own flag. Tasks are left untouched.
func (l *TodoList) ToggleCompletion() {
	l.IsCompleted = !l.IsCompleted
	l.UpdatedAt = time.Now()
}

type ValidatedTodoList struct {
	*TodoList
}

func NewValidatedTodoList(list *TodoList) (*ValidatedTodoList, error) {
	if violations := list.validate(); len(violations) > 0 {
		return nil, errs.NewValidation(violations...)
	}

	return &ValidatedTodoList{TodoList: list}, nil
}

func (vl *ValidatedTodoList) GetTodoList() *TodoList {
	return vl.TodoList
}
