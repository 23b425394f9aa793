package postgres

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"thelist/internal/domain/entities"
	"thelist/internal/domain/repositories"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(task *entities.ValidatedTask) (*entities.Task, error) {
	taskEntity := task.GetTask()

	taskModel := taskModelFromEntity(taskEntity)
	if err := r.db.Omit("TodoList").Create(&taskModel).Error; err != nil {
		return nil, err
	}

	return r.findById(taskEntity.Id)
}

func (r *TaskRepository) findById(id uuid.UUID) (*entities.Task, error) {
	var taskModel TaskModel
	if err := r.db.Where("id = ?", id).First(&taskModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return taskEntityFromModel(&taskModel), nil
}

func (r *TaskRepository) FindByIdInList(id, todoListId uuid.UUID) (*entities.Task, error) {
	var taskModel TaskModel
	if err := r.db.Where("id = ? AND todo_list_id = ?", id, todoListId).First(&taskModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return taskEntityFromModel(&taskModel), nil
}

func (r *TaskRepository) Update(task *entities.Task) (*entities.Task, error) {
	taskModel := taskModelFromEntity(task)
	if err := r.db.Omit("TodoList").Save(&taskModel).Error; err != nil {
		return nil, err
	}

	return r.findById(task.Id)
}

func (r *TaskRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&TaskModel{}, "id = ?", id).Error
}

func (r *TaskRepository) ListForList(todoListId uuid.UUID, params repositories.ListTasksParams) ([]*entities.Task, error) {
	query := r.db.Model(&TaskModel{}).Where("todo_list_id = ?", todoListId)

	if params.Search != "" {
		pattern := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	switch params.Filter {
	case "completed":
		query = query.Where("is_completed = ?", true)
	case "pending":
		query = query.Where("is_completed = ?", false)
	}

	// Default ordering puts incomplete tasks first, oldest first within each
	// group. An explicit sort key replaces it.
	if params.Sort == "" {
		query = query.Order("is_completed ASC").Order("created_at ASC")
	} else {
		query = query.Order(sortClause(repositories.NormalizeTaskSort(params.Sort)))
	}

	var taskModels []TaskModel
	err := query.Find(&taskModels).Error
	if err != nil {
		return nil, err
	}

	tasks := make([]*entities.Task, 0, len(taskModels))
	for i := range taskModels {
		tasks = append(tasks, taskEntityFromModel(&taskModels[i]))
	}

	return tasks, nil
}

func (r *TaskRepository) CountForList(todoListId uuid.UUID) (entities.TaskCounts, error) {
	var counts entities.TaskCounts

	if err := r.db.Model(&TaskModel{}).Where("todo_list_id = ?", todoListId).Count(&counts.Total).Error; err != nil {
		return entities.TaskCounts{}, err
	}
	if err := r.db.Model(&TaskModel{}).Where("todo_list_id = ? AND is_completed = ?", todoListId, true).Count(&counts.Completed).Error; err != nil {
		return entities.TaskCounts{}, err
	}

	return counts, nil
}

func (r *TaskRepository) ListAll() ([]*repositories.AdminTaskRow, error) {
	var taskModels []TaskModel
	if err := r.db.Preload("TodoList").Preload("TodoList.User").Order("created_at DESC").Find(&taskModels).Error; err != nil {
		return nil, err
	}

	rows := make([]*repositories.AdminTaskRow, 0, len(taskModels))
	for i := range taskModels {
		rows = append(rows, &repositories.AdminTaskRow{
			Task:          taskEntityFromModel(&taskModels[i]),
			ListTitle:     taskModels[i].TodoList.Title,
			OwnerUsername: taskModels[i].TodoList.User.Username,
		})
	}

	return rows, nil
}

func taskModelFromEntity(task *entities.Task) TaskModel {
	return TaskModel{
		Id:          task.Id,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		Title:       task.Title,
		Description: task.Description,
		IsCompleted: task.IsCompleted,
		TodoListId:  task.TodoListId,
	}
}

func taskEntityFromModel(taskModel *TaskModel) *entities.Task {
	return &entities.Task{
		Id:          taskModel.Id,
		CreatedAt:   taskModel.CreatedAt,
		UpdatedAt:   taskModel.UpdatedAt,
		Title:       taskModel.Title,
		Description: taskModel.Description,
		IsCompleted: taskModel.IsCompleted,
		TodoListId:  taskModel.TodoListId,
	}
}
