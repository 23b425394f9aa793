package postgres

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"thelist/internal/domain/entities"
	"thelist/internal/domain/repositories"
)

type TodoListRepository struct {
	db *gorm.DB
}

func NewTodoListRepository(db *gorm.DB) repositories.TodoListRepository {
	return &TodoListRepository{db: db}
}

func (r *TodoListRepository) Create(list *entities.ValidatedTodoList) (*entities.TodoList, error) {
	listEntity := list.GetTodoList()

	listModel := listModelFromEntity(listEntity)
	if err := r.db.Omit("User").Create(&listModel).Error; err != nil {
		return nil, err
	}

	return r.findById(listEntity.Id)
}

func (r *TodoListRepository) findById(id uuid.UUID) (*entities.TodoList, error) {
	var listModel TodoListModel
	if err := r.db.Where("id = ?", id).First(&listModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return listEntityFromModel(&listModel), nil
}

// FindByIdForUser treats a list owned by another user the same as a missing
// one.
func (r *TodoListRepository) FindByIdForUser(id, userId uuid.UUID) (*entities.TodoList, error) {
	var listModel TodoListModel
	if err := r.db.Where("id = ? AND user_id = ?", id, userId).First(&listModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return listEntityFromModel(&listModel), nil
}

func (r *TodoListRepository) Update(list *entities.TodoList) (*entities.TodoList, error) {
	listModel := listModelFromEntity(list)
	if err := r.db.Omit("User").Save(&listModel).Error; err != nil {
		return nil, err
	}

	return r.findById(list.Id)
}

// DeleteWithTasks removes the list and its tasks in one transaction so the
// cascade is never partially visible.
func (r *TodoListRepository) DeleteWithTasks(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("todo_list_id = ?", id).Delete(&TaskModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&TodoListModel{}).Error
	})
}

func (r *TodoListRepository) ListForUser(userId uuid.UUID, params repositories.ListListsParams) ([]*entities.TodoList, int64, error) {
	query := r.db.Model(&TodoListModel{}).Where("user_id = ?", userId)

	if params.Search != "" {
		pattern := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	switch params.Filter {
	case "completed":
		query = query.Where("is_completed = ?", true)
	case "active":
		query = query.Where("is_completed = ?", false)
	}

	var filteredCount int64
	if err := query.Count(&filteredCount).Error; err != nil {
		return nil, 0, err
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = repositories.DefaultPageSize
	}

	var listModels []TodoListModel
	err := query.
		Order(sortClause(repositories.NormalizeListSort(params.Sort))).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&listModels).Error
	if err != nil {
		return nil, 0, err
	}

	lists := make([]*entities.TodoList, 0, len(listModels))
	for i := range listModels {
		lists = append(lists, listEntityFromModel(&listModels[i]))
	}

	return lists, filteredCount, nil
}

func (r *TodoListRepository) CountForUser(userId uuid.UUID) (int64, int64, error) {
	var total, completed int64

	if err := r.db.Model(&TodoListModel{}).Where("user_id = ?", userId).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.Model(&TodoListModel{}).Where("user_id = ? AND is_completed = ?", userId, true).Count(&completed).Error; err != nil {
		return 0, 0, err
	}

	return total, completed, nil
}

func (r *TodoListRepository) ListAll() ([]*repositories.AdminListRow, error) {
	var listModels []TodoListModel
	if err := r.db.Preload("User").Order("created_at DESC").Find(&listModels).Error; err != nil {
		return nil, err
	}

	rows := make([]*repositories.AdminListRow, 0, len(listModels))
	for i := range listModels {
		var total, completed int64
		if err := r.db.Model(&TaskModel{}).Where("todo_list_id = ?", listModels[i].Id).Count(&total).Error; err != nil {
			return nil, err
		}
		if err := r.db.Model(&TaskModel{}).Where("todo_list_id = ? AND is_completed = ?", listModels[i].Id, true).Count(&completed).Error; err != nil {
			return nil, err
		}

		rows = append(rows, &repositories.AdminListRow{
			List:          listEntityFromModel(&listModels[i]),
			OwnerUsername: listModels[i].User.Username,
			Counts:        entities.TaskCounts{Total: total, Completed: completed},
		})
	}

	return rows, nil
}

// sortClause maps the query-string sort convention onto SQL.
func sortClause(sort string) string {
	column := strings.TrimPrefix(sort, "-")
	if strings.HasPrefix(sort, "-") {
		return column + " DESC"
	}
	return column + " ASC"
}

func listModelFromEntity(list *entities.TodoList) TodoListModel {
	return TodoListModel{
		Id:          list.Id,
		CreatedAt:   list.CreatedAt,
		UpdatedAt:   list.UpdatedAt,
		Title:       list.Title,
		Description: list.Description,
		IsCompleted: list.IsCompleted,
		UserId:      list.UserId,
	}
}

func listEntityFromModel(listModel *TodoListModel) *entities.TodoList {
	return &entities.TodoList{
		Id:          listModel.Id,
		CreatedAt:   listModel.CreatedAt,
		UpdatedAt:   listModel.UpdatedAt,
		Title:       listModel.Title,
		Description: listModel.Description,
		IsCompleted: listModel.IsCompleted,
		UserId:      listModel.UserId,
	}
}
