package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	Id        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
	Username  string         `gorm:"uniqueIndex;not null"`
	Email     string         `gorm:"uniqueIndex;not null"`
	Password  string         `gorm:"not null"`
	FirstName string
	LastName  string
	IsAdmin   bool `gorm:"default:false"`
}

func (UserModel) TableName() string {
	return "users"
}

type TodoListModel struct {
	Id          uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	IsCompleted bool   `gorm:"default:false"`
	UserId      uuid.UUID `gorm:"type:uuid;index;not null"`

	User UserModel `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
}

func (TodoListModel) TableName() string {
	return "todo_lists"
}

type TaskModel struct {
	Id          uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	IsCompleted bool   `gorm:"default:false"`
	TodoListId  uuid.UUID `gorm:"type:uuid;index;not null"`

	TodoList TodoListModel `gorm:"foreignKey:TodoListId;constraint:OnDelete:CASCADE"`
}

func (TaskModel) TableName() string {
	return "tasks"
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&UserModel{}, &TodoListModel{}, &TaskModel{})
}
