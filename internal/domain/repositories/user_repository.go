package repositories

import (
	"github.com/google/uuid"

	"thelist/internal/domain/entities"
)

type UserRepository interface {
	Create(user *entities.ValidatedUser) (*entities.User, error)
	FindById(id uuid.UUID) (*entities.User, error)
	FindByUsername(username string) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	Update(user *entities.User) (*entities.User, error)
	Upsert(user *entities.ValidatedUser) (*entities.User, bool, error)
}
