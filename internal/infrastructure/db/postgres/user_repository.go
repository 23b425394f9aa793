package postgres

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"thelist/internal/domain/entities"
	"thelist/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	userModel := userModelFromEntity(userEntity)
	if err := r.db.Create(&userModel).Error; err != nil {
		return nil, err
	}

	// Read back the created user to ensure data integrity
	return r.FindById(userEntity.Id)
}

func (r *UserRepository) FindById(id uuid.UUID) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userEntityFromModel(&userModel), nil
}

func (r *UserRepository) FindByUsername(username string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.Where("username = ?", username).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userEntityFromModel(&userModel), nil
}

func (r *UserRepository) FindByEmail(email string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userEntityFromModel(&userModel), nil
}

func (r *UserRepository) Update(user *entities.User) (*entities.User, error) {
	userModel := userModelFromEntity(user)
	if err := r.db.Save(&userModel).Error; err != nil {
		return nil, err
	}

	return r.FindById(user.Id)
}

// Upsert creates the user when the username is free, otherwise refreshes the
// existing record. Used by the seed command.
func (r *UserRepository) Upsert(user *entities.ValidatedUser) (*entities.User, bool, error) {
	userEntity := user.GetUser()

	existing, err := r.FindByUsername(userEntity.Username)
	if err != nil {
		return nil, false, err
	}

	if existing == nil {
		created, err := r.Create(user)
		return created, true, err
	}

	existing.Email = userEntity.Email
	existing.FirstName = userEntity.FirstName
	existing.LastName = userEntity.LastName
	existing.Password = userEntity.Password
	updated, err := r.Update(existing)
	return updated, false, err
}

func userModelFromEntity(user *entities.User) UserModel {
	return UserModel{
		Id:        user.Id,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
		Username:  user.Username,
		Email:     user.Email,
		Password:  user.Password,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		IsAdmin:   user.IsAdmin,
	}
}

func userEntityFromModel(userModel *UserModel) *entities.User {
	return &entities.User{
		Id:        userModel.Id,
		CreatedAt: userModel.CreatedAt,
		UpdatedAt: userModel.UpdatedAt,
		Username:  userModel.Username,
		Email:     userModel.Email,
		Password:  userModel.Password,
		FirstName: userModel.FirstName,
		LastName:  userModel.LastName,
		IsAdmin:   userModel.IsAdmin,
	}
}
