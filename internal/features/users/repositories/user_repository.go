package users_repositories

import (
	users_enums "workforce/internal/features/users/enums"
	users_models "workforce/internal/features/users/models"
	"workforce/internal/storage"

	"gorm.io/gorm"
)

type UserRepository struct{}

func (r *UserRepository) CreateUser(user *users_models.User) error {
	return storage.GetDb().Create(user).Error
}

func (r *UserRepository) GetUserByID(userID int64) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("id = ?", userID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetUserByUsername(username string) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("username = ?", username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetUserByEmail(email string) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetAllUsers() ([]*users_models.User, error) {
	var users []*users_models.User

	err := storage.GetDb().Order("id ASC").Find(&users).Error

	return users, err
}

func (r *UserRepository) CountUsersByRole(role users_enums.UserRole) (int64, error) {
	var count int64

	err := storage.GetDb().Model(&users_models.User{}).
		Where("role = ?", role).
		Count(&count).Error

	return count, err
}
