package users_interfaces

import (
	users_enums "workforce/internal/features/users/enums"
	users_models "workforce/internal/features/users/models"
)

// UserRepository is the storage boundary for users. The production
// implementation is GORM over Postgres; tests use an in-memory one.
type UserRepository interface {
	CreateUser(user *users_models.User) error
	GetUserByID(userID int64) (*users_models.User, error)
	GetUserByUsername(username string) (*users_models.User, error)
	GetUserByEmail(email string) (*users_models.User, error)
	GetAllUsers() ([]*users_models.User, error)
	CountUsersByRole(role users_enums.UserRole) (int64, error)
}

// ActivityWriter records an entry in the activity feed. Implemented by the
// activities feature; wired in its SetupDependencies.
type ActivityWriter interface {
	WriteActivity(activityType string, description string, userID *int64, relatedID *int64)
}
