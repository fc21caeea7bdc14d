package users_models

import (
	"time"

	users_enums "workforce/internal/features/users/enums"
)

type User struct {
	ID             int64                `json:"id"       gorm:"primaryKey;autoIncrement"`
	Username       string               `json:"username" gorm:"uniqueIndex;not null"`
	HashedPassword string               `json:"-"        gorm:"column:hashed_password;not null"`
	Name           string               `json:"name"     gorm:"not null"`
	Email          string               `json:"email"    gorm:"uniqueIndex;not null"`
	Role           users_enums.UserRole `json:"role"     gorm:"not null;default:employee"`
	CreatedAt      time.Time            `json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) Can(permission users_enums.Permission) bool {
	return u.Role.HasPermission(permission)
}

func (u *User) IsEmployee() bool {
	return u.Role == users_enums.UserRoleEmployee
}
