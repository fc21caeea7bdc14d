package users_dto

import (
	"time"

	users_enums "workforce/internal/features/users/enums"
	users_models "workforce/internal/features/users/models"
)

type RegisterRequestDTO struct {
	Username        string               `json:"username"        binding:"required,min=3"`
	Password        string               `json:"password"        binding:"required,min=8"`
	ConfirmPassword string               `json:"confirmPassword" binding:"required,eqfield=Password"`
	Name            string               `json:"name"            binding:"required"`
	Email           string               `json:"email"           binding:"required,email"`
	Role            users_enums.UserRole `json:"role"            binding:"required"`
}

type LoginRequestDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponseDTO struct {
	ID        int64                `json:"id"`
	Username  string               `json:"username"`
	Name      string               `json:"name"`
	Email     string               `json:"email"`
	Role      users_enums.UserRole `json:"role"`
	CreatedAt time.Time            `json:"createdAt"`
}

type AuthResponseDTO struct {
	User  UserResponseDTO `json:"user"`
	Token string          `json:"token"`
}

func UserToResponse(user *users_models.User) UserResponseDTO {
	return UserResponseDTO{
		ID:        user.ID,
		Username:  user.Username,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
