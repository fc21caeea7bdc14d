package users_controllers

import (
	users_services "workforce/internal/features/users/services"

	"golang.org/x/time/rate"
)

var userController = &UserController{
	userService:  users_services.GetUserService(),
	loginLimiter: rate.NewLimiter(rate.Limit(3), 3), // 3 RPS with burst of 3
}

func GetUserController() *UserController {
	return userController
}
