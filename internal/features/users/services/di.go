package users_services

import (
	users_repositories "workforce/internal/features/users/repositories"
)

var userRepository = &users_repositories.UserRepository{}

var userService = NewUserService(userRepository)

func GetUserService() *UserService {
	return userService
}
