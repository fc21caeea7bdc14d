package users_services

import (
	"errors"
	"fmt"
	"time"

	"workforce/internal/config"
	users_dto "workforce/internal/features/users/dto"
	users_enums "workforce/internal/features/users/enums"
	users_interfaces "workforce/internal/features/users/interfaces"
	users_models "workforce/internal/features/users/models"
	"workforce/internal/util/apierror"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

type UserService struct {
	userRepository users_interfaces.UserRepository
	// activity writer is never nil after DI wiring
	activityWriter users_interfaces.ActivityWriter
}

func NewUserService(userRepository users_interfaces.UserRepository) *UserService {
	return &UserService{userRepository: userRepository}
}

func (s *UserService) SetActivityWriter(writer users_interfaces.ActivityWriter) {
	s.activityWriter = writer
}

func (s *UserService) Register(request *users_dto.RegisterRequestDTO) (*users_dto.AuthResponseDTO, error) {
	if !request.Role.IsValid() {
		return nil, apierror.Validation("Invalid role")
	}

	existingUser, err := s.userRepository.GetUserByUsername(request.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing username: %w", err)
	}
	if existingUser != nil {
		return nil, apierror.Validation("Username already exists")
	}

	existingUser, err = s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existingUser != nil {
		return nil, apierror.Validation("Email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &users_models.User{
		Username:       request.Username,
		HashedPassword: string(hashedPassword),
		Name:           request.Name,
		Email:          request.Email,
		Role:           request.Role,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.userRepository.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.activityWriter.WriteActivity(
		"user_registered",
		fmt.Sprintf("New user registered: %s", user.Name),
		&user.ID,
		nil,
	)

	token, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &users_dto.AuthResponseDTO{
		User:  users_dto.UserToResponse(user),
		Token: token,
	}, nil
}

func (s *UserService) Login(request *users_dto.LoginRequestDTO) (*users_dto.AuthResponseDTO, error) {
	user, err := s.userRepository.GetUserByUsername(request.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return nil, apierror.Unauthorized("Invalid credentials")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(request.Password)) != nil {
		return nil, apierror.Unauthorized("Invalid credentials")
	}

	token, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &users_dto.AuthResponseDTO{
		User:  users_dto.UserToResponse(user),
		Token: token,
	}, nil
}

func (s *UserService) GenerateAccessToken(user *users_models.User) (string, error) {
	now := time.Now().UTC()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  fmt.Sprintf("%d", user.ID),
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(tokenLifetime).Unix(),
	})

	tokenString, err := token.SignedString([]byte(config.GetEnv().JwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

func (s *UserService) GetUserFromToken(tokenString string) (*users_models.User, error) {
	parsedToken, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.GetEnv().JwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, errors.New("invalid token")
	}

	userIDStr, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	var userID int64
	if _, err := fmt.Sscanf(userIDStr, "%d", &userID); err != nil {
		return nil, errors.New("invalid token claims")
	}

	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user no longer exists")
	}

	return user, nil
}

func (s *UserService) GetUserByID(userID int64) (*users_models.User, error) {
	return s.userRepository.GetUserByID(userID)
}

func (s *UserService) GetAllUsers() ([]users_dto.UserResponseDTO, error) {
	users, err := s.userRepository.GetAllUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	responses := make([]users_dto.UserResponseDTO, 0, len(users))
	for _, user := range users {
		responses = append(responses, users_dto.UserToResponse(user))
	}

	return responses, nil
}

// CreateInitialAdmin makes sure an admin account exists on first start.
func (s *UserService) CreateInitialAdmin() error {
	admin, err := s.userRepository.GetUserByUsername("admin")
	if err != nil {
		return fmt.Errorf("failed to get admin user: %w", err)
	}

	if admin != nil {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(config.GetEnv().AdminPassword),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin = &users_models.User{
		Username:       "admin",
		HashedPassword: string(hashedPassword),
		Name:           "Administrator",
		Email:          "admin@workforce.local",
		Role:           users_enums.UserRoleAdmin,
		CreatedAt:      time.Now().UTC(),
	}

	return s.userRepository.CreateUser(admin)
}
