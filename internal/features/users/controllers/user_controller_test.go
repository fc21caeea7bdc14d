package users_controllers

import (
	"net/http"
	"testing"

	users_dto "workforce/internal/features/users/dto"
	users_enums "workforce/internal/features/users/enums"
	users_middleware "workforce/internal/features/users/middleware"
	users_services "workforce/internal/features/users/services"
	users_testing "workforce/internal/features/users/testing"
	test_utils "workforce/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestRouter(
	limiter *rate.Limiter,
) (*gin.Engine, *users_services.UserService, *users_testing.MemoryUserRepository) {
	gin.SetMode(gin.TestMode)

	service, repository := users_testing.NewTestUserService()

	controller := &UserController{userService: service, loginLimiter: limiter}

	router := gin.New()
	api := router.Group("/api")
	controller.RegisterRoutes(api)

	protected := api.Group("")
	protected.Use(users_middleware.AuthMiddleware(service))
	controller.RegisterProtectedRoutes(protected)

	return router, service, repository
}

func permissiveLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Inf, 1)
}

func registerBody(username string) map[string]any {
	return map[string]any{
		"username":        username,
		"password":        "Password123!",
		"confirmPassword": "Password123!",
		"name":            "Jane Doe",
		"email":           username + "@example.com",
		"role":            "employee",
	}
}

func Test_Register_WithValidData_ReturnsTokenAndUser(t *testing.T) {
	router, _, _ := newTestRouter(permissiveLimiter())

	var response users_dto.AuthResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/register", "", registerBody("jane"), http.StatusCreated, &response,
	)

	assert.NotEmpty(t, response.Token)
	assert.Equal(t, "jane", response.User.Username)
	assert.Equal(t, users_enums.UserRoleEmployee, response.User.Role)
}

func Test_Register_WithDuplicateUsername_ReturnsValidationError(t *testing.T) {
	router, _, _ := newTestRouter(permissiveLimiter())

	test_utils.MakePostRequest(t, router, "/api/register", "", registerBody("jane"), http.StatusCreated)

	body := registerBody("jane")
	body["email"] = "other@example.com"

	resp := test_utils.MakePostRequest(t, router, "/api/register", "", body, http.StatusBadRequest)
	assert.Contains(t, string(resp.Body), "Username already exists")
}

func Test_Register_WithDuplicateEmail_ReturnsValidationError(t *testing.T) {
	router, _, _ := newTestRouter(permissiveLimiter())

	test_utils.MakePostRequest(t, router, "/api/register", "", registerBody("jane"), http.StatusCreated)

	body := registerBody("john")
	body["email"] = "jane@example.com"

	resp := test_utils.MakePostRequest(t, router, "/api/register", "", body, http.StatusBadRequest)
	assert.Contains(t, string(resp.Body), "Email already exists")
}

func Test_Register_WithInvalidRole_ReturnsValidationError(t *testing.T) {
	router, _, _ := newTestRouter(permissiveLimiter())

	body := registerBody("jane")
	body["role"] = "superuser"

	resp := test_utils.MakePostRequest(t, router, "/api/register", "", body, http.StatusBadRequest)
	assert.Contains(t, string(resp.Body), "Invalid role")
}

func Test_Register_WithMismatchedPasswords_ReturnsFieldErrors(t *testing.T) {
	router, _, _ := newTestRouter(permissiveLimiter())

	body := registerBody("jane")
	body["confirmPassword"] = "Different123!"

	resp := test_utils.MakePostRequest(t, router, "/api/register", "", body, http.StatusBadRequest)
	assert.Contains(t, string(resp.Body), "errors")
	assert.Contains(t, string(resp.Body), "confirmPassword")
}

func Test_Login_WithValidCredentials_ReturnsToken(t *testing.T) {
	router, _, _ := newTestRouter(permissiveLimiter())

	test_utils.MakePostRequest(t, router, "/api/register", "", registerBody("jane"), http.StatusCreated)

	var response users_dto.AuthResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/login", "",
		map[string]any{"username": "jane", "password": "Password123!"},
		http.StatusOK, &response,
	)

	assert.NotEmpty(t, response.Token)
}

func Test_Login_WithWrongPassword_ReturnsUnauthorized(t *testing.T) {
	router, _, _ := newTestRouter(permissiveLimiter())

	test_utils.MakePostRequest(t, router, "/api/register", "", registerBody("jane"), http.StatusCreated)

	resp := test_utils.MakePostRequest(
		t, router, "/api/login", "",
		map[string]any{"username": "jane", "password": "WrongPassword1!"},
		http.StatusUnauthorized,
	)
	assert.Contains(t, string(resp.Body), "Invalid credentials")
}

func Test_Login_WithUnknownUsername_ReturnsUnauthorized(t *testing.T) {
	router, _, _ := newTestRouter(permissiveLimiter())

	resp := test_utils.MakePostRequest(
		t, router, "/api/login", "",
		map[string]any{"username": "ghost", "password": "Password123!"},
		http.StatusUnauthorized,
	)
	assert.Contains(t, string(resp.Body), "Invalid credentials")
}

func Test_Login_WhenThrottled_ReturnsTooManyRequests(t *testing.T) {
	router, _, _ := newTestRouter(rate.NewLimiter(rate.Limit(0.001), 1))

	body := map[string]any{"username": "jane", "password": "Password123!"}

	test_utils.MakePostRequest(t, router, "/api/login", "", body, http.StatusUnauthorized)
	test_utils.MakePostRequest(t, router, "/api/login", "", body, http.StatusTooManyRequests)
}

func Test_GetCurrentUser_WithValidToken_ReturnsUser(t *testing.T) {
	router, service, repository := newTestRouter(permissiveLimiter())

	user, token := users_testing.CreateTestUser(service, repository, users_enums.UserRoleEmployee)

	var response users_dto.UserResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/user", "Bearer "+token, http.StatusOK, &response,
	)

	assert.Equal(t, user.ID, response.ID)
	assert.Equal(t, user.Username, response.Username)
}

func Test_GetCurrentUser_WithoutToken_ReturnsUnauthorized(t *testing.T) {
	router, _, _ := newTestRouter(permissiveLimiter())

	test_utils.MakeGetRequest(t, router, "/api/user", "", http.StatusUnauthorized)
}

func Test_GetCurrentUser_WithGarbageToken_ReturnsUnauthorized(t *testing.T) {
	router, _, _ := newTestRouter(permissiveLimiter())

	test_utils.MakeGetRequest(t, router, "/api/user", "Bearer not-a-token", http.StatusUnauthorized)
}

func Test_GetAllUsers_AsAdmin_ReturnsUsers(t *testing.T) {
	router, service, repository := newTestRouter(permissiveLimiter())

	users_testing.CreateTestUser(service, repository, users_enums.UserRoleEmployee)
	_, adminToken := users_testing.CreateTestUser(service, repository, users_enums.UserRoleAdmin)

	var response []users_dto.UserResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/users", "Bearer "+adminToken, http.StatusOK, &response,
	)

	require.Len(t, response, 2)
}

func Test_GetAllUsers_AsEmployee_ReturnsForbidden(t *testing.T) {
	router, service, repository := newTestRouter(permissiveLimiter())

	_, token := users_testing.CreateTestUser(service, repository, users_enums.UserRoleEmployee)

	resp := test_utils.MakeGetRequest(t, router, "/api/users", "Bearer "+token, http.StatusForbidden)
	assert.Contains(t, string(resp.Body), "Not authorized")
}
