package users_controllers

import (
	"net/http"

	users_dto "workforce/internal/features/users/dto"
	users_enums "workforce/internal/features/users/enums"
	users_middleware "workforce/internal/features/users/middleware"
	users_services "workforce/internal/features/users/services"
	"workforce/internal/util/apierror"
	"workforce/internal/util/rate_limit"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type UserController struct {
	userService  *users_services.UserService
	loginLimiter *rate.Limiter
	// optional Valkey-backed limiter, shared across replicas
	distributedLimiter *rate_limit.RateLimiter
}

func (c *UserController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/register", c.Register)
	router.POST("/login", c.Login)
}

func (c *UserController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/user", c.GetCurrentUser)
	router.GET(
		"/users",
		users_middleware.RequirePermission(users_enums.PermissionManageUsers),
		c.GetAllUsers,
	)
}

func (c *UserController) SetLoginLimiter(limiter *rate.Limiter) {
	c.loginLimiter = limiter
}

func (c *UserController) SetDistributedLimiter(limiter *rate_limit.RateLimiter) {
	c.distributedLimiter = limiter
}

func (c *UserController) allowLogin(ctx *gin.Context) bool {
	if c.distributedLimiter != nil {
		result, err := c.distributedLimiter.CheckRateLimit(ctx.ClientIP(), 3, 6)
		if err == nil {
			return result.Allowed
		}
		// Valkey being down must not lock everyone out
	}

	return c.loginLimiter.Allow()
}

func (c *UserController) Register(ctx *gin.Context) {
	var request users_dto.RegisterRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		apierror.RespondBinding(ctx, err)
		return
	}

	response, err := c.userService.Register(&request)
	if err != nil {
		apierror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

func (c *UserController) Login(ctx *gin.Context) {
	// throttled to slow down credential stuffing
	if !c.allowLogin(ctx) {
		ctx.JSON(http.StatusTooManyRequests, gin.H{"message": "Rate limit exceeded. Please try again later."})
		return
	}

	var request users_dto.LoginRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		apierror.RespondBinding(ctx, err)
		return
	}

	response, err := c.userService.Login(&request)
	if err != nil {
		apierror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *UserController) GetCurrentUser(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, users_dto.UserToResponse(user))
}

func (c *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := c.userService.GetAllUsers()
	if err != nil {
		apierror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}
