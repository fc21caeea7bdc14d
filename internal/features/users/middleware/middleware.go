package users_middleware

import (
	"net/http"

	users_enums "workforce/internal/features/users/enums"
	users_models "workforce/internal/features/users/models"
	users_services "workforce/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and adds the user to context.
func AuthMiddleware(userService *users_services.UserService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ctx.GetHeader("Authorization")
		if token == "" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
			ctx.Abort()
			return
		}

		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		user, err := userService.GetUserFromToken(token)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
			ctx.Abort()
			return
		}

		ctx.Set("user", user)
		ctx.Next()
	}
}

// RequirePermission checks the role permission table once at the boundary.
// 401 and 403 are never conflated: missing user is 401, missing grant is 403.
func RequirePermission(permission users_enums.Permission) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := GetUserFromContext(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
			ctx.Abort()
			return
		}

		if !user.Can(permission) {
			ctx.JSON(http.StatusForbidden, gin.H{"message": "Not authorized"})
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}

func GetUserFromContext(ctx *gin.Context) (*users_models.User, bool) {
	userInterface, exists := ctx.Get("user")
	if !exists {
		return nil, false
	}

	user, ok := userInterface.(*users_models.User)

	return user, ok
}
