package activities

import (
	"net/http"
	"strconv"

	"workforce/internal/util/apierror"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	activityService *ActivityService
}

func (c *ActivityController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/activities", c.GetActivities)
}

func (c *ActivityController) GetActivities(ctx *gin.Context) {
	limit := 0
	if rawLimit := ctx.Query("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid limit"})
			return
		}
		limit = parsed
	}

	entries, err := c.activityService.GetActivities(limit)
	if err != nil {
		apierror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, entries)
}
