package pipeline

import (
	"net/http"
	"strconv"

	users_enums "workforce/internal/features/users/enums"
	users_middleware "workforce/internal/features/users/middleware"
	"workforce/internal/util/apierror"

	"github.com/gin-gonic/gin"
)

type PipelineController struct {
	pipelineService *PipelineService
}

func (c *PipelineController) RegisterRoutes(router *gin.RouterGroup) {
	managePipeline := users_middleware.RequirePermission(users_enums.PermissionManagePipeline)

	router.GET("/pipeline", c.GetPipelines)
	router.POST("/pipeline", managePipeline, c.CreatePipeline)
	router.POST("/pipeline/:pipelineId/skills", managePipeline, c.AddDemand)
}

func (c *PipelineController) GetPipelines(ctx *gin.Context) {
	entries, err := c.pipelineService.GetPipelines()
	if err != nil {
		apierror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

func (c *PipelineController) CreatePipeline(ctx *gin.Context) {
	user, _ := users_middleware.GetUserFromContext(ctx)

	var request CreatePipelineRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		apierror.RespondBinding(ctx, err)
		return
	}

	entry, err := c.pipelineService.CreatePipeline(&request, user)
	if err != nil {
		apierror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, entry)
}

func (c *PipelineController) AddDemand(ctx *gin.Context) {
	user, _ := users_middleware.GetUserFromContext(ctx)

	pipelineID, err := strconv.ParseInt(ctx.Param("pipelineId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid pipeline id"})
		return
	}

	var request CreateDemandRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		apierror.RespondBinding(ctx, err)
		return
	}

	demand, err := c.pipelineService.AddDemand(pipelineID, &request, user)
	if err != nil {
		apierror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, demand)
}
