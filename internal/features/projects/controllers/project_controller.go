package projects_controllers

import (
	"net/http"
	"strconv"

	projects_dto "workforce/internal/features/projects/dto"
	projects_services "workforce/internal/features/projects/services"
	users_enums "workforce/internal/features/users/enums"
	users_middleware "workforce/internal/features/users/middleware"
	"workforce/internal/util/apierror"

	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	projectService *projects_services.ProjectService
}

func (c *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	manageProjects := users_middleware.RequirePermission(users_enums.PermissionManageProjects)
	manageAssignments := users_middleware.RequirePermission(users_enums.PermissionManageAssignments)

	router.GET("/projects", c.GetProjects)
	router.GET("/projects/:projectId", c.GetProjectDetail)
	router.POST("/projects", manageProjects, c.CreateProject)
	router.POST("/projects/:projectId/requirements", manageProjects, c.AddRequirement)
	router.POST("/projects/:projectId/assignments", manageAssignments, c.AddAssignment)
}

func (c *ProjectController) GetProjects(ctx *gin.Context) {
	projects, err := c.projectService.GetProjects()
	if err != nil {
		apierror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

func (c *ProjectController) GetProjectDetail(ctx *gin.Context) {
	projectID, ok := parseProjectID(ctx)
	if !ok {
		return
	}

	detail, err := c.projectService.GetProjectDetail(projectID)
	if err != nil {
		apierror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

func (c *ProjectController) CreateProject(ctx *gin.Context) {
	user, _ := users_middleware.GetUserFromContext(ctx)

	var request projects_dto.CreateProjectRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		apierror.RespondBinding(ctx, err)
		return
	}

	project, err := c.projectService.CreateProject(&request, user)
	if err != nil {
		apierror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, project)
}

func (c *ProjectController) AddRequirement(ctx *gin.Context) {
	user, _ := users_middleware.GetUserFromContext(ctx)

	projectID, ok := parseProjectID(ctx)
	if !ok {
		return
	}

	var request projects_dto.CreateRequirementRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		apierror.RespondBinding(ctx, err)
		return
	}

	requirement, err := c.projectService.AddRequirement(projectID, &request, user)
	if err != nil {
		apierror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, requirement)
}

func (c *ProjectController) AddAssignment(ctx *gin.Context) {
	user, _ := users_middleware.GetUserFromContext(ctx)

	projectID, ok := parseProjectID(ctx)
	if !ok {
		return
	}

	var request projects_dto.CreateAssignmentRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		apierror.RespondBinding(ctx, err)
		return
	}

	assignment, err := c.projectService.AddAssignment(projectID, &request, user)
	if err != nil {
		apierror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, assignment)
}

func parseProjectID(ctx *gin.Context) (int64, bool) {
	projectID, err := strconv.ParseInt(ctx.Param("projectId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid project id"})
		return 0, false
	}

	return projectID, true
}
