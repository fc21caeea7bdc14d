package skills

import (
	"net/http"
	"strconv"

	users_enums "workforce/internal/features/users/enums"
	users_middleware "workforce/internal/features/users/middleware"
	"workforce/internal/util/apierror"

	"github.com/gin-gonic/gin"
)

type SkillController struct {
	skillService *SkillService
}

func (c *SkillController) RegisterRoutes(router *gin.RouterGroup) {
	manageSkills := users_middleware.RequirePermission(users_enums.PermissionManageSkills)

	router.GET("/skills", c.GetAllSkills)
	router.POST("/skills", manageSkills, c.CreateSkill)
	router.PATCH("/skills/:id", manageSkills, c.UpdateSkill)
	router.DELETE("/skills/:id", manageSkills, c.DeleteSkill)

	router.GET("/categories", c.GetAllCategories)
	router.POST("/categories", manageSkills, c.CreateCategory)
	router.PATCH("/categories/:id", manageSkills, c.UpdateCategory)
	router.DELETE("/categories/:id", manageSkills, c.DeleteCategory)

	router.GET("/employees/:employeeId/skills", c.GetEmployeeSkills)
	router.POST("/employees/:employeeId/skills", c.UpsertEmployeeSkill)
}

func (c *SkillController) GetAllSkills(ctx *gin.Context) {
	allSkills, err := c.skillService.GetAllSkills()
	if err != nil {
		apierror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, allSkills)
}

func (c *SkillController) CreateSkill(ctx *gin.Context) {
	user, _ := users_middleware.GetUserFromContext(ctx)

	var request CreateSkillRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		apierror.RespondBinding(ctx, err)
		return
	}

	skill, err := c.skillService.CreateSkill(&request, user)
	if err != nil {
		apierror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, skill)
}

func (c *SkillController) UpdateSkill(ctx *gin.Context) {
	user, _ := users_middleware.GetUserFromContext(ctx)

	skillID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var request UpdateSkillRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		apierror.RespondBinding(ctx, err)
		return
	}

	skill, err := c.skillService.UpdateSkill(skillID, &request, user)
	if err != nil {
		apierror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, skill)
}

func (c *SkillController) DeleteSkill(ctx *gin.Context) {
	user, _ := users_middleware.GetUserFromContext(ctx)

	skillID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.skillService.DeleteSkill(skillID, user); err != nil {
		apierror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Skill deleted successfully"})
}

func (c *SkillController) GetAllCategories(ctx *gin.Context) {
	categories, err := c.skillService.GetAllCategories()
	if err != nil {
		apierror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

func (c *SkillController) CreateCategory(ctx *gin.Context) {
	user, _ := users_middleware.GetUserFromContext(ctx)

	var request CreateCategoryRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		apierror.RespondBinding(ctx, err)
		return
	}

	category, err := c.skillService.CreateCategory(&request, user)
	if err != nil {
		apierror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

func (c *SkillController) UpdateCategory(ctx *gin.Context) {
	user, _ := users_middleware.GetUserFromContext(ctx)

	categoryID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var request CreateCategoryRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		apierror.RespondBinding(ctx, err)
		return
	}

	category, err := c.skillService.UpdateCategory(categoryID, &request, user)
	if err != nil {
		apierror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, category)
}

func (c *SkillController) DeleteCategory(ctx *gin.Context) {
	user, _ := users_middleware.GetUserFromContext(ctx)

	categoryID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.skillService.DeleteCategory(categoryID, user); err != nil {
		apierror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

func (c *SkillController) GetEmployeeSkills(ctx *gin.Context) {
	user, _ := users_middleware.GetUserFromContext(ctx)

	employeeID, ok := parseIDParam(ctx, "employeeId")
	if !ok {
		return
	}

	mappings, err := c.skillService.GetEmployeeSkills(employeeID, user)
	if err != nil {
		apierror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mappings)
}

func (c *SkillController) UpsertEmployeeSkill(ctx *gin.Context) {
	user, _ := users_middleware.GetUserFromContext(ctx)

	employeeID, ok := parseIDParam(ctx, "employeeId")
	if !ok {
		return
	}

	var request UpsertSkillMappingRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		apierror.RespondBinding(ctx, err)
		return
	}

	mapping, err := c.skillService.UpsertEmployeeSkill(employeeID, &request, user)
	if err != nil {
		apierror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, mapping)
}

func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, false
	}

	return id, true
}
