package timesheets

import (
	"net/http"
	"strconv"

	users_middleware "workforce/internal/features/users/middleware"
	"workforce/internal/util/apierror"

	"github.com/gin-gonic/gin"
)

type TimesheetController struct {
	timesheetService *TimesheetService
}

func (c *TimesheetController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/timesheets", c.CreateTimesheet)
	router.GET("/employees/:employeeId/timesheets", c.GetEmployeeTimesheets)
}

func (c *TimesheetController) CreateTimesheet(ctx *gin.Context) {
	user, _ := users_middleware.GetUserFromContext(ctx)

	var request CreateTimesheetRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		apierror.RespondBinding(ctx, err)
		return
	}

	timesheet, err := c.timesheetService.CreateTimesheet(&request, user)
	if err != nil {
		apierror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, timesheet)
}

func (c *TimesheetController) GetEmployeeTimesheets(ctx *gin.Context) {
	user, _ := users_middleware.GetUserFromContext(ctx)

	employeeID, err := strconv.ParseInt(ctx.Param("employeeId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid employee id"})
		return
	}

	entries, err := c.timesheetService.GetEmployeeTimesheets(employeeID, user)
	if err != nil {
		apierror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, entries)
}
