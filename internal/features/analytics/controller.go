package analytics

import (
	"net/http"

	"workforce/internal/util/apierror"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	analyticsService *AnalyticsService
}

func (c *AnalyticsController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard/metrics", c.GetDashboardMetrics)
	router.GET("/dashboard/skill-distribution", c.GetSkillDistribution)
	router.GET("/dashboard/recruitment-needs", c.GetRecruitmentNeeds)
}

func (c *AnalyticsController) GetDashboardMetrics(ctx *gin.Context) {
	metrics, err := c.analyticsService.GetDashboardMetrics()
	if err != nil {
		apierror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, metrics)
}

func (c *AnalyticsController) GetSkillDistribution(ctx *gin.Context) {
	distribution, err := c.analyticsService.GetSkillDistribution()
	if err != nil {
		apierror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, distribution)
}

func (c *AnalyticsController) GetRecruitmentNeeds(ctx *gin.Context) {
	needs, err := c.analyticsService.GetRecruitmentNeeds()
	if err != nil {
		apierror.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, needs)
}
