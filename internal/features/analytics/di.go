package analytics

import (
	"workforce/internal/features/pipeline"
	projects_services "workforce/internal/features/projects/services"
	"workforce/internal/features/skills"
	users_repositories "workforce/internal/features/users/repositories"
)

var analyticsService = NewAnalyticsService(
	skills.GetSkillRepository(),
	skills.GetMappingRepository(),
	projects_services.GetProjectRepository(),
	projects_services.GetRequirementRepository(),
	projects_services.GetAssignmentRepository(),
	&users_repositories.UserRepository{},
	pipeline.GetPipelineRepository(),
	pipeline.GetDemandRepository(),
)

var analyticsController = &AnalyticsController{analyticsService: analyticsService}

func GetAnalyticsService() *AnalyticsService {
	return analyticsService
}

func GetAnalyticsController() *AnalyticsController {
	return analyticsController
}
