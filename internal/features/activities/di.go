package activities

import (
	"workforce/internal/features/pipeline"
	projects_services "workforce/internal/features/projects/services"
	"workforce/internal/features/skills"
	"workforce/internal/features/timesheets"
	users_repositories "workforce/internal/features/users/repositories"
	users_services "workforce/internal/features/users/services"
	"workforce/internal/util/logger"
)

var activityRepository = &PostgresActivityRepository{}

var activityService = NewActivityService(
	activityRepository,
	&users_repositories.UserRepository{},
	logger.GetLogger(),
)

var activityController = &ActivityController{activityService: activityService}

func GetActivityService() *ActivityService {
	return activityService
}

func GetActivityController() *ActivityController {
	return activityController
}

// SetupDependencies hands the activity writer to every feature that records
// activity. Called once from main; features cannot import this package at
// init time without creating a cycle.
func SetupDependencies() {
	users_services.GetUserService().SetActivityWriter(activityService)
	skills.GetSkillService().SetActivityWriter(activityService)
	projects_services.GetProjectService().SetActivityWriter(activityService)
	timesheets.GetTimesheetService().SetActivityWriter(activityService)
	pipeline.GetPipelineService().SetActivityWriter(activityService)
}
