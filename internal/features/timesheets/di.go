package timesheets

import (
	projects_services "workforce/internal/features/projects/services"
)

var timesheetRepository = &PostgresTimesheetRepository{}

var timesheetService = NewTimesheetService(
	timesheetRepository,
	projects_services.GetProjectRepository(),
	projects_services.GetAssignmentRepository(),
)

var timesheetController = &TimesheetController{timesheetService: timesheetService}

func GetTimesheetService() *TimesheetService {
	return timesheetService
}

func GetTimesheetController() *TimesheetController {
	return timesheetController
}
