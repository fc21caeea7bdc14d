package timesheets

type CreateTimesheetRequestDTO struct {
	ProjectID int64   `json:"projectId" binding:"required"`
	Date      string  `json:"date"      binding:"required"`
	Hours     float64 `json:"hours"     binding:"required,gte=0.5,lte=8"`
}

type TimesheetResponseDTO struct {
	Timesheet
	ProjectName string `json:"projectName"`
	ProjectCode string `json:"projectCode"`
}
