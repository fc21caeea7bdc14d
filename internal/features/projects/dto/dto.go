package projects_dto

import (
	"time"

	projects_models "workforce/internal/features/projects/models"
	"workforce/internal/features/skills"
)

type CreateProjectRequestDTO struct {
	Name        string    `json:"name" binding:"required,min=2,max=200"`
	Code        string    `json:"code" binding:"required,min=2,max=32"`
	Description string    `json:"description" binding:"max=2000"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
}

type CreateRequirementRequestDTO struct {
	SkillID        int64                 `json:"skillId" binding:"required"`
	ExperienceBand skills.ExperienceBand `json:"experienceBand" binding:"required"`
	PeopleNeeded   int                   `json:"peopleNeeded" binding:"required,gte=1,lte=500"`
	HoursPerMonth  int                   `json:"hoursPerMonth" binding:"required,gte=1,lte=320"`
}

type CreateAssignmentRequestDTO struct {
	EmployeeID            int64                 `json:"employeeId" binding:"required"`
	SkillID               int64                 `json:"skillId" binding:"required"`
	ExperienceBand        skills.ExperienceBand `json:"experienceBand" binding:"required"`
	AssignedHoursPerMonth int                   `json:"assignedHoursPerMonth" binding:"required,gte=1,lte=320"`
}

type ProjectListItemDTO struct {
	projects_models.Project
	RequirementsCount     int `json:"requirementsCount"`
	AssignmentsCount      int `json:"assignmentsCount"`
	FulfillmentPercentage int `json:"fulfillmentPercentage"`
}

type RequirementDetailDTO struct {
	projects_models.ProjectRequirement
	SkillName             string `json:"skillName"`
	AssignedCount         int    `json:"assignedCount"`
	FulfillmentPercentage int    `json:"fulfillmentPercentage"`
}

type AssignmentDetailDTO struct {
	projects_models.ProjectAssignment
	EmployeeName string `json:"employeeName"`
	SkillName    string `json:"skillName"`
}

type ProjectDetailDTO struct {
	projects_models.Project
	CreatedByName         string                 `json:"createdByName"`
	Requirements          []RequirementDetailDTO `json:"requirements"`
	Assignments           []AssignmentDetailDTO  `json:"assignments"`
	FulfillmentPercentage int                    `json:"fulfillmentPercentage"`
}
