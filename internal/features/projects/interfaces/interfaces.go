package projects_interfaces

import (
	projects_models "workforce/internal/features/projects/models"
	"workforce/internal/features/skills"
	users_models "workforce/internal/features/users/models"
)

type ProjectRepository interface {
	CreateProject(project *projects_models.Project) error
	GetProjectByID(projectID int64) (*projects_models.Project, error)
	GetProjectByCode(code string) (*projects_models.Project, error)
	GetAllProjects() ([]projects_models.Project, error)
}

type RequirementRepository interface {
	CreateRequirement(requirement *projects_models.ProjectRequirement) error
	GetRequirementsByProject(projectID int64) ([]projects_models.ProjectRequirement, error)
	GetAllRequirements() ([]projects_models.ProjectRequirement, error)
	CountBySkill(skillID int64) (int64, error)
}

type AssignmentRepository interface {
	CreateAssignment(assignment *projects_models.ProjectAssignment) error
	GetAssignmentsByProject(projectID int64) ([]projects_models.ProjectAssignment, error)
	GetAssignmentsByEmployee(employeeID int64) ([]projects_models.ProjectAssignment, error)
	GetAllAssignments() ([]projects_models.ProjectAssignment, error)
	CountBySkill(skillID int64) (int64, error)
}

type UserReader interface {
	GetUserByID(userID int64) (*users_models.User, error)
}

type SkillReader interface {
	GetSkillByID(skillID int64) (*skills.Skill, error)
}

type ActivityWriter interface {
	WriteActivity(activityType string, description string, userID *int64, relatedID *int64)
}
