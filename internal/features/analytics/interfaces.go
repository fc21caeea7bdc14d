package analytics

import (
	"workforce/internal/features/pipeline"
	projects_models "workforce/internal/features/projects/models"
	"workforce/internal/features/skills"
	users_enums "workforce/internal/features/users/enums"
)

type SkillReader interface {
	GetAllSkills() ([]*skills.Skill, error)
}

type MappingReader interface {
	GetAllMappings() ([]*skills.SkillMapping, error)
}

type ProjectReader interface {
	GetAllProjects() ([]projects_models.Project, error)
}

type RequirementReader interface {
	GetAllRequirements() ([]projects_models.ProjectRequirement, error)
}

type AssignmentReader interface {
	GetAllAssignments() ([]projects_models.ProjectAssignment, error)
}

type EmployeeCounter interface {
	CountUsersByRole(role users_enums.UserRole) (int64, error)
}

type PipelineReader interface {
	GetAllPipelines() ([]pipeline.ProjectPipeline, error)
}

type DemandReader interface {
	GetAllDemands() ([]pipeline.PipelineSkillDemand, error)
}
