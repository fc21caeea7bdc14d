package projects_services

import (
	projects_repositories "workforce/internal/features/projects/repositories"
	"workforce/internal/features/skills"
	users_repositories "workforce/internal/features/users/repositories"
)

var projectRepository = projects_repositories.NewPostgresProjectRepository()
var requirementRepository = projects_repositories.NewPostgresRequirementRepository()
var assignmentRepository = projects_repositories.NewPostgresAssignmentRepository()

var projectService = NewProjectService(
	projectRepository,
	requirementRepository,
	assignmentRepository,
	skills.GetSkillService(),
	&users_repositories.UserRepository{},
)

func GetProjectService() *ProjectService {
	return projectService
}

func GetProjectRepository() *projects_repositories.PostgresProjectRepository {
	return projectRepository
}

func GetRequirementRepository() *projects_repositories.PostgresRequirementRepository {
	return requirementRepository
}

func GetAssignmentRepository() *projects_repositories.PostgresAssignmentRepository {
	return assignmentRepository
}
