package projects_services

import (
	"fmt"
	"math"

	projects_dto "workforce/internal/features/projects/dto"
	projects_interfaces "workforce/internal/features/projects/interfaces"
	projects_models "workforce/internal/features/projects/models"
	users_models "workforce/internal/features/users/models"
	"workforce/internal/util/apierror"
)

type ProjectService struct {
	projectRepository     projects_interfaces.ProjectRepository
	requirementRepository projects_interfaces.RequirementRepository
	assignmentRepository  projects_interfaces.AssignmentRepository
	skillReader           projects_interfaces.SkillReader
	userReader            projects_interfaces.UserReader
	// activity writer is never nil after DI wiring
	activityWriter projects_interfaces.ActivityWriter
}

func NewProjectService(
	projectRepository projects_interfaces.ProjectRepository,
	requirementRepository projects_interfaces.RequirementRepository,
	assignmentRepository projects_interfaces.AssignmentRepository,
	skillReader projects_interfaces.SkillReader,
	userReader projects_interfaces.UserReader,
) *ProjectService {
	return &ProjectService{
		projectRepository:     projectRepository,
		requirementRepository: requirementRepository,
		assignmentRepository:  assignmentRepository,
		skillReader:           skillReader,
		userReader:            userReader,
	}
}

func (s *ProjectService) SetActivityWriter(writer projects_interfaces.ActivityWriter) {
	s.activityWriter = writer
}

func (s *ProjectService) GetProjects() ([]projects_dto.ProjectListItemDTO, error) {
	projects, err := s.projectRepository.GetAllProjects()
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}

	items := make([]projects_dto.ProjectListItemDTO, 0, len(projects))

	for _, project := range projects {
		requirements, err := s.requirementRepository.GetRequirementsByProject(project.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get requirements: %w", err)
		}

		assignments, err := s.assignmentRepository.GetAssignmentsByProject(project.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get assignments: %w", err)
		}

		items = append(items, projects_dto.ProjectListItemDTO{
			Project:               project,
			RequirementsCount:     len(requirements),
			AssignmentsCount:      len(assignments),
			FulfillmentPercentage: fulfillmentPercentage(len(assignments), len(requirements)),
		})
	}

	return items, nil
}

func (s *ProjectService) GetProjectDetail(projectID int64) (*projects_dto.ProjectDetailDTO, error) {
	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return nil, apierror.NotFound("Project not found")
	}

	requirements, err := s.requirementRepository.GetRequirementsByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get requirements: %w", err)
	}

	assignments, err := s.assignmentRepository.GetAssignmentsByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	detail := projects_dto.ProjectDetailDTO{
		Project:               *project,
		Requirements:          make([]projects_dto.RequirementDetailDTO, 0, len(requirements)),
		Assignments:           make([]projects_dto.AssignmentDetailDTO, 0, len(assignments)),
		FulfillmentPercentage: fulfillmentPercentage(len(assignments), len(requirements)),
	}

	if creator, err := s.userReader.GetUserByID(project.CreatedBy); err == nil && creator != nil {
		detail.CreatedByName = creator.Name
	}

	for _, requirement := range requirements {
		assignedCount := 0

		for _, assignment := range assignments {
			if assignment.SkillID == requirement.SkillID &&
				assignment.ExperienceBand == requirement.ExperienceBand {
				assignedCount++
			}
		}

		detail.Requirements = append(detail.Requirements, projects_dto.RequirementDetailDTO{
			ProjectRequirement:    requirement,
			SkillName:             s.skillName(requirement.SkillID),
			AssignedCount:         assignedCount,
			FulfillmentPercentage: fulfillmentPercentage(assignedCount, requirement.PeopleNeeded),
		})
	}

	for _, assignment := range assignments {
		employeeName := ""
		if employee, err := s.userReader.GetUserByID(assignment.EmployeeID); err == nil && employee != nil {
			employeeName = employee.Name
		}

		detail.Assignments = append(detail.Assignments, projects_dto.AssignmentDetailDTO{
			ProjectAssignment: assignment,
			EmployeeName:      employeeName,
			SkillName:         s.skillName(assignment.SkillID),
		})
	}

	return &detail, nil
}

func (s *ProjectService) CreateProject(
	request *projects_dto.CreateProjectRequestDTO,
	creator *users_models.User,
) (*projects_models.Project, error) {
	if request.EndDate.Before(request.StartDate) {
		return nil, apierror.Validation("End date cannot be before start date")
	}

	existing, err := s.projectRepository.GetProjectByCode(request.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing project: %w", err)
	}
	if existing != nil {
		return nil, apierror.Validation("Project code already exists")
	}

	project := &projects_models.Project{
		Name:        request.Name,
		Code:        request.Code,
		Description: request.Description,
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
		CreatedBy:   creator.ID,
	}

	if err := s.projectRepository.CreateProject(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.activityWriter.WriteActivity(
		"project_created",
		fmt.Sprintf("Project %q created", project.Name),
		&creator.ID,
		&project.ID,
	)

	return project, nil
}

func (s *ProjectService) AddRequirement(
	projectID int64,
	request *projects_dto.CreateRequirementRequestDTO,
	creator *users_models.User,
) (*projects_models.ProjectRequirement, error) {
	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return nil, apierror.NotFound("Project not found")
	}

	if !request.ExperienceBand.IsValid() {
		return nil, apierror.Validation("Invalid experience band")
	}

	skill, err := s.skillReader.GetSkillByID(request.SkillID)
	if err != nil {
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	if skill == nil {
		return nil, apierror.Validation("Skill not found")
	}

	requirement := &projects_models.ProjectRequirement{
		ProjectID:      projectID,
		SkillID:        request.SkillID,
		ExperienceBand: request.ExperienceBand,
		PeopleNeeded:   request.PeopleNeeded,
		HoursPerMonth:  request.HoursPerMonth,
	}

	if err := s.requirementRepository.CreateRequirement(requirement); err != nil {
		return nil, fmt.Errorf("failed to create requirement: %w", err)
	}

	s.activityWriter.WriteActivity(
		"requirement_added",
		fmt.Sprintf("Requirement for %s (%s) added to %s", skill.Name, request.ExperienceBand, project.Name),
		&creator.ID,
		&project.ID,
	)

	return requirement, nil
}

func (s *ProjectService) AddAssignment(
	projectID int64,
	request *projects_dto.CreateAssignmentRequestDTO,
	assigner *users_models.User,
) (*projects_models.ProjectAssignment, error) {
	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return nil, apierror.NotFound("Project not found")
	}

	if !request.ExperienceBand.IsValid() {
		return nil, apierror.Validation("Invalid experience band")
	}

	employee, err := s.userReader.GetUserByID(request.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	if employee == nil || !employee.IsEmployee() {
		return nil, apierror.Validation("Employee not found")
	}

	skill, err := s.skillReader.GetSkillByID(request.SkillID)
	if err != nil {
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	if skill == nil {
		return nil, apierror.Validation("Skill not found")
	}

	assignment := &projects_models.ProjectAssignment{
		ProjectID:             projectID,
		EmployeeID:            request.EmployeeID,
		SkillID:               request.SkillID,
		ExperienceBand:        request.ExperienceBand,
		AssignedHoursPerMonth: request.AssignedHoursPerMonth,
		AssignedBy:            assigner.ID,
	}

	if err := s.assignmentRepository.CreateAssignment(assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	s.activityWriter.WriteActivity(
		"employee_assigned",
		fmt.Sprintf("%s assigned to %s", employee.Name, project.Name),
		&assigner.ID,
		&project.ID,
	)

	return assignment, nil
}

func (s *ProjectService) skillName(skillID int64) string {
	skill, err := s.skillReader.GetSkillByID(skillID)
	if err != nil || skill == nil {
		return ""
	}

	return skill.Name
}

// fulfillmentPercentage rounds half away from zero, matching the dashboard
// aggregations.
func fulfillmentPercentage(assigned int, needed int) int {
	if needed <= 0 {
		return 0
	}

	return int(math.Round(float64(assigned) / float64(needed) * 100))
}
