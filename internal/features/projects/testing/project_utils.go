package projects_testing

import (
	"sort"
	"sync"

	projects_models "workforce/internal/features/projects/models"
	projects_services "workforce/internal/features/projects/services"
	"workforce/internal/features/skills"
	users_testing "workforce/internal/features/users/testing"
)

// MemoryProjectRepository implements projects_interfaces.ProjectRepository for
// tests that should run without Postgres.
type MemoryProjectRepository struct {
	mu       sync.Mutex
	projects map[int64]*projects_models.Project
	nextID   int64
}

func NewMemoryProjectRepository() *MemoryProjectRepository {
	return &MemoryProjectRepository{projects: make(map[int64]*projects_models.Project)}
}

func (r *MemoryProjectRepository) CreateProject(project *projects_models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	project.ID = r.nextID

	copied := *project
	r.projects[project.ID] = &copied

	return nil
}

func (r *MemoryProjectRepository) GetProjectByID(projectID int64) (*projects_models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	project, ok := r.projects[projectID]
	if !ok {
		return nil, nil
	}

	copied := *project
	return &copied, nil
}

func (r *MemoryProjectRepository) GetProjectByCode(code string) (*projects_models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, project := range r.projects {
		if project.Code == code {
			copied := *project
			return &copied, nil
		}
	}

	return nil, nil
}

func (r *MemoryProjectRepository) GetAllProjects() ([]projects_models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	projects := make([]projects_models.Project, 0, len(r.projects))
	for _, project := range r.projects {
		projects = append(projects, *project)
	}

	sort.Slice(projects, func(i, j int) bool { return projects[i].ID > projects[j].ID })

	return projects, nil
}

type MemoryRequirementRepository struct {
	mu           sync.Mutex
	requirements []projects_models.ProjectRequirement
	nextID       int64
}

func NewMemoryRequirementRepository() *MemoryRequirementRepository {
	return &MemoryRequirementRepository{}
}

func (r *MemoryRequirementRepository) CreateRequirement(
	requirement *projects_models.ProjectRequirement,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	requirement.ID = r.nextID
	r.requirements = append(r.requirements, *requirement)

	return nil
}

func (r *MemoryRequirementRepository) GetRequirementsByProject(
	projectID int64,
) ([]projects_models.ProjectRequirement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []projects_models.ProjectRequirement
	for _, requirement := range r.requirements {
		if requirement.ProjectID == projectID {
			result = append(result, requirement)
		}
	}

	return result, nil
}

func (r *MemoryRequirementRepository) GetAllRequirements() ([]projects_models.ProjectRequirement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]projects_models.ProjectRequirement(nil), r.requirements...), nil
}

func (r *MemoryRequirementRepository) CountBySkill(skillID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, requirement := range r.requirements {
		if requirement.SkillID == skillID {
			count++
		}
	}

	return count, nil
}

type MemoryAssignmentRepository struct {
	mu          sync.Mutex
	assignments []projects_models.ProjectAssignment
	nextID      int64
}

func NewMemoryAssignmentRepository() *MemoryAssignmentRepository {
	return &MemoryAssignmentRepository{}
}

func (r *MemoryAssignmentRepository) CreateAssignment(
	assignment *projects_models.ProjectAssignment,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	assignment.ID = r.nextID
	r.assignments = append(r.assignments, *assignment)

	return nil
}

func (r *MemoryAssignmentRepository) GetAssignmentsByProject(
	projectID int64,
) ([]projects_models.ProjectAssignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []projects_models.ProjectAssignment
	for _, assignment := range r.assignments {
		if assignment.ProjectID == projectID {
			result = append(result, assignment)
		}
	}

	return result, nil
}

func (r *MemoryAssignmentRepository) GetAssignmentsByEmployee(
	employeeID int64,
) ([]projects_models.ProjectAssignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []projects_models.ProjectAssignment
	for _, assignment := range r.assignments {
		if assignment.EmployeeID == employeeID {
			result = append(result, assignment)
		}
	}

	return result, nil
}

func (r *MemoryAssignmentRepository) GetAllAssignments() ([]projects_models.ProjectAssignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]projects_models.ProjectAssignment(nil), r.assignments...), nil
}

func (r *MemoryAssignmentRepository) CountBySkill(skillID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, assignment := range r.assignments {
		if assignment.SkillID == skillID {
			count++
		}
	}

	return count, nil
}

type noopActivityWriter struct{}

func (noopActivityWriter) WriteActivity(activityType string, description string, userID *int64, relatedID *int64) {
}

// TestProjectEnv bundles a project service with the in-memory repositories
// and collaborators backing it.
type TestProjectEnv struct {
	Service        *projects_services.ProjectService
	Projects       *MemoryProjectRepository
	Requirements   *MemoryRequirementRepository
	Assignments    *MemoryAssignmentRepository
	SkillService   *skills.SkillService
	SkillRepo      *skills.MemorySkillRepository
	UserRepository *users_testing.MemoryUserRepository
}

func NewTestProjectEnv() *TestProjectEnv {
	skillService, skillRepository, _ := skills.NewTestSkillService()

	env := &TestProjectEnv{
		Projects:       NewMemoryProjectRepository(),
		Requirements:   NewMemoryRequirementRepository(),
		Assignments:    NewMemoryAssignmentRepository(),
		SkillService:   skillService,
		SkillRepo:      skillRepository,
		UserRepository: users_testing.NewMemoryUserRepository(),
	}

	env.Service = projects_services.NewProjectService(
		env.Projects,
		env.Requirements,
		env.Assignments,
		skillService,
		env.UserRepository,
	)
	env.Service.SetActivityWriter(noopActivityWriter{})

	return env
}
