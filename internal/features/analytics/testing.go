package analytics

import (
	"workforce/internal/features/pipeline"
	projects_testing "workforce/internal/features/projects/testing"
	"workforce/internal/features/skills"
	users_testing "workforce/internal/features/users/testing"
)

// TestAnalyticsEnv bundles an analytics service with the in-memory
// repositories feeding it, so tests can seed data directly.
type TestAnalyticsEnv struct {
	Service      *AnalyticsService
	Skills       *skills.MemorySkillRepository
	Mappings     *skills.MemoryMappingRepository
	Projects     *projects_testing.MemoryProjectRepository
	Requirements *projects_testing.MemoryRequirementRepository
	Assignments  *projects_testing.MemoryAssignmentRepository
	Users        *users_testing.MemoryUserRepository
	Pipelines    *pipeline.MemoryPipelineRepository
	Demands      *pipeline.MemoryDemandRepository
}

func NewTestAnalyticsEnv() *TestAnalyticsEnv {
	env := &TestAnalyticsEnv{
		Skills:       skills.NewMemorySkillRepository(),
		Mappings:     skills.NewMemoryMappingRepository(),
		Projects:     projects_testing.NewMemoryProjectRepository(),
		Requirements: projects_testing.NewMemoryRequirementRepository(),
		Assignments:  projects_testing.NewMemoryAssignmentRepository(),
		Users:        users_testing.NewMemoryUserRepository(),
		Pipelines:    pipeline.NewMemoryPipelineRepository(),
		Demands:      pipeline.NewMemoryDemandRepository(),
	}

	env.Service = NewAnalyticsService(
		env.Skills,
		env.Mappings,
		env.Projects,
		env.Requirements,
		env.Assignments,
		env.Users,
		env.Pipelines,
		env.Demands,
	)

	return env
}
