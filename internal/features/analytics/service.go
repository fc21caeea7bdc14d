package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"workforce/internal/features/skills"
	users_enums "workforce/internal/features/users/enums"
)

type AnalyticsService struct {
	skillReader       SkillReader
	mappingReader     MappingReader
	projectReader     ProjectReader
	requirementReader RequirementReader
	assignmentReader  AssignmentReader
	employeeCounter   EmployeeCounter
	pipelineReader    PipelineReader
	demandReader      DemandReader

	priorityRules []PriorityRule
}

func NewAnalyticsService(
	skillReader SkillReader,
	mappingReader MappingReader,
	projectReader ProjectReader,
	requirementReader RequirementReader,
	assignmentReader AssignmentReader,
	employeeCounter EmployeeCounter,
	pipelineReader PipelineReader,
	demandReader DemandReader,
) *AnalyticsService {
	return &AnalyticsService{
		skillReader:       skillReader,
		mappingReader:     mappingReader,
		projectReader:     projectReader,
		requirementReader: requirementReader,
		assignmentReader:  assignmentReader,
		employeeCounter:   employeeCounter,
		pipelineReader:    pipelineReader,
		demandReader:      demandReader,
		priorityRules:     DefaultPriorityRules(),
	}
}

func (s *AnalyticsService) SetPriorityRules(rules []PriorityRule) {
	s.priorityRules = rules
}

func (s *AnalyticsService) GetDashboardMetrics() (*DashboardMetricsDTO, error) {
	projects, err := s.projectReader.GetAllProjects()
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}

	now := time.Now()
	activeProjects := 0
	for _, project := range projects {
		if !project.EndDate.Before(now) {
			activeProjects++
		}
	}

	employeeCount, err := s.employeeCounter.CountUsersByRole(users_enums.UserRoleEmployee)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}

	assignments, err := s.assignmentReader.GetAllAssignments()
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	assignedEmployees := make(map[int64]struct{})
	for _, assignment := range assignments {
		assignedEmployees[assignment.EmployeeID] = struct{}{}
	}

	// Assignments referencing non-employee users could push this negative,
	// so it is clamped instead of trusting the data.
	benchEmployees := int(employeeCount) - len(assignedEmployees)
	if benchEmployees < 0 {
		benchEmployees = 0
	}

	pipelines, err := s.pipelineReader.GetAllPipelines()
	if err != nil {
		return nil, fmt.Errorf("failed to get pipeline entries: %w", err)
	}

	pipelineProjects := 0
	for _, entry := range pipelines {
		if entry.Status.IsOpen() {
			pipelineProjects++
		}
	}

	needs, err := s.GetRecruitmentNeeds()
	if err != nil {
		return nil, err
	}

	skillGaps := 0
	for _, need := range needs {
		if need.Gap > 0 {
			skillGaps++
		}
	}

	return &DashboardMetricsDTO{
		ActiveProjects:   activeProjects,
		BenchEmployees:   benchEmployees,
		PipelineProjects: pipelineProjects,
		SkillGaps:        skillGaps,
	}, nil
}

func (s *AnalyticsService) GetSkillDistribution() ([]SkillDistributionDTO, error) {
	allSkills, err := s.skillReader.GetAllSkills()
	if err != nil {
		return nil, fmt.Errorf("failed to get skills: %w", err)
	}

	mappings, err := s.mappingReader.GetAllMappings()
	if err != nil {
		return nil, fmt.Errorf("failed to get mappings: %w", err)
	}

	distribution := make([]SkillDistributionDTO, 0, len(allSkills))
	rowBySkill := make(map[int64]*SkillDistributionDTO, len(allSkills))

	for _, skill := range allSkills {
		row := SkillDistributionDTO{
			SkillID:   skill.ID,
			SkillName: skill.Name,
			Category:  skill.Category,
			Bands:     make(map[skills.ExperienceBand]int, len(skills.AllExperienceBands)),
		}
		for _, band := range skills.AllExperienceBands {
			row.Bands[band] = 0
		}

		distribution = append(distribution, row)
		rowBySkill[skill.ID] = &distribution[len(distribution)-1]
	}

	for _, mapping := range mappings {
		row, ok := rowBySkill[mapping.SkillID]
		if !ok {
			continue
		}

		row.Bands[mapping.ExperienceBand]++
		row.Total++

		switch mapping.Rating {
		case skills.RatingBeginner:
			row.Beginner++
		case skills.RatingIntermediate:
			row.Intermediate++
		case skills.RatingExpert:
			row.Expert++
		}
	}

	return distribution, nil
}

type demandKey struct {
	skillID int64
	band    skills.ExperienceBand
}

func (s *AnalyticsService) GetRecruitmentNeeds() ([]RecruitmentNeedDTO, error) {
	requirements, err := s.requirementReader.GetAllRequirements()
	if err != nil {
		return nil, fmt.Errorf("failed to get requirements: %w", err)
	}

	needed := make(map[demandKey]int)
	for _, requirement := range requirements {
		key := demandKey{requirement.SkillID, requirement.ExperienceBand}
		needed[key] += requirement.PeopleNeeded
	}

	pipelines, err := s.pipelineReader.GetAllPipelines()
	if err != nil {
		return nil, fmt.Errorf("failed to get pipeline entries: %w", err)
	}

	openPipelines := make(map[int64]struct{})
	for _, entry := range pipelines {
		if entry.Status.IsOpen() {
			openPipelines[entry.ID] = struct{}{}
		}
	}

	demands, err := s.demandReader.GetAllDemands()
	if err != nil {
		return nil, fmt.Errorf("failed to get demands: %w", err)
	}

	for _, demand := range demands {
		if _, open := openPipelines[demand.PipelineID]; !open {
			continue
		}

		key := demandKey{demand.SkillID, demand.ExperienceBand}
		needed[key] += demand.PeopleNeeded
	}

	mappings, err := s.mappingReader.GetAllMappings()
	if err != nil {
		return nil, fmt.Errorf("failed to get mappings: %w", err)
	}

	available := make(map[demandKey]map[int64]struct{})
	for _, mapping := range mappings {
		key := demandKey{mapping.SkillID, mapping.ExperienceBand}
		if available[key] == nil {
			available[key] = make(map[int64]struct{})
		}
		available[key][mapping.EmployeeID] = struct{}{}
	}

	allSkills, err := s.skillReader.GetAllSkills()
	if err != nil {
		return nil, fmt.Errorf("failed to get skills: %w", err)
	}

	skillNames := make(map[int64]string, len(allSkills))
	for _, skill := range allSkills {
		skillNames[skill.ID] = skill.Name
	}

	needs := make([]RecruitmentNeedDTO, 0, len(needed))

	for key, neededCount := range needed {
		availableCount := len(available[key])

		gap := neededCount - availableCount
		if gap < 0 {
			gap = 0
		}

		fulfillment := 0
		if neededCount > 0 {
			fulfillment = int(math.Round(float64(availableCount) / float64(neededCount) * 100))
		}

		skillName := skillNames[key.skillID]

		needs = append(needs, RecruitmentNeedDTO{
			SkillID:               key.skillID,
			SkillName:             skillName,
			ExperienceBand:        key.band,
			Needed:                neededCount,
			Available:             availableCount,
			FulfillmentPercentage: fulfillment,
			Gap:                   gap,
			Priority:              priorityFor(s.priorityRules, skillName, key.band, fulfillment),
		})
	}

	sort.Slice(needs, func(i, j int) bool {
		if needs[i].Priority != needs[j].Priority {
			return needs[i].Priority.rank() < needs[j].Priority.rank()
		}
		if needs[i].Gap != needs[j].Gap {
			return needs[i].Gap > needs[j].Gap
		}
		if needs[i].SkillID != needs[j].SkillID {
			return needs[i].SkillID < needs[j].SkillID
		}

		return needs[i].ExperienceBand < needs[j].ExperienceBand
	})

	return needs, nil
}
