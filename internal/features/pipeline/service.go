package pipeline

import (
	"fmt"
	"time"

	"workforce/internal/features/skills"
	users_models "workforce/internal/features/users/models"
	"workforce/internal/util/apierror"
)

type SkillReader interface {
	GetSkillByID(skillID int64) (*skills.Skill, error)
}

type ActivityWriter interface {
	WriteActivity(activityType string, description string, userID *int64, relatedID *int64)
}

type PipelineService struct {
	pipelineRepository PipelineRepository
	demandRepository   DemandRepository
	skillReader        SkillReader
	// activity writer is never nil after DI wiring
	activityWriter ActivityWriter
}

func NewPipelineService(
	pipelineRepository PipelineRepository,
	demandRepository DemandRepository,
	skillReader SkillReader,
) *PipelineService {
	return &PipelineService{
		pipelineRepository: pipelineRepository,
		demandRepository:   demandRepository,
		skillReader:        skillReader,
	}
}

func (s *PipelineService) SetActivityWriter(writer ActivityWriter) {
	s.activityWriter = writer
}

func (s *PipelineService) GetPipelines() ([]PipelineResponseDTO, error) {
	entries, err := s.pipelineRepository.GetAllPipelines()
	if err != nil {
		return nil, fmt.Errorf("failed to get pipeline entries: %w", err)
	}

	responses := make([]PipelineResponseDTO, 0, len(entries))

	for _, entry := range entries {
		demands, err := s.demandRepository.GetDemandsByPipeline(entry.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get demands: %w", err)
		}

		response := PipelineResponseDTO{
			ProjectPipeline: entry,
			Demands:         make([]DemandResponseDTO, 0, len(demands)),
		}

		for _, demand := range demands {
			skillName := ""
			if skill, err := s.skillReader.GetSkillByID(demand.SkillID); err == nil && skill != nil {
				skillName = skill.Name
			}

			response.Demands = append(response.Demands, DemandResponseDTO{
				PipelineSkillDemand: demand,
				SkillName:           skillName,
			})
		}

		responses = append(responses, response)
	}

	return responses, nil
}

func (s *PipelineService) CreatePipeline(
	request *CreatePipelineRequestDTO,
	creator *users_models.User,
) (*ProjectPipeline, error) {
	status := request.Status
	if status == "" {
		status = StatusProspect
	}
	if !status.IsValid() {
		return nil, apierror.Validation("Invalid pipeline status")
	}

	today := time.Now().Truncate(24 * time.Hour)
	if request.ExpectedStartDate.Before(today) {
		return nil, apierror.Validation("Start date cannot be in the past")
	}

	if request.ExpectedEndDate.Before(request.ExpectedStartDate) {
		return nil, apierror.Validation("End date must be after start date")
	}

	entry := &ProjectPipeline{
		Name:              request.Name,
		ExpectedStartDate: request.ExpectedStartDate,
		ExpectedEndDate:   request.ExpectedEndDate,
		Status:            status,
		CreatedBy:         creator.ID,
	}

	if err := s.pipelineRepository.CreatePipeline(entry); err != nil {
		return nil, fmt.Errorf("failed to create pipeline entry: %w", err)
	}

	s.activityWriter.WriteActivity(
		"pipeline_created",
		fmt.Sprintf("Pipeline project %q added with status %s", entry.Name, entry.Status),
		&creator.ID,
		&entry.ID,
	)

	return entry, nil
}

func (s *PipelineService) AddDemand(
	pipelineID int64,
	request *CreateDemandRequestDTO,
	creator *users_models.User,
) (*PipelineSkillDemand, error) {
	entry, err := s.pipelineRepository.GetPipelineByID(pipelineID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pipeline entry: %w", err)
	}
	if entry == nil {
		return nil, apierror.NotFound("Pipeline project not found")
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

	demand := &PipelineSkillDemand{
		PipelineID:     pipelineID,
		SkillID:        request.SkillID,
		ExperienceBand: request.ExperienceBand,
		PeopleNeeded:   request.PeopleNeeded,
	}

	if err := s.demandRepository.CreateDemand(demand); err != nil {
		return nil, fmt.Errorf("failed to create demand: %w", err)
	}

	s.activityWriter.WriteActivity(
		"pipeline_demand_added",
		fmt.Sprintf("Demand for %s (%s) added to pipeline %q", skill.Name, request.ExperienceBand, entry.Name),
		&creator.ID,
		&entry.ID,
	)

	return demand, nil
}
