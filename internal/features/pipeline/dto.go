package pipeline

import (
	"time"

	"workforce/internal/features/skills"
)

type CreatePipelineRequestDTO struct {
	Name              string         `json:"name"              binding:"required,min=2,max=200"`
	ExpectedStartDate time.Time      `json:"expectedStartDate" binding:"required"`
	ExpectedEndDate   time.Time      `json:"expectedEndDate"   binding:"required"`
	Status            PipelineStatus `json:"status"`
}

type CreateDemandRequestDTO struct {
	SkillID        int64                 `json:"skillId"        binding:"required"`
	ExperienceBand skills.ExperienceBand `json:"experienceBand" binding:"required"`
	PeopleNeeded   int                   `json:"peopleNeeded"   binding:"required,gte=1,lte=500"`
}

type DemandResponseDTO struct {
	PipelineSkillDemand
	SkillName string `json:"skillName"`
}

type PipelineResponseDTO struct {
	ProjectPipeline
	Demands []DemandResponseDTO `json:"demands"`
}
