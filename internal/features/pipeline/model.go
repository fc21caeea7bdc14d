package pipeline

import (
	"time"

	"workforce/internal/features/skills"
)

type PipelineStatus string

const (
	StatusProspect    PipelineStatus = "Prospect"
	StatusNegotiation PipelineStatus = "Negotiation"
	StatusWon         PipelineStatus = "Won"
	StatusLost        PipelineStatus = "Lost"
)

func (s PipelineStatus) IsValid() bool {
	switch s {
	case StatusProspect, StatusNegotiation, StatusWon, StatusLost:
		return true
	}

	return false
}

// IsOpen reports whether the deal still contributes to demand forecasts.
func (s PipelineStatus) IsOpen() bool {
	return s == StatusProspect || s == StatusNegotiation
}

type ProjectPipeline struct {
	ID                int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string         `gorm:"not null" json:"name"`
	ExpectedStartDate time.Time      `gorm:"not null" json:"expectedStartDate"`
	ExpectedEndDate   time.Time      `gorm:"not null" json:"expectedEndDate"`
	Status            PipelineStatus `gorm:"not null" json:"status"`
	CreatedBy         int64          `gorm:"index;not null" json:"createdBy"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"createdAt"`
}

type PipelineSkillDemand struct {
	ID             int64                 `gorm:"primaryKey;autoIncrement" json:"id"`
	PipelineID     int64                 `gorm:"index;not null" json:"pipelineId"`
	SkillID        int64                 `gorm:"index;not null" json:"skillId"`
	ExperienceBand skills.ExperienceBand `gorm:"not null" json:"experienceBand"`
	PeopleNeeded   int                   `gorm:"not null" json:"peopleNeeded"`
	CreatedAt      time.Time             `gorm:"autoCreateTime" json:"createdAt"`
}
