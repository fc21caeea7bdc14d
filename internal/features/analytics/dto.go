package analytics

import "workforce/internal/features/skills"

type DashboardMetricsDTO struct {
	ActiveProjects   int `json:"activeProjects"`
	BenchEmployees   int `json:"benchEmployees"`
	PipelineProjects int `json:"pipelineProjects"`
	SkillGaps        int `json:"skillGaps"`
}

type SkillDistributionDTO struct {
	SkillID      int64                         `json:"skillId"`
	SkillName    string                        `json:"skillName"`
	Category     string                        `json:"category"`
	Bands        map[skills.ExperienceBand]int `json:"bands"`
	Beginner     int                           `json:"beginner"`
	Intermediate int                           `json:"intermediate"`
	Expert       int                           `json:"expert"`
	Total        int                           `json:"total"`
}

type RecruitmentNeedDTO struct {
	SkillID               int64                 `json:"skillId"`
	SkillName             string                `json:"skillName"`
	ExperienceBand        skills.ExperienceBand `json:"experienceBand"`
	Needed                int                   `json:"needed"`
	Available             int                   `json:"available"`
	FulfillmentPercentage int                   `json:"fulfillmentPercentage"`
	Gap                   int                   `json:"gap"`
	Priority              Priority              `json:"priority"`
}
