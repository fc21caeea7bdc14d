package skills

import "time"

type CreateSkillRequestDTO struct {
	Name     string `json:"name"     binding:"required,min=2"`
	Category string `json:"category" binding:"required"`
}

type UpdateSkillRequestDTO struct {
	Name     *string `json:"name"     binding:"omitempty,min=2"`
	Category *string `json:"category" binding:"omitempty"`
}

type CreateCategoryRequestDTO struct {
	Name string `json:"name" binding:"required,min=2"`
}

type UpsertSkillMappingRequestDTO struct {
	SkillID           int64          `json:"skillId"           binding:"required"`
	ExperienceBand    ExperienceBand `json:"experienceBand"    binding:"required"`
	Rating            SkillRating    `json:"rating"            binding:"required"`
	YearsOfExperience float64        `json:"yearsOfExperience" binding:"gte=0,lte=50"`
}

type SkillMappingResponseDTO struct {
	ID                int64          `json:"id"`
	EmployeeID        int64          `json:"employeeId"`
	SkillID           int64          `json:"skillId"`
	ExperienceBand    ExperienceBand `json:"experienceBand"`
	Rating            SkillRating    `json:"rating"`
	YearsOfExperience float64        `json:"yearsOfExperience"`
	SkillName         string         `json:"skillName"`
	SkillCategory     string         `json:"skillCategory"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}
