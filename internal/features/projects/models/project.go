package projects_models

import (
	"time"

	"workforce/internal/features/skills"
)

type Project struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Code        string    `gorm:"uniqueIndex;not null" json:"code"`
	Description string    `json:"description"`
	StartDate   time.Time `gorm:"not null" json:"startDate"`
	EndDate     time.Time `gorm:"not null" json:"endDate"`
	CreatedBy   int64     `gorm:"index;not null" json:"createdBy"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

type ProjectRequirement struct {
	ID             int64                  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID      int64                  `gorm:"index;not null" json:"projectId"`
	SkillID        int64                  `gorm:"index;not null" json:"skillId"`
	ExperienceBand skills.ExperienceBand  `gorm:"not null" json:"experienceBand"`
	PeopleNeeded   int                    `gorm:"not null" json:"peopleNeeded"`
	HoursPerMonth  int                    `gorm:"not null" json:"hoursPerMonth"`
	CreatedAt      time.Time              `gorm:"autoCreateTime" json:"createdAt"`
}

type ProjectAssignment struct {
	ID                    int64                 `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID             int64                 `gorm:"index;not null" json:"projectId"`
	EmployeeID            int64                 `gorm:"index;not null" json:"employeeId"`
	SkillID               int64                 `gorm:"index;not null" json:"skillId"`
	ExperienceBand        skills.ExperienceBand `gorm:"not null" json:"experienceBand"`
	AssignedHoursPerMonth int                   `gorm:"not null" json:"assignedHoursPerMonth"`
	AssignedBy            int64                 `gorm:"not null" json:"assignedBy"`
	AssignedAt            time.Time             `gorm:"autoCreateTime" json:"assignedAt"`
}
