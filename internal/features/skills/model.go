package skills

import "time"

type Skill struct {
	ID       int64  `json:"id"       gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name"     gorm:"uniqueIndex;not null"`
	Category string `json:"category" gorm:"not null"`
}

func (Skill) TableName() string {
	return "skills"
}

type SkillCategory struct {
	ID   int64  `json:"id"   gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

func (SkillCategory) TableName() string {
	return "skill_categories"
}

// SkillMapping links an employee to a skill at one experience band. The
// composite unique index backs the upsert semantics: at most one mapping per
// (employee, skill, band).
type SkillMapping struct {
	ID                int64          `json:"id"                gorm:"primaryKey;autoIncrement"`
	EmployeeID        int64          `json:"employeeId"        gorm:"not null;uniqueIndex:idx_mapping_employee_skill_band"`
	SkillID           int64          `json:"skillId"           gorm:"not null;uniqueIndex:idx_mapping_employee_skill_band;index"`
	ExperienceBand    ExperienceBand `json:"experienceBand"    gorm:"not null;uniqueIndex:idx_mapping_employee_skill_band"`
	Rating            SkillRating    `json:"rating"            gorm:"not null"`
	YearsOfExperience float64        `json:"yearsOfExperience" gorm:"not null"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

func (SkillMapping) TableName() string {
	return "skill_mappings"
}
