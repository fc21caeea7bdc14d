package projects_repositories

import (
	projects_models "workforce/internal/features/projects/models"
	"workforce/internal/storage"
)

type PostgresRequirementRepository struct{}

func NewPostgresRequirementRepository() *PostgresRequirementRepository {
	return &PostgresRequirementRepository{}
}

func (r *PostgresRequirementRepository) CreateRequirement(
	requirement *projects_models.ProjectRequirement,
) error {
	return storage.GetDb().Create(requirement).Error
}

func (r *PostgresRequirementRepository) GetRequirementsByProject(
	projectID int64,
) ([]projects_models.ProjectRequirement, error) {
	var requirements []projects_models.ProjectRequirement

	err := storage.GetDb().
		Where("project_id = ?", projectID).
		Order("id ASC").
		Find(&requirements).Error
	if err != nil {
		return nil, err
	}

	return requirements, nil
}

func (r *PostgresRequirementRepository) GetAllRequirements() ([]projects_models.ProjectRequirement, error) {
	var requirements []projects_models.ProjectRequirement

	if err := storage.GetDb().Find(&requirements).Error; err != nil {
		return nil, err
	}

	return requirements, nil
}

func (r *PostgresRequirementRepository) CountBySkill(skillID int64) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&projects_models.ProjectRequirement{}).
		Where("skill_id = ?", skillID).
		Count(&count).Error

	return count, err
}
