package projects_repositories

import (
	projects_models "workforce/internal/features/projects/models"
	"workforce/internal/storage"
)

type PostgresAssignmentRepository struct{}

func NewPostgresAssignmentRepository() *PostgresAssignmentRepository {
	return &PostgresAssignmentRepository{}
}

func (r *PostgresAssignmentRepository) CreateAssignment(
	assignment *projects_models.ProjectAssignment,
) error {
	return storage.GetDb().Create(assignment).Error
}

func (r *PostgresAssignmentRepository) GetAssignmentsByProject(
	projectID int64,
) ([]projects_models.ProjectAssignment, error) {
	var assignments []projects_models.ProjectAssignment

	err := storage.GetDb().
		Where("project_id = ?", projectID).
		Order("id ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}

	return assignments, nil
}

func (r *PostgresAssignmentRepository) GetAssignmentsByEmployee(
	employeeID int64,
) ([]projects_models.ProjectAssignment, error) {
	var assignments []projects_models.ProjectAssignment

	err := storage.GetDb().
		Where("employee_id = ?", employeeID).
		Order("id ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}

	return assignments, nil
}

func (r *PostgresAssignmentRepository) GetAllAssignments() ([]projects_models.ProjectAssignment, error) {
	var assignments []projects_models.ProjectAssignment

	if err := storage.GetDb().Find(&assignments).Error; err != nil {
		return nil, err
	}

	return assignments, nil
}

func (r *PostgresAssignmentRepository) CountBySkill(skillID int64) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&projects_models.ProjectAssignment{}).
		Where("skill_id = ?", skillID).
		Count(&count).Error

	return count, err
}
