package projects_repositories

import (
	"gorm.io/gorm"

	projects_models "workforce/internal/features/projects/models"
	"workforce/internal/storage"
)

type PostgresProjectRepository struct{}

func NewPostgresProjectRepository() *PostgresProjectRepository {
	return &PostgresProjectRepository{}
}

func (r *PostgresProjectRepository) CreateProject(project *projects_models.Project) error {
	return storage.GetDb().Create(project).Error
}

func (r *PostgresProjectRepository) GetProjectByID(projectID int64) (*projects_models.Project, error) {
	var project projects_models.Project

	if err := storage.GetDb().Where("id = ?", projectID).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &project, nil
}

func (r *PostgresProjectRepository) GetProjectByCode(code string) (*projects_models.Project, error) {
	var project projects_models.Project

	if err := storage.GetDb().Where("LOWER(code) = LOWER(?)", code).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &project, nil
}

func (r *PostgresProjectRepository) GetAllProjects() ([]projects_models.Project, error) {
	var projects []projects_models.Project

	if err := storage.GetDb().Order("created_at DESC, id DESC").Find(&projects).Error; err != nil {
		return nil, err
	}

	return projects, nil
}
