package pipeline

import (
	"gorm.io/gorm"

	"workforce/internal/storage"
)

type PipelineRepository interface {
	CreatePipeline(entry *ProjectPipeline) error
	GetPipelineByID(pipelineID int64) (*ProjectPipeline, error)
	GetAllPipelines() ([]ProjectPipeline, error)
}

type DemandRepository interface {
	CreateDemand(demand *PipelineSkillDemand) error
	GetDemandsByPipeline(pipelineID int64) ([]PipelineSkillDemand, error)
	GetAllDemands() ([]PipelineSkillDemand, error)
	CountBySkill(skillID int64) (int64, error)
}

type PostgresPipelineRepository struct{}

func (r *PostgresPipelineRepository) CreatePipeline(entry *ProjectPipeline) error {
	return storage.GetDb().Create(entry).Error
}

func (r *PostgresPipelineRepository) GetPipelineByID(pipelineID int64) (*ProjectPipeline, error) {
	var entry ProjectPipeline

	if err := storage.GetDb().Where("id = ?", pipelineID).First(&entry).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &entry, nil
}

func (r *PostgresPipelineRepository) GetAllPipelines() ([]ProjectPipeline, error) {
	var entries []ProjectPipeline

	if err := storage.GetDb().Order("created_at DESC, id DESC").Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

type PostgresDemandRepository struct{}

func (r *PostgresDemandRepository) CreateDemand(demand *PipelineSkillDemand) error {
	return storage.GetDb().Create(demand).Error
}

func (r *PostgresDemandRepository) GetDemandsByPipeline(pipelineID int64) ([]PipelineSkillDemand, error) {
	var demands []PipelineSkillDemand

	err := storage.GetDb().
		Where("pipeline_id = ?", pipelineID).
		Order("id ASC").
		Find(&demands).Error
	if err != nil {
		return nil, err
	}

	return demands, nil
}

func (r *PostgresDemandRepository) GetAllDemands() ([]PipelineSkillDemand, error) {
	var demands []PipelineSkillDemand

	if err := storage.GetDb().Find(&demands).Error; err != nil {
		return nil, err
	}

	return demands, nil
}

func (r *PostgresDemandRepository) CountBySkill(skillID int64) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&PipelineSkillDemand{}).
		Where("skill_id = ?", skillID).
		Count(&count).Error

	return count, err
}
