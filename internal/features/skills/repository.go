package skills

import (
	"time"

	"workforce/internal/storage"

	"gorm.io/gorm"
)

type SkillRepository interface {
	CreateSkill(skill *Skill) error
	GetSkillByID(skillID int64) (*Skill, error)
	GetSkillByName(name string) (*Skill, error)
	UpdateSkill(skill *Skill) error
	DeleteSkill(skillID int64) error
	GetAllSkills() ([]*Skill, error)
	CountSkillsByCategory(category string) (int64, error)
}

type CategoryRepository interface {
	CreateCategory(category *SkillCategory) error
	GetCategoryByID(categoryID int64) (*SkillCategory, error)
	GetCategoryByName(name string) (*SkillCategory, error)
	UpdateCategory(category *SkillCategory) error
	DeleteCategory(categoryID int64) error
	GetAllCategories() ([]*SkillCategory, error)
	CountCategories() (int64, error)
}

type MappingRepository interface {
	CreateMapping(mapping *SkillMapping) error
	UpdateMapping(mapping *SkillMapping) error
	GetMappingsByEmployee(employeeID int64) ([]*SkillMapping, error)
	GetMappingByEmployeeSkillBand(employeeID, skillID int64, band ExperienceBand) (*SkillMapping, error)
	GetAllMappings() ([]*SkillMapping, error)
	CountBySkill(skillID int64) (int64, error)
}

type PostgresSkillRepository struct{}

func (r *PostgresSkillRepository) CreateSkill(skill *Skill) error {
	return storage.GetDb().Create(skill).Error
}

func (r *PostgresSkillRepository) GetSkillByID(skillID int64) (*Skill, error) {
	var skill Skill

	if err := storage.GetDb().Where("id = ?", skillID).First(&skill).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &skill, nil
}

func (r *PostgresSkillRepository) GetSkillByName(name string) (*Skill, error) {
	var skill Skill

	if err := storage.GetDb().Where("name = ?", name).First(&skill).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &skill, nil
}

func (r *PostgresSkillRepository) UpdateSkill(skill *Skill) error {
	return storage.GetDb().Save(skill).Error
}

func (r *PostgresSkillRepository) DeleteSkill(skillID int64) error {
	return storage.GetDb().Delete(&Skill{}, skillID).Error
}

func (r *PostgresSkillRepository) GetAllSkills() ([]*Skill, error) {
	var allSkills []*Skill

	err := storage.GetDb().Order("id ASC").Find(&allSkills).Error

	return allSkills, err
}

func (r *PostgresSkillRepository) CountSkillsByCategory(category string) (int64, error) {
	var count int64

	err := storage.GetDb().Model(&Skill{}).
		Where("category = ?", category).
		Count(&count).Error

	return count, err
}

type PostgresCategoryRepository struct{}

func (r *PostgresCategoryRepository) CreateCategory(category *SkillCategory) error {
	return storage.GetDb().Create(category).Error
}

func (r *PostgresCategoryRepository) GetCategoryByID(categoryID int64) (*SkillCategory, error) {
	var category SkillCategory

	if err := storage.GetDb().Where("id = ?", categoryID).First(&category).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &category, nil
}

func (r *PostgresCategoryRepository) GetCategoryByName(name string) (*SkillCategory, error) {
	var category SkillCategory

	err := storage.GetDb().Where("LOWER(name) = LOWER(?)", name).First(&category).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &category, nil
}

func (r *PostgresCategoryRepository) UpdateCategory(category *SkillCategory) error {
	return storage.GetDb().Save(category).Error
}

func (r *PostgresCategoryRepository) DeleteCategory(categoryID int64) error {
	return storage.GetDb().Delete(&SkillCategory{}, categoryID).Error
}

func (r *PostgresCategoryRepository) GetAllCategories() ([]*SkillCategory, error) {
	var categories []*SkillCategory

	err := storage.GetDb().Order("id ASC").Find(&categories).Error

	return categories, err
}

func (r *PostgresCategoryRepository) CountCategories() (int64, error) {
	var count int64

	err := storage.GetDb().Model(&SkillCategory{}).Count(&count).Error

	return count, err
}

type PostgresMappingRepository struct{}

func (r *PostgresMappingRepository) CreateMapping(mapping *SkillMapping) error {
	now := time.Now().UTC()
	if mapping.CreatedAt.IsZero() {
		mapping.CreatedAt = now
	}
	mapping.UpdatedAt = now

	return storage.GetDb().Create(mapping).Error
}

func (r *PostgresMappingRepository) UpdateMapping(mapping *SkillMapping) error {
	mapping.UpdatedAt = time.Now().UTC()

	return storage.GetDb().Save(mapping).Error
}

func (r *PostgresMappingRepository) GetMappingsByEmployee(employeeID int64) ([]*SkillMapping, error) {
	var mappings []*SkillMapping

	err := storage.GetDb().
		Where("employee_id = ?", employeeID).
		Order("id ASC").
		Find(&mappings).Error

	return mappings, err
}

func (r *PostgresMappingRepository) GetMappingByEmployeeSkillBand(
	employeeID, skillID int64,
	band ExperienceBand,
) (*SkillMapping, error) {
	var mapping SkillMapping

	err := storage.GetDb().
		Where("employee_id = ? AND skill_id = ? AND experience_band = ?", employeeID, skillID, band).
		First(&mapping).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &mapping, nil
}

func (r *PostgresMappingRepository) GetAllMappings() ([]*SkillMapping, error) {
	var mappings []*SkillMapping

	err := storage.GetDb().Order("id ASC").Find(&mappings).Error

	return mappings, err
}

func (r *PostgresMappingRepository) CountBySkill(skillID int64) (int64, error) {
	var count int64

	err := storage.GetDb().Model(&SkillMapping{}).
		Where("skill_id = ?", skillID).
		Count(&count).Error

	return count, err
}
