package skills

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	users_enums "workforce/internal/features/users/enums"
	users_models "workforce/internal/features/users/models"
	"workforce/internal/util/apierror"
	cache_utils "workforce/internal/util/cache"

	"golang.org/x/sync/singleflight"
)

// ActivityWriter records an entry in the activity feed.
type ActivityWriter interface {
	WriteActivity(activityType string, description string, userID *int64, relatedID *int64)
}

// SkillReferenceChecker reports how many rows of some entity reference a
// skill. Requirements, assignments and pipeline demands register themselves
// here so deletion can refuse while any reference exists.
type SkillReferenceChecker interface {
	CountBySkill(skillID int64) (int64, error)
}

// DefaultCategories seeds the category table on first start. The set comes
// from the product's original fixed category list.
var DefaultCategories = []string{
	"Frontend", "Backend", "DevOps", "Database", "Mobile", "Design", "AI/ML", "Testing",
}

type SkillService struct {
	skillRepository    SkillRepository
	categoryRepository CategoryRepository
	mappingRepository  MappingRepository
	referenceCheckers  []SkillReferenceChecker
	// activity writer is never nil after DI wiring
	activityWriter ActivityWriter

	skillCache   *cache_utils.CacheUtil[Skill]
	singleflight singleflight.Group // prevents thundering herd on skill lookups
}

func NewSkillService(
	skillRepository SkillRepository,
	categoryRepository CategoryRepository,
	mappingRepository MappingRepository,
) *SkillService {
	service := &SkillService{
		skillRepository:    skillRepository,
		categoryRepository: categoryRepository,
		mappingRepository:  mappingRepository,
	}

	// mappings always take part in the in-use check; other features
	// register their checkers during startup wiring
	service.AddReferenceChecker(mappingRepository)

	return service
}

func (s *SkillService) SetActivityWriter(writer ActivityWriter) {
	s.activityWriter = writer
}

func (s *SkillService) AddReferenceChecker(checker SkillReferenceChecker) {
	s.referenceCheckers = append(s.referenceCheckers, checker)
}

func (s *SkillService) SetSkillCache(skillCache *cache_utils.CacheUtil[Skill]) {
	s.skillCache = skillCache
}

// ==================== Skills ====================

func (s *SkillService) GetAllSkills() ([]*Skill, error) {
	return s.skillRepository.GetAllSkills()
}

// GetSkillByID serves reads through the cache when one is configured;
// misses are deduplicated so concurrent lookups hit the database once.
func (s *SkillService) GetSkillByID(skillID int64) (*Skill, error) {
	cacheKey := strconv.FormatInt(skillID, 10)

	if s.skillCache != nil {
		if cached := s.skillCache.Get(cacheKey); cached != nil {
			return cached, nil
		}
	}

	result, err, _ := s.singleflight.Do(cacheKey, func() (any, error) {
		return s.skillRepository.GetSkillByID(skillID)
	})
	if err != nil {
		return nil, err
	}

	skill := result.(*Skill)
	if skill != nil && s.skillCache != nil {
		s.skillCache.Set(cacheKey, skill)
	}

	return skill, nil
}

func (s *SkillService) CreateSkill(
	request *CreateSkillRequestDTO,
	creator *users_models.User,
) (*Skill, error) {
	existing, err := s.skillRepository.GetSkillByName(request.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing skill: %w", err)
	}
	if existing != nil {
		return nil, apierror.Validation("Skill already exists")
	}

	skill := &Skill{
		Name:     request.Name,
		Category: request.Category,
	}

	if err := s.skillRepository.CreateSkill(skill); err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}

	s.activityWriter.WriteActivity(
		"skill_created",
		fmt.Sprintf("New skill created: %s", skill.Name),
		&creator.ID,
		&skill.ID,
	)

	return skill, nil
}

func (s *SkillService) UpdateSkill(
	skillID int64,
	request *UpdateSkillRequestDTO,
	updater *users_models.User,
) (*Skill, error) {
	skill, err := s.skillRepository.GetSkillByID(skillID)
	if err != nil {
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	if skill == nil {
		return nil, apierror.NotFound("Skill not found")
	}

	if request.Name != nil && *request.Name != skill.Name {
		existing, err := s.skillRepository.GetSkillByName(*request.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing skill: %w", err)
		}
		if existing != nil {
			return nil, apierror.Validation("Skill already exists")
		}

		skill.Name = *request.Name
	}

	if request.Category != nil {
		skill.Category = *request.Category
	}

	if err := s.skillRepository.UpdateSkill(skill); err != nil {
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}

	s.invalidateSkillCache(skillID)

	s.activityWriter.WriteActivity(
		"skill_updated",
		fmt.Sprintf("Skill %q was updated", skill.Name),
		&updater.ID,
		&skill.ID,
	)

	return skill, nil
}

func (s *SkillService) DeleteSkill(skillID int64, deleter *users_models.User) error {
	skill, err := s.skillRepository.GetSkillByID(skillID)
	if err != nil {
		return fmt.Errorf("failed to get skill: %w", err)
	}
	if skill == nil {
		return apierror.NotFound("Skill not found")
	}

	for _, checker := range s.referenceCheckers {
		count, err := checker.CountBySkill(skillID)
		if err != nil {
			return fmt.Errorf("failed to check skill references: %w", err)
		}
		if count > 0 {
			return apierror.Validation(
				"Cannot delete skill that's in use. Remove employee ratings, requirements, assignments and pipeline demands first.",
			)
		}
	}

	if err := s.skillRepository.DeleteSkill(skillID); err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}

	s.invalidateSkillCache(skillID)

	s.activityWriter.WriteActivity(
		"skill_deleted",
		fmt.Sprintf("Skill %q was deleted", skill.Name),
		&deleter.ID,
		&skillID,
	)

	return nil
}

func (s *SkillService) invalidateSkillCache(skillID int64) {
	if s.skillCache != nil {
		s.skillCache.Invalidate(strconv.FormatInt(skillID, 10))
	}
}

// ==================== Categories ====================

func (s *SkillService) GetAllCategories() ([]*SkillCategory, error) {
	return s.categoryRepository.GetAllCategories()
}

func (s *SkillService) CreateCategory(
	request *CreateCategoryRequestDTO,
	creator *users_models.User,
) (*SkillCategory, error) {
	existing, err := s.categoryRepository.GetCategoryByName(request.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing category: %w", err)
	}
	if existing != nil {
		return nil, apierror.Validation("Category already exists")
	}

	category := &SkillCategory{Name: request.Name}

	if err := s.categoryRepository.CreateCategory(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.activityWriter.WriteActivity(
		"category_created",
		fmt.Sprintf("New skill category created: %s", category.Name),
		&creator.ID,
		&category.ID,
	)

	return category, nil
}

func (s *SkillService) UpdateCategory(
	categoryID int64,
	request *CreateCategoryRequestDTO,
	updater *users_models.User,
) (*SkillCategory, error) {
	category, err := s.categoryRepository.GetCategoryByID(categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if category == nil {
		return nil, apierror.NotFound("Category not found")
	}

	existing, err := s.categoryRepository.GetCategoryByName(request.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing category: %w", err)
	}
	if existing != nil && existing.ID != categoryID {
		return nil, apierror.Validation("Category name already taken")
	}

	oldName := category.Name
	category.Name = request.Name

	if err := s.categoryRepository.UpdateCategory(category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	s.activityWriter.WriteActivity(
		"category_updated",
		fmt.Sprintf("Skill category renamed from %q to %q", oldName, category.Name),
		&updater.ID,
		&category.ID,
	)

	return category, nil
}

func (s *SkillService) DeleteCategory(categoryID int64, deleter *users_models.User) error {
	category, err := s.categoryRepository.GetCategoryByID(categoryID)
	if err != nil {
		return fmt.Errorf("failed to get category: %w", err)
	}
	if category == nil {
		return apierror.NotFound("Category not found")
	}

	inUse, err := s.skillRepository.CountSkillsByCategory(category.Name)
	if err != nil {
		return fmt.Errorf("failed to check category usage: %w", err)
	}
	if inUse > 0 {
		return apierror.Validation("Cannot delete category that's in use by skills")
	}

	if err := s.categoryRepository.DeleteCategory(categoryID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.activityWriter.WriteActivity(
		"category_deleted",
		fmt.Sprintf("Skill category deleted: %s", category.Name),
		&deleter.ID,
		&categoryID,
	)

	return nil
}

// SeedDefaultCategories fills an empty category table on first start.
func (s *SkillService) SeedDefaultCategories() error {
	count, err := s.categoryRepository.CountCategories()
	if err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, name := range DefaultCategories {
		if err := s.categoryRepository.CreateCategory(&SkillCategory{Name: name}); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", name, err)
		}
	}

	return nil
}

// ==================== Skill mappings ====================

func (s *SkillService) GetEmployeeSkills(
	employeeID int64,
	requester *users_models.User,
) ([]SkillMappingResponseDTO, error) {
	if requester.ID != employeeID && !requester.Can(users_enums.PermissionViewAllEmployeeData) {
		return nil, apierror.Forbidden("Not authorized")
	}

	mappings, err := s.mappingRepository.GetMappingsByEmployee(employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get skill mappings: %w", err)
	}

	responses := make([]SkillMappingResponseDTO, 0, len(mappings))
	for _, mapping := range mappings {
		responses = append(responses, s.mappingToResponse(mapping))
	}

	return responses, nil
}

// UpsertEmployeeSkill creates or updates the mapping for the employee's
// (skill, band) pair. Only the employee themselves may post their skills.
func (s *SkillService) UpsertEmployeeSkill(
	employeeID int64,
	request *UpsertSkillMappingRequestDTO,
	requester *users_models.User,
) (*SkillMappingResponseDTO, error) {
	if requester.ID != employeeID {
		return nil, apierror.Forbidden("Not authorized")
	}

	if !request.ExperienceBand.IsValid() {
		return nil, apierror.Validation(fmt.Sprintf(
			"Invalid experience band: must be one of %s", joinBands(),
		))
	}
	if !request.Rating.IsValid() {
		return nil, apierror.Validation("Invalid rating: must be Beginner, Intermediate or Expert")
	}

	skill, err := s.GetSkillByID(request.SkillID)
	if err != nil {
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	if skill == nil {
		return nil, apierror.Validation("Skill not found")
	}

	mapping, err := s.mappingRepository.GetMappingByEmployeeSkillBand(
		employeeID, request.SkillID, request.ExperienceBand,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing mapping: %w", err)
	}

	if mapping != nil {
		mapping.Rating = request.Rating
		mapping.YearsOfExperience = request.YearsOfExperience

		if err := s.mappingRepository.UpdateMapping(mapping); err != nil {
			return nil, fmt.Errorf("failed to update skill mapping: %w", err)
		}
	} else {
		mapping = &SkillMapping{
			EmployeeID:        employeeID,
			SkillID:           request.SkillID,
			ExperienceBand:    request.ExperienceBand,
			Rating:            request.Rating,
			YearsOfExperience: request.YearsOfExperience,
			CreatedAt:         time.Now().UTC(),
		}

		if err := s.mappingRepository.CreateMapping(mapping); err != nil {
			return nil, fmt.Errorf("failed to create skill mapping: %w", err)
		}
	}

	s.activityWriter.WriteActivity(
		"skill_mapping_updated",
		fmt.Sprintf("Skill mapping updated for %s", skill.Name),
		&requester.ID,
		&mapping.ID,
	)

	response := s.mappingToResponse(mapping)

	return &response, nil
}

func (s *SkillService) mappingToResponse(mapping *SkillMapping) SkillMappingResponseDTO {
	skillName := "Unknown"
	skillCategory := "Unknown"

	if skill, err := s.GetSkillByID(mapping.SkillID); err == nil && skill != nil {
		skillName = skill.Name
		skillCategory = skill.Category
	}

	return SkillMappingResponseDTO{
		ID:                mapping.ID,
		EmployeeID:        mapping.EmployeeID,
		SkillID:           mapping.SkillID,
		ExperienceBand:    mapping.ExperienceBand,
		Rating:            mapping.Rating,
		YearsOfExperience: mapping.YearsOfExperience,
		SkillName:         skillName,
		SkillCategory:     skillCategory,
		CreatedAt:         mapping.CreatedAt,
		UpdatedAt:         mapping.UpdatedAt,
	}
}

func joinBands() string {
	bands := make([]string, 0, len(AllExperienceBands))
	for _, band := range AllExperienceBands {
		bands = append(bands, string(band))
	}

	return strings.Join(bands, ", ")
}
