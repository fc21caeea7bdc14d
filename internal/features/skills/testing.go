package skills

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// In-memory repositories for tests that should run without Postgres.

type MemorySkillRepository struct {
	mu     sync.Mutex
	skills map[int64]*Skill
	nextID int64
}

func NewMemorySkillRepository() *MemorySkillRepository {
	return &MemorySkillRepository{skills: make(map[int64]*Skill)}
}

func (r *MemorySkillRepository) CreateSkill(skill *Skill) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.skills {
		if existing.Name == skill.Name {
			return fmt.Errorf("duplicate key value violates unique constraint on skill name")
		}
	}

	r.nextID++
	skill.ID = r.nextID

	copied := *skill
	r.skills[skill.ID] = &copied

	return nil
}

func (r *MemorySkillRepository) GetSkillByID(skillID int64) (*Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	skill, ok := r.skills[skillID]
	if !ok {
		return nil, nil
	}

	copied := *skill
	return &copied, nil
}

func (r *MemorySkillRepository) GetSkillByName(name string) (*Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, skill := range r.skills {
		if skill.Name == name {
			copied := *skill
			return &copied, nil
		}
	}

	return nil, nil
}

func (r *MemorySkillRepository) UpdateSkill(skill *Skill) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.skills[skill.ID]; !ok {
		return fmt.Errorf("skill %d not found", skill.ID)
	}

	copied := *skill
	r.skills[skill.ID] = &copied

	return nil
}

func (r *MemorySkillRepository) DeleteSkill(skillID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.skills, skillID)

	return nil
}

func (r *MemorySkillRepository) GetAllSkills() ([]*Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	allSkills := make([]*Skill, 0, len(r.skills))
	for _, skill := range r.skills {
		copied := *skill
		allSkills = append(allSkills, &copied)
	}

	sort.Slice(allSkills, func(i, j int) bool { return allSkills[i].ID < allSkills[j].ID })

	return allSkills, nil
}

func (r *MemorySkillRepository) CountSkillsByCategory(category string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, skill := range r.skills {
		if skill.Category == category {
			count++
		}
	}

	return count, nil
}

type MemoryCategoryRepository struct {
	mu         sync.Mutex
	categories map[int64]*SkillCategory
	nextID     int64
}

func NewMemoryCategoryRepository() *MemoryCategoryRepository {
	return &MemoryCategoryRepository{categories: make(map[int64]*SkillCategory)}
}

func (r *MemoryCategoryRepository) CreateCategory(category *SkillCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.categories {
		if strings.EqualFold(existing.Name, category.Name) {
			return fmt.Errorf("duplicate key value violates unique constraint on category name")
		}
	}

	r.nextID++
	category.ID = r.nextID

	copied := *category
	r.categories[category.ID] = &copied

	return nil
}

func (r *MemoryCategoryRepository) GetCategoryByID(categoryID int64) (*SkillCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category, ok := r.categories[categoryID]
	if !ok {
		return nil, nil
	}

	copied := *category
	return &copied, nil
}

func (r *MemoryCategoryRepository) GetCategoryByName(name string) (*SkillCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, category := range r.categories {
		if strings.EqualFold(category.Name, name) {
			copied := *category
			return &copied, nil
		}
	}

	return nil, nil
}

func (r *MemoryCategoryRepository) UpdateCategory(category *SkillCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[category.ID]; !ok {
		return fmt.Errorf("category %d not found", category.ID)
	}

	copied := *category
	r.categories[category.ID] = &copied

	return nil
}

func (r *MemoryCategoryRepository) DeleteCategory(categoryID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.categories, categoryID)

	return nil
}

func (r *MemoryCategoryRepository) GetAllCategories() ([]*SkillCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	categories := make([]*SkillCategory, 0, len(r.categories))
	for _, category := range r.categories {
		copied := *category
		categories = append(categories, &copied)
	}

	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })

	return categories, nil
}

func (r *MemoryCategoryRepository) CountCategories() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.categories)), nil
}

type MemoryMappingRepository struct {
	mu       sync.Mutex
	mappings map[int64]*SkillMapping
	nextID   int64
}

func NewMemoryMappingRepository() *MemoryMappingRepository {
	return &MemoryMappingRepository{mappings: make(map[int64]*SkillMapping)}
}

func (r *MemoryMappingRepository) CreateMapping(mapping *SkillMapping) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.mappings {
		if existing.EmployeeID == mapping.EmployeeID &&
			existing.SkillID == mapping.SkillID &&
			existing.ExperienceBand == mapping.ExperienceBand {
			return fmt.Errorf("duplicate key value violates unique constraint on mapping")
		}
	}

	r.nextID++
	mapping.ID = r.nextID
	now := time.Now().UTC()
	if mapping.CreatedAt.IsZero() {
		mapping.CreatedAt = now
	}
	mapping.UpdatedAt = now

	copied := *mapping
	r.mappings[mapping.ID] = &copied

	return nil
}

func (r *MemoryMappingRepository) UpdateMapping(mapping *SkillMapping) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.mappings[mapping.ID]; !ok {
		return fmt.Errorf("mapping %d not found", mapping.ID)
	}

	mapping.UpdatedAt = time.Now().UTC()

	copied := *mapping
	r.mappings[mapping.ID] = &copied

	return nil
}

func (r *MemoryMappingRepository) GetMappingsByEmployee(employeeID int64) ([]*SkillMapping, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var mappings []*SkillMapping
	for _, mapping := range r.mappings {
		if mapping.EmployeeID == employeeID {
			copied := *mapping
			mappings = append(mappings, &copied)
		}
	}

	sort.Slice(mappings, func(i, j int) bool { return mappings[i].ID < mappings[j].ID })

	return mappings, nil
}

func (r *MemoryMappingRepository) GetMappingByEmployeeSkillBand(
	employeeID, skillID int64,
	band ExperienceBand,
) (*SkillMapping, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, mapping := range r.mappings {
		if mapping.EmployeeID == employeeID &&
			mapping.SkillID == skillID &&
			mapping.ExperienceBand == band {
			copied := *mapping
			return &copied, nil
		}
	}

	return nil, nil
}

func (r *MemoryMappingRepository) GetAllMappings() ([]*SkillMapping, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	mappings := make([]*SkillMapping, 0, len(r.mappings))
	for _, mapping := range r.mappings {
		copied := *mapping
		mappings = append(mappings, &copied)
	}

	sort.Slice(mappings, func(i, j int) bool { return mappings[i].ID < mappings[j].ID })

	return mappings, nil
}

func (r *MemoryMappingRepository) CountBySkill(skillID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, mapping := range r.mappings {
		if mapping.SkillID == skillID {
			count++
		}
	}

	return count, nil
}

type noopActivityWriter struct{}

func (noopActivityWriter) WriteActivity(string, string, *int64, *int64) {}

// NewTestSkillService wires a skill service onto in-memory repositories.
func NewTestSkillService() (*SkillService, *MemorySkillRepository, *MemoryMappingRepository) {
	skillRepo := NewMemorySkillRepository()
	mappingRepo := NewMemoryMappingRepository()
	service := NewSkillService(skillRepo, NewMemoryCategoryRepository(), mappingRepo)
	service.SetActivityWriter(noopActivityWriter{})

	return service, skillRepo, mappingRepo
}
