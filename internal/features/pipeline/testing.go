package pipeline

import (
	"sort"
	"sync"

	"workforce/internal/features/skills"
)

// MemoryPipelineRepository implements PipelineRepository for tests that
// should run without Postgres.
type MemoryPipelineRepository struct {
	mu      sync.Mutex
	entries map[int64]*ProjectPipeline
	nextID  int64
}

func NewMemoryPipelineRepository() *MemoryPipelineRepository {
	return &MemoryPipelineRepository{entries: make(map[int64]*ProjectPipeline)}
}

func (r *MemoryPipelineRepository) CreatePipeline(entry *ProjectPipeline) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	entry.ID = r.nextID

	copied := *entry
	r.entries[entry.ID] = &copied

	return nil
}

func (r *MemoryPipelineRepository) GetPipelineByID(pipelineID int64) (*ProjectPipeline, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[pipelineID]
	if !ok {
		return nil, nil
	}

	copied := *entry
	return &copied, nil
}

func (r *MemoryPipelineRepository) GetAllPipelines() ([]ProjectPipeline, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]ProjectPipeline, 0, len(r.entries))
	for _, entry := range r.entries {
		entries = append(entries, *entry)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].ID > entries[j].ID })

	return entries, nil
}

type MemoryDemandRepository struct {
	mu      sync.Mutex
	demands []PipelineSkillDemand
	nextID  int64
}

func NewMemoryDemandRepository() *MemoryDemandRepository {
	return &MemoryDemandRepository{}
}

func (r *MemoryDemandRepository) CreateDemand(demand *PipelineSkillDemand) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	demand.ID = r.nextID
	r.demands = append(r.demands, *demand)

	return nil
}

func (r *MemoryDemandRepository) GetDemandsByPipeline(pipelineID int64) ([]PipelineSkillDemand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []PipelineSkillDemand
	for _, demand := range r.demands {
		if demand.PipelineID == pipelineID {
			result = append(result, demand)
		}
	}

	return result, nil
}

func (r *MemoryDemandRepository) GetAllDemands() ([]PipelineSkillDemand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]PipelineSkillDemand(nil), r.demands...), nil
}

func (r *MemoryDemandRepository) CountBySkill(skillID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, demand := range r.demands {
		if demand.SkillID == skillID {
			count++
		}
	}

	return count, nil
}

type noopActivityWriter struct{}

func (noopActivityWriter) WriteActivity(activityType string, description string, userID *int64, relatedID *int64) {
}

func NewTestPipelineService() (*PipelineService, *MemoryPipelineRepository, *MemoryDemandRepository, *skills.MemorySkillRepository) {
	skillService, skillRepo, _ := skills.NewTestSkillService()
	pipelineRepo := NewMemoryPipelineRepository()
	demandRepo := NewMemoryDemandRepository()

	service := NewPipelineService(pipelineRepo, demandRepo, skillService)
	service.SetActivityWriter(noopActivityWriter{})

	return service, pipelineRepo, demandRepo, skillRepo
}
