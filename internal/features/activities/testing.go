package activities

import (
	"sort"
	"sync"
	"time"
)

// MemoryActivityRepository implements ActivityRepository for tests.
type MemoryActivityRepository struct {
	mu      sync.Mutex
	entries []*Activity
	nextID  int64
}

func NewMemoryActivityRepository() *MemoryActivityRepository {
	return &MemoryActivityRepository{}
}

func (r *MemoryActivityRepository) Create(activity *Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	activity.ID = r.nextID
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now().UTC()
	}

	copied := *activity
	r.entries = append(r.entries, &copied)

	return nil
}

func (r *MemoryActivityRepository) GetAll(limit int) ([]*Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]*Activity, 0, len(r.entries))
	for _, entry := range r.entries {
		copied := *entry
		entries = append(entries, &copied)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].ID > entries[j].ID
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}

	return entries, nil
}
