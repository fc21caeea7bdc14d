package timesheets

import (
	"sync"
	"time"
)

// MemoryTimesheetRepository implements TimesheetRepository for tests that
// should run without Postgres.
type MemoryTimesheetRepository struct {
	mu      sync.Mutex
	entries []Timesheet
	nextID  int64
}

func NewMemoryTimesheetRepository() *MemoryTimesheetRepository {
	return &MemoryTimesheetRepository{}
}

func (r *MemoryTimesheetRepository) CreateTimesheet(timesheet *Timesheet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	timesheet.ID = r.nextID
	timesheet.CreatedAt = time.Now()
	r.entries = append(r.entries, *timesheet)

	return nil
}

func (r *MemoryTimesheetRepository) GetTimesheetsByEmployee(employeeID int64) ([]Timesheet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []Timesheet
	for _, entry := range r.entries {
		if entry.EmployeeID == employeeID {
			result = append(result, entry)
		}
	}

	return result, nil
}

func (r *MemoryTimesheetRepository) SumHoursForDay(
	employeeID int64,
	day time.Time,
) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var total float64
	for _, entry := range r.entries {
		if entry.EmployeeID == employeeID && entry.Date.Equal(day) {
			total += entry.Hours
		}
	}

	return total, nil
}

type noopActivityWriter struct{}

func (noopActivityWriter) WriteActivity(activityType string, description string, userID *int64, relatedID *int64) {
}

func NewTestTimesheetService(
	projectReader ProjectReader,
	assignmentReader AssignmentReader,
) (*TimesheetService, *MemoryTimesheetRepository) {
	repository := NewMemoryTimesheetRepository()
	service := NewTimesheetService(repository, projectReader, assignmentReader)
	service.SetActivityWriter(noopActivityWriter{})

	return service, repository
}
