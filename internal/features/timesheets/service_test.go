package timesheets

import (
	"sync"
	"testing"
	"time"

	projects_models "workforce/internal/features/projects/models"
	projects_testing "workforce/internal/features/projects/testing"
	"workforce/internal/features/skills"
	users_enums "workforce/internal/features/users/enums"
	users_models "workforce/internal/features/users/models"
	"workforce/internal/util/apierror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type timesheetFixture struct {
	service  *TimesheetService
	projects *projects_testing.MemoryProjectRepository
	employee *users_models.User
	project  *projects_models.Project
}

func newTimesheetFixture(t *testing.T) *timesheetFixture {
	t.Helper()

	projectRepo := projects_testing.NewMemoryProjectRepository()
	assignmentRepo := projects_testing.NewMemoryAssignmentRepository()

	service, _ := NewTestTimesheetService(projectRepo, assignmentRepo)

	employee := &users_models.User{ID: 1, Name: "Dev One", Role: users_enums.UserRoleEmployee}

	project := &projects_models.Project{
		Name:      "Platform Rebuild",
		Code:      "PLAT-01",
		StartDate: time.Now().UTC(),
		EndDate:   time.Now().UTC().AddDate(0, 6, 0),
		CreatedBy: 99,
	}
	require.NoError(t, projectRepo.CreateProject(project))

	require.NoError(t, assignmentRepo.CreateAssignment(&projects_models.ProjectAssignment{
		ProjectID:             project.ID,
		EmployeeID:            employee.ID,
		SkillID:               1,
		ExperienceBand:        skills.Band2To5,
		AssignedHoursPerMonth: 120,
		AssignedBy:            99,
	}))

	return &timesheetFixture{
		service:  service,
		projects: projectRepo,
		employee: employee,
		project:  project,
	}
}

func (f *timesheetFixture) log(hours float64, date string) (*Timesheet, error) {
	return f.service.CreateTimesheet(&CreateTimesheetRequestDTO{
		ProjectID: f.project.ID,
		Date:      date,
		Hours:     hours,
	}, f.employee)
}

func Test_CreateTimesheet_WhenAssigned_CreatesEntry(t *testing.T) {
	fixture := newTimesheetFixture(t)

	entry, err := fixture.log(4, "2025-03-10")

	require.NoError(t, err)
	assert.Equal(t, 4.0, entry.Hours)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), entry.Date)
}

func Test_CreateTimesheet_WhenNotAssigned_ReturnsValidationError(t *testing.T) {
	fixture := newTimesheetFixture(t)

	other := &projects_models.Project{Name: "Other", Code: "OTH-01", CreatedBy: 99}
	require.NoError(t, fixture.projects.CreateProject(other))

	_, err := fixture.service.CreateTimesheet(&CreateTimesheetRequestDTO{
		ProjectID: other.ID,
		Date:      "2025-03-10",
		Hours:     4,
	}, fixture.employee)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "You are not assigned to this project")
}

func Test_CreateTimesheet_WithUnknownProject_ReturnsValidationError(t *testing.T) {
	fixture := newTimesheetFixture(t)

	_, err := fixture.service.CreateTimesheet(&CreateTimesheetRequestDTO{
		ProjectID: 999,
		Date:      "2025-03-10",
		Hours:     4,
	}, fixture.employee)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Project not found")
}

func Test_CreateTimesheet_WithInvalidDate_ReturnsValidationError(t *testing.T) {
	fixture := newTimesheetFixture(t)

	_, err := fixture.log(4, "10/03/2025")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid date format")
}

func Test_CreateTimesheet_ExceedingDailyLimit_IsRejected(t *testing.T) {
	fixture := newTimesheetFixture(t)

	_, err := fixture.log(6.5, "2025-03-10")
	require.NoError(t, err)

	_, err = fixture.log(2, "2025-03-10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Daily limit exceeded. You already have 6.5 hours logged for this date.")

	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
}

func Test_CreateTimesheet_FillingDayToExactlyEight_Succeeds(t *testing.T) {
	fixture := newTimesheetFixture(t)

	_, err := fixture.log(6.5, "2025-03-10")
	require.NoError(t, err)

	_, err = fixture.log(1.5, "2025-03-10")
	require.NoError(t, err)

	entries, err := fixture.service.GetEmployeeTimesheets(fixture.employee.ID, fixture.employee)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func Test_CreateTimesheet_OnDifferentDays_IgnoresOtherDays(t *testing.T) {
	fixture := newTimesheetFixture(t)

	_, err := fixture.log(8, "2025-03-10")
	require.NoError(t, err)

	_, err = fixture.log(8, "2025-03-11")
	require.NoError(t, err)
}

func Test_CreateTimesheet_SameDayDifferentTimeOfDay_CountsAsOneDay(t *testing.T) {
	fixture := newTimesheetFixture(t)

	_, err := fixture.log(6, "2025-03-10T09:00:00Z")
	require.NoError(t, err)

	_, err = fixture.log(4, "2025-03-10T18:30:00Z")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Daily limit exceeded")
}

func Test_CreateTimesheet_ConcurrentSubmissions_NeverExceedDailyLimit(t *testing.T) {
	fixture := newTimesheetFixture(t)

	var wg sync.WaitGroup
	results := make(chan error, 4)

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fixture.log(3, "2025-03-10")
			results <- err
		}()
	}

	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		}
	}

	// 3 hours per entry, so only two fit under the 8 hour cap
	assert.Equal(t, 2, succeeded)
}

func Test_GetEmployeeTimesheets_ForAnotherEmployee_ReturnsForbidden(t *testing.T) {
	fixture := newTimesheetFixture(t)

	other := &users_models.User{ID: 2, Name: "Dev Two", Role: users_enums.UserRoleEmployee}

	_, err := fixture.service.GetEmployeeTimesheets(fixture.employee.ID, other)

	require.Error(t, err)
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.Status)
}

func Test_GetEmployeeTimesheets_AsAdmin_ReturnsEnrichedEntries(t *testing.T) {
	fixture := newTimesheetFixture(t)

	_, err := fixture.log(4, "2025-03-10")
	require.NoError(t, err)

	admin := &users_models.User{ID: 50, Name: "Admin", Role: users_enums.UserRoleAdmin}

	entries, err := fixture.service.GetEmployeeTimesheets(fixture.employee.ID, admin)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Platform Rebuild", entries[0].ProjectName)
	assert.Equal(t, "PLAT-01", entries[0].ProjectCode)
}
