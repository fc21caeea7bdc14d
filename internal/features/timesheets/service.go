package timesheets

import (
	"fmt"
	"strconv"

	projects_models "workforce/internal/features/projects/models"
	users_enums "workforce/internal/features/users/enums"
	users_models "workforce/internal/features/users/models"
	"workforce/internal/util/apierror"
	"workforce/internal/util/keylock"
	time_parser "workforce/internal/util/time"
)

const dailyHourLimit = 8.0

type ProjectReader interface {
	GetProjectByID(projectID int64) (*projects_models.Project, error)
}

type AssignmentReader interface {
	GetAssignmentsByEmployee(employeeID int64) ([]projects_models.ProjectAssignment, error)
}

type ActivityWriter interface {
	WriteActivity(activityType string, description string, userID *int64, relatedID *int64)
}

type TimesheetService struct {
	timesheetRepository TimesheetRepository
	projectReader       ProjectReader
	assignmentReader    AssignmentReader
	// activity writer is never nil after DI wiring
	activityWriter ActivityWriter

	// dayLocks serializes the sum-then-insert window per employee and day so
	// concurrent submissions cannot both slip under the daily cap.
	dayLocks *keylock.KeyLock
}

func NewTimesheetService(
	timesheetRepository TimesheetRepository,
	projectReader ProjectReader,
	assignmentReader AssignmentReader,
) *TimesheetService {
	return &TimesheetService{
		timesheetRepository: timesheetRepository,
		projectReader:       projectReader,
		assignmentReader:    assignmentReader,
		dayLocks:            keylock.New(),
	}
}

func (s *TimesheetService) SetActivityWriter(writer ActivityWriter) {
	s.activityWriter = writer
}

func (s *TimesheetService) CreateTimesheet(
	request *CreateTimesheetRequestDTO,
	employee *users_models.User,
) (*Timesheet, error) {
	parsedDate, err := time_parser.ParseDate(request.Date)
	if err != nil {
		return nil, apierror.Validation("Invalid date format")
	}

	project, err := s.projectReader.GetProjectByID(request.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return nil, apierror.Validation("Project not found")
	}

	assigned, err := s.isAssignedToProject(employee.ID, request.ProjectID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, apierror.Validation("You are not assigned to this project")
	}

	day := time_parser.ToCalendarDay(parsedDate)
	lockKey := fmt.Sprintf("%d:%s", employee.ID, day.Format("2006-01-02"))

	s.dayLocks.Lock(lockKey)
	defer s.dayLocks.Unlock(lockKey)

	existing, err := s.timesheetRepository.SumHoursForDay(employee.ID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to sum hours: %w", err)
	}

	if existing+request.Hours > dailyHourLimit {
		return nil, apierror.Validation(fmt.Sprintf(
			"Daily limit exceeded. You already have %s hours logged for this date.",
			strconv.FormatFloat(existing, 'f', -1, 64),
		))
	}

	timesheet := &Timesheet{
		EmployeeID: employee.ID,
		ProjectID:  request.ProjectID,
		Date:       day,
		Hours:      request.Hours,
	}

	if err := s.timesheetRepository.CreateTimesheet(timesheet); err != nil {
		return nil, fmt.Errorf("failed to create timesheet: %w", err)
	}

	s.activityWriter.WriteActivity(
		"timesheet_logged",
		fmt.Sprintf("%s logged %s hours on %s",
			employee.Name,
			strconv.FormatFloat(request.Hours, 'f', -1, 64),
			project.Name,
		),
		&employee.ID,
		&timesheet.ID,
	)

	return timesheet, nil
}

func (s *TimesheetService) GetEmployeeTimesheets(
	employeeID int64,
	requester *users_models.User,
) ([]TimesheetResponseDTO, error) {
	if requester.ID != employeeID &&
		!requester.Can(users_enums.PermissionViewAllEmployeeData) {
		return nil, apierror.Forbidden("Not authorized")
	}

	entries, err := s.timesheetRepository.GetTimesheetsByEmployee(employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get timesheets: %w", err)
	}

	responses := make([]TimesheetResponseDTO, 0, len(entries))

	for _, entry := range entries {
		response := TimesheetResponseDTO{Timesheet: entry}

		if project, err := s.projectReader.GetProjectByID(entry.ProjectID); err == nil && project != nil {
			response.ProjectName = project.Name
			response.ProjectCode = project.Code
		}

		responses = append(responses, response)
	}

	return responses, nil
}

func (s *TimesheetService) isAssignedToProject(employeeID int64, projectID int64) (bool, error) {
	assignments, err := s.assignmentReader.GetAssignmentsByEmployee(employeeID)
	if err != nil {
		return false, fmt.Errorf("failed to get assignments: %w", err)
	}

	for _, assignment := range assignments {
		if assignment.ProjectID == projectID {
			return true, nil
		}
	}

	return false, nil
}
