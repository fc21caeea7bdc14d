package timesheets

import (
	"time"

	"workforce/internal/storage"
)

type TimesheetRepository interface {
	CreateTimesheet(timesheet *Timesheet) error
	GetTimesheetsByEmployee(employeeID int64) ([]Timesheet, error)
	SumHoursForDay(employeeID int64, day time.Time) (float64, error)
}

type PostgresTimesheetRepository struct{}

func (r *PostgresTimesheetRepository) CreateTimesheet(timesheet *Timesheet) error {
	return storage.GetDb().Create(timesheet).Error
}

func (r *PostgresTimesheetRepository) GetTimesheetsByEmployee(employeeID int64) ([]Timesheet, error) {
	var entries []Timesheet

	err := storage.GetDb().
		Where("employee_id = ?", employeeID).
		Order("date DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *PostgresTimesheetRepository) SumHoursForDay(
	employeeID int64,
	day time.Time,
) (float64, error) {
	var total float64

	err := storage.GetDb().
		Model(&Timesheet{}).
		Where("employee_id = ? AND date = ?", employeeID, day).
		Select("COALESCE(SUM(hours), 0)").
		Scan(&total).Error

	return total, err
}
