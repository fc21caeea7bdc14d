package timesheets

import "time"

type Timesheet struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID int64     `gorm:"index:idx_timesheet_employee_date;not null" json:"employeeId"`
	ProjectID  int64     `gorm:"index;not null" json:"projectId"`
	// Date is normalized to midnight UTC before it reaches the repository.
	Date      time.Time `gorm:"index:idx_timesheet_employee_date;not null" json:"date"`
	Hours     float64   `gorm:"not null" json:"hours"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
