package leave

import "time"

type LeaveRequest struct {
	ID          string    `gorm:"primaryKey"`
	EmployeeID  string    `gorm:"column:employee_id;index;not null"`
	Type        string    `gorm:"not null"`
	StartDate   time.Time `gorm:"column:start_date;type:date;not null"`
	EndDate     time.Time `gorm:"column:end_date;type:date;not null"`
	Reason      string    `gorm:"column:reason"`
	Status      string    `gorm:"not null"`
	RequestDate time.Time `gorm:"column:request_date"`
	CreatedAt   time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt   time.Time `gorm:"column:updated_at;default:now()"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}
