package vacation

import "time"

type VacationPlan struct {
	ID               string    `gorm:"primaryKey"`
	EmployeeID       string    `gorm:"column:employee_id;index;not null"`
	PlannedStartDate time.Time `gorm:"column:planned_start_date;type:date;not null"`
	PlannedEndDate   time.Time `gorm:"column:planned_end_date;type:date;not null"`
	Status           string    `gorm:"not null"`
	CreatedAt        time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt        time.Time `gorm:"column:updated_at;default:now()"`
}

func (VacationPlan) TableName() string {
	return "vacation_plans"
}
