package evolution

import "time"

// EvolutionRecord rows are append-only. Apart from the IsActive/EndDate
// pair set on cessation, a stored row is never modified. Ordering is the
// insertion sequence, surfaced by the monotonic Seq column.
type EvolutionRecord struct {
	Seq         int64      `gorm:"primaryKey;autoIncrement"`
	ID          string     `gorm:"uniqueIndex;not null"`
	EmployeeID  string     `gorm:"column:employee_id;index;not null"`
	Type        string     `gorm:"not null"`
	Date        time.Time  `gorm:"type:date;not null"`
	EndDate     *time.Time `gorm:"column:end_date;type:date"`
	Origin      string     `gorm:"column:origin"`
	Destination string     `gorm:"column:destination"`
	Description string     `gorm:"column:description"`
	IsActive    bool       `gorm:"column:is_active"`
	CreatedAt   time.Time  `gorm:"column:created_at;default:now()"`
}

func (EvolutionRecord) TableName() string {
	return "evolution_records"
}
