package notification

import "time"

// Notification ids are deterministic logical keys (e.g. "pol-{emp}-{year}",
// "vac-{plan}"), which is what makes the engine's scans idempotent.
type Notification struct {
	ID             string    `gorm:"primaryKey"`
	Type           string    `gorm:"not null"`
	Title          string    `gorm:"not null"`
	Message        string    `gorm:"column:message"`
	Date           time.Time `gorm:"column:date"`
	Read           bool      `gorm:"column:read"`
	RecipientEmail *string   `gorm:"column:recipient_email"`
	CreatedAt      time.Time `gorm:"column:created_at;default:now()"`
}

func (Notification) TableName() string {
	return "notifications"
}
