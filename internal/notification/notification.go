package notification

import (
	"time"

	notificationDatamodel "github.com/nexushr/hr-management/internal/core/datamodel/notification"
)

const (
	TypeAlert    = "ALERT"
	TypeInfo     = "INFO"
	TypeReminder = "REMINDER"
)

// Notification is an in-app message emitted by the automated scan or by
// the evolution ledger. Ids derived from logical keys are what keep the
// scan idempotent; ad-hoc alerts get random ids.
type Notification struct {
	ID             string     `json:"id"`
	Type           string     `json:"type"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	Date           time.Time  `json:"date"`
	Read           bool       `json:"read"`
	RecipientEmail *string    `json:"recipient_email,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func ToDataModel(n *Notification) *notificationDatamodel.Notification {
	return &notificationDatamodel.Notification{
		ID:             n.ID,
		Type:           n.Type,
		Title:          n.Title,
		Message:        n.Message,
		Date:           n.Date,
		Read:           n.Read,
		RecipientEmail: n.RecipientEmail,
		CreatedAt:      n.CreatedAt,
	}
}

func FromDataModel(n *notificationDatamodel.Notification) *Notification {
	return &Notification{
		ID:             n.ID,
		Type:           n.Type,
		Title:          n.Title,
		Message:        n.Message,
		Date:           n.Date,
		Read:           n.Read,
		RecipientEmail: n.RecipientEmail,
		CreatedAt:      n.CreatedAt,
	}
}

func FromDataModelSlice(notifications []*notificationDatamodel.Notification) []*Notification {
	result := make([]*Notification, len(notifications))
	for i, n := range notifications {
		result[i] = FromDataModel(n)
	}
	return result
}
