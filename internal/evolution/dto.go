package evolution

import (
	"time"

	errors "github.com/nexushr/hr-management/internal"
	"github.com/nexushr/hr-management/internal/core/common/validation"
)

type AppendRecordDTO struct {
	EmployeeID  string    `json:"employee_id"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
}

func (dto AppendRecordDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("employee_id", dto.EmployeeID).Required()
	v.Field("type", dto.Type).Required().OneOf(Types, errors.ErrCodeValidationFailed)
	v.Field("date", dto.Date).Required()
	v.Field("destination", dto.Destination).Required().MaxLength(200)
	v.Field("origin", dto.Origin).MaxLength(200)
	v.Field("description", dto.Description).MaxLength(500)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

type CeaseFunctionsDTO struct {
	EndDate time.Time `json:"end_date"`
}

func (dto CeaseFunctionsDTO) Validate() error {
	if dto.EndDate.IsZero() {
		return errors.NewValidationFieldError("end_date", "end_date is required", errors.ErrCodeInvalidDate)
	}
	return nil
}

// Outcome statuses returned by Append. "applied" means the employee's
// career fields changed; "stored" means the record was kept for history
// without a projection (admission, mobility, unknown employee); "ignored"
// means the projection could not derive a typed change from the label.
type OutcomeStatus string

const (
	OutcomeApplied OutcomeStatus = "applied"
	OutcomeStored  OutcomeStatus = "stored"
	OutcomeIgnored OutcomeStatus = "ignored"
)

type Outcome struct {
	Status OutcomeStatus `json:"status"`
	Reason string        `json:"reason,omitempty"`
	Record *Record       `json:"record"`
}

var (
	ErrRecordNotFound  = errors.NewNotFoundError("evolution record not found", errors.ErrCodeRecordNotFound)
	ErrRecordNotActive = errors.NewConflictError("evolution record is not active", errors.ErrCodeRecordNotActive)
)
