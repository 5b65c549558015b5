package leave

import (
	"time"

	errors "github.com/nexushr/hr-management/internal"
	"github.com/nexushr/hr-management/internal/core/common/validation"
)

type CreateRequestDTO struct {
	EmployeeID string    `json:"employee_id"`
	Type       string    `json:"type"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Reason     string    `json:"reason,omitempty"`
}

func (dto CreateRequestDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("employee_id", dto.EmployeeID).Required()
	v.Field("type", dto.Type).Required().OneOf(Types, errors.ErrCodeValidationFailed)
	v.Field("start_date", dto.StartDate).Required()
	v.Field("end_date", dto.EndDate).Required().NotBefore(dto.StartDate)
	v.Field("reason", dto.Reason).MaxLength(500)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

type ReviewDTO struct {
	Comment string `json:"comment,omitempty"`
}

var (
	ErrRequestNotFound = errors.NewNotFoundError("leave request not found", errors.ErrCodeRequestNotFound)
	ErrRequestSettled  = errors.NewConflictError("leave request has already been reviewed", errors.ErrCodeInvalidStatus)
)
