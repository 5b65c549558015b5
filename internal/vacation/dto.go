package vacation

import (
	"time"

	errors "github.com/nexushr/hr-management/internal"
	"github.com/nexushr/hr-management/internal/core/common/validation"
)

type CreatePlanDTO struct {
	EmployeeID       string    `json:"employee_id"`
	PlannedStartDate time.Time `json:"planned_start_date"`
	PlannedEndDate   time.Time `json:"planned_end_date"`
}

func (dto CreatePlanDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("employee_id", dto.EmployeeID).Required()
	v.Field("planned_start_date", dto.PlannedStartDate).Required()
	v.Field("planned_end_date", dto.PlannedEndDate).Required().NotBefore(dto.PlannedStartDate)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

type UpdatePlanDTO struct {
	PlannedStartDate time.Time `json:"planned_start_date"`
	PlannedEndDate   time.Time `json:"planned_end_date"`
}

func (dto UpdatePlanDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("planned_start_date", dto.PlannedStartDate).Required()
	v.Field("planned_end_date", dto.PlannedEndDate).Required().NotBefore(dto.PlannedStartDate)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

var (
	ErrPlanNotFound = errors.NewNotFoundError("vacation plan not found", errors.ErrCodePlanNotFound)
	ErrPlanNotOpen  = errors.NewConflictError("vacation plan is not in planned status", errors.ErrCodeInvalidStatus)
)
