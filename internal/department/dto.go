package department

import (
	errors "github.com/nexushr/hr-management/internal"
	"github.com/nexushr/hr-management/internal/core/common/validation"
)

type CreateDepartmentDTO struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	ManagerID   *string `json:"manager_id,omitempty"`
}

func (dto CreateDepartmentDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MaxLength(100)
	v.Field("description", dto.Description).MaxLength(500)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

type UpdateDepartmentDTO struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	ManagerID   *string `json:"manager_id,omitempty"`
}

func (dto UpdateDepartmentDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MaxLength(100)
	v.Field("description", dto.Description).MaxLength(500)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

var (
	ErrDepartmentNotFound = errors.NewNotFoundError("department not found", errors.ErrCodeDepartmentNotFound)
	ErrNameTaken          = errors.NewConflictError("a department with this name already exists", errors.ErrCodeValidationFailed)
)
