package employee

import (
	"time"

	"github.com/shopspring/decimal"

	errors "github.com/nexushr/hr-management/internal"
	"github.com/nexushr/hr-management/internal/core/common/validation"
)

type CreateEmployeeDTO struct {
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Email          string          `json:"email"`
	Role           string          `json:"role"`
	DepartmentID   string          `json:"department_id"`
	JoinDate       time.Time       `json:"join_date"`
	Salary         decimal.Decimal `json:"salary"`
	AccessLevel    string          `json:"access_level"`
	CareerCategory string          `json:"career_category"`
	CareerLevel    string          `json:"career_level"`
	CareerStep     int             `json:"career_step"`
	ContractType   string          `json:"contract_type"`
	BirthDate      *time.Time      `json:"birth_date,omitempty"`
	IsLeadership   bool            `json:"is_leadership"`
	LeadershipRole *string         `json:"leadership_role,omitempty"`
	Phone          string          `json:"phone"`
	Address        *string         `json:"address,omitempty"`
}

func (dto CreateEmployeeDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("first_name", dto.FirstName).Required().MaxLength(100)
	v.Field("last_name", dto.LastName).Required().MaxLength(100)
	v.Field("email", dto.Email).Required().Email()
	v.Field("role", dto.Role).Required().MaxLength(150)
	v.Field("join_date", dto.JoinDate).Required().NotFuture()
	v.Field("access_level", dto.AccessLevel).OneOf(
		[]string{errors.AccessLevelAdmin, errors.AccessLevelManager, errors.AccessLevelEmployee},
		errors.ErrCodeValidationFailed)
	if dto.CareerLevel != "" {
		v.Field("career_level", dto.CareerLevel).OneOf(CareerLevels, errors.ErrCodeInvalidLevel)
	}
	if dto.CareerStep != 0 {
		v.Field("career_step", dto.CareerStep).IntBetween(CareerStepMin, CareerStepMax, errors.ErrCodeInvalidStep)
	}
	v.Field("contract_type", dto.ContractType).OneOf(
		[]string{ContractPermanent, ContractContracted, ContractMobility, ContractDetached},
		errors.ErrCodeValidationFailed)
	if err := v.Validate(); err != nil {
		return err
	}

	// leadershipRole is set if and only if isLeadership is true
	if dto.IsLeadership && (dto.LeadershipRole == nil || *dto.LeadershipRole == "") {
		return errors.NewValidationFieldError("leadership_role",
			"leadership_role is required when is_leadership is set", errors.ErrCodeValidationFailed)
	}
	if !dto.IsLeadership && dto.LeadershipRole != nil && *dto.LeadershipRole != "" {
		return errors.NewValidationFieldError("leadership_role",
			"leadership_role must be empty when is_leadership is not set", errors.ErrCodeValidationFailed)
	}
	return nil
}

type UpdateEmployeeDTO struct {
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Email          string          `json:"email"`
	Role           string          `json:"role"`
	DepartmentID   string          `json:"department_id"`
	Salary         decimal.Decimal `json:"salary"`
	Status         string          `json:"status"`
	AccessLevel    string          `json:"access_level"`
	CareerCategory string          `json:"career_category"`
	ContractType   string          `json:"contract_type"`
	BirthDate      *time.Time      `json:"birth_date,omitempty"`
	Phone          string          `json:"phone"`
	Address        *string         `json:"address,omitempty"`
}

func (dto UpdateEmployeeDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("first_name", dto.FirstName).Required().MaxLength(100)
	v.Field("last_name", dto.LastName).Required().MaxLength(100)
	v.Field("email", dto.Email).Required().Email()
	v.Field("role", dto.Role).Required().MaxLength(150)
	v.Field("status", dto.Status).OneOf(
		[]string{StatusActive, StatusOnLeave, StatusTerminated}, errors.ErrCodeInvalidStatus)
	v.Field("access_level", dto.AccessLevel).OneOf(
		[]string{errors.AccessLevelAdmin, errors.AccessLevelManager, errors.AccessLevelEmployee},
		errors.ErrCodeValidationFailed)
	return asError(v.Validate())
}

type IssueCredentialsDTO struct {
	Password string `json:"password,omitempty"`
}

type ChangePasswordDTO struct {
	NewPassword string `json:"new_password"`
}

func (dto ChangePasswordDTO) Validate() error {
	if len(dto.NewPassword) < 8 {
		return errors.NewValidationFieldError("new_password",
			"new_password must be at least 8 characters", errors.ErrCodeValidationFailed)
	}
	return nil
}

// asError keeps a typed-nil *AppError from leaking into a non-nil error.
func asError(err *errors.AppError) error {
	if err == nil {
		return nil
	}
	return err
}

var (
	ErrEmployeeNotFound = errors.NewNotFoundError("employee not found", errors.ErrCodeEmployeeNotFound)
	ErrEmailTaken       = errors.NewConflictError("email already registered", errors.ErrCodeEmailTaken)
)
