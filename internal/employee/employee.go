package employee

import (
	"time"

	"github.com/shopspring/decimal"

	employeeDatamodel "github.com/nexushr/hr-management/internal/core/datamodel/employee"
)

// Status literals follow the directory's canonical (Portuguese) wording;
// the evolution ledger writes the same literals when it terminates an
// employee.
const (
	StatusActive     = "Ativo"
	StatusOnLeave    = "Licença"
	StatusTerminated = "Desligado"
)

const (
	ContractPermanent  = "Efectivo"
	ContractContracted = "Contratado"
	ContractMobility   = "Mobilidade"
	ContractDetached   = "Destacado"
)

// Career ladder bounds. Level A is the highest, E the entry level; steps
// run 1 to 3 inside a level.
var CareerLevels = []string{"A", "B", "C", "D", "E"}

const (
	CareerStepMin = 1
	CareerStepMax = 3

	DefaultCareerLevel = "E"
	DefaultCareerStep  = 1
)

type Employee struct {
	ID                 string          `json:"id"`
	FirstName          string          `json:"first_name"`
	LastName           string          `json:"last_name"`
	Email              string          `json:"email"`
	Role               string          `json:"role"`
	PreviousRole       *string         `json:"previous_role,omitempty"`
	DepartmentID       string          `json:"department_id"`
	JoinDate           time.Time       `json:"join_date"`
	Salary             decimal.Decimal `json:"salary"`
	Status             string          `json:"status"`
	AccessLevel        string          `json:"access_level"`
	PasswordHash       string          `json:"-"`
	MustChangePassword bool            `json:"must_change_password"`
	CareerCategory     string          `json:"career_category"`
	CareerLevel        string          `json:"career_level"`
	CareerStep         int             `json:"career_step"`
	ContractType       string          `json:"contract_type"`
	BirthDate          *time.Time      `json:"birth_date,omitempty"`
	IsLeadership       bool            `json:"is_leadership"`
	LeadershipRole     *string         `json:"leadership_role,omitempty"`
	Phone              string          `json:"phone"`
	Address            *string         `json:"address,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

func (e *Employee) IsActive() bool {
	return e.Status == StatusActive
}

// ValidCareerLevel reports whether l is on the A..E ladder.
func ValidCareerLevel(l string) bool {
	for _, level := range CareerLevels {
		if l == level {
			return true
		}
	}
	return false
}

func ValidCareerStep(s int) bool {
	return s >= CareerStepMin && s <= CareerStepMax
}

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		ID:                 e.ID,
		FirstName:          e.FirstName,
		LastName:           e.LastName,
		Email:              e.Email,
		Role:               e.Role,
		PreviousRole:       e.PreviousRole,
		DepartmentID:       e.DepartmentID,
		JoinDate:           e.JoinDate,
		Salary:             e.Salary,
		Status:             e.Status,
		AccessLevel:        e.AccessLevel,
		PasswordHash:       e.PasswordHash,
		MustChangePassword: e.MustChangePassword,
		CareerCategory:     e.CareerCategory,
		CareerLevel:        e.CareerLevel,
		CareerStep:         e.CareerStep,
		ContractType:       e.ContractType,
		BirthDate:          e.BirthDate,
		IsLeadership:       e.IsLeadership,
		LeadershipRole:     e.LeadershipRole,
		Phone:              e.Phone,
		Address:            e.Address,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:                 e.ID,
		FirstName:          e.FirstName,
		LastName:           e.LastName,
		Email:              e.Email,
		Role:               e.Role,
		PreviousRole:       e.PreviousRole,
		DepartmentID:       e.DepartmentID,
		JoinDate:           e.JoinDate,
		Salary:             e.Salary,
		Status:             e.Status,
		AccessLevel:        e.AccessLevel,
		PasswordHash:       e.PasswordHash,
		MustChangePassword: e.MustChangePassword,
		CareerCategory:     e.CareerCategory,
		CareerLevel:        e.CareerLevel,
		CareerStep:         e.CareerStep,
		ContractType:       e.ContractType,
		BirthDate:          e.BirthDate,
		IsLeadership:       e.IsLeadership,
		LeadershipRole:     e.LeadershipRole,
		Phone:              e.Phone,
		Address:            e.Address,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func FromDataModelSlice(employees []*employeeDatamodel.Employee) []*Employee {
	result := make([]*Employee, len(employees))
	for i, e := range employees {
		result[i] = FromDataModel(e)
	}
	return result
}
