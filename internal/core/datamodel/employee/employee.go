package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the persistence model for a directory entry. Career fields
// (role, level, step, leadership, status) are a materialized view over
// the evolution ledger and are mutated by its projections.
type Employee struct {
	ID                 string          `gorm:"primaryKey"`
	FirstName          string          `gorm:"column:first_name;not null"`
	LastName           string          `gorm:"column:last_name;not null"`
	Email              string          `gorm:"uniqueIndex;not null"`
	Role               string          `gorm:"not null"`
	PreviousRole       *string         `gorm:"column:previous_role"`
	DepartmentID       string          `gorm:"column:department_id"`
	JoinDate           time.Time       `gorm:"column:join_date;type:date"`
	Salary             decimal.Decimal `gorm:"type:numeric(14,2)"`
	Status             string          `gorm:"not null"`
	AccessLevel        string          `gorm:"column:access_level;not null"`
	PasswordHash       string          `gorm:"column:password_hash"`
	MustChangePassword bool            `gorm:"column:must_change_password"`
	CareerCategory     string          `gorm:"column:career_category"`
	CareerLevel        string          `gorm:"column:career_level;not null"`
	CareerStep         int             `gorm:"column:career_step;not null"`
	ContractType       string          `gorm:"column:contract_type"`
	BirthDate          *time.Time      `gorm:"column:birth_date;type:date"`
	IsLeadership       bool            `gorm:"column:is_leadership"`
	LeadershipRole     *string         `gorm:"column:leadership_role"`
	Phone              string          `gorm:"column:phone"`
	Address            *string         `gorm:"column:address"`
	CreatedAt          time.Time       `gorm:"column:created_at;default:now()"`
	UpdatedAt          time.Time       `gorm:"column:updated_at;default:now()"`
}

func (Employee) TableName() string {
	return "employees"
}
