package postgres

import (
	"time"

	"gorm.io/gorm"

	employeeDatamodel "github.com/nexushr/hr-management/internal/core/datamodel/employee"
	"github.com/nexushr/hr-management/internal/employee"
)

// EmployeeRepository implements the employee.Repository interface using GORM
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.Repository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(emp *employee.Employee) error {
	return r.db.Create(employee.ToDataModel(emp)).Error
}

func (r *EmployeeRepository) GetByID(id string) (*employee.Employee, error) {
	var dm employeeDatamodel.Employee
	err := r.db.Where("id = ?", id).First(&dm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee.FromDataModel(&dm), nil
}

// GetByEmail matches case-insensitively; the email column is unique.
func (r *EmployeeRepository) GetByEmail(email string) (*employee.Employee, error) {
	var dm employeeDatamodel.Employee
	err := r.db.Where("LOWER(email) = LOWER(?)", email).First(&dm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee.FromDataModel(&dm), nil
}

func (r *EmployeeRepository) List() ([]*employee.Employee, error) {
	var dms []*employeeDatamodel.Employee
	err := r.db.Order("last_name ASC, first_name ASC").Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return employee.FromDataModelSlice(dms), nil
}

func (r *EmployeeRepository) Update(emp *employee.Employee) error {
	emp.UpdatedAt = time.Now()
	return r.db.Save(employee.ToDataModel(emp)).Error
}

func (r *EmployeeRepository) UpdateCredentials(id, passwordHash string, mustChange bool) error {
	return r.db.Model(&employeeDatamodel.Employee{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"password_hash":        passwordHash,
			"must_change_password": mustChange,
			"updated_at":           time.Now(),
		}).Error
}

func (r *EmployeeRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&employeeDatamodel.Employee{}).Error
}
