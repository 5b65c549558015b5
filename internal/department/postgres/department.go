package postgres

import (
	"gorm.io/gorm"

	departmentDatamodel "github.com/nexushr/hr-management/internal/core/datamodel/department"
	"github.com/nexushr/hr-management/internal/department"
)

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) department.Repository {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) Create(dept *department.Department) error {
	return r.db.Create(department.ToDataModel(dept)).Error
}

func (r *DepartmentRepository) GetByID(id string) (*department.Department, error) {
	var dm departmentDatamodel.Department
	err := r.db.Where("id = ?", id).First(&dm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, department.ErrDepartmentNotFound
		}
		return nil, err
	}
	return department.FromDataModel(&dm), nil
}

func (r *DepartmentRepository) GetByName(name string) (*department.Department, error) {
	var dm departmentDatamodel.Department
	err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&dm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, department.ErrDepartmentNotFound
		}
		return nil, err
	}
	return department.FromDataModel(&dm), nil
}

func (r *DepartmentRepository) List() ([]*department.Department, error) {
	var dms []*departmentDatamodel.Department
	err := r.db.Order("name ASC").Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return department.FromDataModelSlice(dms), nil
}

func (r *DepartmentRepository) Update(dept *department.Department) error {
	return r.db.Save(department.ToDataModel(dept)).Error
}

func (r *DepartmentRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&departmentDatamodel.Department{}).Error
}
