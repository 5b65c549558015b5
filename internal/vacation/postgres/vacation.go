package postgres

import (
	"gorm.io/gorm"

	vacationDatamodel "github.com/nexushr/hr-management/internal/core/datamodel/vacation"
	"github.com/nexushr/hr-management/internal/vacation"
)

type VacationRepository struct {
	db *gorm.DB
}

func NewVacationRepository(db *gorm.DB) vacation.Repository {
	return &VacationRepository{db: db}
}

func (r *VacationRepository) Create(plan *vacation.Plan) error {
	return r.db.Create(vacation.ToDataModel(plan)).Error
}

func (r *VacationRepository) GetByID(id string) (*vacation.Plan, error) {
	var dm vacationDatamodel.VacationPlan
	err := r.db.Where("id = ?", id).First(&dm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, vacation.ErrPlanNotFound
		}
		return nil, err
	}
	return vacation.FromDataModel(&dm), nil
}

func (r *VacationRepository) List() ([]*vacation.Plan, error) {
	var dms []*vacationDatamodel.VacationPlan
	err := r.db.Order("planned_start_date ASC").Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return vacation.FromDataModelSlice(dms), nil
}

func (r *VacationRepository) ListByEmployee(employeeID string) ([]*vacation.Plan, error) {
	var dms []*vacationDatamodel.VacationPlan
	err := r.db.Where("employee_id = ?", employeeID).
		Order("planned_start_date ASC").
		Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return vacation.FromDataModelSlice(dms), nil
}

func (r *VacationRepository) ListByStatus(status string) ([]*vacation.Plan, error) {
	var dms []*vacationDatamodel.VacationPlan
	err := r.db.Where("status = ?", status).
		Order("planned_start_date ASC").
		Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return vacation.FromDataModelSlice(dms), nil
}

func (r *VacationRepository) Update(plan *vacation.Plan) error {
	return r.db.Save(vacation.ToDataModel(plan)).Error
}

func (r *VacationRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&vacationDatamodel.VacationPlan{}).Error
}
