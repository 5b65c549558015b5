package postgres

import (
	"gorm.io/gorm"

	leaveDatamodel "github.com/nexushr/hr-management/internal/core/datamodel/leave"
	"github.com/nexushr/hr-management/internal/leave"
)

type LeaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) leave.Repository {
	return &LeaveRepository{db: db}
}

func (r *LeaveRepository) Create(req *leave.Request) error {
	return r.db.Create(leave.ToDataModel(req)).Error
}

func (r *LeaveRepository) GetByID(id string) (*leave.Request, error) {
	var dm leaveDatamodel.LeaveRequest
	err := r.db.Where("id = ?", id).First(&dm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, leave.ErrRequestNotFound
		}
		return nil, err
	}
	return leave.FromDataModel(&dm), nil
}

func (r *LeaveRepository) List() ([]*leave.Request, error) {
	var dms []*leaveDatamodel.LeaveRequest
	err := r.db.Order("request_date DESC").Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return leave.FromDataModelSlice(dms), nil
}

func (r *LeaveRepository) ListByEmployee(employeeID string) ([]*leave.Request, error) {
	var dms []*leaveDatamodel.LeaveRequest
	err := r.db.Where("employee_id = ?", employeeID).
		Order("request_date DESC").
		Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return leave.FromDataModelSlice(dms), nil
}

func (r *LeaveRepository) ListByStatus(status string) ([]*leave.Request, error) {
	var dms []*leaveDatamodel.LeaveRequest
	err := r.db.Where("status = ?", status).
		Order("request_date DESC").
		Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return leave.FromDataModelSlice(dms), nil
}

func (r *LeaveRepository) Update(req *leave.Request) error {
	return r.db.Save(leave.ToDataModel(req)).Error
}

func (r *LeaveRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&leaveDatamodel.LeaveRequest{}).Error
}
