package postgres

import (
	"time"

	"gorm.io/gorm"

	evolutionDatamodel "github.com/nexushr/hr-management/internal/core/datamodel/evolution"
	"github.com/nexushr/hr-management/internal/evolution"
)

// EvolutionRepository implements the evolution.Repository interface using
// GORM. Rows are returned in insertion (seq) order; nothing sorts by the
// record date.
type EvolutionRepository struct {
	db *gorm.DB
}

func NewEvolutionRepository(db *gorm.DB) evolution.Repository {
	return &EvolutionRepository{db: db}
}

func (r *EvolutionRepository) Append(rec *evolution.Record) error {
	return r.db.Create(evolution.ToDataModel(rec)).Error
}

func (r *EvolutionRepository) GetByID(id string) (*evolution.Record, error) {
	var dm evolutionDatamodel.EvolutionRecord
	err := r.db.Where("id = ?", id).First(&dm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, evolution.ErrRecordNotFound
		}
		return nil, err
	}
	return evolution.FromDataModel(&dm), nil
}

func (r *EvolutionRepository) ListByEmployee(employeeID string) ([]*evolution.Record, error) {
	var dms []*evolutionDatamodel.EvolutionRecord
	err := r.db.Where("employee_id = ?", employeeID).
		Order("seq ASC").
		Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return evolution.FromDataModelSlice(dms), nil
}

func (r *EvolutionRepository) List() ([]*evolution.Record, error) {
	var dms []*evolutionDatamodel.EvolutionRecord
	err := r.db.Order("seq ASC").Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return evolution.FromDataModelSlice(dms), nil
}

// Cease sets the only mutable pair a stored record has.
func (r *EvolutionRepository) Cease(id string, endDate time.Time) error {
	return r.db.Model(&evolutionDatamodel.EvolutionRecord{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active": false,
			"end_date":  endDate,
		}).Error
}
