package vacation

import (
	"time"

	vacationDatamodel "github.com/nexushr/hr-management/internal/core/datamodel/vacation"
)

// A plan is forward-looking intent to take vacation; it becomes a formal
// leave request later. Converting is explicit, the notification engine
// only reads plans.
const (
	StatusPlanned   = "Planeado"
	StatusConverted = "Convertido"
)

type Plan struct {
	ID               string    `json:"id"`
	EmployeeID       string    `json:"employee_id"`
	PlannedStartDate time.Time `json:"planned_start_date"`
	PlannedEndDate   time.Time `json:"planned_end_date"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (p *Plan) IsOpen() bool {
	return p.Status == StatusPlanned
}

func ToDataModel(p *Plan) *vacationDatamodel.VacationPlan {
	return &vacationDatamodel.VacationPlan{
		ID:               p.ID,
		EmployeeID:       p.EmployeeID,
		PlannedStartDate: p.PlannedStartDate,
		PlannedEndDate:   p.PlannedEndDate,
		Status:           p.Status,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func FromDataModel(p *vacationDatamodel.VacationPlan) *Plan {
	return &Plan{
		ID:               p.ID,
		EmployeeID:       p.EmployeeID,
		PlannedStartDate: p.PlannedStartDate,
		PlannedEndDate:   p.PlannedEndDate,
		Status:           p.Status,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func FromDataModelSlice(plans []*vacationDatamodel.VacationPlan) []*Plan {
	result := make([]*Plan, len(plans))
	for i, p := range plans {
		result[i] = FromDataModel(p)
	}
	return result
}
