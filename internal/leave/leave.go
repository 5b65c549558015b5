package leave

import (
	"time"

	leaveDatamodel "github.com/nexushr/hr-management/internal/core/datamodel/leave"
)

const (
	TypeVacation  = "Férias"
	TypeHealth    = "Saúde"
	TypeDispensed = "Dispensa"
	TypeOther     = "Outros"
)

const (
	StatusPending  = "Pendente"
	StatusApproved = "Aprovado"
	StatusRejected = "Rejeitado"
)

// Types lists every absence category a request may carry.
var Types = []string{TypeVacation, TypeHealth, TypeDispensed, TypeOther}

// Request is a formal absence request. It starts Pendente and is settled
// exactly once by a privileged reviewer.
type Request struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employee_id"`
	Type        string    `json:"type"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Reason      string    `json:"reason,omitempty"`
	Status      string    `json:"status"`
	RequestDate time.Time `json:"request_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *Request) IsPending() bool {
	return r.Status == StatusPending
}

// Days returns the inclusive calendar length of the requested absence.
func (r *Request) Days() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}

func ToDataModel(r *Request) *leaveDatamodel.LeaveRequest {
	return &leaveDatamodel.LeaveRequest{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		Type:        r.Type,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Reason:      r.Reason,
		Status:      r.Status,
		RequestDate: r.RequestDate,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func FromDataModel(r *leaveDatamodel.LeaveRequest) *Request {
	return &Request{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		Type:        r.Type,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Reason:      r.Reason,
		Status:      r.Status,
		RequestDate: r.RequestDate,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func FromDataModelSlice(requests []*leaveDatamodel.LeaveRequest) []*Request {
	result := make([]*Request, len(requests))
	for i, r := range requests {
		result[i] = FromDataModel(r)
	}
	return result
}
