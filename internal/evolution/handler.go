package evolution

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/nexushr/hr-management/internal/employee"
	"github.com/nexushr/hr-management/internal/transport"
	"github.com/nexushr/hr-management/pkg/logger"
)

type ServiceAPI interface {
	Append(dto AppendRecordDTO) (*Outcome, error)
	GetByID(id string) (*Record, error)
	List() ([]*Record, error)
	ListByEmployee(employeeID string) ([]*Record, error)
	CeaseFunctions(recordID string, endDate time.Time) error
	RebuildFromHistory(employeeID string) (*employee.Employee, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) AppendRecord(w http.ResponseWriter, r *http.Request) {
	var dto AppendRecordDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("AppendRecord: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	outcome, err := h.Service.Append(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("AppendRecord: record appended",
		"record_id", outcome.Record.ID,
		"employee_id", dto.EmployeeID,
		"outcome", outcome.Status)

	h.WriteJSON(w, http.StatusCreated, outcome)
}

func (h *Handler) GetRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.Service.GetByID(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, rec)
}

func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		records, err := h.Service.ListByEmployee(employeeID)
		if err != nil {
			h.HandleServiceError(w, err)
			return
		}
		h.WriteJSON(w, http.StatusOK, records)
		return
	}

	records, err := h.Service.List()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) ListEmployeeHistory(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	records, err := h.Service.ListByEmployee(employeeID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) CeaseFunctions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto CeaseFunctionsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	if err := h.Service.CeaseFunctions(id, dto.EndDate); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "functions ceased"})
}

// RebuildEmployeeState refolds the employee's full history and persists
// the derived state. Repair endpoint, admin only.
func (h *Handler) RebuildEmployeeState(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	emp, err := h.Service.RebuildFromHistory(employeeID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emp)
}
