package leave

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/nexushr/hr-management/internal"
	"github.com/nexushr/hr-management/internal/transport"
	"github.com/nexushr/hr-management/pkg/logger"
)

type ServiceAPI interface {
	Create(dto CreateRequestDTO) (*Request, error)
	GetByID(id string) (*Request, error)
	List() ([]*Request, error)
	ListByEmployee(employeeID string) ([]*Request, error)
	ListPending() ([]*Request, error)
	Approve(id string, reviewer *internal.User) (*Request, error)
	Reject(id string, reviewer *internal.User) (*Request, error)
	Delete(id string, actor *internal.User) error
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

func (h *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	user, ok := internal.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateRequest: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !user.IsPrivileged() && dto.EmployeeID != user.ID {
		h.WriteError(w, http.StatusForbidden, "cannot file leave for another employee")
		return
	}

	req, err := h.Service.Create(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, req)
}

func (h *Handler) GetRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	req, err := h.Service.GetByID(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, req)
}

func (h *Handler) ListRequests(w http.ResponseWriter, r *http.Request) {
	user, ok := internal.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if !user.IsPrivileged() {
		requests, err := h.Service.ListByEmployee(user.ID)
		if err != nil {
			h.HandleServiceError(w, err)
			return
		}
		h.WriteJSON(w, http.StatusOK, requests)
		return
	}

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		requests, err := h.Service.ListByEmployee(employeeID)
		if err != nil {
			h.HandleServiceError(w, err)
			return
		}
		h.WriteJSON(w, http.StatusOK, requests)
		return
	}

	if r.URL.Query().Get("status") == StatusPending {
		requests, err := h.Service.ListPending()
		if err != nil {
			h.HandleServiceError(w, err)
			return
		}
		h.WriteJSON(w, http.StatusOK, requests)
		return
	}

	requests, err := h.Service.List()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, requests)
}

func (h *Handler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	h.reviewRequest(w, r, h.Service.Approve)
}

func (h *Handler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	h.reviewRequest(w, r, h.Service.Reject)
}

func (h *Handler) reviewRequest(w http.ResponseWriter, r *http.Request, review func(string, *internal.User) (*Request, error)) {
	user, ok := internal.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id := chi.URLParam(r, "id")

	req, err := review(id, user)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, req)
}

func (h *Handler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	user, ok := internal.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.Service.Delete(id, user); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "leave request deleted"})
}
