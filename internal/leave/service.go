package leave

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nexushr/hr-management/internal"
)

// Repository defines the data access methods for leave requests.
type Repository interface {
	Create(req *Request) error
	GetByID(id string) (*Request, error)
	List() ([]*Request, error)
	ListByEmployee(employeeID string) ([]*Request, error)
	ListByStatus(status string) ([]*Request, error)
	Update(req *Request) error
	Delete(id string) error
}

// PlanConverter closes a vacation plan once a matching vacation request
// is filed. Implemented by the vacation service; wired in cmd.
type PlanConverter interface {
	ConvertMatching(employeeID string, startDate time.Time)
}

type Service struct {
	repo   Repository
	plans  PlanConverter
	logger *slog.Logger
}

func NewService(repo Repository, plans PlanConverter, logger *slog.Logger) *Service {
	return &Service{repo: repo, plans: plans, logger: logger}
}

func (s *Service) Create(dto CreateRequestDTO) (*Request, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("leave request validation failed", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}

	now := time.Now()
	req := &Request{
		ID:          uuid.NewString(),
		EmployeeID:  dto.EmployeeID,
		Type:        dto.Type,
		StartDate:   dto.StartDate,
		EndDate:     dto.EndDate,
		Reason:      dto.Reason,
		Status:      StatusPending,
		RequestDate: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(req); err != nil {
		s.logger.Error("failed to create leave request", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}

	// Filing a vacation request retires the plan it was drawn from.
	if req.Type == TypeVacation && s.plans != nil {
		s.plans.ConvertMatching(req.EmployeeID, req.StartDate)
	}

	s.logger.Info("leave request created",
		"request_id", req.ID,
		"employee_id", req.EmployeeID,
		"type", req.Type)
	return req, nil
}

func (s *Service) GetByID(id string) (*Request, error) {
	req, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrRequestNotFound
	}
	return req, nil
}

func (s *Service) List() ([]*Request, error) {
	return s.repo.List()
}

func (s *Service) ListByEmployee(employeeID string) ([]*Request, error) {
	return s.repo.ListByEmployee(employeeID)
}

func (s *Service) ListPending() ([]*Request, error) {
	return s.repo.ListByStatus(StatusPending)
}

// Approve settles a pending request. Only privileged reviewers may call
// it, and a settled request cannot be reviewed again.
func (s *Service) Approve(id string, reviewer *internal.User) (*Request, error) {
	return s.review(id, reviewer, StatusApproved)
}

func (s *Service) Reject(id string, reviewer *internal.User) (*Request, error) {
	return s.review(id, reviewer, StatusRejected)
}

func (s *Service) review(id string, reviewer *internal.User, status string) (*Request, error) {
	if reviewer == nil || !reviewer.IsPrivileged() {
		return nil, internal.ErrUnauthorizedAccess
	}

	req, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrRequestNotFound
	}

	if !req.IsPending() {
		return nil, ErrRequestSettled
	}

	req.Status = status
	req.UpdatedAt = time.Now()

	if err := s.repo.Update(req); err != nil {
		s.logger.Error("failed to review leave request", "error", err, "request_id", id)
		return nil, err
	}

	s.logger.Info("leave request reviewed",
		"request_id", id,
		"status", status,
		"reviewer_id", reviewer.ID)
	return req, nil
}

func (s *Service) Delete(id string, actor *internal.User) error {
	req, err := s.repo.GetByID(id)
	if err != nil {
		return ErrRequestNotFound
	}

	if actor == nil {
		return internal.ErrUnauthorizedAccess
	}
	if !actor.IsPrivileged() && req.EmployeeID != actor.ID {
		return internal.ErrUnauthorizedAccess
	}
	if !req.IsPending() && !actor.IsPrivileged() {
		return ErrRequestSettled
	}

	return s.repo.Delete(id)
}
