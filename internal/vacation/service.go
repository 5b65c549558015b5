package vacation

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Repository defines the data access methods for vacation plans.
type Repository interface {
	Create(plan *Plan) error
	GetByID(id string) (*Plan, error)
	List() ([]*Plan, error)
	ListByEmployee(employeeID string) ([]*Plan, error)
	ListByStatus(status string) ([]*Plan, error)
	Update(plan *Plan) error
	Delete(id string) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Create(dto CreatePlanDTO) (*Plan, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("vacation plan validation failed", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}

	now := time.Now()
	plan := &Plan{
		ID:               uuid.NewString(),
		EmployeeID:       dto.EmployeeID,
		PlannedStartDate: dto.PlannedStartDate,
		PlannedEndDate:   dto.PlannedEndDate,
		Status:           StatusPlanned,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(plan); err != nil {
		s.logger.Error("failed to create vacation plan", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}

	s.logger.Info("vacation plan created", "plan_id", plan.ID, "employee_id", plan.EmployeeID)
	return plan, nil
}

func (s *Service) GetByID(id string) (*Plan, error) {
	plan, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

func (s *Service) List() ([]*Plan, error) {
	return s.repo.List()
}

func (s *Service) ListByEmployee(employeeID string) ([]*Plan, error) {
	return s.repo.ListByEmployee(employeeID)
}

func (s *Service) Update(id string, dto UpdatePlanDTO) (*Plan, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	plan, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrPlanNotFound
	}

	plan.PlannedStartDate = dto.PlannedStartDate
	plan.PlannedEndDate = dto.PlannedEndDate
	plan.UpdatedAt = time.Now()

	if err := s.repo.Update(plan); err != nil {
		s.logger.Error("failed to update vacation plan", "error", err, "plan_id", id)
		return nil, err
	}
	return plan, nil
}

func (s *Service) Delete(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return ErrPlanNotFound
	}
	return s.repo.Delete(id)
}

// Convert closes an open plan once a formal leave request covers it.
func (s *Service) Convert(id string) (*Plan, error) {
	plan, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrPlanNotFound
	}

	if !plan.IsOpen() {
		return nil, ErrPlanNotOpen
	}

	plan.Status = StatusConverted
	plan.UpdatedAt = time.Now()

	if err := s.repo.Update(plan); err != nil {
		s.logger.Error("failed to convert vacation plan", "error", err, "plan_id", id)
		return nil, err
	}

	s.logger.Info("vacation plan converted", "plan_id", id, "employee_id", plan.EmployeeID)
	return plan, nil
}

// ConvertMatching converts the employee's open plan whose planned start
// matches the filed leave request, if any. Used by the leave service when
// a vacation request is submitted; a missing match is not an error.
func (s *Service) ConvertMatching(employeeID string, startDate time.Time) {
	plans, err := s.repo.ListByEmployee(employeeID)
	if err != nil {
		s.logger.Warn("failed to look up plans for conversion", "error", err, "employee_id", employeeID)
		return
	}

	for _, plan := range plans {
		if !plan.IsOpen() {
			continue
		}
		if sameDay(plan.PlannedStartDate, startDate) {
			if _, err := s.Convert(plan.ID); err != nil {
				s.logger.Warn("failed to convert matching plan", "error", err, "plan_id", plan.ID)
			}
			return
		}
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
