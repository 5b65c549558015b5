package evolution

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nexushr/hr-management/internal/core/events"
	"github.com/nexushr/hr-management/internal/employee"
)

// Repository defines data access for the append-only ledger. ListByEmployee
// and List return records in insertion order; no date sorting is applied.
type Repository interface {
	Append(rec *Record) error
	GetByID(id string) (*Record, error)
	ListByEmployee(employeeID string) ([]*Record, error)
	List() ([]*Record, error)
	Cease(id string, endDate time.Time) error
}

// Directory is the slice of the employee directory the ledger projects
// onto.
type Directory interface {
	GetByID(id string) (*employee.Employee, error)
	Update(emp *employee.Employee) error
}

// AlertSink receives the cessation alert the ledger emits after a
// cessation projection. Failures are logged, never propagated.
type AlertSink interface {
	CessationAlert(emp *employee.Employee, origin string) error
}

type Service struct {
	repo   Repository
	dir    Directory
	alerts AlertSink
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(repo Repository, dir Directory, alerts AlertSink, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		dir:    dir,
		alerts: alerts,
		bus:    bus,
		logger: logger,
	}
}

// Append stores a career event and projects it onto the referenced
// employee. The record is stored even when the employee no longer resolves
// or when a promotion/progression label cannot be parsed; the returned
// Outcome distinguishes applied, stored-only and ignored results.
func (s *Service) Append(dto AppendRecordDTO) (*Outcome, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("append validation failed", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}

	rec := &Record{
		ID:          uuid.NewString(),
		EmployeeID:  dto.EmployeeID,
		Type:        dto.Type,
		Date:        dto.Date,
		Origin:      dto.Origin,
		Destination: dto.Destination,
		Description: dto.Description,
		IsActive:    dto.IsActive,
	}

	return s.append(rec)
}

func (s *Service) append(rec *Record) (*Outcome, error) {
	if err := s.repo.Append(rec); err != nil {
		s.logger.Error("failed to append evolution record", "error", err, "employee_id", rec.EmployeeID)
		return nil, err
	}

	emp, err := s.dir.GetByID(rec.EmployeeID)
	if err != nil {
		// Record kept for history; nothing to project onto.
		s.logger.Warn("evolution record stored for unknown employee",
			"record_id", rec.ID, "employee_id", rec.EmployeeID)
		return &Outcome{Status: OutcomeStored, Reason: "employee not found; record stored for history", Record: rec}, nil
	}

	change, err := ParseChange(rec.Type, rec.Origin, rec.Destination)
	if err != nil {
		// Non-fatal: the record stands, the projection is skipped.
		s.logger.Warn("evolution projection ignored",
			"record_id", rec.ID, "type", rec.Type, "destination", rec.Destination, "reason", err.Error())
		return &Outcome{Status: OutcomeIgnored, Reason: err.Error(), Record: rec}, nil
	}

	if change.Kind == ChangeNone {
		s.logger.Info("evolution record stored, no projection for type",
			"record_id", rec.ID, "type", rec.Type)
		return &Outcome{Status: OutcomeStored, Reason: "record type carries no projection", Record: rec}, nil
	}

	terminated := change.Apply(emp)

	if err := s.dir.Update(emp); err != nil {
		s.logger.Error("failed to persist projected employee state",
			"error", err, "record_id", rec.ID, "employee_id", emp.ID)
		return nil, err
	}

	if change.Kind == ChangeCessation {
		s.emitCessationAlert(emp, change.Origin)
	}

	s.publishApplied(rec, emp, terminated)

	s.logger.Info("evolution record applied",
		"record_id", rec.ID,
		"employee_id", emp.ID,
		"type", rec.Type,
		"change", string(change.Kind),
		"terminated", terminated)

	return &Outcome{Status: OutcomeApplied, Record: rec}, nil
}

// RecordAdmission appends the admission record a new hire receives.
func (s *Service) RecordAdmission(employeeID, role string, date time.Time) error {
	rec := &Record{
		ID:          uuid.NewString(),
		EmployeeID:  employeeID,
		Type:        TypeAdmission,
		Date:        date,
		Origin:      AdmissionOrigin,
		Destination: role,
		Description: "Admissão inicial no sistema.",
		IsActive:    true,
	}
	_, err := s.append(rec)
	return err
}

// CeaseFunctions retires an active record: flags it inactive with the end
// date, then appends a chained cessation record whose origin is the
// retired record's destination. Re-ceasing an inactive record is rejected
// so redundant cessation chains cannot form.
func (s *Service) CeaseFunctions(recordID string, endDate time.Time) error {
	rec, err := s.repo.GetByID(recordID)
	if err != nil {
		return ErrRecordNotFound
	}

	if !rec.IsActive {
		s.logger.Warn("refusing to cease inactive record", "record_id", recordID)
		return ErrRecordNotActive
	}

	if err := s.repo.Cease(rec.ID, endDate); err != nil {
		s.logger.Error("failed to cease record", "error", err, "record_id", recordID)
		return err
	}

	cessation := &Record{
		ID:          uuid.NewString(),
		EmployeeID:  rec.EmployeeID,
		Type:        TypeCessation,
		Date:        endDate,
		Origin:      rec.Destination,
		Destination: CeasedSentinel,
		Description: fmt.Sprintf("Cessação de funções de: %s", rec.Destination),
		IsActive:    false,
	}

	if _, err := s.append(cessation); err != nil {
		return err
	}

	s.logger.Info("functions ceased",
		"record_id", recordID,
		"employee_id", rec.EmployeeID,
		"function", rec.Destination)

	return nil
}

func (s *Service) GetByID(id string) (*Record, error) {
	rec, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrRecordNotFound
	}
	return rec, nil
}

func (s *Service) ListByEmployee(employeeID string) ([]*Record, error) {
	records, err := s.repo.ListByEmployee(employeeID)
	if err != nil {
		s.logger.Error("failed to list evolution records", "error", err, "employee_id", employeeID)
		return nil, err
	}
	return records, nil
}

func (s *Service) List() ([]*Record, error) {
	records, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list evolution records", "error", err)
		return nil, err
	}
	return records, nil
}

// RebuildFromHistory audits or repairs an employee's projected career
// state by folding their records in insertion order: the career fields
// reset to the hire baseline, then every projection is re-applied. No
// alerts or events are emitted; the fold is a repair path, not a replay
// of side effects.
func (s *Service) RebuildFromHistory(employeeID string) (*employee.Employee, error) {
	emp, err := s.dir.GetByID(employeeID)
	if err != nil {
		return nil, employee.ErrEmployeeNotFound
	}

	records, err := s.repo.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}

	emp.Status = employee.StatusActive
	emp.PreviousRole = nil
	emp.IsLeadership = false
	emp.LeadershipRole = nil
	emp.CareerLevel = employee.DefaultCareerLevel
	emp.CareerStep = employee.DefaultCareerStep

	for _, rec := range records {
		if rec.Type == TypeAdmission {
			// The hire baseline: admission destination is the role the
			// employee entered with.
			emp.Role = rec.Destination
			continue
		}

		change, err := ParseChange(rec.Type, rec.Origin, rec.Destination)
		if err != nil {
			// Same silent-skip the incremental projection applied.
			s.logger.Warn("rebuild skipping unparseable record",
				"record_id", rec.ID, "reason", err.Error())
			continue
		}
		change.Apply(emp)
	}

	if err := s.dir.Update(emp); err != nil {
		s.logger.Error("failed to persist rebuilt state", "error", err, "employee_id", employeeID)
		return nil, err
	}

	s.logger.Info("employee state rebuilt from history",
		"employee_id", employeeID,
		"records", len(records))

	return emp, nil
}

func (s *Service) emitCessationAlert(emp *employee.Employee, origin string) {
	if s.alerts == nil {
		return
	}
	if err := s.alerts.CessationAlert(emp, origin); err != nil {
		s.logger.Warn("cessation alert failed", "error", err, "employee_id", emp.ID)
	}
}

func (s *Service) publishApplied(rec *Record, emp *employee.Employee, terminated bool) {
	if s.bus == nil {
		return
	}
	_ = s.bus.Publish(context.Background(), events.BaseEvent{
		ID:        uuid.NewString(),
		Type:      events.EvolutionApplied,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"record_id":   rec.ID,
			"employee_id": emp.ID,
			"type":        rec.Type,
			"terminated":  terminated,
		},
	})
}
