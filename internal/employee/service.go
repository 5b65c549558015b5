package employee

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nexushr/hr-management/internal/core/events"
)

// Repository defines the data access methods for the directory.
type Repository interface {
	Create(emp *Employee) error
	GetByID(id string) (*Employee, error)
	GetByEmail(email string) (*Employee, error)
	List() ([]*Employee, error)
	Update(emp *Employee) error
	UpdateCredentials(id, passwordHash string, mustChange bool) error
	Delete(id string) error
}

// Ledger is the slice of the evolution ledger the directory needs: a new
// hire gets exactly one admission record.
type Ledger interface {
	RecordAdmission(employeeID, role string, date time.Time) error
}

// Notifier delivers outbound mail. Failures are logged, never propagated;
// the directory does not block on delivery.
type Notifier interface {
	Send(to, subject, body string) error
}

// PasswordHasher abstracts the bcrypt hashing owned by the auth service.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

type Service struct {
	repo     Repository
	ledger   Ledger
	notifier Notifier
	hasher   PasswordHasher
	bus      *events.EventBus
	logger   *slog.Logger
}

func NewService(repo Repository, ledger Ledger, notifier Notifier, hasher PasswordHasher, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		ledger:   ledger,
		notifier: notifier,
		hasher:   hasher,
		bus:      bus,
		logger:   logger,
	}
}

// Hire registers a new employee: one-time password, admission record in
// the evolution ledger, credentials mailed to the new hire.
func (s *Service) Hire(dto CreateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("hire validation failed", "error", err, "email", dto.Email)
		return nil, err
	}

	if existing, err := s.repo.GetByEmail(dto.Email); err == nil && existing != nil {
		s.logger.Warn("hire rejected: email already registered", "email", dto.Email)
		return nil, ErrEmailTaken
	}

	oneTimePassword, err := generateTemporaryPassword()
	if err != nil {
		return nil, fmt.Errorf("failed to generate temporary password: %w", err)
	}
	hash, err := s.hasher.HashPassword(oneTimePassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash temporary password: %w", err)
	}

	level := dto.CareerLevel
	if level == "" {
		level = DefaultCareerLevel
	}
	step := dto.CareerStep
	if step == 0 {
		step = DefaultCareerStep
	}

	now := time.Now()
	emp := &Employee{
		ID:                 uuid.NewString(),
		FirstName:          dto.FirstName,
		LastName:           dto.LastName,
		Email:              dto.Email,
		Role:               dto.Role,
		DepartmentID:       dto.DepartmentID,
		JoinDate:           dto.JoinDate,
		Salary:             dto.Salary,
		Status:             StatusActive,
		AccessLevel:        dto.AccessLevel,
		PasswordHash:       hash,
		MustChangePassword: true,
		CareerCategory:     dto.CareerCategory,
		CareerLevel:        level,
		CareerStep:         step,
		ContractType:       dto.ContractType,
		BirthDate:          dto.BirthDate,
		IsLeadership:       dto.IsLeadership,
		LeadershipRole:     dto.LeadershipRole,
		Phone:              dto.Phone,
		Address:            dto.Address,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Create(emp); err != nil {
		s.logger.Error("failed to create employee", "error", err, "email", dto.Email)
		return nil, err
	}

	if err := s.ledger.RecordAdmission(emp.ID, emp.Role, emp.JoinDate); err != nil {
		s.logger.Error("failed to record admission", "error", err, "employee_id", emp.ID)
	}

	s.notify(emp.Email,
		"Bem-vindo ao NexusHR - Suas Credenciais",
		fmt.Sprintf("Prezado(a) %s,\n\nSeu cadastro foi realizado com sucesso.\n\nLogin: %s\nSenha Provisória: %s\n\nPor favor, acesse o sistema e altere sua senha imediatamente.",
			emp.FirstName, emp.Email, oneTimePassword))

	if s.bus != nil {
		_ = s.bus.Publish(context.Background(), events.BaseEvent{
			ID:        uuid.NewString(),
			Type:      events.EmployeeHired,
			Timestamp: now,
			Data:      map[string]interface{}{"employee_id": emp.ID, "role": emp.Role},
		})
	}

	s.logger.Info("employee hired",
		"employee_id", emp.ID,
		"role", emp.Role,
		"department_id", emp.DepartmentID)

	return emp, nil
}

func (s *Service) GetByID(id string) (*Employee, error) {
	emp, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get employee", "error", err, "employee_id", id)
		return nil, ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *Service) List() ([]*Employee, error) {
	employees, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, err
	}
	return employees, nil
}

// Update overwrites the administrative fields of an employee. Credentials
// and career-projection fields are preserved from the stored row: the
// ledger owns role/level/step/leadership transitions.
func (s *Service) Update(id string, dto UpdateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrEmployeeNotFound
	}

	if dto.Email != emp.Email {
		if existing, err := s.repo.GetByEmail(dto.Email); err == nil && existing != nil && existing.ID != id {
			return nil, ErrEmailTaken
		}
	}

	emp.FirstName = dto.FirstName
	emp.LastName = dto.LastName
	emp.Email = dto.Email
	emp.Role = dto.Role
	emp.DepartmentID = dto.DepartmentID
	emp.Salary = dto.Salary
	emp.Status = dto.Status
	emp.AccessLevel = dto.AccessLevel
	emp.CareerCategory = dto.CareerCategory
	emp.ContractType = dto.ContractType
	emp.BirthDate = dto.BirthDate
	emp.Phone = dto.Phone
	emp.Address = dto.Address
	emp.UpdatedAt = time.Now()

	if err := s.repo.Update(emp); err != nil {
		s.logger.Error("failed to update employee", "error", err, "employee_id", id)
		return nil, err
	}

	return emp, nil
}

// Delete removes the directory entry. Evolution records, leave requests
// and vacation plans referencing the employee are retained for audit.
func (s *Service) Delete(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return ErrEmployeeNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete employee", "error", err, "employee_id", id)
		return err
	}
	s.logger.Info("employee deleted, history retained", "employee_id", id)
	return nil
}

// IssueCredentials sets the given password, or generates one when empty,
// flags the account for a forced change and mails the credentials.
func (s *Service) IssueCredentials(id string, customPassword string) error {
	emp, err := s.repo.GetByID(id)
	if err != nil {
		return ErrEmployeeNotFound
	}

	password := customPassword
	if password == "" {
		password, err = generateTemporaryPassword()
		if err != nil {
			return fmt.Errorf("failed to generate temporary password: %w", err)
		}
	}

	hash, err := s.hasher.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.repo.UpdateCredentials(id, hash, true); err != nil {
		s.logger.Error("failed to update credentials", "error", err, "employee_id", id)
		return err
	}

	s.notify(emp.Email,
		"Credenciais de Acesso - NexusHR",
		fmt.Sprintf("Olá %s, suas credenciais foram configuradas.\n\nLogin: %s\nSenha Provisória: %s\n\nPara sua segurança, você será solicitado a alterar esta senha no primeiro acesso.",
			emp.FirstName, emp.Email, password))

	s.logger.Info("credentials issued", "employee_id", id)
	return nil
}

func (s *Service) ChangePassword(id string, dto ChangePasswordDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	if _, err := s.repo.GetByID(id); err != nil {
		return ErrEmployeeNotFound
	}

	hash, err := s.hasher.HashPassword(dto.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.repo.UpdateCredentials(id, hash, false); err != nil {
		s.logger.Error("failed to change password", "error", err, "employee_id", id)
		return err
	}

	s.logger.Info("password changed", "employee_id", id)
	return nil
}

func (s *Service) notify(to, subject, body string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Send(to, subject, body); err != nil {
		s.logger.Warn("outbound notification failed", "error", err, "to", to, "subject", subject)
	}
}

func generateTemporaryPassword() (string, error) {
	bytes := make([]byte, 4)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
