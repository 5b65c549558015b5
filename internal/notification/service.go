package notification

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	errors "github.com/nexushr/hr-management/internal"
	"github.com/nexushr/hr-management/internal/core/events"
	"github.com/nexushr/hr-management/internal/employee"
	"github.com/nexushr/hr-management/internal/vacation"
)

// Repository defines the data access methods for notifications. Exists is
// the idempotence primitive: the scan never inserts an id twice.
type Repository interface {
	Create(n *Notification) error
	Exists(id string) (bool, error)
	GetByID(id string) (*Notification, error)
	List() ([]*Notification, error)
	ListUnread() ([]*Notification, error)
	MarkRead(id string) error
}

// EmployeeSource is the slice of the directory the scan needs.
type EmployeeSource interface {
	List() ([]*employee.Employee, error)
	GetByID(id string) (*employee.Employee, error)
}

// PlanSource yields the open vacation plans the scan inspects.
type PlanSource interface {
	ListByStatus(status string) ([]*vacation.Plan, error)
}

// Mailer delivers outbound mail. Delivery runs after the notification row
// is durable; failures are logged and never roll anything back.
type Mailer interface {
	Send(to, subject, body string) error
}

type Service struct {
	repo      Repository
	employees EmployeeSource
	plans     PlanSource
	mailer    Mailer
	bus       *events.EventBus
	logger    *slog.Logger
}

func NewService(repo Repository, employees EmployeeSource, plans PlanSource, mailer Mailer, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		employees: employees,
		plans:     plans,
		mailer:    mailer,
		bus:       bus,
		logger:    logger,
	}
}

// Scan runs both automated reminder rules against the given instant. It
// is safe to call arbitrarily often: every notification id is a
// deterministic logical key and an existing id is never inserted again.
// Returns how many notifications this pass created.
func (s *Service) Scan(now time.Time) (int, error) {
	created := 0

	n, err := s.scanProofOfLife(now)
	if err != nil {
		return created, err
	}
	created += n

	n, err = s.scanVacationPlans(now)
	if err != nil {
		return created, err
	}
	created += n

	if created > 0 {
		s.logger.Info("notification scan finished", "created", created)
	}
	return created, nil
}

// scanProofOfLife emits at most one alert per employee per calendar year,
// in the month before the employee's birth month. A January birthday
// wraps to December.
func (s *Service) scanProofOfLife(now time.Time) (int, error) {
	emps, err := s.employees.List()
	if err != nil {
		return 0, err
	}

	created := 0
	for _, emp := range emps {
		if emp.BirthDate == nil {
			continue
		}

		birthMonth := emp.BirthDate.Month()
		monthBefore := birthMonth - 1
		if birthMonth == time.January {
			monthBefore = time.December
		}
		if now.Month() != monthBefore {
			continue
		}

		id := fmt.Sprintf("pol-%s-%d", emp.ID, now.Year())
		exists, err := s.repo.Exists(id)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}

		n := &Notification{
			ID:             id,
			Type:           TypeAlert,
			Title:          "Prova de Vida Pendente",
			Message:        fmt.Sprintf("Lembrete: O funcionário %s faz anos no próximo mês. Necessário efetuar a Prova de Vida.", emp.FullName()),
			Date:           now,
			RecipientEmail: &emp.Email,
			CreatedAt:      now,
		}
		if err := s.create(n); err != nil {
			return created, err
		}
		created++

		s.mail(emp.Email, "Aviso de Prova de Vida",
			fmt.Sprintf("Olá %s, seu aniversário está próximo. Por favor, efetue a sua Prova de Vida no próximo mês.", emp.FirstName))
	}
	return created, nil
}

// scanVacationPlans reminds owners of open plans starting 25 to 35 days
// out to file the formal request. One reminder per plan, ever.
func (s *Service) scanVacationPlans(now time.Time) (int, error) {
	plans, err := s.plans.ListByStatus(vacation.StatusPlanned)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, plan := range plans {
		daysDiff := int(math.Ceil(plan.PlannedStartDate.Sub(now).Hours() / 24))
		if daysDiff < 25 || daysDiff > 35 {
			continue
		}

		emp, err := s.employees.GetByID(plan.EmployeeID)
		if err != nil || emp == nil {
			continue
		}

		id := fmt.Sprintf("vac-%s", plan.ID)
		exists, err := s.repo.Exists(id)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}

		n := &Notification{
			ID:             id,
			Type:           TypeReminder,
			Title:          "Formalização de Férias",
			Message:        fmt.Sprintf("Lembrete: Plano de férias de %s inicia em 30 dias. Favor submeter o pedido formal.", emp.FirstName),
			Date:           now,
			RecipientEmail: &emp.Email,
			CreatedAt:      now,
		}
		if err := s.create(n); err != nil {
			return created, err
		}
		created++

		s.mail(emp.Email, "Lembrete de Férias",
			fmt.Sprintf("Olá %s, suas férias planeadas estão próximas. Por favor, submeta o pedido oficial no sistema.", emp.FirstName))
	}
	return created, nil
}

// CessationAlert records an alert announcing that an employee ceased the
// given functions. Called by the evolution ledger after the cessation is
// already applied.
func (s *Service) CessationAlert(emp *employee.Employee, origin string) error {
	now := time.Now()
	n := &Notification{
		ID:        fmt.Sprintf("cess-%s-%d", emp.ID, now.UnixNano()),
		Type:      TypeAlert,
		Title:     "Cessação de Funções",
		Message:   fmt.Sprintf("O funcionário %s cessou funções de %s.", emp.FullName(), origin),
		Date:      now,
		CreatedAt: now,
	}
	return s.create(n)
}

func (s *Service) create(n *Notification) error {
	if err := s.repo.Create(n); err != nil {
		s.logger.Error("failed to create notification", "error", err, "notification_id", n.ID)
		return err
	}

	s.logger.Info("notification created", "notification_id", n.ID, "type", n.Type)

	if s.bus != nil {
		_ = s.bus.Publish(context.Background(), events.BaseEvent{
			ID:        uuid.NewString(),
			Type:      events.NotificationCreated,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"notification_id": n.ID,
				"type":            n.Type,
			},
		})
	}
	return nil
}

func (s *Service) mail(to, subject, body string) {
	if s.mailer == nil {
		return
	}
	if err := s.mailer.Send(to, subject, body); err != nil {
		s.logger.Warn("outbound mail failed", "error", err, "to", to, "subject", subject)
	}
}

func (s *Service) GetByID(id string) (*Notification, error) {
	n, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotificationNotFound
	}
	return n, nil
}

func (s *Service) List() ([]*Notification, error) {
	return s.repo.List()
}

func (s *Service) ListUnread() ([]*Notification, error) {
	return s.repo.ListUnread()
}

func (s *Service) MarkRead(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return ErrNotificationNotFound
	}
	return s.repo.MarkRead(id)
}

var ErrNotificationNotFound = errors.NewNotFoundError("notification not found", errors.ErrCodeNotifNotFound)
