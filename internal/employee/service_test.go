package employee_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/nexushr/hr-management/internal/employee"
)

func TestEmployeeService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Employee Service Suite")
}

// Mock repository for testing
type mockEmployeeRepository struct {
	employees       map[string]*employee.Employee
	byEmail         map[string]*employee.Employee
	createError     error
	getError        error
	updateError     error
	credentialError error
	deleteError     error
}

func newMockEmployeeRepository() *mockEmployeeRepository {
	return &mockEmployeeRepository{
		employees: make(map[string]*employee.Employee),
		byEmail:   make(map[string]*employee.Employee),
	}
}

func (m *mockEmployeeRepository) Create(emp *employee.Employee) error {
	if m.createError != nil {
		return m.createError
	}
	m.employees[emp.ID] = emp
	m.byEmail[emp.Email] = emp
	return nil
}

func (m *mockEmployeeRepository) GetByID(id string) (*employee.Employee, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	emp, exists := m.employees[id]
	if !exists {
		return nil, errors.New("employee not found")
	}
	return emp, nil
}

func (m *mockEmployeeRepository) GetByEmail(email string) (*employee.Employee, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	emp, exists := m.byEmail[email]
	if !exists {
		return nil, errors.New("employee not found")
	}
	return emp, nil
}

func (m *mockEmployeeRepository) List() ([]*employee.Employee, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	result := make([]*employee.Employee, 0, len(m.employees))
	for _, emp := range m.employees {
		result = append(result, emp)
	}
	return result, nil
}

func (m *mockEmployeeRepository) Update(emp *employee.Employee) error {
	if m.updateError != nil {
		return m.updateError
	}
	m.employees[emp.ID] = emp
	m.byEmail[emp.Email] = emp
	return nil
}

func (m *mockEmployeeRepository) UpdateCredentials(id, passwordHash string, mustChange bool) error {
	if m.credentialError != nil {
		return m.credentialError
	}
	if emp, exists := m.employees[id]; exists {
		emp.PasswordHash = passwordHash
		emp.MustChangePassword = mustChange
	}
	return nil
}

func (m *mockEmployeeRepository) Delete(id string) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	delete(m.employees, id)
	return nil
}

// Mock admission ledger for testing
type admissionCall struct {
	employeeID string
	role       string
	date       time.Time
}

type mockLedger struct {
	admissions []admissionCall
	ledgerErr  error
}

func (m *mockLedger) RecordAdmission(employeeID, role string, date time.Time) error {
	if m.ledgerErr != nil {
		return m.ledgerErr
	}
	m.admissions = append(m.admissions, admissionCall{employeeID: employeeID, role: role, date: date})
	return nil
}

// Mock mailer for testing
type sentMail struct {
	to      string
	subject string
	body    string
}

type mockNotifier struct {
	sent      []sentMail
	sendError error
}

func (m *mockNotifier) Send(to, subject, body string) error {
	if m.sendError != nil {
		return m.sendError
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

// Mock hasher for testing
type mockHasher struct {
	hashError error
}

func (m *mockHasher) HashPassword(password string) (string, error) {
	if m.hashError != nil {
		return "", m.hashError
	}
	return "hashed:" + password, nil
}

var _ = Describe("EmployeeService", func() {
	var (
		service  *employee.Service
		mockRepo *mockEmployeeRepository
		ledger   *mockLedger
		notifier *mockNotifier
		hasher   *mockHasher
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = newMockEmployeeRepository()
		ledger = &mockLedger{}
		notifier = &mockNotifier{}
		hasher = &mockHasher{}
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = employee.NewService(mockRepo, ledger, notifier, hasher, nil, logger)
	})

	newHireDTO := func() employee.CreateEmployeeDTO {
		return employee.CreateEmployeeDTO{
			FirstName:    "Mariana",
			LastName:     "Lopes",
			Email:        "mariana@nexushr.com",
			Role:         "SysAdmin",
			DepartmentID: "d1",
			JoinDate:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Salary:       decimal.NewFromInt(42000),
			AccessLevel:  "EMPLOYEE",
			ContractType: employee.ContractPermanent,
		}
	}

	Describe("Hire", func() {
		Context("when hiring with valid data", func() {
			It("should create the employee as active", func() {
				result, err := service.Hire(newHireDTO())

				Expect(err).ToNot(HaveOccurred())
				Expect(result.ID).ToNot(BeEmpty())
				Expect(result.Status).To(Equal(employee.StatusActive))
				Expect(mockRepo.employees).To(HaveKey(result.ID))
			})

			It("should default the career position to the entry level", func() {
				result, err := service.Hire(newHireDTO())

				Expect(err).ToNot(HaveOccurred())
				Expect(result.CareerLevel).To(Equal(employee.DefaultCareerLevel))
				Expect(result.CareerStep).To(Equal(employee.DefaultCareerStep))
			})

			It("should honor an explicit career position", func() {
				dto := newHireDTO()
				dto.CareerLevel = "C"
				dto.CareerStep = 2

				result, err := service.Hire(dto)

				Expect(err).ToNot(HaveOccurred())
				Expect(result.CareerLevel).To(Equal("C"))
				Expect(result.CareerStep).To(Equal(2))
			})

			It("should record the admission in the career ledger", func() {
				result, err := service.Hire(newHireDTO())

				Expect(err).ToNot(HaveOccurred())
				Expect(ledger.admissions).To(HaveLen(1))
				Expect(ledger.admissions[0].employeeID).To(Equal(result.ID))
				Expect(ledger.admissions[0].role).To(Equal("SysAdmin"))
			})

			It("should mail the one-time credentials", func() {
				result, err := service.Hire(newHireDTO())

				Expect(err).ToNot(HaveOccurred())
				Expect(result.MustChangePassword).To(BeTrue())
				Expect(result.PasswordHash).To(HavePrefix("hashed:"))
				Expect(notifier.sent).To(HaveLen(1))
				Expect(notifier.sent[0].to).To(Equal("mariana@nexushr.com"))
				Expect(notifier.sent[0].body).To(ContainSubstring("Senha Provisória"))
			})
		})

		Context("when the email is already registered", func() {
			It("should reject the hire", func() {
				_, err := service.Hire(newHireDTO())
				Expect(err).ToNot(HaveOccurred())

				_, err = service.Hire(newHireDTO())

				Expect(err).To(Equal(employee.ErrEmailTaken))
				Expect(ledger.admissions).To(HaveLen(1))
			})
		})

		Context("when validation fails", func() {
			It("should reject a malformed email", func() {
				dto := newHireDTO()
				dto.Email = "not-an-email"

				_, err := service.Hire(dto)

				Expect(err).To(HaveOccurred())
				Expect(mockRepo.employees).To(BeEmpty())
			})

			It("should reject a leadership flag without a leadership role", func() {
				dto := newHireDTO()
				dto.IsLeadership = true

				_, err := service.Hire(dto)

				Expect(err).To(HaveOccurred())
			})

			It("should reject a career level off the ladder", func() {
				dto := newHireDTO()
				dto.CareerLevel = "F"

				_, err := service.Hire(dto)

				Expect(err).To(HaveOccurred())
			})
		})

		Context("when the admission record fails", func() {
			It("should keep the hire and swallow the ledger error", func() {
				ledger.ledgerErr = errors.New("ledger unavailable")

				result, err := service.Hire(newHireDTO())

				Expect(err).ToNot(HaveOccurred())
				Expect(mockRepo.employees).To(HaveKey(result.ID))
			})
		})
	})

	Describe("Update", func() {
		var existing *employee.Employee

		BeforeEach(func() {
			var err error
			existing, err = service.Hire(newHireDTO())
			Expect(err).ToNot(HaveOccurred())
			existing.CareerLevel = "B"
			existing.CareerStep = 3
		})

		It("should overwrite administrative fields", func() {
			dto := employee.UpdateEmployeeDTO{
				FirstName:    "Mariana",
				LastName:     "Lopes Santos",
				Email:        "mariana@nexushr.com",
				Role:         "SysAdmin",
				DepartmentID: "d2",
				Salary:       decimal.NewFromInt(45000),
				Status:       employee.StatusOnLeave,
				AccessLevel:  "MANAGER",
				ContractType: employee.ContractPermanent,
				Phone:        "912345678",
			}

			result, err := service.Update(existing.ID, dto)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.LastName).To(Equal("Lopes Santos"))
			Expect(result.DepartmentID).To(Equal("d2"))
			Expect(result.Status).To(Equal(employee.StatusOnLeave))
		})

		It("should preserve the ledger-owned career position", func() {
			dto := employee.UpdateEmployeeDTO{
				FirstName:    "Mariana",
				LastName:     "Lopes",
				Email:        "mariana@nexushr.com",
				Role:         "SysAdmin",
				DepartmentID: "d1",
				Status:       employee.StatusActive,
				AccessLevel:  "EMPLOYEE",
				ContractType: employee.ContractPermanent,
			}

			result, err := service.Update(existing.ID, dto)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.CareerLevel).To(Equal("B"))
			Expect(result.CareerStep).To(Equal(3))
		})

		It("should reject a re-registered email", func() {
			other := newHireDTO()
			other.Email = "outro@nexushr.com"
			_, err := service.Hire(other)
			Expect(err).ToNot(HaveOccurred())

			dto := employee.UpdateEmployeeDTO{
				FirstName:    "Mariana",
				LastName:     "Lopes",
				Email:        "outro@nexushr.com",
				Role:         "SysAdmin",
				DepartmentID: "d1",
				Status:       employee.StatusActive,
				AccessLevel:  "EMPLOYEE",
				ContractType: employee.ContractPermanent,
			}

			_, err = service.Update(existing.ID, dto)

			Expect(err).To(Equal(employee.ErrEmailTaken))
		})
	})

	Describe("IssueCredentials", func() {
		var existing *employee.Employee

		BeforeEach(func() {
			var err error
			existing, err = service.Hire(newHireDTO())
			Expect(err).ToNot(HaveOccurred())
			notifier.sent = nil
		})

		It("should set the given password and force a change", func() {
			err := service.IssueCredentials(existing.ID, "nova-senha")

			Expect(err).ToNot(HaveOccurred())
			Expect(existing.PasswordHash).To(Equal("hashed:nova-senha"))
			Expect(existing.MustChangePassword).To(BeTrue())
			Expect(notifier.sent).To(HaveLen(1))
		})

		It("should generate a password when none is given", func() {
			err := service.IssueCredentials(existing.ID, "")

			Expect(err).ToNot(HaveOccurred())
			Expect(existing.PasswordHash).To(HavePrefix("hashed:"))
			Expect(existing.PasswordHash).ToNot(Equal("hashed:"))
		})

		It("should return not found for an unknown employee", func() {
			err := service.IssueCredentials("emp-ghost", "")

			Expect(err).To(Equal(employee.ErrEmployeeNotFound))
		})
	})

	Describe("ChangePassword", func() {
		var existing *employee.Employee

		BeforeEach(func() {
			var err error
			existing, err = service.Hire(newHireDTO())
			Expect(err).ToNot(HaveOccurred())
		})

		It("should set the new password and clear the change flag", func() {
			err := service.ChangePassword(existing.ID, employee.ChangePasswordDTO{NewPassword: "senha-segura"})

			Expect(err).ToNot(HaveOccurred())
			Expect(existing.PasswordHash).To(Equal("hashed:senha-segura"))
			Expect(existing.MustChangePassword).To(BeFalse())
		})

		It("should reject a short password", func() {
			err := service.ChangePassword(existing.ID, employee.ChangePasswordDTO{NewPassword: "curta"})

			Expect(err).To(HaveOccurred())
			Expect(existing.MustChangePassword).To(BeTrue())
		})
	})

	Describe("Delete", func() {
		It("should remove the directory entry", func() {
			existing, err := service.Hire(newHireDTO())
			Expect(err).ToNot(HaveOccurred())

			Expect(service.Delete(existing.ID)).To(Succeed())
			Expect(mockRepo.employees).ToNot(HaveKey(existing.ID))
		})

		It("should return not found for an unknown employee", func() {
			err := service.Delete("emp-ghost")

			Expect(err).To(Equal(employee.ErrEmployeeNotFound))
		})
	})
})
