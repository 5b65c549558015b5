package evolution_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nexushr/hr-management/internal/employee"
	"github.com/nexushr/hr-management/internal/evolution"
)

func TestEvolutionService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Evolution Service Suite")
}

// Mock repository for testing
type mockEvolutionRepository struct {
	records     map[string]*evolution.Record
	order       []*evolution.Record
	appendError error
	getError    error
	listError   error
	ceaseError  error
}

func newMockEvolutionRepository() *mockEvolutionRepository {
	return &mockEvolutionRepository{
		records: make(map[string]*evolution.Record),
		order:   make([]*evolution.Record, 0),
	}
}

func (m *mockEvolutionRepository) Append(rec *evolution.Record) error {
	if m.appendError != nil {
		return m.appendError
	}
	m.records[rec.ID] = rec
	m.order = append(m.order, rec)
	return nil
}

func (m *mockEvolutionRepository) GetByID(id string) (*evolution.Record, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	rec, exists := m.records[id]
	if !exists {
		return nil, errors.New("record not found")
	}
	return rec, nil
}

func (m *mockEvolutionRepository) ListByEmployee(employeeID string) ([]*evolution.Record, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	result := make([]*evolution.Record, 0)
	for _, rec := range m.order {
		if rec.EmployeeID == employeeID {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (m *mockEvolutionRepository) List() ([]*evolution.Record, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	return m.order, nil
}

func (m *mockEvolutionRepository) Cease(id string, endDate time.Time) error {
	if m.ceaseError != nil {
		return m.ceaseError
	}
	if rec, exists := m.records[id]; exists {
		rec.IsActive = false
		rec.EndDate = &endDate
	}
	return nil
}

// Mock employee directory for testing
type mockDirectory struct {
	employees   map[string]*employee.Employee
	getError    error
	updateError error
	updateCalls int
}

func newMockDirectory() *mockDirectory {
	return &mockDirectory{
		employees: make(map[string]*employee.Employee),
	}
}

func (m *mockDirectory) GetByID(id string) (*employee.Employee, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	emp, exists := m.employees[id]
	if !exists {
		return nil, errors.New("employee not found")
	}
	return emp, nil
}

func (m *mockDirectory) Update(emp *employee.Employee) error {
	if m.updateError != nil {
		return m.updateError
	}
	m.updateCalls++
	m.employees[emp.ID] = emp
	return nil
}

// Mock alert sink for testing
type cessationAlert struct {
	employeeID string
	origin     string
}

type mockAlertSink struct {
	alerts     []cessationAlert
	alertError error
}

func (m *mockAlertSink) CessationAlert(emp *employee.Employee, origin string) error {
	if m.alertError != nil {
		return m.alertError
	}
	m.alerts = append(m.alerts, cessationAlert{employeeID: emp.ID, origin: origin})
	return nil
}

var _ = Describe("EvolutionService", func() {
	var (
		service  *evolution.Service
		mockRepo *mockEvolutionRepository
		mockDir  *mockDirectory
		mockSink *mockAlertSink
		logger   *slog.Logger
		emp      *employee.Employee
	)

	BeforeEach(func() {
		mockRepo = newMockEvolutionRepository()
		mockDir = newMockDirectory()
		mockSink = &mockAlertSink{}
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = evolution.NewService(mockRepo, mockDir, mockSink, nil, logger)

		emp = &employee.Employee{
			ID:          "emp-1",
			FirstName:   "Ana",
			LastName:    "Silva",
			Email:       "ana@nexushr.com",
			Role:        "Engenheira Junior",
			Status:      employee.StatusActive,
			CareerLevel: "C",
			CareerStep:  2,
		}
		mockDir.employees[emp.ID] = emp
	})

	newDTO := func(recordType, origin, destination string) evolution.AppendRecordDTO {
		return evolution.AppendRecordDTO{
			EmployeeID:  "emp-1",
			Type:        recordType,
			Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Origin:      origin,
			Destination: destination,
			IsActive:    true,
		}
	}

	Describe("Append", func() {
		Context("when appending a career change", func() {
			It("should update the role and keep the previous one", func() {
				outcome, err := service.Append(newDTO(evolution.TypeCareerChange, "Engenheira Junior", "Engenheira Senior"))

				Expect(err).ToNot(HaveOccurred())
				Expect(outcome.Status).To(Equal(evolution.OutcomeApplied))
				Expect(emp.Role).To(Equal("Engenheira Senior"))
				Expect(emp.PreviousRole).ToNot(BeNil())
				Expect(*emp.PreviousRole).To(Equal("Engenheira Junior"))
				Expect(mockDir.updateCalls).To(Equal(1))
			})

			It("should store the record in the ledger", func() {
				outcome, err := service.Append(newDTO(evolution.TypeCareerChange, "Engenheira Junior", "Engenheira Senior"))

				Expect(err).ToNot(HaveOccurred())
				Expect(outcome.Record).ToNot(BeNil())
				Expect(mockRepo.records).To(HaveKey(outcome.Record.ID))
			})
		})

		Context("when appending a promotion", func() {
			It("should move the employee to the named level", func() {
				outcome, err := service.Append(newDTO(evolution.TypePromotion, "Nível C", "Nível B"))

				Expect(err).ToNot(HaveOccurred())
				Expect(outcome.Status).To(Equal(evolution.OutcomeApplied))
				Expect(emp.CareerLevel).To(Equal("B"))
			})

			It("should ignore a destination that names no ladder level", func() {
				outcome, err := service.Append(newDTO(evolution.TypePromotion, "Nível C", "Coordenador Geral"))

				Expect(err).ToNot(HaveOccurred())
				Expect(outcome.Status).To(Equal(evolution.OutcomeIgnored))
				Expect(outcome.Reason).ToNot(BeEmpty())
				Expect(emp.CareerLevel).To(Equal("C"))
				Expect(mockDir.updateCalls).To(Equal(0))
			})

			It("should still keep the ignored record for history", func() {
				outcome, err := service.Append(newDTO(evolution.TypePromotion, "Nível C", "Coordenador Geral"))

				Expect(err).ToNot(HaveOccurred())
				Expect(mockRepo.records).To(HaveKey(outcome.Record.ID))
			})
		})

		Context("when appending a progression", func() {
			It("should move the employee to the named step", func() {
				outcome, err := service.Append(newDTO(evolution.TypeProgression, "Escalão 2", "Escalão 3"))

				Expect(err).ToNot(HaveOccurred())
				Expect(outcome.Status).To(Equal(evolution.OutcomeApplied))
				Expect(emp.CareerStep).To(Equal(3))
			})

			It("should ignore a step outside the 1-3 range", func() {
				outcome, err := service.Append(newDTO(evolution.TypeProgression, "Escalão 3", "Escalão 7"))

				Expect(err).ToNot(HaveOccurred())
				Expect(outcome.Status).To(Equal(evolution.OutcomeIgnored))
				Expect(emp.CareerStep).To(Equal(2))
			})
		})

		Context("when appending a leadership appointment", func() {
			It("should flag the employee as leadership with the named role", func() {
				outcome, err := service.Append(newDTO(evolution.TypeLeadership, "Técnico Vendas", "Director Comercial"))

				Expect(err).ToNot(HaveOccurred())
				Expect(outcome.Status).To(Equal(evolution.OutcomeApplied))
				Expect(emp.IsLeadership).To(BeTrue())
				Expect(emp.LeadershipRole).ToNot(BeNil())
				Expect(*emp.LeadershipRole).To(Equal("Director Comercial"))
			})

			It("should not touch the base role", func() {
				_, err := service.Append(newDTO(evolution.TypeLeadership, "Técnico Vendas", "Director Comercial"))

				Expect(err).ToNot(HaveOccurred())
				Expect(emp.Role).To(Equal("Engenheira Junior"))
			})
		})

		Context("when appending a mobility record", func() {
			It("should store it without projecting anything", func() {
				outcome, err := service.Append(newDTO(evolution.TypeMobility, "Engenharia", "Recursos Humanos"))

				Expect(err).ToNot(HaveOccurred())
				Expect(outcome.Status).To(Equal(evolution.OutcomeStored))
				Expect(emp.Role).To(Equal("Engenheira Junior"))
				Expect(mockDir.updateCalls).To(Equal(0))
			})
		})

		Context("when the employee no longer exists", func() {
			It("should keep the record and report it as stored", func() {
				dto := newDTO(evolution.TypeCareerChange, "A", "B")
				dto.EmployeeID = "emp-ghost"

				outcome, err := service.Append(dto)

				Expect(err).ToNot(HaveOccurred())
				Expect(outcome.Status).To(Equal(evolution.OutcomeStored))
				Expect(mockRepo.records).To(HaveKey(outcome.Record.ID))
			})
		})

		Context("when the repository fails", func() {
			It("should propagate the append error", func() {
				mockRepo.appendError = errors.New("database error")

				outcome, err := service.Append(newDTO(evolution.TypeCareerChange, "A", "B"))

				Expect(err).To(HaveOccurred())
				Expect(outcome).To(BeNil())
			})
		})

		Context("when validation fails", func() {
			It("should reject an unknown record type", func() {
				dto := newDTO("Transferência", "A", "B")

				outcome, err := service.Append(dto)

				Expect(err).To(HaveOccurred())
				Expect(outcome).To(BeNil())
				Expect(mockRepo.order).To(BeEmpty())
			})

			It("should reject a missing destination", func() {
				dto := newDTO(evolution.TypeCareerChange, "A", "")

				_, err := service.Append(dto)

				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("cessation projection", func() {
		Context("when the ceased function is the employee's current role", func() {
			It("should terminate the employee", func() {
				outcome, err := service.Append(newDTO(evolution.TypeCessation, "Engenheira Junior", evolution.CeasedSentinel))

				Expect(err).ToNot(HaveOccurred())
				Expect(outcome.Status).To(Equal(evolution.OutcomeApplied))
				Expect(emp.Status).To(Equal(employee.StatusTerminated))
			})

			It("should emit a cessation alert", func() {
				_, err := service.Append(newDTO(evolution.TypeCessation, "Engenheira Junior", evolution.CeasedSentinel))

				Expect(err).ToNot(HaveOccurred())
				Expect(mockSink.alerts).To(HaveLen(1))
				Expect(mockSink.alerts[0].employeeID).To(Equal("emp-1"))
				Expect(mockSink.alerts[0].origin).To(Equal("Engenheira Junior"))
			})
		})

		Context("when the ceased function is only a leadership role", func() {
			BeforeEach(func() {
				role := "Director Comercial"
				emp.IsLeadership = true
				emp.LeadershipRole = &role
			})

			It("should clear the leadership flag and keep the employee active", func() {
				_, err := service.Append(newDTO(evolution.TypeCessation, "Director Comercial", evolution.CeasedSentinel))

				Expect(err).ToNot(HaveOccurred())
				Expect(emp.IsLeadership).To(BeFalse())
				Expect(emp.LeadershipRole).To(BeNil())
				Expect(emp.Status).To(Equal(employee.StatusActive))
			})
		})

		Context("when the ceased function matches neither role", func() {
			It("should leave the employee untouched", func() {
				_, err := service.Append(newDTO(evolution.TypeCessation, "Outra Função", evolution.CeasedSentinel))

				Expect(err).ToNot(HaveOccurred())
				Expect(emp.Status).To(Equal(employee.StatusActive))
				Expect(mockSink.alerts).To(HaveLen(1))
			})
		})

		Context("when the alert sink fails", func() {
			It("should still apply the projection", func() {
				mockSink.alertError = errors.New("notification store down")

				outcome, err := service.Append(newDTO(evolution.TypeCessation, "Engenheira Junior", evolution.CeasedSentinel))

				Expect(err).ToNot(HaveOccurred())
				Expect(outcome.Status).To(Equal(evolution.OutcomeApplied))
				Expect(emp.Status).To(Equal(employee.StatusTerminated))
			})
		})
	})

	Describe("CeaseFunctions", func() {
		var active *evolution.Record

		BeforeEach(func() {
			active = &evolution.Record{
				ID:          "rec-1",
				EmployeeID:  "emp-1",
				Type:        evolution.TypeLeadership,
				Date:        time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC),
				Origin:      "Técnico Vendas",
				Destination: "Director Comercial",
				IsActive:    true,
			}
			Expect(mockRepo.Append(active)).To(Succeed())
		})

		It("should retire the record with the end date", func() {
			endDate := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

			err := service.CeaseFunctions("rec-1", endDate)

			Expect(err).ToNot(HaveOccurred())
			Expect(active.IsActive).To(BeFalse())
			Expect(active.EndDate).ToNot(BeNil())
			Expect(active.EndDate.Equal(endDate)).To(BeTrue())
		})

		It("should append a chained cessation record", func() {
			err := service.CeaseFunctions("rec-1", time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC))

			Expect(err).ToNot(HaveOccurred())
			Expect(mockRepo.order).To(HaveLen(2))

			chained := mockRepo.order[1]
			Expect(chained.Type).To(Equal(evolution.TypeCessation))
			Expect(chained.Origin).To(Equal("Director Comercial"))
			Expect(chained.Destination).To(Equal(evolution.CeasedSentinel))
			Expect(chained.IsActive).To(BeFalse())
		})

		It("should reject ceasing the same record twice", func() {
			endDate := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
			Expect(service.CeaseFunctions("rec-1", endDate)).To(Succeed())

			err := service.CeaseFunctions("rec-1", endDate)

			Expect(err).To(Equal(evolution.ErrRecordNotActive))
			Expect(mockRepo.order).To(HaveLen(2))
		})

		It("should return not found for an unknown record", func() {
			err := service.CeaseFunctions("rec-ghost", time.Now())

			Expect(err).To(Equal(evolution.ErrRecordNotFound))
		})
	})

	Describe("RecordAdmission", func() {
		It("should append the admission record for a new hire", func() {
			joinDate := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

			err := service.RecordAdmission("emp-1", "Engenheira Junior", joinDate)

			Expect(err).ToNot(HaveOccurred())
			Expect(mockRepo.order).To(HaveLen(1))

			rec := mockRepo.order[0]
			Expect(rec.Type).To(Equal(evolution.TypeAdmission))
			Expect(rec.Origin).To(Equal(evolution.AdmissionOrigin))
			Expect(rec.Destination).To(Equal("Engenheira Junior"))
			Expect(rec.IsActive).To(BeTrue())
		})

		It("should not change career fields", func() {
			err := service.RecordAdmission("emp-1", "Engenheira Junior", time.Now())

			Expect(err).ToNot(HaveOccurred())
			Expect(emp.CareerLevel).To(Equal("C"))
			Expect(emp.CareerStep).To(Equal(2))
		})
	})

	Describe("RebuildFromHistory", func() {
		BeforeEach(func() {
			history := []*evolution.Record{
				{ID: "h1", EmployeeID: "emp-1", Type: evolution.TypeAdmission, Origin: evolution.AdmissionOrigin, Destination: "Engenheira Junior"},
				{ID: "h2", EmployeeID: "emp-1", Type: evolution.TypePromotion, Origin: "Nível E", Destination: "Nível D"},
				{ID: "h3", EmployeeID: "emp-1", Type: evolution.TypeProgression, Origin: "Escalão 1", Destination: "Escalão 2"},
				{ID: "h4", EmployeeID: "emp-1", Type: evolution.TypeCareerChange, Origin: "Engenheira Junior", Destination: "Engenheira Senior"},
				{ID: "h5", EmployeeID: "emp-1", Type: evolution.TypeLeadership, Origin: "Engenheira Senior", Destination: "Team Lead"},
			}
			for _, rec := range history {
				Expect(mockRepo.Append(rec)).To(Succeed())
			}
		})

		It("should fold the ledger into the projected career state", func() {
			// Drift the stored state away from what the ledger implies.
			emp.Role = "Estagiária"
			emp.CareerLevel = "A"
			emp.CareerStep = 3
			emp.IsLeadership = false
			emp.LeadershipRole = nil

			rebuilt, err := service.RebuildFromHistory("emp-1")

			Expect(err).ToNot(HaveOccurred())
			Expect(rebuilt.Role).To(Equal("Engenheira Senior"))
			Expect(*rebuilt.PreviousRole).To(Equal("Engenheira Junior"))
			Expect(rebuilt.CareerLevel).To(Equal("D"))
			Expect(rebuilt.CareerStep).To(Equal(2))
			Expect(rebuilt.IsLeadership).To(BeTrue())
			Expect(*rebuilt.LeadershipRole).To(Equal("Team Lead"))
			Expect(rebuilt.Status).To(Equal(employee.StatusActive))
		})

		It("should match the state the incremental projection produced", func() {
			incremental := *emp

			rebuilt, err := service.RebuildFromHistory("emp-1")
			Expect(err).ToNot(HaveOccurred())

			// Career fields the ledger governs must agree; the fields it
			// does not touch stay as stored.
			Expect(rebuilt.Email).To(Equal(incremental.Email))
			Expect(rebuilt.FirstName).To(Equal(incremental.FirstName))
		})

		It("should skip unparseable records the same way the projection did", func() {
			Expect(mockRepo.Append(&evolution.Record{
				ID: "h6", EmployeeID: "emp-1", Type: evolution.TypePromotion,
				Origin: "Nível D", Destination: "Coordenador Geral",
			})).To(Succeed())

			rebuilt, err := service.RebuildFromHistory("emp-1")

			Expect(err).ToNot(HaveOccurred())
			Expect(rebuilt.CareerLevel).To(Equal("D"))
		})

		It("should re-terminate an employee whose ledger ends in cessation", func() {
			Expect(mockRepo.Append(&evolution.Record{
				ID: "h7", EmployeeID: "emp-1", Type: evolution.TypeCessation,
				Origin: "Engenheira Senior", Destination: evolution.CeasedSentinel,
			})).To(Succeed())

			rebuilt, err := service.RebuildFromHistory("emp-1")

			Expect(err).ToNot(HaveOccurred())
			Expect(rebuilt.Status).To(Equal(employee.StatusTerminated))
			Expect(mockSink.alerts).To(BeEmpty())
		})

		It("should return not found for an unknown employee", func() {
			_, err := service.RebuildFromHistory("emp-ghost")

			Expect(err).To(Equal(employee.ErrEmployeeNotFound))
		})
	})
})
