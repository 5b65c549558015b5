package postgres

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nexushr/hr-management/internal/evolution"
)

func TestEvolutionRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "EvolutionRepository Suite")
}

type SQLiteEvolutionRecord struct {
	Seq         int64      `gorm:"primaryKey;autoIncrement"`
	ID          string     `gorm:"uniqueIndex;not null"`
	EmployeeID  string     `gorm:"column:employee_id;index;not null"`
	Type        string     `gorm:"not null"`
	Date        time.Time  `gorm:"not null"`
	EndDate     *time.Time `gorm:"column:end_date"`
	Origin      string     `gorm:"column:origin"`
	Destination string     `gorm:"column:destination"`
	Description string     `gorm:"column:description"`
	IsActive    bool       `gorm:"column:is_active"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
}

func (SQLiteEvolutionRecord) TableName() string {
	return "evolution_records"
}

var _ = Describe("EvolutionRepository", func() {
	var (
		db   *gorm.DB
		repo evolution.Repository
	)

	BeforeEach(func() {
		var err error

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteEvolutionRecord{})
		Expect(err).NotTo(HaveOccurred())

		repo = NewEvolutionRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		err = sqlDB.Close()
		Expect(err).NotTo(HaveOccurred())
	})

	newRecord := func(id, employeeID, recordType string, date time.Time) *evolution.Record {
		return &evolution.Record{
			ID:          id,
			EmployeeID:  employeeID,
			Type:        recordType,
			Date:        date,
			Origin:      "Origem",
			Destination: "Destino",
			IsActive:    true,
		}
	}

	Describe("Append", func() {
		It("should store a record successfully", func() {
			rec := newRecord("rec-1", "emp-1", evolution.TypeAdmission, time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC))

			err := repo.Append(rec)
			Expect(err).NotTo(HaveOccurred())

			retrieved, err := repo.GetByID("rec-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(retrieved.EmployeeID).To(Equal("emp-1"))
			Expect(retrieved.Type).To(Equal(evolution.TypeAdmission))
			Expect(retrieved.IsActive).To(BeTrue())
		})

		It("should reject a duplicate record id", func() {
			rec := newRecord("rec-1", "emp-1", evolution.TypeAdmission, time.Now())
			Expect(repo.Append(rec)).To(Succeed())

			err := repo.Append(newRecord("rec-1", "emp-2", evolution.TypeMobility, time.Now()))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("GetByID", func() {
		It("should return ErrRecordNotFound for a non-existent id", func() {
			retrieved, err := repo.GetByID("rec-ghost")
			Expect(err).To(Equal(evolution.ErrRecordNotFound))
			Expect(retrieved).To(BeNil())
		})
	})

	Describe("ListByEmployee", func() {
		BeforeEach(func() {
			// Dates deliberately out of order: listing follows insertion,
			// not the record date.
			Expect(repo.Append(newRecord("rec-1", "emp-1", evolution.TypeAdmission, time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)))).To(Succeed())
			Expect(repo.Append(newRecord("rec-2", "emp-1", evolution.TypePromotion, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))).To(Succeed())
			Expect(repo.Append(newRecord("rec-3", "emp-2", evolution.TypeAdmission, time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)))).To(Succeed())
		})

		It("should return only the employee's records", func() {
			records, err := repo.ListByEmployee("emp-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
		})

		It("should keep insertion order regardless of record dates", func() {
			records, err := repo.ListByEmployee("emp-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(records[0].ID).To(Equal("rec-1"))
			Expect(records[1].ID).To(Equal("rec-2"))
		})

		It("should return an empty slice for an unknown employee", func() {
			records, err := repo.ListByEmployee("emp-ghost")
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(BeEmpty())
		})
	})

	Describe("List", func() {
		It("should return every record in insertion order", func() {
			Expect(repo.Append(newRecord("rec-1", "emp-1", evolution.TypeAdmission, time.Now()))).To(Succeed())
			Expect(repo.Append(newRecord("rec-2", "emp-2", evolution.TypeAdmission, time.Now()))).To(Succeed())

			records, err := repo.List()
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
			Expect(records[0].ID).To(Equal("rec-1"))
		})
	})

	Describe("Cease", func() {
		It("should flag the record inactive with the end date", func() {
			Expect(repo.Append(newRecord("rec-1", "emp-1", evolution.TypeLeadership, time.Now()))).To(Succeed())
			endDate := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

			err := repo.Cease("rec-1", endDate)
			Expect(err).NotTo(HaveOccurred())

			retrieved, err := repo.GetByID("rec-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(retrieved.IsActive).To(BeFalse())
			Expect(retrieved.EndDate).NotTo(BeNil())
		})

		It("should leave other records untouched", func() {
			Expect(repo.Append(newRecord("rec-1", "emp-1", evolution.TypeLeadership, time.Now()))).To(Succeed())
			Expect(repo.Append(newRecord("rec-2", "emp-1", evolution.TypeLeadership, time.Now()))).To(Succeed())

			Expect(repo.Cease("rec-1", time.Now())).To(Succeed())

			other, err := repo.GetByID("rec-2")
			Expect(err).NotTo(HaveOccurred())
			Expect(other.IsActive).To(BeTrue())
		})
	})
})
