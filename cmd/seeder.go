package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	departmentDatamodel "github.com/nexushr/hr-management/internal/core/datamodel/department"
	employeeDatamodel "github.com/nexushr/hr-management/internal/core/datamodel/employee"
	evolutionDatamodel "github.com/nexushr/hr-management/internal/core/datamodel/evolution"
	leaveDatamodel "github.com/nexushr/hr-management/internal/core/datamodel/leave"
	"github.com/nexushr/hr-management/internal/employee"
	"github.com/nexushr/hr-management/internal/evolution"
	"github.com/nexushr/hr-management/internal/leave"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer sqlxDB.Close()

		db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlxDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		if clearData {
			for _, table := range []string{"notifications", "evolution_records", "leave_requests", "vacation_plans", "employees", "departments"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		seedDepartments(db)
		seedEmployees(db, cfg.Security.BCryptCost)
		seedEvolutionHistory(db)
		seedLeaveRequests(db)

		fmt.Println("Seeding complete")
	},
}

func seedDepartments(db *gorm.DB) {
	departments := []departmentDatamodel.Department{
		{ID: "d1", Name: "Engenharia", Description: "Desenvolvimento e QA"},
		{ID: "d2", Name: "Recursos Humanos", Description: "Gestão de pessoas e cultura"},
		{ID: "d3", Name: "Vendas", Description: "Comercial e Parcerias"},
		{ID: "d4", Name: "Marketing", Description: "Growth e Branding"},
	}

	for _, d := range departments {
		var count int64
		db.Model(&departmentDatamodel.Department{}).Where("id = ?", d.ID).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&d).Error; err != nil {
			log.Fatalf("failed to seed department %s: %v", d.Name, err)
		}
		fmt.Println("Seeded department:", d.Name)
	}
}

func seedEmployees(db *gorm.DB, bcryptCost int) {
	hash := func(password string) string {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		return string(h)
	}

	date := func(value string) time.Time {
		t, err := time.Parse("2006-01-02", value)
		if err != nil {
			log.Fatalf("bad seed date %s: %v", value, err)
		}
		return t
	}
	datePtr := func(value string) *time.Time {
		t := date(value)
		return &t
	}
	strPtr := func(s string) *string { return &s }

	employees := []employeeDatamodel.Employee{
		{
			ID: "e1", FirstName: "Ana", LastName: "Silva", Email: "admin@nexushr.com",
			Role: "Engenheira Senior", PreviousRole: strPtr("Engenheira Junior"),
			DepartmentID: "d1", JoinDate: date("2022-03-15"),
			Salary: decimal.NewFromInt(12000), Status: employee.StatusActive,
			AccessLevel: "ADMIN", PasswordHash: hash("admin"),
			CareerCategory: "Técnico Superior", CareerLevel: "C", CareerStep: 2,
			ContractType: employee.ContractPermanent, BirthDate: datePtr("1990-05-20"),
			Phone: "841234567", Address: strPtr("Av. 25 de Setembro, Maputo"),
		},
		{
			ID: "e2", FirstName: "Carlos", LastName: "Mendes", Email: "gestor@nexushr.com",
			Role: "Gerente de Vendas", DepartmentID: "d3", JoinDate: date("2021-06-01"),
			Salary: decimal.NewFromInt(15000), Status: employee.StatusActive,
			AccessLevel: "MANAGER", PasswordHash: hash("123"),
			CareerCategory: "Gestão", CareerLevel: "B", CareerStep: 3,
			ContractType: employee.ContractPermanent, BirthDate: datePtr("1985-08-10"),
			IsLeadership: true, LeadershipRole: strPtr("Director Comercial"),
			Phone: "829876543", Address: strPtr("Rua da Polana, Maputo"),
		},
		{
			ID: "e3", FirstName: "Beatriz", LastName: "Costa", Email: "bia.costa@nexushr.com",
			Role: "Analista de RH", DepartmentID: "d2", JoinDate: date("2023-01-10"),
			Salary: decimal.NewFromInt(5000), Status: employee.StatusOnLeave,
			AccessLevel: "EMPLOYEE", PasswordHash: hash("123"),
			CareerCategory: "Técnico", CareerLevel: "E", CareerStep: 1,
			ContractType: employee.ContractContracted, BirthDate: datePtr("1995-12-05"),
			Phone: "845556667", Address: strPtr("Bairro Central, Maputo"),
		},
		{
			ID: "e4", FirstName: "João", LastName: "Pereira", Email: "joao.p@nexushr.com",
			Role: "Designer", DepartmentID: "d4", JoinDate: date("2022-11-20"),
			Salary: decimal.NewFromInt(7000), Status: employee.StatusActive,
			AccessLevel: "EMPLOYEE", PasswordHash: hash("123"),
			CareerCategory: "Técnico Especialista", CareerLevel: "D", CareerStep: 1,
			ContractType: employee.ContractContracted, BirthDate: datePtr("1992-03-15"),
			Phone: "861112223", Address: strPtr("Matola Rio"),
		},
		{
			ID: "e5", FirstName: "Mariana", LastName: "Lopes", Email: "mari.lopes@nexushr.com",
			Role: "DevOps", PreviousRole: strPtr("SysAdmin"),
			DepartmentID: "d1", JoinDate: date("2023-05-15"),
			Salary: decimal.NewFromInt(11000), Status: employee.StatusActive,
			AccessLevel: "EMPLOYEE", PasswordHash: hash("123"),
			CareerCategory: "Técnico Superior", CareerLevel: "D", CareerStep: 2,
			ContractType: employee.ContractMobility, BirthDate: datePtr("1993-07-22"),
			Phone: "859998887", Address: strPtr("Zimpeto, Maputo"),
		},
	}

	for _, e := range employees {
		var count int64
		db.Model(&employeeDatamodel.Employee{}).Where("email = ?", e.Email).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&e).Error; err != nil {
			log.Fatalf("failed to seed employee %s: %v", e.Email, err)
		}
		fmt.Println("Seeded employee:", e.Email)
	}
}

func seedEvolutionHistory(db *gorm.DB) {
	date := func(value string) time.Time {
		t, _ := time.Parse("2006-01-02", value)
		return t
	}

	records := []evolutionDatamodel.EvolutionRecord{
		{
			ID: "ev1", EmployeeID: "e1", Type: evolution.TypeAdmission,
			Date: date("2022-03-15"), Origin: "Externo", Destination: "Engenheira Junior",
			Description: "Admissão por concurso público.", IsActive: false,
		},
		{
			ID: "ev2", EmployeeID: "e1", Type: evolution.TypeCareerChange,
			Date: date("2023-03-15"), Origin: "Engenheira Junior", Destination: "Engenheira Senior",
			Description: "Mudança de carreira por mérito.", IsActive: true,
		},
		{
			ID: "ev3", EmployeeID: "e2", Type: evolution.TypeLeadership,
			Date: date("2021-06-01"), Origin: "Técnico Vendas", Destination: "Director Comercial",
			Description: "Nomeação para cargo de direção.", IsActive: true,
		},
	}

	for _, r := range records {
		var count int64
		db.Model(&evolutionDatamodel.EvolutionRecord{}).Where("id = ?", r.ID).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&r).Error; err != nil {
			log.Fatalf("failed to seed evolution record %s: %v", r.ID, err)
		}
		fmt.Println("Seeded evolution record:", r.ID)
	}
}

func seedLeaveRequests(db *gorm.DB) {
	date := func(value string) time.Time {
		t, _ := time.Parse("2006-01-02", value)
		return t
	}

	requests := []leaveDatamodel.LeaveRequest{
		{
			ID: "r1", EmployeeID: "e3", Type: leave.TypeVacation,
			StartDate: date("2023-11-01"), EndDate: date("2023-11-15"),
			Reason: "Viagem anual", Status: leave.StatusApproved, RequestDate: date("2023-10-01"),
		},
		{
			ID: "r2", EmployeeID: "e1", Type: leave.TypeHealth,
			StartDate: date("2023-10-25"), EndDate: date("2023-10-26"),
			Reason: "Gripe", Status: leave.StatusApproved, RequestDate: date("2023-10-25"),
		},
		{
			ID: "r3", EmployeeID: "e4", Type: leave.TypeVacation,
			StartDate: date("2023-12-20"), EndDate: date("2024-01-05"),
			Reason: "Festas de fim de ano", Status: leave.StatusPending, RequestDate: date("2023-10-28"),
		},
		{
			ID: "r4", EmployeeID: "e5", Type: leave.TypeOther,
			StartDate: date("2023-11-10"), EndDate: date("2023-11-10"),
			Reason: "Mudança de casa", Status: leave.StatusPending, RequestDate: date("2023-10-29"),
		},
	}

	for _, r := range requests {
		var count int64
		db.Model(&leaveDatamodel.LeaveRequest{}).Where("id = ?", r.ID).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&r).Error; err != nil {
			log.Fatalf("failed to seed leave request %s: %v", r.ID, err)
		}
		fmt.Println("Seeded leave request:", r.ID)
	}
}
