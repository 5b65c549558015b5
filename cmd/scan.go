package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nexushr/hr-management/internal/core/events"
	employeePostgres "github.com/nexushr/hr-management/internal/employee/postgres"
	"github.com/nexushr/hr-management/internal/mailer"
	"github.com/nexushr/hr-management/internal/notification"
	notificationPostgres "github.com/nexushr/hr-management/internal/notification/postgres"
	vacationPostgres "github.com/nexushr/hr-management/internal/vacation/postgres"
	"github.com/nexushr/hr-management/pkg/logger"
)

// scanCmd runs one notification scan and exits, for cron-style operation
// alongside or instead of the in-server scheduler.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run the automated notification scan once",
	Long:  `Run the proof-of-life and vacation-plan reminder scan once against the current date, then exit.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		logger.Init(cfg.Logging.Format)
		lg := logger.LoggerWrapper()

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer sqlxDB.Close()

		db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlxDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		mailClient := mailer.NewClient(mailer.Config{
			FromAddress:  cfg.Mailer.FromAddress,
			MaxWorkers:   cfg.Mailer.MaxWorkers,
			JobQueueSize: cfg.Mailer.JobQueueSize,
		}, lg)
		defer mailClient.Shutdown()

		svc := notification.NewService(
			notificationPostgres.NewNotificationRepository(db),
			employeePostgres.NewEmployeeRepository(db),
			vacationPostgres.NewVacationRepository(db),
			mailClient,
			events.NewEventBus(lg),
			lg,
		)

		created, err := svc.Scan(time.Now())
		if err != nil {
			log.Fatalf("scan failed: %v", err)
		}

		fmt.Printf("Scan complete, %d notification(s) created\n", created)
	},
}
