package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nexushr/hr-management/internal"
	"github.com/nexushr/hr-management/internal/auth"
	authPostgres "github.com/nexushr/hr-management/internal/auth/postgres"
	"github.com/nexushr/hr-management/internal/core/events"
	"github.com/nexushr/hr-management/internal/department"
	departmentPostgres "github.com/nexushr/hr-management/internal/department/postgres"
	"github.com/nexushr/hr-management/internal/employee"
	employeePostgres "github.com/nexushr/hr-management/internal/employee/postgres"
	"github.com/nexushr/hr-management/internal/evolution"
	evolutionPostgres "github.com/nexushr/hr-management/internal/evolution/postgres"
	"github.com/nexushr/hr-management/internal/leave"
	leavePostgres "github.com/nexushr/hr-management/internal/leave/postgres"
	"github.com/nexushr/hr-management/internal/mailer"
	"github.com/nexushr/hr-management/internal/notification"
	notificationPostgres "github.com/nexushr/hr-management/internal/notification/postgres"
	"github.com/nexushr/hr-management/internal/transport/rest"
	"github.com/nexushr/hr-management/internal/vacation"
	vacationPostgres "github.com/nexushr/hr-management/internal/vacation/postgres"
	"github.com/nexushr/hr-management/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Mailer *mailer.Client
	Logger *slog.Logger

	NotificationService *notification.Service
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	startScheduler(schedulerCtx, deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down...", "signal", sig)
		stopScheduler()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		deps.Mailer.Shutdown()
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		stopScheduler()
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

// startScheduler runs the notification scan on an interval. Every pass is
// idempotent, so overlap with the on-demand endpoint is harmless.
func startScheduler(ctx context.Context, deps *Dependencies) {
	interval := deps.Config.Scheduler.ScanInterval
	if interval <= 0 {
		interval = time.Hour
	}

	go func() {
		if deps.Config.Scheduler.ScanOnStart {
			if _, err := deps.NotificationService.Scan(time.Now()); err != nil {
				deps.Logger.Error("startup notification scan failed", "error", err)
			}
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if _, err := deps.NotificationService.Scan(time.Now()); err != nil {
					deps.Logger.Error("scheduled notification scan failed", "error", err)
				}
			case <-ctx.Done():
				deps.Logger.Info("notification scheduler stopped")
				return
			}
		}
	}()
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Logging.Format)
	log := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	bus := events.NewEventBus(log)

	mailClient := mailer.NewClient(mailer.Config{
		FromAddress:  config.Mailer.FromAddress,
		MaxWorkers:   config.Mailer.MaxWorkers,
		JobQueueSize: config.Mailer.JobQueueSize,
	}, log)

	employeeRepo := employeePostgres.NewEmployeeRepository(gormDB)
	evolutionRepo := evolutionPostgres.NewEvolutionRepository(gormDB)
	departmentRepo := departmentPostgres.NewDepartmentRepository(gormDB)
	leaveRepo := leavePostgres.NewLeaveRepository(gormDB)
	vacationRepo := vacationPostgres.NewVacationRepository(gormDB)
	notificationRepo := notificationPostgres.NewNotificationRepository(gormDB)
	credentialRepo := authPostgres.NewCredentialRepository(db)

	tokenGen := auth.NewJWTTokenGenerator(
		config.Security.AccessTokenSecret,
		config.Security.RefreshTokenSecret,
	)
	authService := auth.NewService(credentialRepo, tokenGen, config.Security.BCryptCost, log)

	notificationService := notification.NewService(
		notificationRepo, employeeRepo, vacationRepo, mailClient, bus, log)

	evolutionService := evolution.NewService(
		evolutionRepo, employeeRepo, notificationService, bus, log)

	employeeService := employee.NewService(
		employeeRepo, evolutionService, mailClient, authService, bus, log)

	departmentService := department.NewService(departmentRepo, log)
	vacationService := vacation.NewService(vacationRepo, log)
	leaveService := leave.NewService(leaveRepo, vacationService, log)

	handlers := rest.Handlers{
		Auth:         auth.NewHandler(authService),
		Employee:     employee.NewHandler(employeeService),
		Evolution:    evolution.NewHandler(evolutionService),
		Department:   department.NewHandler(departmentService),
		Leave:        leave.NewHandler(leaveService),
		Vacation:     vacation.NewHandler(vacationService),
		Notification: notification.NewHandler(notificationService),
	}

	rbac := auth.NewRBACAuthorization(log)

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, db.DB, handlers, rbac, log)

	return &Dependencies{
		Config: config,
		DB:     db,
		GormDB: gormDB,
		Router: router,
		Mailer: mailClient,
		Logger: log,

		NotificationService: notificationService,
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
