package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/nexushr/hr-management/internal/auth"
	"github.com/nexushr/hr-management/internal/department"
	"github.com/nexushr/hr-management/internal/employee"
	"github.com/nexushr/hr-management/internal/evolution"
	"github.com/nexushr/hr-management/internal/leave"
	"github.com/nexushr/hr-management/internal/notification"
	"github.com/nexushr/hr-management/internal/transport/middleware"
	"github.com/nexushr/hr-management/internal/transport/swagger"
	"github.com/nexushr/hr-management/internal/vacation"
)

// Handlers bundles every feature handler the router mounts.
type Handlers struct {
	Auth         *auth.Handler
	Employee     *employee.Handler
	Evolution    *evolution.Handler
	Department   *department.Handler
	Leave        *leave.Handler
	Vacation     *vacation.Handler
	Notification *notification.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, rbac *auth.RBACAuthorization, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", h.Auth.Login)
			sr.Post("/refresh", h.Auth.RefreshToken)
			sr.Post("/logout", h.Auth.Logout)
		})

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Post("/me/password", h.Employee.ChangePassword)

			pr.Route("/employees", func(er chi.Router) {
				er.Get("/", h.Employee.ListEmployees)
				er.Get("/{id}", h.Employee.GetEmployee)
				er.Get("/{id}/history", h.Evolution.ListEmployeeHistory)

				er.Group(func(mr chi.Router) {
					mr.Use(rbac.RequirePrivileged())
					mr.Post("/", h.Employee.HireEmployee)
					mr.Put("/{id}", h.Employee.UpdateEmployee)
					mr.Post("/{id}/credentials", h.Employee.IssueCredentials)
				})

				er.Group(func(ar chi.Router) {
					ar.Use(rbac.RequireAdmin())
					ar.Delete("/{id}", h.Employee.DeleteEmployee)
					ar.Post("/{id}/rebuild", h.Evolution.RebuildEmployeeState)
				})
			})

			pr.Route("/evolution", func(er chi.Router) {
				er.Get("/", h.Evolution.ListRecords)
				er.Get("/{id}", h.Evolution.GetRecord)

				er.Group(func(mr chi.Router) {
					mr.Use(rbac.RequirePrivileged())
					mr.Post("/", h.Evolution.AppendRecord)
					mr.Post("/{id}/cease", h.Evolution.CeaseFunctions)
				})
			})

			pr.Route("/departments", func(dr chi.Router) {
				dr.Get("/", h.Department.ListDepartments)
				dr.Get("/{id}", h.Department.GetDepartment)

				dr.Group(func(mr chi.Router) {
					mr.Use(rbac.RequirePrivileged())
					mr.Post("/", h.Department.CreateDepartment)
					mr.Put("/{id}", h.Department.UpdateDepartment)
					mr.Delete("/{id}", h.Department.DeleteDepartment)
				})
			})

			pr.Route("/leave", func(lr chi.Router) {
				lr.Post("/", h.Leave.CreateRequest)
				lr.Get("/", h.Leave.ListRequests)
				lr.Get("/{id}", h.Leave.GetRequest)
				lr.Delete("/{id}", h.Leave.DeleteRequest)

				lr.Group(func(mr chi.Router) {
					mr.Use(rbac.RequirePrivileged())
					mr.Patch("/{id}/approve", h.Leave.ApproveRequest)
					mr.Patch("/{id}/reject", h.Leave.RejectRequest)
				})
			})

			pr.Route("/vacation-plans", func(vr chi.Router) {
				vr.Post("/", h.Vacation.CreatePlan)
				vr.Get("/", h.Vacation.ListPlans)
				vr.Get("/{id}", h.Vacation.GetPlan)
				vr.Put("/{id}", h.Vacation.UpdatePlan)
				vr.Delete("/{id}", h.Vacation.DeletePlan)

				vr.Group(func(mr chi.Router) {
					mr.Use(rbac.RequirePrivileged())
					mr.Patch("/{id}/convert", h.Vacation.ConvertPlan)
				})
			})

			pr.Route("/notifications", func(nr chi.Router) {
				nr.Get("/", h.Notification.ListNotifications)
				nr.Get("/{id}", h.Notification.GetNotification)
				nr.Patch("/{id}/read", h.Notification.MarkNotificationRead)

				nr.Group(func(mr chi.Router) {
					mr.Use(rbac.RequirePrivileged())
					mr.Post("/scan", h.Notification.TriggerScan)
				})
			})
		})
	})
}
