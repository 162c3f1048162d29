package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/buildrite/buildrite/internal/api/handlers"
	mw "github.com/buildrite/buildrite/internal/api/middleware"
	"github.com/buildrite/buildrite/internal/auth"
	"github.com/buildrite/buildrite/internal/buildconfig"
	"github.com/buildrite/buildrite/internal/config"
	"github.com/buildrite/buildrite/internal/domain"
	"github.com/buildrite/buildrite/internal/service"
	"github.com/buildrite/buildrite/internal/store"
)

// App holds the assembled router.
type App struct {
	Router *chi.Mux
}

func NewApp(db *pgxpool.Pool, logger *zap.Logger) *App {
	// Stores
	tenantStore := store.NewTenantStore(db)
	userStore := store.NewUserStore(db)
	clientStore := store.NewClientStore(db)
	projectStore := store.NewProjectStore(db)
	employeeStore := store.NewEmployeeStore(db)
	equipmentStore := store.NewEquipmentStore(db)
	invoiceStore := store.NewInvoiceStore(db)
	scheduleStore := store.NewScheduleStore(db)
	documentStore := store.NewDocumentStore(db)
	reportStore := store.NewReportStore(db)

	issuer := auth.NewTokenIssuer(config.JWTSigningKey(), time.Duration(config.JWTExpirationHours())*time.Hour)

	// Services
	tenantSvc := service.NewTenantService(tenantStore)
	userSvc := service.NewUserService(userStore)
	authSvc := service.NewAuthService(userStore, tenantStore, issuer)
	clientSvc := service.NewClientService(clientStore)
	projectSvc := service.NewProjectService(projectStore, clientStore)
	employeeSvc := service.NewEmployeeService(employeeStore)
	equipmentSvc := service.NewEquipmentService(equipmentStore)
	invoiceSvc := service.NewInvoiceService(invoiceStore, clientStore)
	scheduleSvc := service.NewScheduleService(scheduleStore)
	documentSvc := service.NewDocumentService(documentStore)
	reportSvc := service.NewReportService(reportStore)

	// Handlers
	tenantHandler := handlers.NewTenantHandler(tenantSvc)
	userHandler := handlers.NewUserHandler(userSvc)
	authHandler := handlers.NewAuthHandler(authSvc)
	clientHandler := handlers.NewClientHandler(clientSvc)
	projectHandler := handlers.NewProjectHandler(projectSvc)
	employeeHandler := handlers.NewEmployeeHandler(employeeSvc)
	equipmentHandler := handlers.NewEquipmentHandler(equipmentSvc)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceSvc)
	scheduleHandler := handlers.NewScheduleHandler(scheduleSvc)
	documentHandler := handlers.NewDocumentHandler(documentSvc)
	reportHandler := handlers.NewReportHandler(reportSvc)

	httpMetrics := mw.NewHTTPMetrics(prometheus.DefaultRegisterer)

	r := chi.NewRouter()

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(httpMetrics.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(mw.Recover(logger))
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	// Health and metrics (no auth)
	r.Get("/health", healthHandler(db))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/register", authHandler.Register)

		// Everything below requires a valid token and resolves the
		// request tenant from header or claim.
		r.Group(func(r chi.Router) {
			r.Use(mw.JWTAuth(issuer))
			r.Use(mw.ResolveTenant)

			// Tenant administration is admin-only and not scoped to
			// the caller's own tenant.
			r.Route("/tenant", func(r chi.Router) {
				r.Use(mw.RequireRole(domain.RoleAdmin))
				r.Get("/", tenantHandler.List)
				r.Post("/", tenantHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", tenantHandler.GetByID)
					r.Put("/", tenantHandler.Update)
					r.Delete("/", tenantHandler.Delete)
				})
			})

			r.Route("/user", func(r chi.Router) {
				r.Get("/", userHandler.List)
				r.Post("/", userHandler.Create)
				r.Get("/active", userHandler.ListActive)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", userHandler.GetByID)
					r.Put("/", userHandler.Update)
					r.Delete("/", userHandler.Delete)
				})
			})

			r.Route("/client", func(r chi.Router) {
				r.Get("/", clientHandler.List)
				r.Post("/", clientHandler.Create)
				r.Get("/active", clientHandler.ListActive)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", clientHandler.GetByID)
					r.Put("/", clientHandler.Update)
					r.Delete("/", clientHandler.Delete)
				})
			})

			r.Route("/project", func(r chi.Router) {
				r.Get("/", projectHandler.List)
				r.Post("/", projectHandler.Create)
				r.Get("/active", projectHandler.ListActive)
				r.Get("/client/{clientId}", projectHandler.ListByClient)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", projectHandler.GetByID)
					r.Put("/", projectHandler.Update)
					r.Delete("/", projectHandler.Delete)
				})
			})

			r.Route("/employee", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Get("/active", employeeHandler.ListActive)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", employeeHandler.GetByID)
					r.Put("/", employeeHandler.Update)
					r.Delete("/", employeeHandler.Delete)
				})
			})

			r.Route("/equipment", func(r chi.Router) {
				r.Get("/", equipmentHandler.List)
				r.Post("/", equipmentHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", equipmentHandler.GetByID)
					r.Put("/", equipmentHandler.Update)
					r.Delete("/", equipmentHandler.Delete)
				})
			})

			r.Route("/invoice", func(r chi.Router) {
				r.Get("/", invoiceHandler.List)
				r.Post("/", invoiceHandler.Create)
				r.Get("/client/{clientId}", invoiceHandler.ListByClient)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", invoiceHandler.GetByID)
					r.Put("/", invoiceHandler.Update)
					r.Delete("/", invoiceHandler.Delete)
					r.Post("/pay", invoiceHandler.RecordPayment)
				})
			})

			r.Route("/schedule", func(r chi.Router) {
				r.Get("/", scheduleHandler.List)
				r.Post("/", scheduleHandler.Create)
				r.Get("/project/{projectId}", scheduleHandler.ListByProject)
				r.Get("/employee/{employeeId}", scheduleHandler.ListByEmployee)
				r.Get("/date/{date}", scheduleHandler.ListByDate)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", scheduleHandler.GetByID)
					r.Put("/", scheduleHandler.Update)
					r.Delete("/", scheduleHandler.Delete)
				})
			})

			r.Route("/document", func(r chi.Router) {
				r.Get("/", documentHandler.List)
				r.Post("/", documentHandler.Create)
				r.Get("/project/{projectId}", documentHandler.ListByProject)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", documentHandler.GetByID)
					r.Put("/", documentHandler.Update)
					r.Delete("/", documentHandler.Delete)
				})
			})

			r.Route("/report", func(r chi.Router) {
				r.Get("/", reportHandler.List)
				r.Post("/", reportHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", reportHandler.GetByID)
					r.Put("/", reportHandler.Update)
					r.Delete("/", reportHandler.Delete)
				})
			})
		})
	})

	return &App{Router: r}
}

// NewRouter returns just the chi.Mux.
func NewRouter(db *pgxpool.Pool, logger *zap.Logger) *chi.Mux {
	return NewApp(db, logger).Router
}

func healthHandler(db *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := db.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
			return
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":  "ok",
			"version": buildconfig.Version(),
			"commit":  buildconfig.Commit(),
		})
	}
}

// Ensure stores satisfy their interfaces at compile time.
var (
	_ domain.TenantStore    = (*store.TenantStore)(nil)
	_ domain.UserStore      = (*store.UserStore)(nil)
	_ domain.ClientStore    = (*store.ClientStore)(nil)
	_ domain.ProjectStore   = (*store.ProjectStore)(nil)
	_ domain.EmployeeStore  = (*store.EmployeeStore)(nil)
	_ domain.EquipmentStore = (*store.EquipmentStore)(nil)
	_ domain.InvoiceStore   = (*store.InvoiceStore)(nil)
	_ domain.ScheduleStore  = (*store.ScheduleStore)(nil)
	_ domain.DocumentStore  = (*store.DocumentStore)(nil)
	_ domain.ReportStore    = (*store.ReportStore)(nil)
)
