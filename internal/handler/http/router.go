package http

import (
	"log/slog"
	"os"

	"github.com/gajihub/payroll-backend-go/internal/config"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(cfg *config.Config, payrollHandler PayrollHandler, companyHandler CompanyHandler, employeeHandler EmployeeHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/payroll", func(r chi.Router) {
			r.Post("/runs", payrollHandler.RunPayroll)
			r.Post("/pending/process", payrollHandler.ProcessPending)

			r.Route("/payslips", func(r chi.Router) {
				r.Get("/", payrollHandler.ListPayslips)
				r.Get("/{id}", payrollHandler.GetPayslip)
			})
		})

		r.Route("/company", func(r chi.Router) {
			r.Route("/account", func(r chi.Router) {
				r.Get("/", companyHandler.GetAccount)
				r.Post("/topup", companyHandler.CreateTopUp)
			})
		})

		r.Get("/employees", employeeHandler.List)
	})

	return r
}
