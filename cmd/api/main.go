package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gajihub/payroll-backend-go/internal/config"
	appHTTP "github.com/gajihub/payroll-backend-go/internal/handler/http"
	"github.com/gajihub/payroll-backend-go/internal/pkg/database"
	"github.com/gajihub/payroll-backend-go/internal/pkg/email"
	"github.com/gajihub/payroll-backend-go/internal/pkg/xendit"
	"github.com/gajihub/payroll-backend-go/internal/repository/postgresql"
	companyService "github.com/gajihub/payroll-backend-go/internal/service/company"
	employeeService "github.com/gajihub/payroll-backend-go/internal/service/employee"
	payrollService "github.com/gajihub/payroll-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "payroll-backend"),
		slog.String("env", cfg.App.Env),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	componentRepo := postgresql.NewComponentRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)

	xenditClient := xendit.NewClient(cfg.Xendit)
	if xenditClient.IsSandbox() {
		logger.Warn("xendit client running in sandbox mode")
	}

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}
	notifier := payrollService.NewSlipNotifier(emailService)

	payrollSvc := payrollService.NewPayrollService(
		payslipRepo,
		componentRepo,
		employeeRepo,
		companyRepo,
		xenditClient,
		notifier,
		logger,
	)
	companySvc := companyService.NewCompanyService(companyRepo, xenditClient, logger)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	companyHandler := appHTTP.NewCompanyHandler(companySvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(cfg, payrollHandler, companyHandler, employeeHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
