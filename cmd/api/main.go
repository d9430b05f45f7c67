package main

import (
	"fmt"
	"net/http"

	"github.com/csaops/shrinkage-backend-go/internal/config"
	appHTTP "github.com/csaops/shrinkage-backend-go/internal/handler/http"
	"github.com/csaops/shrinkage-backend-go/internal/pkg/database"
	"github.com/csaops/shrinkage-backend-go/internal/pkg/email"
	"github.com/csaops/shrinkage-backend-go/internal/pkg/jwt"
	"github.com/csaops/shrinkage-backend-go/internal/repository/postgresql"
	authService "github.com/csaops/shrinkage-backend-go/internal/service/auth"
	leaveService "github.com/csaops/shrinkage-backend-go/internal/service/leave"
	performanceService "github.com/csaops/shrinkage-backend-go/internal/service/performance"
	reportService "github.com/csaops/shrinkage-backend-go/internal/service/report"
	scheduleService "github.com/csaops/shrinkage-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	scheduleRepo := postgresql.NewScheduleRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	performanceRepo := postgresql.NewPerformanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.Auth.Secret, cfg.Auth.TokenExpiration)
	emailService := email.NewEmailService(cfg.SMTP)

	authSvc := authService.NewAuthService(jwtService)
	scheduleSvc := scheduleService.NewScheduleService(db, scheduleRepo, leaveRepo)
	leaveSvc := leaveService.NewLeaveService(db, scheduleRepo, leaveRepo)
	reportSvc := reportService.NewReportService(scheduleRepo, leaveRepo, reportRepo)
	performanceSvc := performanceService.NewPerformanceService(performanceRepo, emailService)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	performanceHandler := appHTTP.NewPerformanceHandler(performanceSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		scheduleHandler,
		leaveHandler,
		reportHandler,
		performanceHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
