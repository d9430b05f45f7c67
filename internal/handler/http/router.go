package http

import (
	"log/slog"
	"os"

	"github.com/csaops/shrinkage-backend-go/internal/handler/http/middleware"
	"github.com/csaops/shrinkage-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	scheduleHandler ScheduleHandler,
	leaveHandler LeaveHandler,
	reportHandler ReportHandler,
	performanceHandler PerformanceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shrinkage-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Reporting routes are open; only mutations sit behind the gate.
		r.Route("/reports", func(r chi.Router) {
			r.Route("/shrinkage", func(r chi.Router) {
				r.Get("/weekly", reportHandler.WeeklyOverview)
				r.Get("/week/{week}", reportHandler.WeekShrinkage)
				r.Get("/day", reportHandler.DayShrinkage)
				r.Get("/month", reportHandler.MonthlyReport)
				r.Get("/year", reportHandler.AnnualReport)
			})
			r.Get("/goal", reportHandler.GoalAnalysis)
		})

		r.Get("/schedules", scheduleHandler.GetWeek)
		r.Get("/schedules/weeks", scheduleHandler.ListWeeks)
		r.Get("/schedules/logins", scheduleHandler.ListLogins)
		r.Get("/leaves/summary", leaveHandler.Summary)
		r.Get("/performance/trend", performanceHandler.Trend)
		r.Get("/performance/usernames", performanceHandler.ListUsernames)
		r.Get("/performance/export", performanceHandler.ExportCSV)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/schedules", scheduleHandler.Create)
			r.Post("/schedules/import", scheduleHandler.Import)
			r.Delete("/schedules", scheduleHandler.DeleteEntries)
			r.Delete("/schedules/weeks", scheduleHandler.DeleteWeeks)
			r.Delete("/schedules/ids", scheduleHandler.DeleteByIDs)
			r.Patch("/schedules/{id}/day", leaveHandler.UpdateEntryDay)

			r.Post("/leaves", leaveHandler.Code)
			r.Delete("/leaves", leaveHandler.Delete)
			r.Post("/leaves/bulk-status", leaveHandler.BulkSetStatus)

			r.Post("/performance/import", performanceHandler.Import)
			r.Post("/performance/email", performanceHandler.EmailReport)
		})
	})
	return r
}
