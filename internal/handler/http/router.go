package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/handler/http/middleware"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/pkg/jwt"
)

func NewRouter(
	env string,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	scheduleHandler ScheduleHandler,
	salaryHandler SalaryHandler,
	staffHandler StaffHandler,
	uploadsDir string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "salon-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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

	// Check photos stored by the local photo store
	if uploadsDir != "" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/today", attendanceHandler.Today)
				r.Post("/check", attendanceHandler.Check)
				r.Get("/history", attendanceHandler.History)
				r.Get("/stats", attendanceHandler.Stats)
			})

			r.Get("/schedules/my", scheduleHandler.GetMySchedules)

			r.Route("/salary", func(r chi.Router) {
				r.Get("/current", salaryHandler.GetCurrent)
				r.Get("/history", salaryHandler.History)
				r.Get("/{month}/{year}", salaryHandler.GetPeriod)
			})

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/staff", func(r chi.Router) {
					r.Get("/", staffHandler.List)
					r.Get("/{id}", staffHandler.Get)
					r.Get("/{id}/schedules", scheduleHandler.GetStaffSchedules)
					r.Put("/{id}/schedules", scheduleHandler.UpsertStaffSchedules)
					r.Delete("/{id}/schedules/{dayOfWeek}", scheduleHandler.DeleteStaffSchedule)
				})

				r.Post("/attendance/reconcile", attendanceHandler.Reconcile)

				r.Route("/salary", func(r chi.Router) {
					r.Get("/", salaryHandler.ListPeriod)
					r.Post("/{staffID}/{month}/{year}", salaryHandler.Generate)
					r.Post("/{id}/confirm", salaryHandler.Confirm)
					r.Post("/{id}/pay", salaryHandler.Pay)
				})
			})
		})
	})
	return r
}
