package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/config"
	appHTTP "github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/handler/http"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/pkg/database"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/pkg/jwt"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/pkg/storage"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/repository/postgresql"
	attendanceService "github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/service/attendance"
	serviceAuth "github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/service/auth"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/service/file"
	payrollService "github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/service/payroll"
	scheduleService "github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/service/schedule"
	staffService "github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/service/staff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.Salon.Timezone)
	if err != nil {
		log.Fatal("Invalid salon timezone: ", err)
	}
	defaultStart, err := time.Parse("15:04", cfg.Salon.DefaultShiftStart)
	if err != nil {
		log.Fatal("Invalid DEFAULT_SHIFT_START: ", err)
	}
	defaultEnd, err := time.Parse("15:04", cfg.Salon.DefaultShiftEnd)
	if err != nil {
		log.Fatal("Invalid DEFAULT_SHIFT_END: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	scheduleRepo := postgresql.NewStaffScheduleRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	slipRepo := postgresql.NewSalarySlipRepository(db)
	bookingRepo := postgresql.NewBookingRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var photoStore storage.PhotoStore
	switch cfg.Storage.Type {
	case "local":
		photoStore, err = storage.NewLocalStore(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage: ", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(photoStore)
	staffSvc := staffService.NewStaffService(staffRepo, userRepo)
	scheduleSvc := scheduleService.NewScheduleService(db, scheduleRepo, staffRepo, loc, defaultStart, defaultEnd)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		staffRepo,
		scheduleSvc,
		fileService,
		loc,
		cfg.Payroll.PenaltyPerMinute,
		cfg.Salon.MaxClockSkew,
		cfg.Salon.NoteMaxLength,
	)
	payrollSvc := payrollService.NewPayrollService(
		slipRepo,
		staffRepo,
		attendanceRepo,
		bookingRepo,
		loc,
		payrollService.Rates{
			PenaltyPerMinute:    cfg.Payroll.PenaltyPerMinute,
			OvertimeRatePerHour: cfg.Payroll.OvertimeRatePerHour,
			MissedCheckPenalty:  cfg.Payroll.MissedCheckPenalty,
			DefaultBaseSalary:   cfg.Payroll.DefaultBaseSalary,
		},
	)
	authSvc := serviceAuth.NewAuthService(userRepo, staffSvc, JWTService)

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	salaryHandler := appHTTP.NewSalaryHandler(payrollSvc, loc)
	staffHandler := appHTTP.NewStaffHandler(staffSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		JWTService,
		authHandler,
		attendanceHandler,
		scheduleHandler,
		salaryHandler,
		staffHandler,
		cfg.Storage.BasePath,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
