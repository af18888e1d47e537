package attendance

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/attendance"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/schedule"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/staff"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/pkg/database"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/pkg/validator"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/repository/postgresql"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/service/file"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	staff.StaffRepository
	scheduleService schedule.ScheduleService
	fileService     file.FileService

	loc              *time.Location
	penaltyPerMinute decimal.Decimal
	maxClockSkew     time.Duration
	noteMaxLength    int

	// now is the injected time source; device timestamps are checked
	// against it instead of being trusted blindly.
	now func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	staffRepo staff.StaffRepository,
	scheduleService schedule.ScheduleService,
	fileService file.FileService,
	loc *time.Location,
	penaltyPerMinute decimal.Decimal,
	maxClockSkew time.Duration,
	noteMaxLength int,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		StaffRepository:      staffRepo,
		scheduleService:      scheduleService,
		fileService:          fileService,
		loc:                  loc,
		penaltyPerMinute:     penaltyPerMinute,
		maxClockSkew:         maxClockSkew,
		noteMaxLength:        noteMaxLength,
		now:                  time.Now,
	}
}

// workDate truncates a moment to its calendar day in the salon timezone.
func (s *AttendanceServiceImpl) workDate(t time.Time) time.Time {
	local := t.In(s.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)
}

// getOrCreateDay returns the attendance row for the date, creating it
// with a schedule snapshot the first time it is touched.
func (s *AttendanceServiceImpl) getOrCreateDay(ctx context.Context, staffID string, date time.Time) (attendance.Attendance, error) {
	existing, err := s.AttendanceRepository.GetByStaffAndDate(ctx, staffID, date)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if existing != nil {
		return *existing, nil
	}

	window, err := s.scheduleService.Resolve(ctx, staffID, date)
	if err != nil {
		return attendance.Attendance{}, err
	}

	row := attendance.Attendance{
		StaffID:             staffID,
		WorkDate:            date,
		ScheduledStart:      window.Start,
		ScheduledEnd:        window.End,
		ScheduledBreakStart: window.BreakStart,
		ScheduledBreakEnd:   window.BreakEnd,
		Status:              attendance.StatusIncomplete,
		LatePenalty:         decimal.Zero,
		OverBreakPenalty:    decimal.Zero,
		EarlyLeavePenalty:   decimal.Zero,
		TotalPenalty:        decimal.Zero,
	}

	created, err := s.AttendanceRepository.Create(ctx, row)
	if err != nil {
		// A concurrent first access may have inserted the row already
		existing, getErr := s.AttendanceRepository.GetByStaffAndDate(ctx, staffID, date)
		if getErr == nil && existing != nil {
			return *existing, nil
		}
		return attendance.Attendance{}, err
	}
	return created, nil
}

// Today implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Today(ctx context.Context, staffID string) (attendance.AttendanceResponse, error) {
	if _, err := s.StaffRepository.GetByID(ctx, staffID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := s.getOrCreateDay(ctx, staffID, s.workDate(s.now()))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return mapAttendanceToResponse(att, s.loc), nil
}

// resolveCheckTime turns the device-supplied timestamp into the salon
// timezone, enforcing the clock-skew bound. A missing device time means
// server time.
func (s *AttendanceServiceImpl) resolveCheckTime(deviceTime *string) (time.Time, error) {
	serverNow := s.now().In(s.loc)

	if deviceTime == nil || *deviceTime == "" {
		return serverNow, nil
	}

	parsed, ok := validator.IsValidDateTime(*deviceTime)
	if !ok {
		return time.Time{}, validator.ValidationErrors{{
			Field:   "device_time",
			Message: "device_time must be an RFC3339 timestamp",
		}}
	}

	skew := serverNow.Sub(parsed)
	if skew < 0 {
		skew = -skew
	}
	if skew > s.maxClockSkew {
		return time.Time{}, attendance.ErrDeviceTimeSkew
	}

	return parsed.In(s.loc), nil
}

// Check implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Check(ctx context.Context, staffID string, req attendance.CheckRequest) (attendance.CheckResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckResponse{}, err
	}

	if _, err := s.StaffRepository.GetByID(ctx, staffID); err != nil {
		return attendance.CheckResponse{}, err
	}

	checkTime, err := s.resolveCheckTime(req.DeviceTime)
	if err != nil {
		return attendance.CheckResponse{}, err
	}

	att, err := s.getOrCreateDay(ctx, staffID, s.workDate(checkTime))
	if err != nil {
		return attendance.CheckResponse{}, err
	}

	if att.CheckCount >= attendance.CheckTypeDeparture {
		return attendance.CheckResponse{}, attendance.ErrAlreadyComplete
	}
	if req.CheckType != att.NextCheckType() {
		return attendance.CheckResponse{}, attendance.ErrOutOfSequence
	}

	applyCheckpoint(&att, req.CheckType, checkTime, s.penaltyPerMinute)
	if req.Note != nil {
		att.Note = appendNote(att.Note, *req.Note, s.noteMaxLength)
	}

	updated, err := s.AttendanceRepository.UpdateChecked(ctx, att)
	if err != nil {
		return attendance.CheckResponse{}, err
	}

	// Photo evidence is a best-effort side channel; a store failure
	// never rolls back the recorded checkpoint.
	if req.PhotoBase64 != nil && *req.PhotoBase64 != "" {
		s.storeCheckPhoto(ctx, &updated, req.CheckType, *req.PhotoBase64)
	}

	return attendance.CheckResponse{
		Message:    checkMessage(req.CheckType, updated),
		Attendance: mapAttendanceToResponse(updated, s.loc),
	}, nil
}

func (s *AttendanceServiceImpl) storeCheckPhoto(ctx context.Context, att *attendance.Attendance, checkType int, photoBase64 string) {
	photo, err := base64.StdEncoding.DecodeString(photoBase64)
	if err != nil {
		slog.Warn("check photo is not valid base64, skipping",
			"staff_id", att.StaffID, "check_type", checkType, "error", err)
		return
	}

	url, err := s.fileService.UploadCheckPhoto(ctx, att.StaffID, att.WorkDate, checkType, photo)
	if err != nil {
		slog.Error("check photo upload failed, checkpoint kept",
			"staff_id", att.StaffID, "check_type", checkType, "error", err)
		return
	}

	if err := s.AttendanceRepository.SetPhotoURL(ctx, att.ID, checkType, url); err != nil {
		slog.Error("failed to record check photo url",
			"attendance_id", att.ID, "check_type", checkType, "error", err)
		return
	}
	att.SetPhotoURL(checkType, url)
}

// History implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) History(ctx context.Context, staffID string, month, year int) (attendance.HistoryResponse, error) {
	if err := validatePeriod(month, year); err != nil {
		return attendance.HistoryResponse{}, err
	}
	if _, err := s.StaffRepository.GetByID(ctx, staffID); err != nil {
		return attendance.HistoryResponse{}, err
	}

	rows, err := s.AttendanceRepository.ListByStaffAndPeriod(ctx, staffID, month, year)
	if err != nil {
		return attendance.HistoryResponse{}, err
	}

	days := make([]attendance.AttendanceResponse, 0, len(rows))
	for _, row := range rows {
		days = append(days, mapAttendanceToResponse(row, s.loc))
	}

	return attendance.HistoryResponse{Month: month, Year: year, Days: days}, nil
}

// Stats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Stats(ctx context.Context, staffID string, month, year int) (attendance.StatsResponse, error) {
	if err := validatePeriod(month, year); err != nil {
		return attendance.StatsResponse{}, err
	}
	if _, err := s.StaffRepository.GetByID(ctx, staffID); err != nil {
		return attendance.StatsResponse{}, err
	}

	rows, err := s.AttendanceRepository.ListByStaffAndPeriod(ctx, staffID, month, year)
	if err != nil {
		return attendance.StatsResponse{}, err
	}

	stats := attendance.StatsResponse{Month: month, Year: year, TotalPenalty: decimal.Zero}
	for _, row := range rows {
		switch row.Status {
		case attendance.StatusComplete:
			stats.CompleteDays++
		case attendance.StatusAbsent:
			stats.AbsentDays++
		default:
			stats.IncompleteDays++
		}
		stats.TotalLateMinutes += row.LateMinutes + row.OverBreakMinutes + row.EarlyLeaveMinutes
		stats.TotalOvertimeMinutes += row.OvertimeMinutes
		stats.TotalPenalty = stats.TotalPenalty.Add(row.TotalPenalty)
	}
	return stats, nil
}

// ReconcileAbsent implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ReconcileAbsent(ctx context.Context, req attendance.ReconcileRequest) (attendance.ReconcileResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ReconcileResponse{}, err
	}

	parsed, _ := validator.IsValidDate(req.Date)
	date := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, s.loc)
	if !date.Before(s.workDate(s.now())) {
		return attendance.ReconcileResponse{}, attendance.ErrReconcileFutureDate
	}

	result := attendance.ReconcileResponse{Date: req.Date}

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		marked, err := s.AttendanceRepository.MarkUnstartedAbsent(txCtx, date)
		if err != nil {
			return err
		}
		result.MarkedAbsent = marked

		// Staff with no row at all also count as absent for the day
		activeIDs, err := s.StaffRepository.ListActiveIDs(txCtx)
		if err != nil {
			return err
		}
		withRow, err := s.AttendanceRepository.ListStaffIDsWithRow(txCtx, date)
		if err != nil {
			return err
		}

		present := make(map[string]bool, len(withRow))
		for _, id := range withRow {
			present[id] = true
		}

		for _, staffID := range activeIDs {
			if present[staffID] {
				continue
			}
			window, err := s.scheduleService.Resolve(txCtx, staffID, date)
			if err != nil {
				return err
			}
			_, err = s.AttendanceRepository.Create(txCtx, attendance.Attendance{
				StaffID:             staffID,
				WorkDate:            date,
				ScheduledStart:      window.Start,
				ScheduledEnd:        window.End,
				ScheduledBreakStart: window.BreakStart,
				ScheduledBreakEnd:   window.BreakEnd,
				Status:              attendance.StatusAbsent,
				LatePenalty:         decimal.Zero,
				OverBreakPenalty:    decimal.Zero,
				EarlyLeavePenalty:   decimal.Zero,
				TotalPenalty:        decimal.Zero,
			})
			if err != nil {
				return err
			}
			result.CreatedAbsent++
		}
		return nil
	})
	if err != nil {
		return attendance.ReconcileResponse{}, fmt.Errorf("failed to reconcile absences: %w", err)
	}

	return result, nil
}

func validatePeriod(month, year int) error {
	var errs validator.ValidationErrors
	if !validator.IsValidMonth(month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if !validator.IsValidYear(year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be between 2000 and 2100"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func checkMessage(checkType int, att attendance.Attendance) string {
	switch checkType {
	case attendance.CheckTypeArrival:
		if att.LateMinutes > 0 {
			return fmt.Sprintf("Arrival recorded, %d minute(s) late", att.LateMinutes)
		}
		return "Arrival recorded, on time"
	case attendance.CheckTypeBreakStart:
		return "Break start recorded"
	case attendance.CheckTypeBreakResume:
		if att.OverBreakMinutes > 0 {
			return fmt.Sprintf("Break resume recorded, %d minute(s) over break", att.OverBreakMinutes)
		}
		return "Break resume recorded"
	default:
		if att.OvertimeMinutes > 0 {
			return fmt.Sprintf("Departure recorded, %d minute(s) overtime", att.OvertimeMinutes)
		}
		if att.EarlyLeaveMinutes > 0 {
			return fmt.Sprintf("Departure recorded, %d minute(s) early", att.EarlyLeaveMinutes)
		}
		return "Departure recorded, day complete"
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	format := t.In(loc).Format("2006-01-02 15:04:05")
	return &format
}

func mapAttendanceToResponse(att attendance.Attendance, loc *time.Location) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:       att.ID,
		StaffID:  att.StaffID,
		WorkDate: att.WorkDate.In(loc).Format("2006-01-02"),

		ScheduledStart:      att.ScheduledStart.In(loc).Format("15:04"),
		ScheduledEnd:        att.ScheduledEnd.In(loc).Format("15:04"),
		ScheduledBreakStart: clockPtrToString(att.ScheduledBreakStart, loc),
		ScheduledBreakEnd:   clockPtrToString(att.ScheduledBreakEnd, loc),

		CheckIn1Time: timePtrToString(att.CheckIn1Time, loc),
		CheckIn2Time: timePtrToString(att.CheckIn2Time, loc),
		CheckIn3Time: timePtrToString(att.CheckIn3Time, loc),
		CheckIn4Time: timePtrToString(att.CheckIn4Time, loc),

		CheckIn1PhotoURL: att.CheckIn1PhotoURL,
		CheckIn2PhotoURL: att.CheckIn2PhotoURL,
		CheckIn3PhotoURL: att.CheckIn3PhotoURL,
		CheckIn4PhotoURL: att.CheckIn4PhotoURL,

		CheckCount:    att.CheckCount,
		NextCheckType: att.NextCheckType(),

		LateMinutes:       att.LateMinutes,
		OverBreakMinutes:  att.OverBreakMinutes,
		EarlyLeaveMinutes: att.EarlyLeaveMinutes,
		OvertimeMinutes:   att.OvertimeMinutes,
		TotalWorkMinutes:  att.TotalWorkMinutes,

		LatePenalty:       att.LatePenalty,
		OverBreakPenalty:  att.OverBreakPenalty,
		EarlyLeavePenalty: att.EarlyLeavePenalty,
		TotalPenalty:      att.TotalPenalty,

		Note:   att.Note,
		Status: string(att.Status),
	}
}

func clockPtrToString(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	s := t.In(loc).Format("15:04")
	return &s
}
