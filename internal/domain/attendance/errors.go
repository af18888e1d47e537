package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")

	// State machine errors
	ErrOutOfSequence   = errors.New("check type does not match the expected checkpoint")
	ErrAlreadyComplete = errors.New("all four checkpoints are already recorded for today")
	ErrConcurrentCheck = errors.New("attendance was modified concurrently, please retry")

	// Device time errors
	ErrDeviceTimeSkew = errors.New("device time is too far from server time")

	// Reconciliation errors
	ErrReconcileFutureDate = errors.New("cannot reconcile attendance for a future date")
)
