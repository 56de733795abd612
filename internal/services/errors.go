package services

import "errors"

// Domain failures surfaced by the service layer. Handlers translate these
// into HTTP statuses; anything else is treated as an internal error.
var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrMedicationNotFound  = errors.New("medication not found")

	// ErrBookingConflict means the slot was taken between fetch and book.
	ErrBookingConflict = errors.New("appointment is no longer available")

	// ErrCancellationWindow means the slot starts in under four hours.
	ErrCancellationWindow = errors.New("cannot cancel within 4 hours of the appointment")

	// ErrInvalidTransition means the requested status change is not in the
	// allowed transition table.
	ErrInvalidTransition = errors.New("status transition not allowed")

	ErrEmailTaken = errors.New("email already registered")
)
