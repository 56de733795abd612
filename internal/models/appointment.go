package models

import (
	"fmt"
	"strings"
	"time"
)

// AppointmentStatus represents the status of an appointment slot.
type AppointmentStatus string

const (
	StatusAvailable AppointmentStatus = "AVAILABLE"
	StatusBooked    AppointmentStatus = "BOOKED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusCompleted AppointmentStatus = "COMPLETED"
)

// ParseAppointmentStatus maps a string onto the closed status set.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusAvailable:
		return StatusAvailable, true
	case StatusBooked:
		return StatusBooked, true
	case StatusCancelled:
		return StatusCancelled, true
	case StatusCompleted:
		return StatusCompleted, true
	default:
		return "", false
	}
}

// statusTransitions is the allowed transition table. A booked slot can be
// cancelled, completed, or reset to available (cancellation reuses the slot);
// an available slot can only become booked.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusAvailable: {StatusBooked},
	StatusBooked:    {StatusAvailable, StatusCancelled, StatusCompleted},
	StatusCancelled: {},
	StatusCompleted: {},
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TimeLayout is the wire and storage format for slot start/end times.
const TimeLayout = "15:04"

// Appointment represents a pre-generated half-hour slot for a doctor.
// An available slot has no patient and no symptoms; booking attaches both.
type Appointment struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	DoctorID    uint              `gorm:"index;not null" json:"doctorId"`
	PatientID   *uint             `gorm:"index" json:"patientId,omitempty"`
	Date        time.Time         `gorm:"index;not null" json:"date"`
	StartTime   string            `gorm:"size:5;not null" json:"startTime"`
	EndTime     string            `gorm:"size:5;not null" json:"endTime"`
	IsAvailable bool              `gorm:"not null;default:true" json:"isAvailable"`
	Status      AppointmentStatus `gorm:"size:20;not null" json:"status"`
	Symptoms    string            `gorm:"type:text" json:"symptoms,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`

	// Relations
	Doctor      Doctor       `gorm:"foreignKey:DoctorID" json:"-"`
	Patient     *Patient     `gorm:"foreignKey:PatientID" json:"-"`
	Medications []Medication `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE" json:"medications,omitempty"`
}

// StartAt combines Date and StartTime into the instant the slot begins.
func (a *Appointment) StartAt() (time.Time, error) {
	t, err := time.Parse(TimeLayout, a.StartTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start time %q: %w", a.StartTime, err)
	}
	return time.Date(a.Date.Year(), a.Date.Month(), a.Date.Day(),
		t.Hour(), t.Minute(), 0, 0, a.Date.Location()), nil
}
