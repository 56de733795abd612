package models

import "time"

// Medication is a prescription record tied to exactly one appointment.
// Deleting the appointment cascades to its medications.
type Medication struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	AppointmentID uint      `gorm:"index;not null" json:"appointmentId"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Dosage        string    `gorm:"size:100" json:"dosage"`
	Frequency     string    `gorm:"size:100" json:"frequency"`
	Instructions  string    `gorm:"type:text" json:"instructions"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
