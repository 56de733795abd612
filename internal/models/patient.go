package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Patient represents a registered patient.
type Patient struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	FirstName      string    `gorm:"size:100;not null" json:"firstName"`
	LastName       string    `gorm:"size:100" json:"lastName"`
	Age            int       `json:"age"`
	Gender         string    `gorm:"size:20" json:"gender"`
	Email          string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PhoneNo        string    `gorm:"size:10" json:"phoneNo"`
	Password       string    `gorm:"size:255;not null" json:"-"` // Never send password in JSON
	MedicalHistory string    `gorm:"type:text" json:"medicalHistory,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	// Relations (not always preloaded)
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"-"`
}

// SetPassword hashes a password and sets it on the patient
func (p *Patient) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the patient's hashed password
func (p *Patient) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(p.Password), []byte(password))
	return err == nil
}

// PatientSanitized represents the patient data that is safe to send in API responses.
type PatientSanitized struct {
	ID             uint   `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	Email          string `json:"email"`
	PhoneNo        string `json:"phoneNo"`
	MedicalHistory string `json:"medicalHistory,omitempty"`
}

// Sanitize creates a PatientSanitized struct from a Patient model, excluding sensitive data.
func (p *Patient) Sanitize() PatientSanitized {
	return PatientSanitized{
		ID:             p.ID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Age:            p.Age,
		Gender:         p.Gender,
		Email:          p.Email,
		PhoneNo:        p.PhoneNo,
		MedicalHistory: p.MedicalHistory,
	}
}

// DoctorPatient is the join record linking a patient to a doctor they have
// booked with. Replaces in-memory bidirectional association graphs.
type DoctorPatient struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DoctorID  uint      `gorm:"not null;uniqueIndex:idx_doctor_patient" json:"doctorId"`
	PatientID uint      `gorm:"not null;index;uniqueIndex:idx_doctor_patient" json:"patientId"`
	CreatedAt time.Time `json:"createdAt"`
}
