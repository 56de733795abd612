package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Doctor represents a registered doctor.
type Doctor struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	FirstName      string    `gorm:"size:100;not null" json:"firstName"`
	LastName       string    `gorm:"size:100" json:"lastName"`
	Age            int       `json:"age"`
	Gender         string    `gorm:"size:20" json:"gender"`
	Email          string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PhoneNo        string    `gorm:"size:10" json:"phoneNo"`
	Password       string    `gorm:"size:255;not null" json:"-"` // Never send password in JSON
	Specialization string    `gorm:"size:100;not null" json:"specialization"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	// Relations (not always preloaded)
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"-"`
}

// SetPassword hashes a password and sets it on the doctor
func (d *Doctor) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	d.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the doctor's hashed password
func (d *Doctor) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(d.Password), []byte(password))
	return err == nil
}

// DoctorSanitized represents the doctor data that is safe to send in API responses.
type DoctorSanitized struct {
	ID             uint   `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	Email          string `json:"email"`
	PhoneNo        string `json:"phoneNo"`
	Specialization string `json:"specialization"`
}

// Sanitize creates a DoctorSanitized struct from a Doctor model, excluding sensitive data.
func (d *Doctor) Sanitize() DoctorSanitized {
	return DoctorSanitized{
		ID:             d.ID,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Age:            d.Age,
		Gender:         d.Gender,
		Email:          d.Email,
		PhoneNo:        d.PhoneNo,
		Specialization: d.Specialization,
	}
}
