package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"clinic-appointment-server/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Admin{},
		&models.Doctor{},
		&models.Patient{},
		&models.DoctorPatient{},
		&models.Appointment{},
		&models.Medication{},
		&models.RefreshToken{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createDoctor(t *testing.T, db *gorm.DB, email string) *models.Doctor {
	t.Helper()
	doctor := &models.Doctor{
		FirstName:      "Greg",
		LastName:       "House",
		Age:            45,
		Gender:         "male",
		Email:          email,
		PhoneNo:        "5550001111",
		Specialization: "Diagnostics",
	}
	if err := doctor.SetPassword("Secret1@pass"); err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := db.Create(doctor).Error; err != nil {
		t.Fatalf("failed to create doctor: %v", err)
	}
	return doctor
}

func createPatient(t *testing.T, db *gorm.DB, email string) *models.Patient {
	t.Helper()
	patient := &models.Patient{
		FirstName: "Lisa",
		LastName:  "Cuddy",
		Age:       40,
		Gender:    "female",
		Email:     email,
		PhoneNo:   "5550002222",
	}
	if err := patient.SetPassword("Secret1@pass"); err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := db.Create(patient).Error; err != nil {
		t.Fatalf("failed to create patient: %v", err)
	}
	return patient
}
