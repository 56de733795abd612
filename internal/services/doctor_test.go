package services

import (
	"errors"
	"testing"
	"time"

	"clinic-appointment-server/internal/models"
)

func TestDoctorRegister_GeneratesSlotsToEndOfMonth(t *testing.T) {
	db := newTestDB(t)
	appointments := NewAppointmentService(db, nil)
	svc := NewDoctorService(db, appointments)
	svc.now = func() time.Time { return time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC) }

	doctor := &models.Doctor{
		FirstName:      "James",
		Email:          "wilson@clinic.test",
		Age:            44,
		Gender:         "male",
		PhoneNo:        "5550003333",
		Specialization: "Oncology",
	}
	if err := svc.Register(doctor, "Secret1@pass"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if doctor.ID == 0 {
		t.Fatal("expected doctor ID assigned")
	}
	if doctor.Password == "Secret1@pass" || doctor.Password == "" {
		t.Fatal("password stored unhashed")
	}
	if !doctor.CheckPassword("Secret1@pass") {
		t.Fatal("stored hash does not verify")
	}

	// Registered on Jan 1: slots through Jan 31, 20 per day.
	var count int64
	db.Model(&models.Appointment{}).Where("doctor_id = ?", doctor.ID).Count(&count)
	if count != int64(31*20) {
		t.Fatalf("expected %d slots, got %d", 31*20, count)
	}
}

func TestDoctorRegister_EmailTaken(t *testing.T) {
	db := newTestDB(t)
	appointments := NewAppointmentService(db, nil)
	svc := NewDoctorService(db, appointments)
	createDoctor(t, db, "taken@clinic.test")

	doctor := &models.Doctor{FirstName: "Dup", Email: "taken@clinic.test", Specialization: "GP"}
	if err := svc.Register(doctor, "Secret1@pass"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestDoctorDelete_RemovesAppointments(t *testing.T) {
	db := newTestDB(t)
	appointments := NewAppointmentService(db, nil)
	svc := NewDoctorService(db, appointments)
	doctor := createDoctor(t, db, "doc@clinic.test")
	patient := createPatient(t, db, "pat@clinic.test")

	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	slots, _ := appointments.CreateSlotsForDoctor(doctor.ID, day, day)
	booked, _ := appointments.Book(patient.ID, slots[0].ID, "")
	db.Create(&models.Medication{AppointmentID: booked.ID, Name: "Aspirin"})

	if err := svc.Delete(doctor.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var apptCount, medCount, linkCount int64
	db.Model(&models.Appointment{}).Where("doctor_id = ?", doctor.ID).Count(&apptCount)
	db.Model(&models.Medication{}).Count(&medCount)
	db.Model(&models.DoctorPatient{}).Where("doctor_id = ?", doctor.ID).Count(&linkCount)
	if apptCount != 0 || medCount != 0 || linkCount != 0 {
		t.Fatalf("delete left rows behind: appts=%d meds=%d links=%d", apptCount, medCount, linkCount)
	}

	if err := svc.Delete(doctor.ID); !errors.Is(err, ErrDoctorNotFound) {
		t.Fatalf("expected ErrDoctorNotFound on double delete, got %v", err)
	}
}

func TestDoctorPatients_ThroughBookings(t *testing.T) {
	db := newTestDB(t)
	appointments := NewAppointmentService(db, nil)
	svc := NewDoctorService(db, appointments)
	doctor := createDoctor(t, db, "doc@clinic.test")
	patient := createPatient(t, db, "pat@clinic.test")

	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	slots, _ := appointments.CreateSlotsForDoctor(doctor.ID, day, day)

	// No bookings yet: empty, not an error.
	patients, err := svc.Patients(doctor.ID)
	if err != nil {
		t.Fatalf("Patients: %v", err)
	}
	if len(patients) != 0 {
		t.Fatalf("expected no patients, got %d", len(patients))
	}

	if _, err := appointments.Book(patient.ID, slots[0].ID, ""); err != nil {
		t.Fatalf("Book: %v", err)
	}
	// A second booking must not duplicate the link.
	if _, err := appointments.Book(patient.ID, slots[1].ID, ""); err != nil {
		t.Fatalf("Book: %v", err)
	}

	patients, err = svc.Patients(doctor.ID)
	if err != nil {
		t.Fatalf("Patients: %v", err)
	}
	if len(patients) != 1 || patients[0].ID != patient.ID {
		t.Fatalf("expected exactly the booking patient, got %+v", patients)
	}

	if _, err := svc.Patients(9999); !errors.Is(err, ErrDoctorNotFound) {
		t.Fatalf("expected ErrDoctorNotFound, got %v", err)
	}
}
