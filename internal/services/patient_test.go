package services

import (
	"errors"
	"testing"
	"time"

	"clinic-appointment-server/internal/models"
)

func TestPatientRegister(t *testing.T) {
	db := newTestDB(t)
	svc := NewPatientService(db)

	patient := &models.Patient{
		FirstName: "Mary",
		Email:     "mary@clinic.test",
		Age:       29,
		Gender:    "female",
		PhoneNo:   "5550001111",
	}
	if err := svc.Register(patient, "Secret1@pass"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if patient.ID == 0 {
		t.Fatal("expected patient ID assigned")
	}
	if !patient.CheckPassword("Secret1@pass") {
		t.Fatal("stored hash does not verify")
	}

	dup := &models.Patient{FirstName: "Mary", Email: "mary@clinic.test"}
	if err := svc.Register(dup, "Secret1@pass"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestPatientUpdate_KeepsPasswordWhenBlank(t *testing.T) {
	db := newTestDB(t)
	svc := NewPatientService(db)
	patient := createPatient(t, db, "mary@clinic.test")

	patient.FirstName = "Marie"
	if err := svc.Update(patient, ""); err != nil {
		t.Fatalf("Update: %v", err)
	}

	reloaded, err := svc.ByID(patient.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if reloaded.FirstName != "Marie" {
		t.Fatalf("expected updated name, got %q", reloaded.FirstName)
	}
	if !reloaded.CheckPassword("Secret1@pass") {
		t.Fatal("blank password update must keep the existing hash")
	}

	if err := svc.Update(reloaded, "NewSecret2@"); err != nil {
		t.Fatalf("Update: %v", err)
	}
	reloaded, _ = svc.ByID(patient.ID)
	if !reloaded.CheckPassword("NewSecret2@") {
		t.Fatal("non-blank password update must re-hash")
	}
}

func TestPatientDelete_RevertsBookedSlots(t *testing.T) {
	db := newTestDB(t)
	appointments := NewAppointmentService(db, nil)
	svc := NewPatientService(db)
	doctor := createDoctor(t, db, "doc@clinic.test")
	patient := createPatient(t, db, "pat@clinic.test")

	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	slots, _ := appointments.CreateSlotsForDoctor(doctor.ID, day, day)
	if _, err := appointments.Book(patient.ID, slots[0].ID, "headache"); err != nil {
		t.Fatalf("Book: %v", err)
	}

	if err := svc.Delete(patient.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var appt models.Appointment
	if err := db.First(&appt, slots[0].ID).Error; err != nil {
		t.Fatalf("reload slot: %v", err)
	}
	if !appt.IsAvailable || appt.Status != models.StatusAvailable || appt.PatientID != nil || appt.Symptoms != "" {
		t.Fatalf("slot not reverted: %+v", appt)
	}

	var linkCount int64
	db.Model(&models.DoctorPatient{}).Where("patient_id = ?", patient.ID).Count(&linkCount)
	if linkCount != 0 {
		t.Fatalf("expected care links removed, found %d", linkCount)
	}

	if _, err := svc.ByID(patient.ID); !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound after delete, got %v", err)
	}
}

func TestPatientDelete_KeepsCompletedHistory(t *testing.T) {
	db := newTestDB(t)
	appointments := NewAppointmentService(db, nil)
	svc := NewPatientService(db)
	doctor := createDoctor(t, db, "doc@clinic.test")
	patient := createPatient(t, db, "pat@clinic.test")

	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	slots, _ := appointments.CreateSlotsForDoctor(doctor.ID, day, day)
	booked, _ := appointments.Book(patient.ID, slots[0].ID, "checkup")
	done, _ := appointments.Book(patient.ID, slots[1].ID, "followup")
	if _, err := appointments.UpdateStatus(done.ID, models.StatusCompleted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	if err := svc.Delete(patient.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// Only the still-booked slot reopens.
	var reopened models.Appointment
	db.First(&reopened, booked.ID)
	if !reopened.IsAvailable || reopened.Status != models.StatusAvailable {
		t.Fatalf("booked slot not reopened: %+v", reopened)
	}

	// The completed appointment stays closed history, not a bookable slot.
	var completed models.Appointment
	db.First(&completed, done.ID)
	if completed.Status != models.StatusCompleted || completed.IsAvailable {
		t.Fatalf("completed appointment resurrected: status=%s available=%v",
			completed.Status, completed.IsAvailable)
	}
}

func TestAdminSeed_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	created, err := svc.Seed("admin@demo.com", "Demo0@00")
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if !created {
		t.Fatal("first seed should create the account")
	}

	created, err = svc.Seed("admin@demo.com", "Demo0@00")
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if created {
		t.Fatal("second seed must not create another account")
	}

	admin, err := svc.ByEmail("admin@demo.com")
	if err != nil {
		t.Fatalf("ByEmail: %v", err)
	}
	if !admin.CheckPassword("Demo0@00") {
		t.Fatal("seeded credentials do not verify")
	}
}
