package services

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"clinic-appointment-server/internal/models"
)

func bookedAppointment(t *testing.T, db *gorm.DB) *models.Appointment {
	t.Helper()
	svc := NewAppointmentService(db, nil)
	doctor := createDoctor(t, db, "doc@clinic.test")
	patient := createPatient(t, db, "pat@clinic.test")

	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	slots, err := svc.CreateSlotsForDoctor(doctor.ID, day, day)
	if err != nil {
		t.Fatalf("CreateSlotsForDoctor: %v", err)
	}
	booked, err := svc.Book(patient.ID, slots[0].ID, "headache")
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	return booked
}

func TestMedication_AddAndList(t *testing.T) {
	db := newTestDB(t)
	svc := NewMedicationService(db)
	appointment := bookedAppointment(t, db)

	med := models.Medication{
		Name:         "Paracetamol",
		Dosage:       "500mg",
		Frequency:    "twice daily",
		Instructions: "after meals",
	}
	if err := svc.Add(appointment.ID, &med); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if med.ID == 0 {
		t.Fatal("expected medication ID assigned")
	}
	if med.AppointmentID != appointment.ID {
		t.Fatalf("expected medication bound to appointment %d, got %d", appointment.ID, med.AppointmentID)
	}

	medications, err := svc.List(appointment.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(medications) != 1 || medications[0].Name != "Paracetamol" {
		t.Fatalf("unexpected list result: %+v", medications)
	}
}

func TestMedication_AddRequiresAppointment(t *testing.T) {
	db := newTestDB(t)
	svc := NewMedicationService(db)

	med := models.Medication{Name: "Paracetamol"}
	if err := svc.Add(777, &med); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestMedication_UpdateReplaces(t *testing.T) {
	db := newTestDB(t)
	svc := NewMedicationService(db)
	appointment := bookedAppointment(t, db)

	med := models.Medication{Name: "Paracetamol", Dosage: "500mg"}
	if err := svc.Add(appointment.ID, &med); err != nil {
		t.Fatalf("Add: %v", err)
	}

	replacement := models.Medication{
		ID:        med.ID,
		Name:      "Ibuprofen",
		Dosage:    "200mg",
		Frequency: "once daily",
	}
	if err := svc.Update(&replacement); err != nil {
		t.Fatalf("Update: %v", err)
	}
	// The appointment binding is not updatable.
	if replacement.AppointmentID != appointment.ID {
		t.Fatalf("update detached medication from appointment: %d", replacement.AppointmentID)
	}

	stored, err := svc.ByID(med.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if stored.Name != "Ibuprofen" || stored.Dosage != "200mg" {
		t.Fatalf("replacement not persisted: %+v", stored)
	}
}

func TestMedication_UpdateUnknown(t *testing.T) {
	db := newTestDB(t)
	svc := NewMedicationService(db)

	med := models.Medication{ID: 321, Name: "Ghost"}
	if err := svc.Update(&med); !errors.Is(err, ErrMedicationNotFound) {
		t.Fatalf("expected ErrMedicationNotFound, got %v", err)
	}
}

func TestMedication_Remove(t *testing.T) {
	db := newTestDB(t)
	svc := NewMedicationService(db)
	appointment := bookedAppointment(t, db)

	med := models.Medication{Name: "Paracetamol"}
	if err := svc.Add(appointment.ID, &med); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := svc.Remove(med.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := svc.ByID(med.ID); !errors.Is(err, ErrMedicationNotFound) {
		t.Fatalf("expected medication gone, got %v", err)
	}
	if err := svc.Remove(med.ID); !errors.Is(err, ErrMedicationNotFound) {
		t.Fatalf("expected ErrMedicationNotFound on double remove, got %v", err)
	}
}

func TestMedication_ListEmptyVsMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewMedicationService(db)
	appointment := bookedAppointment(t, db)

	// Existing appointment without prescriptions: empty list, no error.
	medications, err := svc.List(appointment.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(medications) != 0 {
		t.Fatalf("expected empty list, got %d", len(medications))
	}

	// Missing appointment: not-found.
	if _, err := svc.List(appointment.ID + 1000); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}
