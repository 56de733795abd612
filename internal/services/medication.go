package services

import (
	"errors"

	"gorm.io/gorm"

	"clinic-appointment-server/internal/models"
)

// MedicationService manages medication records tied to appointments.
type MedicationService struct {
	DB *gorm.DB
}

// NewMedicationService creates a new MedicationService.
func NewMedicationService(db *gorm.DB) *MedicationService {
	return &MedicationService{DB: db}
}

// Add attaches a medication to an existing appointment.
func (s *MedicationService) Add(appointmentID uint, medication *models.Medication) error {
	var count int64
	if err := s.DB.Model(&models.Appointment{}).Where("id = ?", appointmentID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrAppointmentNotFound
	}
	medication.AppointmentID = appointmentID
	return s.DB.Create(medication).Error
}

// Update replaces an existing medication record in full.
func (s *MedicationService) Update(medication *models.Medication) error {
	var existing models.Medication
	if err := s.DB.First(&existing, medication.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMedicationNotFound
		}
		return err
	}
	medication.AppointmentID = existing.AppointmentID
	return s.DB.Save(medication).Error
}

// Remove deletes a medication record.
func (s *MedicationService) Remove(medicationID uint) error {
	var medication models.Medication
	if err := s.DB.First(&medication, medicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMedicationNotFound
		}
		return err
	}
	return s.DB.Delete(&medication).Error
}

// List returns all medications of an appointment. The appointment must
// exist; a prescription-free appointment yields an empty slice.
func (s *MedicationService) List(appointmentID uint) ([]models.Medication, error) {
	var count int64
	if err := s.DB.Model(&models.Appointment{}).Where("id = ?", appointmentID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrAppointmentNotFound
	}
	medications := []models.Medication{}
	err := s.DB.Where("appointment_id = ?", appointmentID).Order("id").Find(&medications).Error
	return medications, err
}

// ByID fetches a medication by ID.
func (s *MedicationService) ByID(medicationID uint) (*models.Medication, error) {
	var medication models.Medication
	if err := s.DB.First(&medication, medicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMedicationNotFound
		}
		return nil, err
	}
	return &medication, nil
}
