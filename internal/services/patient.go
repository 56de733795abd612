package services

import (
	"errors"

	"gorm.io/gorm"

	"clinic-appointment-server/internal/models"
)

// PatientService manages patient accounts.
type PatientService struct {
	DB *gorm.DB
}

// NewPatientService creates a new PatientService.
func NewPatientService(db *gorm.DB) *PatientService {
	return &PatientService{DB: db}
}

// Register hashes the patient's password and persists the account.
func (s *PatientService) Register(patient *models.Patient, password string) error {
	var existing models.Patient
	if err := s.DB.Where("email = ?", patient.Email).First(&existing).Error; err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := patient.SetPassword(password); err != nil {
		return err
	}
	return s.DB.Create(patient).Error
}

// ByEmail fetches a patient by email address.
func (s *PatientService) ByEmail(email string) (*models.Patient, error) {
	var patient models.Patient
	if err := s.DB.Where("email = ?", email).First(&patient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return &patient, nil
}

// ByID fetches a patient by ID.
func (s *PatientService) ByID(id uint) (*models.Patient, error) {
	var patient models.Patient
	if err := s.DB.First(&patient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return &patient, nil
}

// All returns every registered patient.
func (s *PatientService) All() ([]models.Patient, error) {
	patients := []models.Patient{}
	err := s.DB.Order("id").Find(&patients).Error
	return patients, err
}

// Doctors returns the doctors a patient has booked with.
func (s *PatientService) Doctors(patientID uint) ([]models.Doctor, error) {
	if _, err := s.ByID(patientID); err != nil {
		return nil, err
	}
	doctors := []models.Doctor{}
	err := s.DB.
		Joins("JOIN doctor_patients ON doctor_patients.doctor_id = doctors.id").
		Where("doctor_patients.patient_id = ?", patientID).
		Order("doctors.id").
		Find(&doctors).Error
	return doctors, err
}

// Update applies profile changes to an existing patient. A non-empty
// password is re-hashed.
func (s *PatientService) Update(patient *models.Patient, password string) error {
	var existing models.Patient
	if err := s.DB.First(&existing, patient.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPatientNotFound
		}
		return err
	}
	if password != "" {
		if err := patient.SetPassword(password); err != nil {
			return err
		}
	} else {
		patient.Password = existing.Password
	}
	return s.DB.Save(patient).Error
}

// Delete removes a patient. Their still-booked slots revert to available;
// cancelled and completed appointments keep their history.
func (s *PatientService) Delete(id uint) error {
	if _, err := s.ByID(id); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Appointment{}).
			Where("patient_id = ? AND status = ?", id, models.StatusBooked).
			Updates(map[string]interface{}{
				"patient_id":   nil,
				"is_available": true,
				"status":       models.StatusAvailable,
				"symptoms":     "",
			}).Error
		if err != nil {
			return err
		}
		if err := tx.Where("patient_id = ?", id).Delete(&models.DoctorPatient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Patient{}, id).Error
	})
}
