package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"clinic-appointment-server/internal/models"
	"clinic-appointment-server/internal/schedule"
)

// DoctorService manages doctor accounts. Registration also pre-generates
// the doctor's appointment slots for the rest of the current month.
type DoctorService struct {
	DB           *gorm.DB
	Appointments *AppointmentService

	now func() time.Time
}

// NewDoctorService creates a new DoctorService.
func NewDoctorService(db *gorm.DB, appointments *AppointmentService) *DoctorService {
	return &DoctorService{DB: db, Appointments: appointments, now: time.Now}
}

// Register hashes the doctor's password, persists the account and generates
// half-hour slots from today through the end of the month.
func (s *DoctorService) Register(doctor *models.Doctor, password string) error {
	var existing models.Doctor
	if err := s.DB.Where("email = ?", doctor.Email).First(&existing).Error; err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := doctor.SetPassword(password); err != nil {
		return err
	}

	today := schedule.DateOnly(s.now())
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(doctor).Error; err != nil {
			return err
		}
		svc := &AppointmentService{DB: tx, Cache: s.Appointments.Cache, now: s.now}
		_, err := svc.CreateSlotsForDoctor(doctor.ID, today, schedule.EndOfMonth(today))
		return err
	})
}

// ByEmail fetches a doctor by email address.
func (s *DoctorService) ByEmail(email string) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := s.DB.Where("email = ?", email).First(&doctor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

// ByID fetches a doctor by ID.
func (s *DoctorService) ByID(id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := s.DB.First(&doctor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

// All returns every registered doctor.
func (s *DoctorService) All() ([]models.Doctor, error) {
	doctors := []models.Doctor{}
	err := s.DB.Order("id").Find(&doctors).Error
	return doctors, err
}

// Patients returns the patients linked to a doctor through bookings.
func (s *DoctorService) Patients(doctorID uint) ([]models.Patient, error) {
	if _, err := s.ByID(doctorID); err != nil {
		return nil, err
	}
	patients := []models.Patient{}
	err := s.DB.
		Joins("JOIN doctor_patients ON doctor_patients.patient_id = patients.id").
		Where("doctor_patients.doctor_id = ?", doctorID).
		Order("patients.id").
		Find(&patients).Error
	return patients, err
}

// Update applies profile changes to an existing doctor. A non-empty
// password is re-hashed.
func (s *DoctorService) Update(doctor *models.Doctor, password string) error {
	var existing models.Doctor
	if err := s.DB.First(&existing, doctor.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDoctorNotFound
		}
		return err
	}
	if password != "" {
		if err := doctor.SetPassword(password); err != nil {
			return err
		}
	} else {
		doctor.Password = existing.Password
	}
	return s.DB.Save(doctor).Error
}

// Delete removes a doctor and their appointment rows.
func (s *DoctorService) Delete(id uint) error {
	if _, err := s.ByID(id); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var apptIDs []uint
		if err := tx.Model(&models.Appointment{}).Where("doctor_id = ?", id).Pluck("id", &apptIDs).Error; err != nil {
			return err
		}
		if len(apptIDs) > 0 {
			if err := tx.Where("appointment_id IN ?", apptIDs).Delete(&models.Medication{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.Appointment{}, apptIDs).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("doctor_id = ?", id).Delete(&models.DoctorPatient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Doctor{}, id).Error
	})
}
