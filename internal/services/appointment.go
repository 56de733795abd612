package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"clinic-appointment-server/internal/cache"
	"clinic-appointment-server/internal/models"
	"clinic-appointment-server/internal/schedule"
)

const doctorCacheTTL = time.Minute

// AppointmentService implements slot generation, booking, cancellation and
// the read-side queries over appointment rows.
type AppointmentService struct {
	DB    *gorm.DB
	Cache *cache.Cache

	now func() time.Time
}

// NewAppointmentService creates a new AppointmentService. cache may be nil.
func NewAppointmentService(db *gorm.DB, c *cache.Cache) *AppointmentService {
	return &AppointmentService{DB: db, Cache: c, now: time.Now}
}

// CreateSlotsForDoctor generates half-hour slots for every date in
// [startDate, endDate] and persists them in one bulk insert. Re-invoking for
// an overlapping range duplicates rows; callers own idempotence.
func (s *AppointmentService) CreateSlotsForDoctor(doctorID uint, startDate, endDate time.Time) ([]models.Appointment, error) {
	slots := schedule.Slots(startDate, endDate)
	if len(slots) == 0 {
		return nil, nil
	}

	appointments := make([]models.Appointment, len(slots))
	for i, slot := range slots {
		appointments[i] = models.Appointment{
			DoctorID:    doctorID,
			Date:        slot.Date,
			StartTime:   slot.Start,
			EndTime:     slot.End,
			IsAvailable: true,
			Status:      models.StatusAvailable,
		}
	}

	if err := s.DB.Create(&appointments).Error; err != nil {
		return nil, err
	}

	if s.Cache != nil {
		keys := make([]string, 0, len(slots))
		seen := map[string]bool{}
		for _, slot := range slots {
			key := doctorsOnDateKey(slot.Date)
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
		s.Cache.Delete(context.Background(), keys...)
	}

	return appointments, nil
}

// AvailableDoctorsOnDate returns every doctor who has appointment rows on
// the given date. An empty result is an empty slice, not an error.
func (s *AppointmentService) AvailableDoctorsOnDate(date time.Time) ([]models.Doctor, error) {
	date = schedule.DateOnly(date)
	key := doctorsOnDateKey(date)

	doctors := []models.Doctor{}
	if s.Cache.GetJSON(context.Background(), key, &doctors) {
		return doctors, nil
	}

	err := s.DB.
		Distinct("doctors.*").
		Joins("JOIN appointments ON appointments.doctor_id = doctors.id").
		Where("appointments.date = ?", date).
		Order("doctors.id").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}

	s.Cache.SetJSON(context.Background(), key, doctors, doctorCacheTTL)
	return doctors, nil
}

// AvailableAppointments returns the still-available slots of a doctor on a date.
func (s *AppointmentService) AvailableAppointments(doctorID uint, date time.Time) ([]models.Appointment, error) {
	if err := s.requireDoctor(doctorID); err != nil {
		return nil, err
	}
	appointments := []models.Appointment{}
	err := s.DB.
		Where("doctor_id = ? AND date = ? AND is_available = ?", doctorID, schedule.DateOnly(date), true).
		Order("start_time").
		Find(&appointments).Error
	return appointments, err
}

// Book attaches a patient and symptoms to a slot. The availability flip is a
// conditional update; losing the race surfaces as ErrBookingConflict rather
// than silently overwriting the other booking.
func (s *AppointmentService) Book(patientID, appointmentID uint, symptoms string) (*models.Appointment, error) {
	var patient models.Patient
	if err := s.DB.First(&patient, patientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}

	var appointment models.Appointment
	if err := s.DB.First(&appointment, appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Appointment{}).
			Where("id = ? AND is_available = ?", appointmentID, true).
			Updates(map[string]interface{}{
				"patient_id":   patientID,
				"is_available": false,
				"status":       models.StatusBooked,
				"symptoms":     symptoms,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrBookingConflict
		}

		link := models.DoctorPatient{DoctorID: appointment.DoctorID, PatientID: patientID}
		return tx.Where(models.DoctorPatient{DoctorID: appointment.DoctorID, PatientID: patientID}).
			FirstOrCreate(&link).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.DB.First(&appointment, appointmentID).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

// Cancel reverts a booked slot to available after verifying ownership and
// the four-hour notice window. Recorded medications are discarded.
func (s *AppointmentService) Cancel(appointmentID, patientID uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := s.DB.Where("id = ? AND patient_id = ?", appointmentID, patientID).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	startAt, err := appointment.StartAt()
	if err != nil {
		return nil, err
	}
	if schedule.StartsWithinNotice(startAt, s.now()) {
		return nil, ErrCancellationWindow
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return resetSlot(tx, appointmentID)
	})
	if err != nil {
		return nil, err
	}

	if err := s.DB.First(&appointment, appointmentID).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

// UpdateStatus moves an appointment through the status transition table.
// A transition to AVAILABLE releases the booking in full: patient detached,
// symptoms cleared, medications discarded, the slot open again. BOOKED is
// never a valid target here; attaching a patient goes through Book.
func (s *AppointmentService) UpdateStatus(appointmentID uint, status models.AppointmentStatus) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := s.DB.First(&appointment, appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	if status == models.StatusBooked || !appointment.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appointment.Status, status)
	}

	if status == models.StatusAvailable {
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			return resetSlot(tx, appointmentID)
		})
		if err != nil {
			return nil, err
		}
		if err := s.DB.First(&appointment, appointmentID).Error; err != nil {
			return nil, err
		}
		return &appointment, nil
	}

	appointment.Status = status
	if err := s.DB.Save(&appointment).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

// ByDoctorAndDate returns every appointment of a doctor on a date.
func (s *AppointmentService) ByDoctorAndDate(doctorID uint, date time.Time) ([]models.Appointment, error) {
	if err := s.requireDoctor(doctorID); err != nil {
		return nil, err
	}
	appointments := []models.Appointment{}
	err := s.DB.
		Where("doctor_id = ? AND date = ?", doctorID, schedule.DateOnly(date)).
		Order("start_time").
		Find(&appointments).Error
	return appointments, err
}

// ByPatientAndStatus returns a patient's appointments filtered by status.
func (s *AppointmentService) ByPatientAndStatus(patientID uint, status models.AppointmentStatus) ([]models.Appointment, error) {
	appointments := []models.Appointment{}
	err := s.DB.
		Where("patient_id = ? AND status = ?", patientID, status).
		Order("date, start_time").
		Find(&appointments).Error
	return appointments, err
}

// ByID looks up a single appointment.
func (s *AppointmentService) ByID(appointmentID uint) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := s.DB.Preload("Medications").First(&appointment, appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

// ByIDAndPatient looks up an appointment enforcing patient ownership.
func (s *AppointmentService) ByIDAndPatient(appointmentID, patientID uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := s.DB.Preload("Medications").
		Where("id = ? AND patient_id = ?", appointmentID, patientID).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

// resetSlot discards any medications on the appointment and reverts the row
// to an open slot: no patient, no symptoms, available again.
func resetSlot(tx *gorm.DB, appointmentID uint) error {
	if err := tx.Where("appointment_id = ?", appointmentID).Delete(&models.Medication{}).Error; err != nil {
		return err
	}
	return tx.Model(&models.Appointment{}).
		Where("id = ?", appointmentID).
		Updates(map[string]interface{}{
			"patient_id":   nil,
			"is_available": true,
			"status":       models.StatusAvailable,
			"symptoms":     "",
		}).Error
}

func (s *AppointmentService) requireDoctor(doctorID uint) error {
	var count int64
	if err := s.DB.Model(&models.Doctor{}).Where("id = ?", doctorID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrDoctorNotFound
	}
	return nil
}

func doctorsOnDateKey(date time.Time) string {
	return "doctors-on-date:" + date.Format("2006-01-02")
}
