package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"clinic-appointment-server/internal/middleware"
	"clinic-appointment-server/internal/models"
	"clinic-appointment-server/internal/services"
	"clinic-appointment-server/internal/utils"
)

// AppointmentHandler handles slot browsing, booking and cancellation.
type AppointmentHandler struct {
	Service *services.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: service}
}

// AvailableDoctors handles GET /appointments/availableDoctors/results?date=.
func (h *AppointmentHandler) AvailableDoctors(c *gin.Context) {
	date, ok := utils.ParseDateQuery(c, "date")
	if !ok {
		return
	}

	doctors, err := h.Service.AvailableDoctorsOnDate(date)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch doctors: "+err.Error())
		return
	}

	sanitized := make([]models.DoctorSanitized, len(doctors))
	for i, d := range doctors {
		sanitized[i] = d.Sanitize()
	}
	utils.Success(c, "Doctors fetched successfully", sanitized)
}

// AvailableAppointments handles GET /appointments/availableAppointments?doctorId=&date=.
func (h *AppointmentHandler) AvailableAppointments(c *gin.Context) {
	doctorID, ok := utils.ParseUintQuery(c, "doctorId")
	if !ok {
		return
	}
	date, ok := utils.ParseDateQuery(c, "date")
	if !ok {
		return
	}

	appointments, err := h.Service.AvailableAppointments(doctorID, date)
	if err != nil {
		if errors.Is(err, services.ErrDoctorNotFound) {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		}
		return
	}
	utils.Success(c, "Available appointments fetched successfully", appointments)
}

// BookRequest represents the request body for booking a slot.
type BookRequest struct {
	PatientID     uint   `json:"patientId" binding:"required"`
	AppointmentID uint   `json:"appointmentId" binding:"required"`
	Symptoms      string `json:"symptoms"`
}

// Book handles POST /appointments/book.
func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	// Patients can only book for themselves.
	userID, _ := middleware.GetUserIDFromContext(c)
	role, _ := middleware.GetUserRoleFromContext(c)
	if role == models.RolePatient && userID != req.PatientID {
		utils.Forbidden(c, "Patients can only book appointments for themselves.")
		return
	}

	appointment, err := h.Service.Book(req.PatientID, req.AppointmentID, req.Symptoms)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPatientNotFound):
			utils.NotFound(c, "Patient not found")
		case errors.Is(err, services.ErrAppointmentNotFound):
			utils.NotFound(c, "Appointment not found")
		case errors.Is(err, services.ErrBookingConflict):
			utils.Conflict(c, "Appointment is no longer available")
		default:
			utils.InternalServerError(c, "Failed to book appointment: "+err.Error())
		}
		return
	}
	utils.Success(c, "Appointment booked successfully", appointment)
}

// CancelRequest represents the request body for cancelling a booking.
type CancelRequest struct {
	PatientID     uint `json:"patientId" binding:"required"`
	AppointmentID uint `json:"appointmentId" binding:"required"`
}

// Cancel handles POST /appointments/cancel.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	var req CancelRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	role, _ := middleware.GetUserRoleFromContext(c)
	if role == models.RolePatient && userID != req.PatientID {
		utils.Forbidden(c, "Patients can only cancel their own appointments.")
		return
	}

	appointment, err := h.Service.Cancel(req.AppointmentID, req.PatientID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAppointmentNotFound):
			utils.NotFound(c, "Appointment not found or does not belong to this patient")
		case errors.Is(err, services.ErrCancellationWindow):
			utils.UnprocessableEntity(c, "Cannot cancel within 4 hours of the appointment")
		default:
			utils.InternalServerError(c, "Failed to cancel appointment: "+err.Error())
		}
		return
	}
	utils.Success(c, "Appointment cancelled successfully", appointment)
}

// ViewAll handles GET /appointments/viewAll?patientId=&status=.
func (h *AppointmentHandler) ViewAll(c *gin.Context) {
	patientID, ok := utils.ParseUintQuery(c, "patientId")
	if !ok {
		return
	}
	status, ok := models.ParseAppointmentStatus(c.Query("status"))
	if !ok {
		utils.BadRequest(c, "Invalid status: "+c.Query("status"))
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	role, _ := middleware.GetUserRoleFromContext(c)
	if role == models.RolePatient && userID != patientID {
		utils.Forbidden(c, "Patients can only view their own appointments.")
		return
	}

	appointments, err := h.Service.ByPatientAndStatus(patientID, status)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}
	utils.Success(c, "Appointments fetched successfully", appointments)
}

// View handles GET /appointments/view/:id. Patients only see their own rows.
func (h *AppointmentHandler) View(c *gin.Context) {
	appointmentID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	role, _ := middleware.GetUserRoleFromContext(c)

	var appointment *models.Appointment
	var err error
	if role == models.RolePatient {
		appointment, err = h.Service.ByIDAndPatient(appointmentID, userID)
	} else {
		appointment, err = h.Service.ByID(appointmentID)
	}
	if err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Failed to fetch appointment: "+err.Error())
		}
		return
	}
	utils.Success(c, "Appointment fetched successfully", appointment)
}

// UpdateStatusRequest represents the request body for a status change.
type UpdateStatusRequest struct {
	AppointmentID uint   `json:"appointmentId" binding:"required"`
	Status        string `json:"status" binding:"required"`
}

// UpdateStatus handles POST /doctors/updateStatus. The transition table in
// the model decides whether the change is legal.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	status, ok := models.ParseAppointmentStatus(req.Status)
	if !ok {
		utils.BadRequest(c, "Unknown status: "+req.Status)
		return
	}

	appointment, err := h.Service.UpdateStatus(req.AppointmentID, status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAppointmentNotFound):
			utils.NotFound(c, "Appointment not found")
		case errors.Is(err, services.ErrInvalidTransition):
			utils.UnprocessableEntity(c, err.Error())
		default:
			utils.InternalServerError(c, "Failed to update status: "+err.Error())
		}
		return
	}
	utils.Success(c, "Appointment status updated successfully", appointment)
}

// DoctorAppointments handles GET /doctors/appointments?date= for the
// authenticated doctor.
func (h *AppointmentHandler) DoctorAppointments(c *gin.Context) {
	doctorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	date, ok := utils.ParseDateQuery(c, "date")
	if !ok {
		return
	}

	appointments, err := h.Service.ByDoctorAndDate(doctorID, date)
	if err != nil {
		if errors.Is(err, services.ErrDoctorNotFound) {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		}
		return
	}
	utils.Success(c, "Appointments fetched successfully", appointments)
}
