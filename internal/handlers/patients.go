package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"clinic-appointment-server/internal/middleware"
	"clinic-appointment-server/internal/models"
	"clinic-appointment-server/internal/services"
	"clinic-appointment-server/internal/utils"
)

// PatientHandler handles patient registration and profile requests.
type PatientHandler struct {
	Service *services.PatientService
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{Service: service}
}

// RegisterPatientRequest represents the request body for patient registration.
type RegisterPatientRequest struct {
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName"`
	Age            int    `json:"age" binding:"required,min=1,max=125"`
	Gender         string `json:"gender" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	PhoneNo        string `json:"phoneNo" binding:"required,len=10,numeric"`
	Password       string `json:"password" binding:"required,min=8,max=64"`
	MedicalHistory string `json:"medicalHistory"`
}

// Register handles POST /patients/register.
func (h *PatientHandler) Register(c *gin.Context) {
	var req RegisterPatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patient := models.Patient{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Age:            req.Age,
		Gender:         req.Gender,
		Email:          req.Email,
		PhoneNo:        req.PhoneNo,
		MedicalHistory: req.MedicalHistory,
	}
	if err := h.Service.Register(&patient, req.Password); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			utils.BadRequest(c, "Patient with this email already exists")
		} else {
			utils.InternalServerError(c, "Failed to register patient: "+err.Error())
		}
		return
	}
	utils.Created(c, "Patient registered successfully", patient.Sanitize())
}

// View handles GET /patients/view for the authenticated patient.
func (h *PatientHandler) View(c *gin.Context) {
	patientID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	patient, err := h.Service.ByID(patientID)
	if err != nil {
		if errors.Is(err, services.ErrPatientNotFound) {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Failed to fetch patient: "+err.Error())
		}
		return
	}
	utils.Success(c, "Patient fetched successfully", patient.Sanitize())
}

// UpdatePatientRequest represents the request body for a profile update.
type UpdatePatientRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	PhoneNo        string `json:"phoneNo" binding:"omitempty,len=10,numeric"`
	Password       string `json:"password" binding:"omitempty,min=8,max=64"`
	MedicalHistory string `json:"medicalHistory"`
}

// Update handles PUT /patients/update for the authenticated patient.
func (h *PatientHandler) Update(c *gin.Context) {
	patientID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req UpdatePatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patient, err := h.Service.ByID(patientID)
	if err != nil {
		utils.NotFound(c, "Patient not found")
		return
	}

	if req.FirstName != "" {
		patient.FirstName = req.FirstName
	}
	if req.LastName != "" {
		patient.LastName = req.LastName
	}
	if req.PhoneNo != "" {
		patient.PhoneNo = req.PhoneNo
	}
	if req.MedicalHistory != "" {
		patient.MedicalHistory = req.MedicalHistory
	}

	if err := h.Service.Update(patient, req.Password); err != nil {
		utils.InternalServerError(c, "Failed to update patient: "+err.Error())
		return
	}
	utils.Success(c, "Patient updated successfully", patient.Sanitize())
}

// Doctors handles GET /patients/doctors - the doctors this patient has
// booked with.
func (h *PatientHandler) Doctors(c *gin.Context) {
	patientID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	doctors, err := h.Service.Doctors(patientID)
	if err != nil {
		if errors.Is(err, services.ErrPatientNotFound) {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Failed to fetch doctors: "+err.Error())
		}
		return
	}

	sanitized := make([]models.DoctorSanitized, len(doctors))
	for i, d := range doctors {
		sanitized[i] = d.Sanitize()
	}
	utils.Success(c, "Doctors fetched successfully", sanitized)
}
