package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"clinic-appointment-server/internal/middleware"
	"clinic-appointment-server/internal/models"
	"clinic-appointment-server/internal/services"
	"clinic-appointment-server/internal/utils"
)

// DoctorHandler handles doctor registration and profile requests.
type DoctorHandler struct {
	Service *services.DoctorService
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(service *services.DoctorService) *DoctorHandler {
	return &DoctorHandler{Service: service}
}

// RegisterDoctorRequest represents the request body for doctor registration.
type RegisterDoctorRequest struct {
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName"`
	Age            int    `json:"age" binding:"required,min=1,max=125"`
	Gender         string `json:"gender" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	PhoneNo        string `json:"phoneNo" binding:"required,len=10,numeric"`
	Password       string `json:"password" binding:"required,min=8,max=64"`
	Specialization string `json:"specialization" binding:"required"`
}

// Register handles POST /doctors/register. Registration also generates the
// doctor's appointment slots through the end of the current month.
func (h *DoctorHandler) Register(c *gin.Context) {
	var req RegisterDoctorRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	doctor := models.Doctor{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Age:            req.Age,
		Gender:         req.Gender,
		Email:          req.Email,
		PhoneNo:        req.PhoneNo,
		Specialization: req.Specialization,
	}
	if err := h.Service.Register(&doctor, req.Password); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			utils.BadRequest(c, "Doctor with this email already exists")
		} else {
			utils.InternalServerError(c, "Failed to register doctor: "+err.Error())
		}
		return
	}
	utils.Created(c, "Doctor registered successfully", doctor.Sanitize())
}

// View handles GET /doctors/view for the authenticated doctor.
func (h *DoctorHandler) View(c *gin.Context) {
	doctorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	doctor, err := h.Service.ByID(doctorID)
	if err != nil {
		if errors.Is(err, services.ErrDoctorNotFound) {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Failed to fetch doctor: "+err.Error())
		}
		return
	}
	utils.Success(c, "Doctor fetched successfully", doctor.Sanitize())
}

// Patients handles GET /doctors/patients for the authenticated doctor.
func (h *DoctorHandler) Patients(c *gin.Context) {
	doctorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	patients, err := h.Service.Patients(doctorID)
	if err != nil {
		if errors.Is(err, services.ErrDoctorNotFound) {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Failed to fetch patients: "+err.Error())
		}
		return
	}

	sanitized := make([]models.PatientSanitized, len(patients))
	for i, p := range patients {
		sanitized[i] = p.Sanitize()
	}
	utils.Success(c, "Patients fetched successfully", sanitized)
}
