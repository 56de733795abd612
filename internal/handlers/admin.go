package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"clinic-appointment-server/internal/models"
	"clinic-appointment-server/internal/services"
	"clinic-appointment-server/internal/utils"
)

// AdminHandler handles administrative management of doctors and patients.
type AdminHandler struct {
	Doctors  *services.DoctorService
	Patients *services.PatientService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(doctors *services.DoctorService, patients *services.PatientService) *AdminHandler {
	return &AdminHandler{Doctors: doctors, Patients: patients}
}

// ListDoctors handles GET /admin/docList.
func (h *AdminHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.Doctors.All()
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

// ListPatients handles GET /admin/patList.
func (h *AdminHandler) ListPatients(c *gin.Context) {
	patients, err := h.Patients.All()
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch patients: "+err.Error())
		return
	}
	sanitized := make([]models.PatientSanitized, len(patients))
	for i, p := range patients {
		sanitized[i] = p.Sanitize()
	}
	utils.Success(c, "Patients fetched successfully", sanitized)
}

// UpdateDoctorRequest represents the admin update body for a doctor.
type UpdateDoctorRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	PhoneNo        string `json:"phoneNo" binding:"omitempty,len=10,numeric"`
	Specialization string `json:"specialization"`
	Password       string `json:"password" binding:"omitempty,min=8,max=64"`
}

// UpdateDoctor handles POST /admin/docUpdate/:id.
func (h *AdminHandler) UpdateDoctor(c *gin.Context) {
	id, ok := utils.ParseUintParam(c, "id")
	if !ok {
		return
	}
	var req UpdateDoctorRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	doctor, err := h.Doctors.ByID(id)
	if err != nil {
		utils.NotFound(c, "Doctor not found")
		return
	}

	if req.FirstName != "" {
		doctor.FirstName = req.FirstName
	}
	if req.LastName != "" {
		doctor.LastName = req.LastName
	}
	if req.PhoneNo != "" {
		doctor.PhoneNo = req.PhoneNo
	}
	if req.Specialization != "" {
		doctor.Specialization = req.Specialization
	}

	if err := h.Doctors.Update(doctor, req.Password); err != nil {
		utils.InternalServerError(c, "Failed to update doctor: "+err.Error())
		return
	}
	utils.Success(c, "Doctor updated successfully", doctor.Sanitize())
}

// DeleteDoctor handles POST /admin/deleteDoc/:id.
func (h *AdminHandler) DeleteDoctor(c *gin.Context) {
	id, ok := utils.ParseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.Doctors.Delete(id); err != nil {
		if errors.Is(err, services.ErrDoctorNotFound) {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Failed to delete doctor: "+err.Error())
		}
		return
	}
	utils.Success(c, "Doctor deleted successfully", nil)
}

// UpdatePatient handles POST /admin/patUpdate/:id.
func (h *AdminHandler) UpdatePatient(c *gin.Context) {
	id, ok := utils.ParseUintParam(c, "id")
	if !ok {
		return
	}
	var req UpdatePatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patient, err := h.Patients.ByID(id)
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

	if err := h.Patients.Update(patient, req.Password); err != nil {
		utils.InternalServerError(c, "Failed to update patient: "+err.Error())
		return
	}
	utils.Success(c, "Patient updated successfully", patient.Sanitize())
}

// DeletePatient handles POST /admin/patDelete/:id.
func (h *AdminHandler) DeletePatient(c *gin.Context) {
	id, ok := utils.ParseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.Patients.Delete(id); err != nil {
		if errors.Is(err, services.ErrPatientNotFound) {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Failed to delete patient: "+err.Error())
		}
		return
	}
	utils.Success(c, "Patient deleted successfully", nil)
}
