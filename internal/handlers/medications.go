package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"clinic-appointment-server/internal/models"
	"clinic-appointment-server/internal/services"
	"clinic-appointment-server/internal/utils"
)

// MedicationHandler handles medication records tied to appointments.
type MedicationHandler struct {
	Service *services.MedicationService
}

// NewMedicationHandler creates a new MedicationHandler.
func NewMedicationHandler(service *services.MedicationService) *MedicationHandler {
	return &MedicationHandler{Service: service}
}

// AddMedicationRequest represents the request body for adding a medication.
type AddMedicationRequest struct {
	AppointmentID uint   `json:"appointmentId" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Dosage        string `json:"dosage"`
	Frequency     string `json:"frequency"`
	Instructions  string `json:"instructions"`
}

// Add handles POST /medications/addMed.
func (h *MedicationHandler) Add(c *gin.Context) {
	var req AddMedicationRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	medication := models.Medication{
		Name:         req.Name,
		Dosage:       req.Dosage,
		Frequency:    req.Frequency,
		Instructions: req.Instructions,
	}
	if err := h.Service.Add(req.AppointmentID, &medication); err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Failed to add medication: "+err.Error())
		}
		return
	}
	utils.Created(c, "Medication added successfully", medication)
}

// UpdateMedicationRequest represents the full-replacement update body.
type UpdateMedicationRequest struct {
	MedicationID uint   `json:"medicationId" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Instructions string `json:"instructions"`
}

// Update handles POST /medications/updateMed.
func (h *MedicationHandler) Update(c *gin.Context) {
	var req UpdateMedicationRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	medication := models.Medication{
		ID:           req.MedicationID,
		Name:         req.Name,
		Dosage:       req.Dosage,
		Frequency:    req.Frequency,
		Instructions: req.Instructions,
	}
	if err := h.Service.Update(&medication); err != nil {
		if errors.Is(err, services.ErrMedicationNotFound) {
			utils.NotFound(c, "Medication not found")
		} else {
			utils.InternalServerError(c, "Failed to update medication: "+err.Error())
		}
		return
	}
	utils.Success(c, "Medication updated successfully", medication)
}

// RemoveMedicationRequest represents the request body for removal.
type RemoveMedicationRequest struct {
	MedicationID uint `json:"medicationId" binding:"required"`
}

// Remove handles POST /medications/removeMed.
func (h *MedicationHandler) Remove(c *gin.Context) {
	var req RemoveMedicationRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if err := h.Service.Remove(req.MedicationID); err != nil {
		if errors.Is(err, services.ErrMedicationNotFound) {
			utils.NotFound(c, "Medication not found")
		} else {
			utils.InternalServerError(c, "Failed to remove medication: "+err.Error())
		}
		return
	}
	utils.Success(c, "Medication removed successfully", nil)
}

// List handles GET /medications/listMed?appointmentId=. An appointment
// without prescriptions yields an empty list.
func (h *MedicationHandler) List(c *gin.Context) {
	appointmentID, ok := utils.ParseUintQuery(c, "appointmentId")
	if !ok {
		return
	}

	medications, err := h.Service.List(appointmentID)
	if err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Failed to fetch medications: "+err.Error())
		}
		return
	}
	utils.Success(c, "Medications fetched successfully", medications)
}
