package handlers

import (
	"github.com/gin-gonic/gin"

	"orthonova/services"
	"orthonova/utils"
)

type PatientHandler struct {
	service *services.PatientService
}

func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

// RegisterPatient handles patient registration. The patient ID and age are
// derived server-side; the response carries them back to the form.
func (h *PatientHandler) RegisterPatient(c *gin.Context) {
	var form utils.PatientForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	patient, err := h.service.Register(c.Request.Context(), form)
	if err != nil {
		if validationErr(err) {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to register patient."})
		return
	}
	c.JSON(201, patient)
}

func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	id := c.Param("patient_id")
	patient, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil || patient == nil {
		c.JSON(404, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(200, patient)
}

func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	patients, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to load patients."})
		return
	}
	c.JSON(200, patients)
}
