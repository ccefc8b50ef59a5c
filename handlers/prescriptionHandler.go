package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"orthonova/config"
	"orthonova/services"
	"orthonova/utils"
)

type PrescriptionHandler struct {
	service *services.PrescriptionService
}

func NewPrescriptionHandler(service *services.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{service: service}
}

func (h *PrescriptionHandler) CreatePrescription(c *gin.Context) {
	var form utils.PrescriptionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	prescription, err := h.service.Create(c.Request.Context(), form)
	if err != nil {
		if validationErr(err) || consistencyErr(err) {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to create prescription."})
		return
	}
	c.JSON(201, prescription)
}

func (h *PrescriptionHandler) GetAllPrescriptions(c *gin.Context) {
	prescriptions, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to load prescriptions."})
		return
	}
	c.JSON(200, prescriptions)
}

// PrintPrescription returns the printable payload: clinic letterhead,
// patient demographics and the prescribing doctor's details.
func (h *PrescriptionHandler) PrintPrescription(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid prescription ID"})
		return
	}
	prescription, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil || prescription == nil {
		c.JSON(404, gin.H{"error": "Prescription not found"})
		return
	}
	c.JSON(200, gin.H{
		"clinic": gin.H{
			"name":    config.ClinicName,
			"reg_no":  config.ClinicRegNo,
			"address": config.ClinicAddress,
			"phone":   config.ClinicPhone,
			"email":   config.ClinicEmail,
		},
		"prescription": prescription,
	})
}
