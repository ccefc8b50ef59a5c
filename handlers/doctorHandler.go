package handlers

import (
	"github.com/gin-gonic/gin"

	"orthonova/services"
	"orthonova/utils"
)

type DoctorHandler struct {
	service *services.DoctorService
}

func NewDoctorHandler(service *services.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

func (h *DoctorHandler) RegisterDoctor(c *gin.Context) {
	var form utils.DoctorForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	doctor, err := h.service.Register(c.Request.Context(), form)
	if err != nil {
		if validationErr(err) {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to register doctor."})
		return
	}
	c.JSON(201, doctor)
}

func (h *DoctorHandler) GetDoctorByID(c *gin.Context) {
	id := c.Param("doctor_id")
	doctor, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil || doctor == nil {
		c.JSON(404, gin.H{"error": "Doctor not found"})
		return
	}
	c.JSON(200, doctor)
}

func (h *DoctorHandler) GetAllDoctors(c *gin.Context) {
	doctors, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to load doctors."})
		return
	}
	c.JSON(200, doctors)
}
