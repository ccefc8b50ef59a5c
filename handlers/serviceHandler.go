package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"orthonova/services"
	"orthonova/utils"
)

type ServiceHandler struct {
	service *services.CatalogService
}

func NewServiceHandler(service *services.CatalogService) *ServiceHandler {
	return &ServiceHandler{service: service}
}

func (h *ServiceHandler) AddService(c *gin.Context) {
	var form utils.ServiceForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	service, err := h.service.Add(c.Request.Context(), form)
	if err != nil {
		if validationErr(err) {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to add service."})
		return
	}
	c.JSON(201, service)
}

func (h *ServiceHandler) GetServiceByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid service ID"})
		return
	}
	service, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil || service == nil {
		c.JSON(404, gin.H{"error": "Service not found"})
		return
	}
	c.JSON(200, service)
}

func (h *ServiceHandler) GetAllServices(c *gin.Context) {
	services, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to load services."})
		return
	}
	c.JSON(200, services)
}
