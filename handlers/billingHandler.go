package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"orthonova/config"
	"orthonova/services"
	"orthonova/utils"
)

type BillingHandler struct {
	service *services.BillingService
}

func NewBillingHandler(service *services.BillingService) *BillingHandler {
	return &BillingHandler{service: service}
}

// GenerateBill creates a bill with its line items. Consistency errors
// (unknown service, unknown patient) come back as 400 with the specific
// message; persistence failures collapse into the generic category.
func (h *BillingHandler) GenerateBill(c *gin.Context) {
	var form utils.BillForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	bill, err := h.service.Generate(c.Request.Context(), form)
	if err != nil {
		if validationErr(err) || consistencyErr(err) {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to create bill."})
		return
	}
	c.JSON(201, bill)
}

func (h *BillingHandler) GetBillByNumber(c *gin.Context) {
	billNumber := c.Param("bill_number")
	bill, err := h.service.GetByNumber(c.Request.Context(), billNumber)
	if err != nil || bill == nil {
		c.JSON(404, gin.H{"error": "Bill not found"})
		return
	}
	c.JSON(200, bill)
}

func (h *BillingHandler) GetAllBills(c *gin.Context) {
	bills, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to load bills."})
		return
	}
	c.JSON(200, bills)
}

// PrintBill returns the printable invoice payload: clinic letterhead plus
// the bill with its snapshotted line items.
func (h *BillingHandler) PrintBill(c *gin.Context) {
	billNumber := c.Param("bill_number")
	bill, err := h.service.GetByNumber(c.Request.Context(), billNumber)
	if err != nil || bill == nil {
		c.JSON(404, gin.H{"error": "Bill not found"})
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
		"bill": bill,
	})
}

// consistencyErr matches the per-flow consistency failures surfaced with
// their own messages instead of the generic persistence category.
func consistencyErr(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "unknown service") ||
		strings.Contains(msg, "patient not found") ||
		strings.Contains(msg, "doctor not found")
}
