package controllers

import (
	"github.com/gin-gonic/gin"

	"orthonova/handlers"
	"orthonova/middlewares"
	"orthonova/views"
)

// SetupClinicRoutes registers the clinic routes. Every route group is gated
// by the view its form belongs to, so the role -> view mapping is the only
// access policy in play.
func SetupClinicRoutes(
	router *gin.Engine,
	patientHandler *handlers.PatientHandler,
	doctorHandler *handlers.DoctorHandler,
	serviceHandler *handlers.ServiceHandler,
	billingHandler *handlers.BillingHandler,
	prescriptionHandler *handlers.PrescriptionHandler,
) {
	authed := router.Group("/", middlewares.TokenAuthMiddleware())

	// Roster and catalog reads feed the form dropdowns of several views,
	// so any authenticated session may list them.
	authed.GET("/patients", patientHandler.GetAllPatients)
	authed.GET("/patients/:patient_id", patientHandler.GetPatientByID)
	authed.GET("/doctors", doctorHandler.GetAllDoctors)
	authed.GET("/doctors/:doctor_id", doctorHandler.GetDoctorByID)
	authed.GET("/services", serviceHandler.GetAllServices)
	authed.GET("/services/:id", serviceHandler.GetServiceByID)

	// Patient registration: receptionist view
	authed.POST("/patients",
		middlewares.RequireView(views.ViewPatientRegistration),
		patientHandler.RegisterPatient)

	// Doctor registration: admin view
	authed.POST("/doctors",
		middlewares.RequireView(views.ViewDoctorRegistration),
		doctorHandler.RegisterDoctor)

	// Service catalog: admin view
	authed.POST("/services",
		middlewares.RequireView(views.ViewServiceCatalog),
		serviceHandler.AddService)

	// Billing: receptionist view
	authed.POST("/bills",
		middlewares.RequireView(views.ViewBilling),
		billingHandler.GenerateBill)

	// Bill history: admin and doctor views
	authed.GET("/bills",
		middlewares.RequireView(views.ViewBillHistory),
		billingHandler.GetAllBills)
	authed.GET("/bills/:bill_number",
		middlewares.RequireView(views.ViewBillHistory),
		billingHandler.GetBillByNumber)
	authed.GET("/bills/:bill_number/print",
		middlewares.RequireView(views.ViewBillHistory),
		billingHandler.PrintBill)

	// Prescription: receptionist and doctor views
	authed.POST("/prescriptions",
		middlewares.RequireView(views.ViewPrescription),
		prescriptionHandler.CreatePrescription)
	authed.GET("/prescriptions",
		middlewares.RequireView(views.ViewPrescription),
		prescriptionHandler.GetAllPrescriptions)
	authed.GET("/prescriptions/:id/print",
		middlewares.RequireView(views.ViewPrescription),
		prescriptionHandler.PrintPrescription)
}
