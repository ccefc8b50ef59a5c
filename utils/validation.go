package utils

import (
	"errors"
	"log"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"

	"orthonova/models"
)

// Validation errors
var (
	ErrInvalidPhone     = errors.New("contact number must be exactly 10 digits")
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrNoBillItems      = errors.New("at least one service is required")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
)

// PatientForm is the patient registration payload before derivation of the
// patient ID and age.
type PatientForm struct {
	Name          string `json:"name"`
	DateOfBirth   string `json:"date_of_birth"`
	Gender        string `json:"gender"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
}

// ValidatePatientForm checks the patient registration fields.
func ValidatePatientForm(form PatientForm) error {
	err := validation.ValidateStruct(&form,
		validation.Field(&form.Name, validation.Required),
		validation.Field(&form.DateOfBirth, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&form.Gender, validation.Required, validation.In("Male", "Female", "Other")),
		validation.Field(&form.ContactNumber, validation.Required, validation.By(validatePhoneNumber)),
		validation.Field(&form.Address, validation.Required),
	)
	if err != nil {
		log.Printf("Patient validation error: %v", err)
	}
	return err
}

// DoctorForm is the doctor registration payload.
type DoctorForm struct {
	Name               string `json:"name"`
	ContactNumber      string `json:"contact_number"`
	RegistrationNumber string `json:"registration_number"`
	OPDFee             string `json:"opd_fee"`
}

// ValidateDoctorForm checks the doctor registration fields.
func ValidateDoctorForm(form DoctorForm) error {
	err := validation.ValidateStruct(&form,
		validation.Field(&form.Name, validation.Required),
		validation.Field(&form.ContactNumber, validation.Required, validation.By(validatePhoneNumber)),
		validation.Field(&form.RegistrationNumber, validation.Required),
		validation.Field(&form.OPDFee, validation.Required, validation.By(validatePositiveMoney)),
	)
	if err != nil {
		log.Printf("Doctor validation error: %v", err)
	}
	return err
}

// ServiceForm is the catalog admin payload.
type ServiceForm struct {
	ServiceName string `json:"service_name"`
	ServiceType string `json:"service_type"`
	Price       string `json:"price"`
}

// ValidateServiceForm checks the service catalog fields.
func ValidateServiceForm(form ServiceForm) error {
	err := validation.ValidateStruct(&form,
		validation.Field(&form.ServiceName, validation.Required),
		validation.Field(&form.ServiceType, validation.Required, validation.In("Consultation", "Imaging", "Therapy", "Lab Test")),
		validation.Field(&form.Price, validation.Required, validation.By(validatePositiveMoney)),
	)
	if err != nil {
		log.Printf("Service validation error: %v", err)
	}
	return err
}

// UserForm is the user management payload.
type UserForm struct {
	UserID     string `json:"user_id"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

// ValidateUserForm checks the create-user fields.
func ValidateUserForm(form UserForm) error {
	err := validation.ValidateStruct(&form,
		validation.Field(&form.UserID, validation.Required, validation.Length(3, 100)),
		validation.Field(&form.Password, validation.Required, validation.By(validatePassword)),
		validation.Field(&form.Role, validation.Required, validation.In(models.RoleAdmin, models.RoleReceptionist, models.RoleDoctor)),
		validation.Field(&form.Department, validation.Required),
	)
	if err != nil {
		log.Printf("User validation error: %v", err)
	}
	return err
}

// BillForm is the bill generation payload.
type BillForm struct {
	PatientID string                `json:"patient_id"`
	Items     []models.BillLineItem `json:"items"`
}

// ValidateBillForm checks the bill submission: a selected patient and at
// least one row with a service selected and a positive quantity.
func ValidateBillForm(form BillForm) error {
	err := validation.ValidateStruct(&form,
		validation.Field(&form.PatientID, validation.Required),
		validation.Field(&form.Items, validation.Required.Error(ErrNoBillItems.Error()), validation.Each(validation.By(validateBillLineItem))),
	)
	if err != nil {
		log.Printf("Bill validation error: %v", err)
	}
	return err
}

// PrescriptionForm is the prescription authoring payload.
type PrescriptionForm struct {
	PatientID   string `json:"patient_id"`
	DoctorID    string `json:"doctor_id"`
	Diagnosis   string `json:"diagnosis"`
	Medications string `json:"medications"`
}

// ValidatePrescriptionForm checks the prescription fields.
func ValidatePrescriptionForm(form PrescriptionForm) error {
	err := validation.ValidateStruct(&form,
		validation.Field(&form.PatientID, validation.Required),
		validation.Field(&form.DoctorID, validation.Required),
	)
	if err != nil {
		log.Printf("Prescription validation error: %v", err)
	}
	return err
}

// validatePhoneNumber requires exactly 10 decimal digits.
func validatePhoneNumber(value interface{}) error {
	phone, _ := value.(string)
	if len(phone) != 10 {
		return ErrInvalidPhone
	}
	if err := validation.Validate(phone, is.Digit); err != nil {
		return ErrInvalidPhone
	}
	return nil
}

// validatePositiveMoney requires a parseable amount strictly greater than zero.
func validatePositiveMoney(value interface{}) error {
	raw, _ := value.(string)
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return ErrInvalidAmount
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

// validateBillLineItem requires a selected service and quantity >= 1.
func validateBillLineItem(value interface{}) error {
	item, _ := value.(models.BillLineItem)
	if item.ServiceID == 0 {
		return errors.New("a service must be selected")
	}
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}
	return nil
}

// validatePassword keeps the credential policy in one place.
func validatePassword(value interface{}) error {
	password, _ := value.(string)
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	return nil
}
