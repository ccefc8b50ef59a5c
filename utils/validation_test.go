package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orthonova/models"
)

func validPatientForm() PatientForm {
	return PatientForm{
		Name:          "Asha Mishra",
		DateOfBirth:   "1990-03-12",
		Gender:        "Female",
		ContactNumber: "9876543210",
		Address:       "Civil Township, Rourkela",
	}
}

func TestValidatePatientForm(t *testing.T) {
	t.Run("accepts a complete form", func(t *testing.T) {
		assert.NoError(t, ValidatePatientForm(validPatientForm()))
	})

	t.Run("rejects short contact number", func(t *testing.T) {
		form := validPatientForm()
		form.ContactNumber = "12345"
		err := ValidatePatientForm(form)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrInvalidPhone.Error())
	})

	t.Run("rejects non-digit contact number", func(t *testing.T) {
		form := validPatientForm()
		form.ContactNumber = "12345abcde"
		assert.Error(t, ValidatePatientForm(form))
	})

	t.Run("rejects malformed date of birth", func(t *testing.T) {
		form := validPatientForm()
		form.DateOfBirth = "12/03/1990"
		assert.Error(t, ValidatePatientForm(form))
	})

	t.Run("rejects unknown gender", func(t *testing.T) {
		form := validPatientForm()
		form.Gender = "Unknown"
		assert.Error(t, ValidatePatientForm(form))
	})

	t.Run("requires every field", func(t *testing.T) {
		assert.Error(t, ValidatePatientForm(PatientForm{}))
	})
}

func TestValidateDoctorForm(t *testing.T) {
	form := DoctorForm{
		Name:               "John Doe",
		ContactNumber:      "9876543210",
		RegistrationNumber: "REG123456",
		OPDFee:             "500",
	}

	t.Run("accepts a complete form", func(t *testing.T) {
		assert.NoError(t, ValidateDoctorForm(form))
	})

	t.Run("rejects zero fee", func(t *testing.T) {
		bad := form
		bad.OPDFee = "0"
		err := ValidateDoctorForm(bad)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrInvalidAmount.Error())
	})

	t.Run("rejects unparseable fee", func(t *testing.T) {
		bad := form
		bad.OPDFee = "five hundred"
		assert.Error(t, ValidateDoctorForm(bad))
	})
}

func TestValidateServiceForm(t *testing.T) {
	form := ServiceForm{
		ServiceName: "Knee X-Ray",
		ServiceType: "Imaging",
		Price:       "300",
	}

	t.Run("accepts a complete form", func(t *testing.T) {
		assert.NoError(t, ValidateServiceForm(form))
	})

	t.Run("rejects unknown service type", func(t *testing.T) {
		bad := form
		bad.ServiceType = "Surgery"
		assert.Error(t, ValidateServiceForm(bad))
	})

	t.Run("rejects negative price", func(t *testing.T) {
		bad := form
		bad.Price = "-50"
		assert.Error(t, ValidateServiceForm(bad))
	})
}

func TestValidateUserForm(t *testing.T) {
	form := UserForm{
		UserID:     "reception1",
		Password:   "s3cretpass",
		Role:       models.RoleReceptionist,
		Department: "Front Desk",
	}

	t.Run("accepts a complete form", func(t *testing.T) {
		assert.NoError(t, ValidateUserForm(form))
	})

	t.Run("rejects short password", func(t *testing.T) {
		bad := form
		bad.Password = "short"
		err := ValidateUserForm(bad)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrPasswordTooShort.Error())
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		bad := form
		bad.Role = "superuser"
		assert.Error(t, ValidateUserForm(bad))
	})
}

func TestValidateBillForm(t *testing.T) {
	t.Run("accepts patient with line items", func(t *testing.T) {
		form := BillForm{
			PatientID: "25-3210-ASHA",
			Items: []models.BillLineItem{
				{ServiceID: 1, Quantity: 2},
				{ServiceID: 2, Quantity: 1},
			},
		}
		assert.NoError(t, ValidateBillForm(form))
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		form := BillForm{PatientID: "25-3210-ASHA"}
		err := ValidateBillForm(form)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrNoBillItems.Error())
	})

	t.Run("rejects row without a service", func(t *testing.T) {
		form := BillForm{
			PatientID: "25-3210-ASHA",
			Items:     []models.BillLineItem{{ServiceID: 0, Quantity: 1}},
		}
		assert.Error(t, ValidateBillForm(form))
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		form := BillForm{
			PatientID: "25-3210-ASHA",
			Items:     []models.BillLineItem{{ServiceID: 1, Quantity: 0}},
		}
		err := ValidateBillForm(form)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrInvalidQuantity.Error())
	})

	t.Run("rejects missing patient", func(t *testing.T) {
		form := BillForm{
			Items: []models.BillLineItem{{ServiceID: 1, Quantity: 1}},
		}
		assert.Error(t, ValidateBillForm(form))
	})
}

func TestValidatePrescriptionForm(t *testing.T) {
	t.Run("accepts patient and doctor selection", func(t *testing.T) {
		form := PrescriptionForm{
			PatientID:   "25-3210-ASHA",
			DoctorID:    "DOC-253456-JD",
			Diagnosis:   "Lateral epicondylitis",
			Medications: "Ibuprofen 400mg twice daily",
		}
		assert.NoError(t, ValidatePrescriptionForm(form))
	})

	t.Run("rejects missing doctor", func(t *testing.T) {
		form := PrescriptionForm{PatientID: "25-3210-ASHA"}
		assert.Error(t, ValidatePrescriptionForm(form))
	})
}
