package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"orthonova/models"
)

func TestForRole(t *testing.T) {
	t.Run("admin gets the management views", func(t *testing.T) {
		assert.Equal(t,
			[]View{ViewUserManagement, ViewDoctorRegistration, ViewServiceCatalog, ViewBillHistory},
			ForRole(models.RoleAdmin))
	})

	t.Run("receptionist gets the front-desk views", func(t *testing.T) {
		assert.Equal(t,
			[]View{ViewPatientRegistration, ViewBilling, ViewPrescription},
			ForRole(models.RoleReceptionist))
	})

	t.Run("doctor gets prescription and bill history", func(t *testing.T) {
		assert.Equal(t,
			[]View{ViewPrescription, ViewBillHistory},
			ForRole(models.RoleDoctor))
	})

	t.Run("unknown role falls back to login", func(t *testing.T) {
		assert.Equal(t, []View{ViewLogin}, ForRole("superuser"))
	})

	t.Run("empty role falls back to login", func(t *testing.T) {
		assert.Equal(t, []View{ViewLogin}, ForRole(""))
	})
}

func TestAllowed(t *testing.T) {
	t.Run("doctor never reaches admin views", func(t *testing.T) {
		assert.False(t, Allowed(models.RoleDoctor, ViewUserManagement))
		assert.False(t, Allowed(models.RoleDoctor, ViewServiceCatalog))
		assert.False(t, Allowed(models.RoleDoctor, ViewBilling))
	})

	t.Run("receptionist never reaches user management", func(t *testing.T) {
		assert.False(t, Allowed(models.RoleReceptionist, ViewUserManagement))
		assert.False(t, Allowed(models.RoleReceptionist, ViewDoctorRegistration))
	})

	t.Run("admin reaches bill history but not billing entry", func(t *testing.T) {
		assert.True(t, Allowed(models.RoleAdmin, ViewBillHistory))
		assert.False(t, Allowed(models.RoleAdmin, ViewBilling))
	})

	t.Run("doctor reaches the prescription view", func(t *testing.T) {
		assert.True(t, Allowed(models.RoleDoctor, ViewPrescription))
	})

	t.Run("nobody but the mapped roles reaches a view", func(t *testing.T) {
		assert.False(t, Allowed("", ViewPatientRegistration))
		assert.False(t, Allowed("guest", ViewBilling))
	})
}
