// Package views maps a user role to the set of top-level views it may
// reach. Every role-gated route consults this mapping through the
// middleware layer, so the permission table lives in exactly one place.
package views

import "orthonova/models"

// View identifies a top-level screen of the clinic application.
type View string

const (
	ViewLogin               View = "login"
	ViewUserManagement      View = "user_management"
	ViewDoctorRegistration  View = "doctor_registration"
	ViewServiceCatalog      View = "service_catalog"
	ViewBillHistory         View = "bill_history"
	ViewPatientRegistration View = "patient_registration"
	ViewBilling             View = "billing"
	ViewPrescription        View = "prescription"
)

// ForRole returns the ordered views available to a role. An unrecognized or
// empty role (unauthenticated session) gets the login view only.
func ForRole(role string) []View {
	switch role {
	case models.RoleAdmin:
		return []View{ViewUserManagement, ViewDoctorRegistration, ViewServiceCatalog, ViewBillHistory}
	case models.RoleReceptionist:
		return []View{ViewPatientRegistration, ViewBilling, ViewPrescription}
	case models.RoleDoctor:
		return []View{ViewPrescription, ViewBillHistory}
	default:
		return []View{ViewLogin}
	}
}

// Allowed reports whether a role may reach a view.
func Allowed(role string, view View) bool {
	for _, v := range ForRole(role) {
		if v == view {
			return true
		}
	}
	return false
}
