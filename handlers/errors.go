package handlers

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"orthonova/utils"
)

// validationErr reports whether an error came from local form validation
// (recoverable by correcting the form) rather than from persistence.
func validationErr(err error) bool {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return true
	}
	var verr validation.ErrorObject
	if errors.As(err, &verr) {
		return true
	}
	var parseErr *time.ParseError
	if errors.As(err, &parseErr) {
		return true
	}
	for _, sentinel := range []error{
		utils.ErrInvalidPhone,
		utils.ErrInvalidAmount,
		utils.ErrInvalidQuantity,
		utils.ErrNoBillItems,
		utils.ErrPasswordTooShort,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
