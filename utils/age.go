package utils

import (
	"fmt"
	"time"
)

const dobLayout = "2006-01-02"

// CalculateAge returns completed years between dob and today, decrementing
// when the birthday has not yet been reached this year.
func CalculateAge(dob, today time.Time) int {
	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() || (today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	return age
}

// AgeFromDOB parses a YYYY-MM-DD date of birth and returns the age as of
// now. Callers only derive an age when a date of birth was supplied.
func AgeFromDOB(dateOfBirth string) (int, error) {
	dob, err := time.Parse(dobLayout, dateOfBirth)
	if err != nil {
		return 0, fmt.Errorf("invalid date of birth %q: %w", dateOfBirth, err)
	}
	return CalculateAge(dob, time.Now()), nil
}
