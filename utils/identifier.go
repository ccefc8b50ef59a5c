package utils

import (
	"fmt"
	"strings"
	"time"
)

// GeneratePatientID derives the human-readable patient identifier from the
// registration form fields: {YY}-{last4OfContact}-{NAME4}, where NAME4 is the
// first four characters of the name, uppercased and right-padded with 'X'.
// Inputs are assumed pre-validated; an empty name yields the segment "XXXX".
func GeneratePatientID(name, contactNumber string) string {
	year := time.Now().Year() % 100
	return fmt.Sprintf("%02d-%s-%s", year, lastN(contactNumber, 4), padUpper(firstN(name, 4), 4))
}

// GenerateDoctorID derives the doctor identifier:
// DOC-{YY}{last4OfRegNo}-{initials}, initials being the uppercase first
// letter of each whitespace-separated word, padded with 'X' to at least two.
func GenerateDoctorID(name, registrationNumber string) string {
	year := time.Now().Year() % 100
	var initials strings.Builder
	for _, word := range strings.Fields(name) {
		initials.WriteString(firstN(word, 1))
	}
	return fmt.Sprintf("DOC-%02d%s-%s", year, lastN(registrationNumber, 4), padUpper(initials.String(), 2))
}

// GenerateBillNumber produces BILL-{epochMillis}. Two submissions within the
// same millisecond would collide, so bills.bill_number carries a unique
// constraint and the second insert fails instead of duplicating.
func GenerateBillNumber() string {
	return fmt.Sprintf("BILL-%d", time.Now().UnixMilli())
}

func firstN(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}

func lastN(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[len(runes)-n:]
	}
	return string(runes)
}

func padUpper(s string, width int) string {
	s = strings.ToUpper(s)
	for len([]rune(s)) < width {
		s += "X"
	}
	return s
}
