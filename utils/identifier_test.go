package utils

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func currentYY() string {
	return fmt.Sprintf("%02d", time.Now().Year()%100)
}

func TestGeneratePatientID(t *testing.T) {
	yy := currentYY()

	t.Run("short name is padded with X", func(t *testing.T) {
		id := GeneratePatientID("Al", "9876543210")
		assert.Equal(t, yy+"-3210-ALXX", id)
	})

	t.Run("long name is truncated to four characters", func(t *testing.T) {
		id := GeneratePatientID("Jonathan", "9876543210")
		assert.Equal(t, yy+"-3210-JONA", id)
	})

	t.Run("name is uppercased", func(t *testing.T) {
		id := GeneratePatientID("john doe", "0123456789")
		assert.Equal(t, yy+"-6789-JOHN", id)
	})

	t.Run("empty name yields XXXX segment", func(t *testing.T) {
		id := GeneratePatientID("", "9876543210")
		assert.Equal(t, yy+"-3210-XXXX", id)
	})

	t.Run("matches the documented shape", func(t *testing.T) {
		id := GeneratePatientID("Maya", "9998887776")
		assert.Regexp(t, regexp.MustCompile(`^\d{2}-\d{4}-[A-Z0-9X]{4}$`), id)
	})
}

func TestGenerateDoctorID(t *testing.T) {
	yy := currentYY()

	t.Run("initials from each word", func(t *testing.T) {
		id := GenerateDoctorID("John Doe", "REG123456")
		assert.Equal(t, "DOC-"+yy+"3456-JD", id)
	})

	t.Run("single word name padded to two initials", func(t *testing.T) {
		id := GenerateDoctorID("Madonna", "REG000042")
		assert.Equal(t, "DOC-"+yy+"0042-MX", id)
	})

	t.Run("three word name keeps all initials", func(t *testing.T) {
		id := GenerateDoctorID("Anita Rao Kumar", "LIC987654")
		assert.Equal(t, "DOC-"+yy+"7654-ARK", id)
	})
}

func TestGenerateBillNumber(t *testing.T) {
	n := GenerateBillNumber()
	assert.Regexp(t, regexp.MustCompile(`^BILL-\d{13}$`), n)
}
