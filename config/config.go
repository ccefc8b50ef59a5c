package config

// AppConfig holds the application configuration
type AppConfig struct {
	DBURL        string
	RedisAddress string
	BearerToken  string
	ListenAddr   string
}

// GetBearerToken returns the BearerToken from the config
func (c *AppConfig) GetBearerToken() string {
	return c.BearerToken
}

// Clinic letterhead used on printable bills and prescriptions.
const (
	ClinicName    = "ORTHONOVA POLYCLINIC"
	ClinicRegNo   = "SUN/00051/2024"
	ClinicAddress = "Near Tarini Mandir, Panposh Road, Civil Township, Rourkela"
	ClinicPhone   = "7681004245"
	ClinicEmail   = "info.orthonova@gmail.com"
)
