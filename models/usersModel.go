package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User roles
const (
	RoleAdmin        = "admin"
	RoleReceptionist = "receptionist"
	RoleDoctor       = "doctor"
)

// Roles returns every recognized role.
func Roles() []string {
	return []string{RoleAdmin, RoleReceptionist, RoleDoctor}
}

// User represents a login account. UserID is the human-facing login
// identifier (e.g. "RECEPTION", "DOC001"), distinct from the numeric key.
type User struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID     string    `gorm:"size:100;not null;unique;index;column:user_id" json:"user_id"`
	Password   string    `gorm:"size:255;not null;column:password" json:"-"`
	Email      string    `gorm:"size:255;column:email" json:"email"`
	Role       string    `gorm:"size:50;check:role IN ('admin', 'receptionist', 'doctor');not null;index;column:role" json:"role"`
	Department string    `gorm:"size:100;not null;column:department" json:"department"`
	CreatedAt  time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// EnsureSingleReceptionistIndex installs a partial unique index so the
// single-receptionist rule holds at the database rather than as a
// read-then-write check in application code.
func EnsureSingleReceptionistIndex(db *gorm.DB) error {
	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_single_receptionist
		 ON users (role) WHERE role = 'receptionist'`,
	).Error
}

// SeedAdminUser inserts the bootstrap admin account if no admin exists.
func SeedAdminUser(db *gorm.DB, userID, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := User{
		UserID:     userID,
		Password:   string(hashed),
		Role:       RoleAdmin,
		Department: "Administration",
	}
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.FirstOrCreate(&admin, User{Role: RoleAdmin}).Error
	})
}
