package entity

import "strings"

// Role classifies an account into its specialization table.
type Role string

const (
	RoleUser    Role = "user"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// DoctorUsernameMarker is the username prefix that classifies a registration
// as a doctor account.
const DoctorUsernameMarker = "Dr."

// User is the shared account row behind both doctors and patients.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"column:password_hash;type:text;not null" json:"-"`
	Age          int    `gorm:"not null" json:"age"`
	IsActive     bool   `gorm:"not null;index" json:"is_active"`

	// Relationships
	DoctorProfile  *Doctor  `gorm:"foreignKey:UserID" json:"doctor_profile,omitempty"`
	PatientProfile *Patient `gorm:"foreignKey:UserID" json:"patient_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsDoctorUsername reports whether the username carries the doctor marker.
// Only registration classifies on it; everywhere else the role is explicit.
func IsDoctorUsername(username string) bool {
	return strings.HasPrefix(username, DoctorUsernameMarker)
}
