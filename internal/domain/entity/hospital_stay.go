package entity

import "time"

// Injury constants
const (
	InjuryFracture   = "fracture"
	InjuryBurn       = "burn"
	InjuryConcussion = "concussion"
	InjuryLaceration = "laceration"
	InjurySprain     = "sprain"
)

// Injuries is the closed set accepted for a hospital stay record.
var Injuries = []string{InjuryFracture, InjuryBurn, InjuryConcussion, InjuryLaceration, InjurySprain}

// HospitalStay is one admission of a patient. A nil EndDate means the stay is
// still open.
type HospitalStay struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	StartDate time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate   *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	Room      string     `gorm:"type:varchar(50);not null" json:"room"`
	Injury    string     `gorm:"type:varchar(50);not null" json:"injury"`
	PatientID uint       `gorm:"not null;index" json:"patient_id"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (HospitalStay) TableName() string {
	return "hospital_stays"
}

// PatientStayReport is one row of the rooms-and-durations report for the
// patients of a doctor.
type PatientStayReport struct {
	Username  string     `json:"username"`
	Room      string     `json:"room"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}
