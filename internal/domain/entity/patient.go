package entity

// Patient is the patient specialization of a user, one-to-one on the user ID.
// Every patient is assigned to an existing doctor.
type Patient struct {
	UserID   uint `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	DoctorID uint `gorm:"not null;index" json:"doctor_id"`

	// Relationships
	User   User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Doctor Doctor         `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Stays  []HospitalStay `gorm:"foreignKey:PatientID" json:"stays,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
