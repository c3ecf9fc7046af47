package entity

// Visitation is one appointment slot owned by a doctor. A nil PatientID means
// the slot is free and bookable.
type Visitation struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  uint   `gorm:"not null;index" json:"doctor_id"`
	PatientID *uint  `gorm:"index" json:"patient_id,omitempty"`
	StartHour string `gorm:"type:time;not null" json:"start_hour"`

	// Relationships
	Doctor  Doctor   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Visitation) TableName() string {
	return "visitations"
}

// IsFree reports whether the slot is unbooked.
func (v *Visitation) IsFree() bool {
	return v.PatientID == nil
}
