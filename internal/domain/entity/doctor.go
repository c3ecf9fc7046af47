package entity

// Academic title constants
const (
	TitleMD     = "MD"
	TitlePhD    = "PhD"
	TitleProf   = "Prof"
	TitleDocent = "Docent"
)

// AcademicTitles is the closed set accepted for a doctor record.
var AcademicTitles = []string{TitleMD, TitlePhD, TitleProf, TitleDocent}

// Doctor is the doctor specialization of a user, one-to-one on the user ID.
type Doctor struct {
	UserID        uint   `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	AcademicTitle string `gorm:"type:varchar(50);not null" json:"academic_title"`

	// Relationships
	User        User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Patients    []Patient    `gorm:"foreignKey:DoctorID" json:"patients,omitempty"`
	Visitations []Visitation `gorm:"foreignKey:DoctorID" json:"visitations,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
