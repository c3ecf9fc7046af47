package dto

// RegisterRequest carries the shared registration fields. The username marker
// decides the specialization path; the matching extra field must be supplied
// by the caller (academic title for doctors, doctor ID for patients).
type RegisterRequest struct {
	Username      string `json:"username" validate:"required"`
	Password      string `json:"password" validate:"required,min=6"`
	Age           int    `json:"age" validate:"required,gt=0"`
	AcademicTitle string `json:"academic_title,omitempty"`
	DoctorID      uint   `json:"doctor_id,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
