package dto

type RegisterDoctorRequest struct {
	Username      string `json:"username" validate:"required"`
	Password      string `json:"password" validate:"required,min=6"`
	Age           int    `json:"age" validate:"required,gt=0"`
	AcademicTitle string `json:"academic_title" validate:"required,oneof=MD PhD Prof Docent"`
}

type DoctorResponse struct {
	ID            uint   `json:"id"`
	Username      string `json:"username"`
	AcademicTitle string `json:"academic_title"`
}
