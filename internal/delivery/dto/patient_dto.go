package dto

type RegisterPatientRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Age      int    `json:"age" validate:"required,gt=0"`
	DoctorID uint   `json:"doctor_id" validate:"required"`
}

type UpdatePatientDoctorRequest struct {
	PatientID uint `json:"patient_id" validate:"required"`
	DoctorID  uint `json:"doctor_id" validate:"required"`
}

type PatientResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Age      int    `json:"age"`
}
