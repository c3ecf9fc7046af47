package dto

type CreateHospitalStayRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Room      string `json:"room" validate:"required"`
	Injury    string `json:"injury" validate:"required,oneof=fracture burn concussion laceration sprain"`
	PatientID uint   `json:"patient_id" validate:"required"`
}

type HospitalStayResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
	Room      string `json:"room"`
	Injury    string `json:"injury"`
}

type PatientStayReportResponse struct {
	Username  string `json:"username"`
	Room      string `json:"room"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
}
