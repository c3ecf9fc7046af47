package dto

type CreateVisitationRequest struct {
	DoctorID  uint   `json:"doctor_id" validate:"required"`
	StartHour string `json:"start_hour" validate:"required,datetime=15:04"`
	// Nil means the slot is created free and bookable.
	PatientID *uint `json:"patient_id,omitempty"`
}

type AssignVisitationRequest struct {
	VisitationID uint `json:"visitation_id" validate:"required"`
	PatientID    uint `json:"patient_id" validate:"required"`
}

type VisitationResponse struct {
	ID        uint   `json:"id"`
	StartHour string `json:"start_hour"`
}
