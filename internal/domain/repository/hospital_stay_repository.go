package repository

import (
	"gorm.io/gorm"

	"go-hospital-records/internal/domain/entity"
)

type HospitalStayRepository interface {
	Create(db *gorm.DB, stay *entity.HospitalStay) error
	FindByPatientID(db *gorm.DB, patientID uint) ([]entity.HospitalStay, error)
	// RoomsAndDurations reports room and stay duration for every hospital
	// stay of the doctor's patients.
	RoomsAndDurations(db *gorm.DB, doctorID uint) ([]entity.PatientStayReport, error)
}
