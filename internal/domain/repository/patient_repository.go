package repository

import (
	"gorm.io/gorm"

	"go-hospital-records/internal/domain/entity"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByUserID(db *gorm.DB, userID uint) (*entity.Patient, error)
	FindByDoctorID(db *gorm.DB, doctorID uint) ([]entity.Patient, error)
	UpdateDoctor(db *gorm.DB, patientID, doctorID uint) error
}
