package repository

import (
	"gorm.io/gorm"

	"go-hospital-records/internal/domain/entity"
)

type VisitationRepository interface {
	Create(db *gorm.DB, visitation *entity.Visitation) error
	FindByID(db *gorm.DB, id uint) (*entity.Visitation, error)
	FindFreeByDoctorID(db *gorm.DB, doctorID uint) ([]entity.Visitation, error)
	UpdatePatient(db *gorm.DB, visitationID, patientID uint) error
	DeleteFreeByDoctorID(db *gorm.DB, doctorID uint) (int64, error)
}
