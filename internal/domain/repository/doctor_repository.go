package repository

import (
	"gorm.io/gorm"

	"go-hospital-records/internal/domain/entity"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByUserID(db *gorm.DB, userID uint) (*entity.Doctor, error)
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	AcademicTitle(db *gorm.DB, userID uint) (string, error)
}
