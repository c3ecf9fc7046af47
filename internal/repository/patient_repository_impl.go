package repository

import (
	"errors"

	"gorm.io/gorm"

	"go-hospital-records/internal/domain/entity"
	domainRepo "go-hospital-records/internal/domain/repository"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindByUserID(db *gorm.DB, userID uint) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("user_id = ?", userID).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByDoctorID(db *gorm.DB, doctorID uint) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Preload("User").Where("doctor_id = ?", doctorID).Order("user_id ASC").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) UpdateDoctor(db *gorm.DB, patientID, doctorID uint) error {
	return db.Model(&entity.Patient{}).Where("user_id = ?", patientID).Update("doctor_id", doctorID).Error
}
