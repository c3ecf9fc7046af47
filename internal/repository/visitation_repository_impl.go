package repository

import (
	"errors"

	"gorm.io/gorm"

	"go-hospital-records/internal/domain/entity"
	domainRepo "go-hospital-records/internal/domain/repository"
)

type visitationRepository struct{}

func NewVisitationRepository() domainRepo.VisitationRepository {
	return &visitationRepository{}
}

func (r *visitationRepository) Create(db *gorm.DB, visitation *entity.Visitation) error {
	return db.Create(visitation).Error
}

func (r *visitationRepository) FindByID(db *gorm.DB, id uint) (*entity.Visitation, error) {
	var visitation entity.Visitation
	err := db.Where("id = ?", id).First(&visitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &visitation, nil
}

func (r *visitationRepository) FindFreeByDoctorID(db *gorm.DB, doctorID uint) ([]entity.Visitation, error) {
	var visitations []entity.Visitation
	err := db.Where("doctor_id = ? AND patient_id IS NULL", doctorID).Order("start_hour ASC, id ASC").Find(&visitations).Error
	if err != nil {
		return nil, err
	}
	return visitations, nil
}

func (r *visitationRepository) UpdatePatient(db *gorm.DB, visitationID, patientID uint) error {
	return db.Model(&entity.Visitation{}).Where("id = ?", visitationID).Update("patient_id", patientID).Error
}

// DeleteFreeByDoctorID removes every unbooked slot of the doctor. Booked
// slots are untouched.
func (r *visitationRepository) DeleteFreeByDoctorID(db *gorm.DB, doctorID uint) (int64, error) {
	result := db.Where("doctor_id = ? AND patient_id IS NULL", doctorID).Delete(&entity.Visitation{})
	return result.RowsAffected, result.Error
}
