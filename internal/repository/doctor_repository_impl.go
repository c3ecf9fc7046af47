package repository

import (
	"errors"

	"gorm.io/gorm"

	"go-hospital-records/internal/domain/entity"
	domainRepo "go-hospital-records/internal/domain/repository"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindByUserID(db *gorm.DB, userID uint) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("user_id = ?", userID).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Preload("User").Order("user_id ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) AcademicTitle(db *gorm.DB, userID uint) (string, error) {
	var title string
	err := db.Model(&entity.Doctor{}).Select("academic_title").Where("user_id = ?", userID).Take(&title).Error
	if err != nil {
		return "", err
	}
	return title, nil
}
