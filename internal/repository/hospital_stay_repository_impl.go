package repository

import (
	"gorm.io/gorm"

	"go-hospital-records/internal/domain/entity"
	domainRepo "go-hospital-records/internal/domain/repository"
)

type hospitalStayRepository struct{}

func NewHospitalStayRepository() domainRepo.HospitalStayRepository {
	return &hospitalStayRepository{}
}

func (r *hospitalStayRepository) Create(db *gorm.DB, stay *entity.HospitalStay) error {
	return db.Create(stay).Error
}

func (r *hospitalStayRepository) FindByPatientID(db *gorm.DB, patientID uint) ([]entity.HospitalStay, error) {
	var stays []entity.HospitalStay
	err := db.Where("patient_id = ?", patientID).Order("start_date ASC, id ASC").Find(&stays).Error
	if err != nil {
		return nil, err
	}
	return stays, nil
}

func (r *hospitalStayRepository) RoomsAndDurations(db *gorm.DB, doctorID uint) ([]entity.PatientStayReport, error) {
	var rows []entity.PatientStayReport
	err := db.Table("hospital_stays").
		Select("users.username, hospital_stays.room, hospital_stays.start_date, hospital_stays.end_date").
		Joins("JOIN patients ON patients.user_id = hospital_stays.patient_id").
		Joins("JOIN users ON users.id = patients.user_id").
		Where("patients.doctor_id = ?", doctorID).
		Order("hospital_stays.start_date ASC, hospital_stays.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
