package usecase

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"go-hospital-records/internal/delivery/dto"
	"go-hospital-records/internal/domain/repository"
	"go-hospital-records/internal/identity"
	"go-hospital-records/pkg/apperr"
	"go-hospital-records/pkg/validator"
)

type PatientUsecase interface {
	// UpdateDoctor reassigns a patient to another existing doctor.
	UpdateDoctor(ctx context.Context, req *dto.UpdatePatientDoctorRequest) error
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	validate    *validator.CustomValidator
	cache       identity.Cache
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validate *validator.CustomValidator,
	cache identity.Cache,
	patientRepo repository.PatientRepository,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		validate:    validate,
		cache:       cache,
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) UpdateDoctor(ctx context.Context, req *dto.UpdatePatientDoctorRequest) error {
	if err := u.validate.Validate(req); err != nil {
		return err
	}
	if err := ensureExists(ctx, u.cache, identity.KindPatient, req.PatientID); err != nil {
		return err
	}
	if err := ensureExists(ctx, u.cache, identity.KindDoctor, req.DoctorID); err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.patientRepo.UpdateDoctor(tx, req.PatientID, req.DoctorID); err != nil {
		u.log.Warnf("Failed to update doctor of patient %d: %+v", req.PatientID, err)
		return apperr.Storage("update patient doctor", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return apperr.Storage("commit update patient doctor", err)
	}
	return nil
}
