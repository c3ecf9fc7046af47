package usecase

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"go-hospital-records/internal/converter"
	"go-hospital-records/internal/delivery/dto"
	"go-hospital-records/internal/domain/entity"
	"go-hospital-records/internal/domain/repository"
	"go-hospital-records/internal/identity"
	"go-hospital-records/pkg/apperr"
	"go-hospital-records/pkg/validator"
)

type HospitalStayUsecase interface {
	Create(ctx context.Context, req *dto.CreateHospitalStayRequest) (uint, error)
	ListByPatient(ctx context.Context, patientID uint) (*dto.ReportTable, error)
}

type hospitalStayUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	validate *validator.CustomValidator
	cache    identity.Cache
	stayRepo repository.HospitalStayRepository
}

func NewHospitalStayUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validate *validator.CustomValidator,
	cache identity.Cache,
	stayRepo repository.HospitalStayRepository,
) HospitalStayUsecase {
	return &hospitalStayUsecase{
		db:       db,
		log:      log,
		validate: validate,
		cache:    cache,
		stayRepo: stayRepo,
	}
}

// Create admits a patient. An omitted end date records an open-ended stay.
func (u *hospitalStayUsecase) Create(ctx context.Context, req *dto.CreateHospitalStayRequest) (uint, error) {
	if err := u.validate.Validate(req); err != nil {
		return 0, err
	}
	if err := ensureExists(ctx, u.cache, identity.KindPatient, req.PatientID); err != nil {
		return 0, err
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return 0, apperr.Validation("StartDate", "must match format "+dateLayout)
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return 0, apperr.Validation("EndDate", "must match format "+dateLayout)
	}

	stay := &entity.HospitalStay{
		StartDate: startDate,
		EndDate:   endDate,
		Room:      req.Room,
		Injury:    req.Injury,
		PatientID: req.PatientID,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.stayRepo.Create(tx, stay); err != nil {
		u.log.Warnf("Failed to create hospital stay: %+v", err)
		return 0, apperr.Storage("create hospital stay", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return 0, apperr.Storage("commit create hospital stay", err)
	}

	if err := u.cache.Record(ctx, identity.KindHospitalStay, stay.ID); err != nil {
		return 0, apperr.Storage("record hospital stay id", err)
	}

	return stay.ID, nil
}

func (u *hospitalStayUsecase) ListByPatient(ctx context.Context, patientID uint) (*dto.ReportTable, error) {
	if err := ensureExists(ctx, u.cache, identity.KindPatient, patientID); err != nil {
		return nil, err
	}

	stays, err := u.stayRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list stays of patient %d: %+v", patientID, err)
		return nil, apperr.Storage("list hospital stays", err)
	}
	return converter.HospitalStaysToReportTable(stays), nil
}
