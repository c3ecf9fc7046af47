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

type VisitationUsecase interface {
	Create(ctx context.Context, req *dto.CreateVisitationRequest) (uint, error)
	AssignPatient(ctx context.Context, req *dto.AssignVisitationRequest) error
	FreeByDoctor(ctx context.Context, doctorID uint) (*dto.ReportTable, error)
	// PurgeFree deletes every unbooked slot of the doctor and returns how
	// many were removed.
	PurgeFree(ctx context.Context, doctorID uint) (int64, error)
}

type visitationUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	validate       *validator.CustomValidator
	cache          identity.Cache
	visitationRepo repository.VisitationRepository
}

func NewVisitationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validate *validator.CustomValidator,
	cache identity.Cache,
	visitationRepo repository.VisitationRepository,
) VisitationUsecase {
	return &visitationUsecase{
		db:             db,
		log:            log,
		validate:       validate,
		cache:          cache,
		visitationRepo: visitationRepo,
	}
}

func (u *visitationUsecase) Create(ctx context.Context, req *dto.CreateVisitationRequest) (uint, error) {
	if err := u.validate.Validate(req); err != nil {
		return 0, err
	}
	if err := ensureExists(ctx, u.cache, identity.KindDoctor, req.DoctorID); err != nil {
		return 0, err
	}
	if req.PatientID != nil {
		if err := ensureExists(ctx, u.cache, identity.KindPatient, *req.PatientID); err != nil {
			return 0, err
		}
	}

	visitation := &entity.Visitation{
		DoctorID:  req.DoctorID,
		PatientID: req.PatientID,
		StartHour: req.StartHour,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.visitationRepo.Create(tx, visitation); err != nil {
		u.log.Warnf("Failed to create visitation: %+v", err)
		return 0, apperr.Storage("create visitation", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return 0, apperr.Storage("commit create visitation", err)
	}

	if err := u.cache.Record(ctx, identity.KindVisitation, visitation.ID); err != nil {
		return 0, apperr.Storage("record visitation id", err)
	}

	return visitation.ID, nil
}

// AssignPatient books an existing slot for an existing patient.
func (u *visitationUsecase) AssignPatient(ctx context.Context, req *dto.AssignVisitationRequest) error {
	if err := u.validate.Validate(req); err != nil {
		return err
	}
	if err := ensureExists(ctx, u.cache, identity.KindVisitation, req.VisitationID); err != nil {
		return err
	}
	if err := ensureExists(ctx, u.cache, identity.KindPatient, req.PatientID); err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.visitationRepo.UpdatePatient(tx, req.VisitationID, req.PatientID); err != nil {
		u.log.Warnf("Failed to assign visitation %d: %+v", req.VisitationID, err)
		return apperr.Storage("assign visitation", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return apperr.Storage("commit assign visitation", err)
	}
	return nil
}

func (u *visitationUsecase) FreeByDoctor(ctx context.Context, doctorID uint) (*dto.ReportTable, error) {
	if err := ensureExists(ctx, u.cache, identity.KindDoctor, doctorID); err != nil {
		return nil, err
	}

	visitations, err := u.visitationRepo.FindFreeByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list free visitations of doctor %d: %+v", doctorID, err)
		return nil, apperr.Storage("list free visitations", err)
	}
	return converter.VisitationsToReportTable(visitations), nil
}

func (u *visitationUsecase) PurgeFree(ctx context.Context, doctorID uint) (int64, error) {
	if err := ensureExists(ctx, u.cache, identity.KindDoctor, doctorID); err != nil {
		return 0, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	deleted, err := u.visitationRepo.DeleteFreeByDoctorID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to purge free visitations of doctor %d: %+v", doctorID, err)
		return 0, apperr.Storage("purge free visitations", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return 0, apperr.Storage("commit purge free visitations", err)
	}

	return deleted, nil
}
