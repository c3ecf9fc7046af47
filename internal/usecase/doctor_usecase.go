package usecase

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"go-hospital-records/internal/converter"
	"go-hospital-records/internal/delivery/dto"
	"go-hospital-records/internal/domain/repository"
	"go-hospital-records/internal/identity"
	"go-hospital-records/pkg/apperr"
)

type DoctorUsecase interface {
	ListAll(ctx context.Context) (*dto.ReportTable, error)
	AcademicTitle(ctx context.Context, doctorID uint) (string, error)
	PatientsByDoctor(ctx context.Context, doctorID uint) (*dto.ReportTable, error)
	RoomsAndDurations(ctx context.Context, doctorID uint) (*dto.ReportTable, error)
}

type doctorUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	cache       identity.Cache
	doctorRepo  repository.DoctorRepository
	patientRepo repository.PatientRepository
	stayRepo    repository.HospitalStayRepository
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cache identity.Cache,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	stayRepo repository.HospitalStayRepository,
) DoctorUsecase {
	return &doctorUsecase{
		db:          db,
		log:         log,
		cache:       cache,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
		stayRepo:    stayRepo,
	}
}

func (u *doctorUsecase) ListAll(ctx context.Context) (*dto.ReportTable, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, apperr.Storage("list doctors", err)
	}
	return converter.DoctorsToReportTable(doctors), nil
}

func (u *doctorUsecase) AcademicTitle(ctx context.Context, doctorID uint) (string, error) {
	if err := ensureExists(ctx, u.cache, identity.KindDoctor, doctorID); err != nil {
		return "", err
	}

	title, err := u.doctorRepo.AcademicTitle(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to load academic title of doctor %d: %+v", doctorID, err)
		return "", apperr.Storage("load academic title", err)
	}
	return title, nil
}

func (u *doctorUsecase) PatientsByDoctor(ctx context.Context, doctorID uint) (*dto.ReportTable, error) {
	if err := ensureExists(ctx, u.cache, identity.KindDoctor, doctorID); err != nil {
		return nil, err
	}

	patients, err := u.patientRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list patients of doctor %d: %+v", doctorID, err)
		return nil, apperr.Storage("list patients of doctor", err)
	}
	return converter.PatientsToReportTable(patients), nil
}

func (u *doctorUsecase) RoomsAndDurations(ctx context.Context, doctorID uint) (*dto.ReportTable, error) {
	if err := ensureExists(ctx, u.cache, identity.KindDoctor, doctorID); err != nil {
		return nil, err
	}

	reports, err := u.stayRepo.RoomsAndDurations(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to report stays of doctor %d patients: %+v", doctorID, err)
		return nil, apperr.Storage("report rooms and durations", err)
	}
	return converter.StayReportsToReportTable(reports), nil
}
