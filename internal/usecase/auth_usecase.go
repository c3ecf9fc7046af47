package usecase

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"go-hospital-records/internal/delivery/dto"
	"go-hospital-records/internal/domain/entity"
	"go-hospital-records/internal/domain/repository"
	"go-hospital-records/internal/identity"
	"go-hospital-records/internal/session"
	"go-hospital-records/pkg/apperr"
	"go-hospital-records/pkg/password"
	"go-hospital-records/pkg/validator"
)

type AuthUsecase interface {
	// Register classifies the username by the doctor marker, creates the
	// matching specialization and opens a session for the new account.
	Register(ctx context.Context, req *dto.RegisterRequest) (*session.Session, error)
	RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (uint, error)
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (uint, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*session.Session, error)
	Logout(ctx context.Context, userID uint) error
}

type authUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	validate    *validator.CustomValidator
	cache       identity.Cache
	tracker     *session.Tracker
	userRepo    repository.UserRepository
	doctorRepo  repository.DoctorRepository
	patientRepo repository.PatientRepository
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validate *validator.CustomValidator,
	cache identity.Cache,
	tracker *session.Tracker,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
) AuthUsecase {
	return &authUsecase{
		db:          db,
		log:         log,
		validate:    validate,
		cache:       cache,
		tracker:     tracker,
		userRepo:    userRepo,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*session.Session, error) {
	if err := u.validate.Validate(req); err != nil {
		return nil, err
	}

	var account session.Account
	if entity.IsDoctorUsername(req.Username) {
		id, err := u.RegisterDoctor(ctx, &dto.RegisterDoctorRequest{
			Username:      req.Username,
			Password:      req.Password,
			Age:           req.Age,
			AcademicTitle: req.AcademicTitle,
		})
		if err != nil {
			return nil, err
		}
		account = &session.DoctorAccount{ID: id, Name: req.Username, Age: req.Age, AcademicTitle: req.AcademicTitle}
	} else {
		id, err := u.RegisterPatient(ctx, &dto.RegisterPatientRequest{
			Username: req.Username,
			Password: req.Password,
			Age:      req.Age,
			DoctorID: req.DoctorID,
		})
		if err != nil {
			return nil, err
		}
		account = &session.PatientAccount{ID: id, Name: req.Username, Age: req.Age, DoctorID: req.DoctorID}
	}

	if err := u.activate(ctx, account.UserID()); err != nil {
		return nil, err
	}
	return session.NewSession(account), nil
}

// RegisterDoctor creates the user row and the doctor row in one transaction.
// An invalid academic title fails before either row is written.
func (u *authUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (uint, error) {
	if err := u.validate.Validate(req); err != nil {
		return 0, err
	}

	hashed, err := password.Encode(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return 0, apperr.Storage("hash password", err)
	}

	user := &entity.User{
		Username:     req.Username,
		PasswordHash: hashed,
		Age:          req.Age,
		IsActive:     false,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return 0, apperr.Duplicate("username", req.Username)
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return 0, apperr.Storage("create user", err)
	}

	doctor := &entity.Doctor{
		UserID:        user.ID,
		AcademicTitle: req.AcademicTitle,
	}

	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return 0, apperr.Storage("create doctor", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return 0, apperr.Storage("commit register doctor", err)
	}

	if err := u.cache.Record(ctx, identity.KindUser, user.ID); err != nil {
		return 0, apperr.Storage("record user id", err)
	}
	if err := u.cache.Record(ctx, identity.KindDoctor, user.ID); err != nil {
		return 0, apperr.Storage("record doctor id", err)
	}

	return user.ID, nil
}

// RegisterPatient creates the user row and the patient row in one
// transaction. The assigned doctor must already exist.
func (u *authUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (uint, error) {
	if err := u.validate.Validate(req); err != nil {
		return 0, err
	}
	if err := ensureExists(ctx, u.cache, identity.KindDoctor, req.DoctorID); err != nil {
		return 0, err
	}

	hashed, err := password.Encode(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return 0, apperr.Storage("hash password", err)
	}

	user := &entity.User{
		Username:     req.Username,
		PasswordHash: hashed,
		Age:          req.Age,
		IsActive:     false,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return 0, apperr.Duplicate("username", req.Username)
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return 0, apperr.Storage("create user", err)
	}

	patient := &entity.Patient{
		UserID:   user.ID,
		DoctorID: req.DoctorID,
	}

	if err := u.patientRepo.Create(tx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return 0, apperr.Storage("create patient", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return 0, apperr.Storage("commit register patient", err)
	}

	if err := u.cache.Record(ctx, identity.KindUser, user.ID); err != nil {
		return 0, apperr.Storage("record user id", err)
	}
	if err := u.cache.Record(ctx, identity.KindPatient, user.ID); err != nil {
		return 0, apperr.Storage("record patient id", err)
	}

	return user.ID, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*session.Session, error) {
	if err := u.validate.Validate(req); err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	user, err := u.userRepo.FindByUsername(db, req.Username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, apperr.Storage("find user by username", err)
	}
	if user == nil {
		return nil, apperr.NotFoundByName(string(identity.KindUser), req.Username)
	}

	if !password.Verify(req.Password, user.PasswordHash) {
		return nil, apperr.Auth("wrong password for this username")
	}

	account, err := u.buildAccount(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := u.activate(ctx, user.ID); err != nil {
		return nil, err
	}

	return session.NewSession(account), nil
}

func (u *authUsecase) Logout(ctx context.Context, userID uint) error {
	if err := ensureExists(ctx, u.cache, identity.KindUser, userID); err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.tracker.Deactivate(tx, userID); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return apperr.Storage("commit logout", err)
	}
	return nil
}

// activate flips the persisted flag inside its own transaction so the single
// session guard and the update land together.
func (u *authUsecase) activate(ctx context.Context, userID uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.tracker.Activate(tx, userID); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return apperr.Storage("commit activate", err)
	}
	return nil
}

// buildAccount types the user by its specialization table membership. The
// username string never decides the role here.
func (u *authUsecase) buildAccount(ctx context.Context, user *entity.User) (session.Account, error) {
	db := u.db.WithContext(ctx)

	isDoctor, err := u.cache.Contains(ctx, identity.KindDoctor, user.ID)
	if err != nil {
		return nil, apperr.Storage("identity cache lookup", err)
	}
	if isDoctor {
		doctor, err := u.doctorRepo.FindByUserID(db, user.ID)
		if err != nil {
			u.log.Warnf("Failed to load doctor %d: %+v", user.ID, err)
			return nil, apperr.Storage("load doctor", err)
		}
		if doctor == nil {
			return nil, apperr.NotFound(string(identity.KindDoctor), user.ID)
		}
		return &session.DoctorAccount{
			ID:            user.ID,
			Name:          user.Username,
			Age:           user.Age,
			AcademicTitle: doctor.AcademicTitle,
		}, nil
	}

	isPatient, err := u.cache.Contains(ctx, identity.KindPatient, user.ID)
	if err != nil {
		return nil, apperr.Storage("identity cache lookup", err)
	}
	if isPatient {
		patient, err := u.patientRepo.FindByUserID(db, user.ID)
		if err != nil {
			u.log.Warnf("Failed to load patient %d: %+v", user.ID, err)
			return nil, apperr.Storage("load patient", err)
		}
		if patient == nil {
			return nil, apperr.NotFound(string(identity.KindPatient), user.ID)
		}
		return &session.PatientAccount{
			ID:       user.ID,
			Name:     user.Username,
			Age:      user.Age,
			DoctorID: patient.DoctorID,
		}, nil
	}

	return &session.UserAccount{ID: user.ID, Name: user.Username, Age: user.Age}, nil
}
