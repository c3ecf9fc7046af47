package usecase

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"go-hospital-records/internal/delivery/dto"
	"go-hospital-records/internal/domain/entity"
	"go-hospital-records/internal/domain/repository"
	"go-hospital-records/internal/identity"
	"go-hospital-records/pkg/apperr"
	"go-hospital-records/pkg/password"
	"go-hospital-records/pkg/validator"
)

type UserUsecase interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (uint, error)
	UpdateUsername(ctx context.Context, req *dto.UpdateUsernameRequest) error
	UpdateAge(ctx context.Context, req *dto.UpdateAgeRequest) error
}

type userUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	validate *validator.CustomValidator
	cache    identity.Cache
	userRepo repository.UserRepository
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validate *validator.CustomValidator,
	cache identity.Cache,
	userRepo repository.UserRepository,
) UserUsecase {
	return &userUsecase{
		db:       db,
		log:      log,
		validate: validate,
		cache:    cache,
		userRepo: userRepo,
	}
}

// Create inserts a bare user row. The account starts inactive; login flips
// the flag.
func (u *userUsecase) Create(ctx context.Context, req *dto.CreateUserRequest) (uint, error) {
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

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return 0, apperr.Storage("commit create user", err)
	}

	if err := u.cache.Record(ctx, identity.KindUser, user.ID); err != nil {
		return 0, apperr.Storage("record user id", err)
	}

	return user.ID, nil
}

func (u *userUsecase) UpdateUsername(ctx context.Context, req *dto.UpdateUsernameRequest) error {
	if err := u.validate.Validate(req); err != nil {
		return err
	}
	if err := ensureExists(ctx, u.cache, identity.KindUser, req.UserID); err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.userRepo.UpdateUsername(tx, req.UserID, req.Username); err != nil {
		if isDuplicateKeyError(err, "username") {
			return apperr.Duplicate("username", req.Username)
		}
		u.log.Warnf("Failed to update username: %+v", err)
		return apperr.Storage("update username", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return apperr.Storage("commit update username", err)
	}
	return nil
}

func (u *userUsecase) UpdateAge(ctx context.Context, req *dto.UpdateAgeRequest) error {
	if err := u.validate.Validate(req); err != nil {
		return err
	}
	if err := ensureExists(ctx, u.cache, identity.KindUser, req.UserID); err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.userRepo.UpdateAge(tx, req.UserID, req.Age); err != nil {
		u.log.Warnf("Failed to update age: %+v", err)
		return apperr.Storage("update age", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return apperr.Storage("commit update age", err)
	}
	return nil
}
