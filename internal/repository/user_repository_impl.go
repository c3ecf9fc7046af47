package repository

import (
	"errors"

	"gorm.io/gorm"

	"go-hospital-records/internal/domain/entity"
	domainRepo "go-hospital-records/internal/domain/repository"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *entity.User) error {
	return db.Create(user).Error
}

func (r *userRepository) FindByID(db *gorm.DB, id uint) (*entity.User, error) {
	var user entity.User
	err := db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(db *gorm.DB, username string) (*entity.User, error) {
	var user entity.User
	err := db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindActive returns the currently logged in user, or nil if nobody is.
func (r *userRepository) FindActive(db *gorm.DB) (*entity.User, error) {
	var user entity.User
	err := db.Where("is_active = ?", true).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUsername(db *gorm.DB, id uint, username string) error {
	return db.Model(&entity.User{}).Where("id = ?", id).Update("username", username).Error
}

func (r *userRepository) UpdateAge(db *gorm.DB, id uint, age int) error {
	return db.Model(&entity.User{}).Where("id = ?", id).Update("age", age).Error
}

func (r *userRepository) SetActive(db *gorm.DB, id uint, active bool) error {
	return db.Model(&entity.User{}).Where("id = ?", id).Update("is_active", active).Error
}

func (r *userRepository) DeactivateAll(db *gorm.DB) (int64, error) {
	result := db.Model(&entity.User{}).Where("is_active = ?", true).Update("is_active", false)
	return result.RowsAffected, result.Error
}
