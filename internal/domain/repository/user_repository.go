package repository

import (
	"gorm.io/gorm"

	"go-hospital-records/internal/domain/entity"
)

// Repositories take the database handle as first argument so usecases can
// pass an open transaction.
type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id uint) (*entity.User, error)
	FindByUsername(db *gorm.DB, username string) (*entity.User, error)
	FindActive(db *gorm.DB) (*entity.User, error)
	UpdateUsername(db *gorm.DB, id uint, username string) error
	UpdateAge(db *gorm.DB, id uint, age int) error
	SetActive(db *gorm.DB, id uint, active bool) error
	DeactivateAll(db *gorm.DB) (int64, error)
}
