package session

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"go-hospital-records/internal/domain/repository"
	"go-hospital-records/pkg/apperr"
)

// Tracker flips the persisted is_active flag. At most one user may be active
// across the whole store; the guard checks the flag, it is not a lock.
type Tracker struct {
	log      *logrus.Logger
	userRepo repository.UserRepository
}

func NewTracker(log *logrus.Logger, userRepo repository.UserRepository) *Tracker {
	return &Tracker{log: log, userRepo: userRepo}
}

// Activate marks the user as logged in. It fails with AlreadyLoggedInError if
// any user currently holds the active flag. Callers run it inside their own
// transaction so the guard and the flag update land together.
func (t *Tracker) Activate(db *gorm.DB, userID uint) error {
	active, err := t.userRepo.FindActive(db)
	if err != nil {
		t.log.Warnf("Failed to check active user: %+v", err)
		return apperr.Storage("check active user", err)
	}
	if active != nil {
		return apperr.AlreadyLoggedIn(active.ID)
	}

	if err := t.userRepo.SetActive(db, userID, true); err != nil {
		t.log.Warnf("Failed to activate user %d: %+v", userID, err)
		return apperr.Storage("activate user", err)
	}
	return nil
}

// Deactivate clears the user's active flag.
func (t *Tracker) Deactivate(db *gorm.DB, userID uint) error {
	if err := t.userRepo.SetActive(db, userID, false); err != nil {
		t.log.Warnf("Failed to deactivate user %d: %+v", userID, err)
		return apperr.Storage("deactivate user", err)
	}
	return nil
}

// DeactivateAll clears every active flag. Runs at startup, so a crash that
// skipped the shutdown reset can never strand a stale session, and again at
// shutdown.
func (t *Tracker) DeactivateAll(db *gorm.DB) error {
	cleared, err := t.userRepo.DeactivateAll(db)
	if err != nil {
		t.log.Warnf("Failed to reset active flags: %+v", err)
		return apperr.Storage("reset active flags", err)
	}
	if cleared > 0 {
		t.log.Infof("Reset %d active session(s)", cleared)
	}
	return nil
}
