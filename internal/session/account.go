package session

import (
	"github.com/google/uuid"

	"go-hospital-records/internal/domain/entity"
)

// Account is the typed result of a successful login or registration. The
// concrete type depends on which specialization table the user belongs to.
type Account interface {
	UserID() uint
	Username() string
	Role() entity.Role
}

// Session pairs a live account with a process-local handle.
type Session struct {
	ID      uuid.UUID
	Account Account
}

func NewSession(account Account) *Session {
	return &Session{ID: uuid.New(), Account: account}
}

type DoctorAccount struct {
	ID            uint
	Name          string
	Age           int
	AcademicTitle string
}

func (a *DoctorAccount) UserID() uint      { return a.ID }
func (a *DoctorAccount) Username() string  { return a.Name }
func (a *DoctorAccount) Role() entity.Role { return entity.RoleDoctor }

type PatientAccount struct {
	ID       uint
	Name     string
	Age      int
	DoctorID uint
}

func (a *PatientAccount) UserID() uint      { return a.ID }
func (a *PatientAccount) Username() string  { return a.Name }
func (a *PatientAccount) Role() entity.Role { return entity.RolePatient }

// UserAccount covers accounts created directly, without a specialization row.
type UserAccount struct {
	ID   uint
	Name string
	Age  int
}

func (a *UserAccount) UserID() uint      { return a.ID }
func (a *UserAccount) Username() string  { return a.Name }
func (a *UserAccount) Role() entity.Role { return entity.RoleUser }
