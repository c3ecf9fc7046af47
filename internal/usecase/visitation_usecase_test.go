package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-hospital-records/internal/delivery/dto"
	"go-hospital-records/internal/identity"
	"go-hospital-records/internal/repository"
	"go-hospital-records/pkg/apperr"
)

func newVisitationUsecase(t *testing.T) (sqlmock.Sqlmock, identity.Cache, VisitationUsecase) {
	t.Helper()
	mock, db := newMockDB(t)
	cache := identity.NewMemoryCache()

	uc := NewVisitationUsecase(
		db, quietLogger(), newTestValidator(), cache,
		repository.NewVisitationRepository(),
	)
	return mock, cache, uc
}

func TestCreateFreeSlot(t *testing.T) {
	mock, cache, uc := newVisitationUsecase(t)
	seedCache(t, cache, identity.KindDoctor, 1)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "visitations"`).
		WithArgs(1, nil, "10:00").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	id, err := uc.Create(context.Background(), &dto.CreateVisitationRequest{
		DoctorID:  1,
		StartHour: "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)

	ok, _ := cache.Contains(context.Background(), identity.KindVisitation, 7)
	assert.True(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSlotRejectsBadHourFormat(t *testing.T) {
	mock, cache, uc := newVisitationUsecase(t)
	seedCache(t, cache, identity.KindDoctor, 1)

	_, err := uc.Create(context.Background(), &dto.CreateVisitationRequest{
		DoctorID:  1,
		StartHour: "ten o'clock",
	})
	require.Error(t, err)

	var vErr *apperr.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "StartHour", vErr.Field)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookedSlotValidatesPatient(t *testing.T) {
	mock, cache, uc := newVisitationUsecase(t)
	seedCache(t, cache, identity.KindDoctor, 1)

	patientID := uint(9)
	_, err := uc.Create(context.Background(), &dto.CreateVisitationRequest{
		DoctorID:  1,
		StartHour: "10:00",
		PatientID: &patientID,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	var nfErr *apperr.NotFoundError
	require.True(t, errors.As(err, &nfErr))
	assert.Equal(t, "patient", nfErr.Kind)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurgeFreeDeletesOnlyUnbookedSlots(t *testing.T) {
	mock, cache, uc := newVisitationUsecase(t)
	seedCache(t, cache, identity.KindDoctor, 1)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "visitations" WHERE doctor_id = \$1 AND patient_id IS NULL`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	deleted, err := uc.PurgeFree(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurgeFreeUnknownDoctor(t *testing.T) {
	mock, _, uc := newVisitationUsecase(t)

	_, err := uc.PurgeFree(context.Background(), 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignPatientValidatesBothIDs(t *testing.T) {
	mock, cache, uc := newVisitationUsecase(t)

	err := uc.AssignPatient(context.Background(), &dto.AssignVisitationRequest{
		VisitationID: 5,
		PatientID:    2,
	})
	require.Error(t, err)

	var nfErr *apperr.NotFoundError
	require.True(t, errors.As(err, &nfErr))
	assert.Equal(t, "visitation", nfErr.Kind)

	// Known slot, unknown patient.
	seedCache(t, cache, identity.KindVisitation, 5)
	err = uc.AssignPatient(context.Background(), &dto.AssignVisitationRequest{
		VisitationID: 5,
		PatientID:    2,
	})
	require.Error(t, err)
	require.True(t, errors.As(err, &nfErr))
	assert.Equal(t, "patient", nfErr.Kind)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignPatientBooksSlot(t *testing.T) {
	mock, cache, uc := newVisitationUsecase(t)
	seedCache(t, cache, identity.KindVisitation, 5)
	seedCache(t, cache, identity.KindPatient, 2)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "visitations" SET "patient_id"=\$1 WHERE id = \$2`).
		WithArgs(2, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := uc.AssignPatient(context.Background(), &dto.AssignVisitationRequest{
		VisitationID: 5,
		PatientID:    2,
	})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
