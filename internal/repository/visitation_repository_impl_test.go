package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteFreeByDoctorIDOnlyTouchesUnbookedSlots(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewVisitationRepository()

	// The delete is restricted to the doctor's rows with a null patient.
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "visitations" WHERE doctor_id = \$1 AND patient_id IS NULL`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	deleted, err := repo.DeleteFreeByDoctorID(db, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindFreeByDoctorIDOrdersByStartHour(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewVisitationRepository()

	rows := sqlmock.NewRows([]string{"id", "doctor_id", "patient_id", "start_hour"}).
		AddRow(3, 1, nil, "09:00").
		AddRow(5, 1, nil, "14:00")

	mock.ExpectQuery(`SELECT \* FROM "visitations" WHERE doctor_id = \$1 AND patient_id IS NULL ORDER BY start_hour ASC, id ASC`).
		WithArgs(1).
		WillReturnRows(rows)

	visitations, err := repo.FindFreeByDoctorID(db, 1)
	require.NoError(t, err)
	require.Len(t, visitations, 2)
	assert.Equal(t, uint(3), visitations[0].ID)
	assert.Equal(t, "09:00", visitations[0].StartHour)
	assert.True(t, visitations[0].IsFree())
	assert.Equal(t, uint(5), visitations[1].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePatientBooksSlot(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewVisitationRepository()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "visitations" SET "patient_id"=\$1 WHERE id = \$2`).
		WithArgs(2, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdatePatient(db, 5, 2)
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
