package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByPatientIDKeepsOpenEndedStay(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewHospitalStayRepository()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "start_date", "end_date", "room", "injury", "patient_id"}).
		AddRow(1, start, nil, "101", "fracture", 2)

	mock.ExpectQuery(`SELECT \* FROM "hospital_stays" WHERE patient_id = \$1 ORDER BY start_date ASC, id ASC`).
		WithArgs(2).
		WillReturnRows(rows)

	stays, err := repo.FindByPatientID(db, 2)
	require.NoError(t, err)
	require.Len(t, stays, 1)
	assert.Equal(t, "101", stays[0].Room)
	assert.Equal(t, "fracture", stays[0].Injury)
	assert.Nil(t, stays[0].EndDate)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomsAndDurationsJoinsPatientUsernames(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewHospitalStayRepository()

	start := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"username", "room", "start_date", "end_date"}).
		AddRow("Anna", "101", start, end).
		AddRow("Boris", "204", start, nil)

	mock.ExpectQuery(`SELECT users.username, hospital_stays.room, hospital_stays.start_date, hospital_stays.end_date FROM "hospital_stays" JOIN patients ON patients.user_id = hospital_stays.patient_id JOIN users ON users.id = patients.user_id WHERE patients.doctor_id = \$1`).
		WithArgs(1).
		WillReturnRows(rows)

	reports, err := repo.RoomsAndDurations(db, 1)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "Anna", reports[0].Username)
	require.NotNil(t, reports[0].EndDate)
	assert.Equal(t, end, *reports[0].EndDate)
	assert.Nil(t, reports[1].EndDate)

	assert.NoError(t, mock.ExpectationsWereMet())
}
