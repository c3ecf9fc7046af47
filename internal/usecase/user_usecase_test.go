package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-hospital-records/internal/delivery/dto"
	"go-hospital-records/internal/identity"
	"go-hospital-records/internal/repository"
	"go-hospital-records/pkg/apperr"
)

func newUserUsecase(t *testing.T) (sqlmock.Sqlmock, identity.Cache, UserUsecase) {
	t.Helper()
	mock, db := newMockDB(t)
	cache := identity.NewMemoryCache()

	uc := NewUserUsecase(db, quietLogger(), newTestValidator(), cache, repository.NewUserRepository())
	return mock, cache, uc
}

func TestCreateUserStartsInactive(t *testing.T) {
	mock, cache, uc := newUserUsecase(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WithArgs("ivan", sqlmock.AnyArg(), 30, false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	id, err := uc.Create(context.Background(), &dto.CreateUserRequest{
		Username: "ivan",
		Password: "secret1",
		Age:      30,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), id)

	ok, _ := cache.Contains(context.Background(), identity.KindUser, 1)
	assert.True(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserRejectsShortPassword(t *testing.T) {
	mock, _, uc := newUserUsecase(t)

	_, err := uc.Create(context.Background(), &dto.CreateUserRequest{
		Username: "ivan",
		Password: "pw",
		Age:      30,
	})
	require.Error(t, err)

	var vErr *apperr.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "Password", vErr.Field)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	mock, _, uc := newUserUsecase(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_username"})
	mock.ExpectRollback()

	_, err := uc.Create(context.Background(), &dto.CreateUserRequest{
		Username: "ivan",
		Password: "secret1",
		Age:      30,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrDuplicate))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUsernameUnknownUser(t *testing.T) {
	mock, _, uc := newUserUsecase(t)

	err := uc.UpdateUsername(context.Background(), &dto.UpdateUsernameRequest{
		UserID:   9,
		Username: "renamed",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUsername(t *testing.T) {
	mock, cache, uc := newUserUsecase(t)
	seedCache(t, cache, identity.KindUser, 1)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET "username"=\$1 WHERE id = \$2`).
		WithArgs("renamed", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := uc.UpdateUsername(context.Background(), &dto.UpdateUsernameRequest{
		UserID:   1,
		Username: "renamed",
	})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAge(t *testing.T) {
	mock, cache, uc := newUserUsecase(t)
	seedCache(t, cache, identity.KindUser, 1)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET "age"=\$1 WHERE id = \$2`).
		WithArgs(31, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := uc.UpdateAge(context.Background(), &dto.UpdateAgeRequest{UserID: 1, Age: 31})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
