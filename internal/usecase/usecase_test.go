package usecase

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-hospital-records/internal/identity"
	"go-hospital-records/pkg/validator"
)

// userColumns matches the users table scan order used across the tests.
var userColumns = []string{"id", "username", "password_hash", "age", "is_active"}

func newMockDB(t *testing.T) (sqlmock.Sqlmock, *gorm.DB) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return mock, db
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func newTestValidator() *validator.CustomValidator {
	return validator.NewValidator()
}

// seedCache records the given IDs so foreign key checks pass.
func seedCache(t *testing.T, cache identity.Cache, kind identity.Kind, ids ...uint) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, cache.Record(context.Background(), kind, id))
	}
}
