package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/smallbiznis/coffeestore/internal/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var addressColumns = []string{
	"id", "street", "number", "complement", "neighborhood", "city", "state", "zip_code", "client_id", "created_at", "updated_at",
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestFindByClientID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := Provide(db, clock.NewFakeClock(time.Now()))

	clientID := uuid.New()
	addressID := uuid.New()
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM address WHERE client_id = \$1 ORDER BY id ASC`).
		WithArgs(clientID.String()).
		WillReturnRows(sqlmock.NewRows(addressColumns).
			AddRow(addressID.String(), "Rua Augusta", "500", "", "Consolação", "São Paulo", "SP", "01304-000", clientID.String(), created, nil))

	items, err := repo.FindByClientID(context.Background(), clientID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, addressID, items[0].ID)
	assert.Equal(t, clientID, items[0].ClientID)
	assert.Equal(t, "01304-000", items[0].ZipCode)
	assert.Nil(t, items[0].UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByClientIDsExpandsInClause(t *testing.T) {
	db, mock := newMockDB(t)
	repo := Provide(db, nil)

	first, second := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM address WHERE client_id IN \(\$1,\$2\)`).
		WithArgs(first.String(), second.String()).
		WillReturnRows(sqlmock.NewRows(addressColumns))

	items, err := repo.FindByClientIDs(context.Background(), []uuid.UUID{first, second})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByClientIDsSkipsQueryForEmptyInput(t *testing.T) {
	db, mock := newMockDB(t)
	repo := Provide(db, nil)

	items, err := repo.FindByClientIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByIDIssuesDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := Provide(db, nil)

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "address" WHERE id = \$1`).
		WithArgs(id.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteByID(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}
