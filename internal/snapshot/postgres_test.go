package snapshot

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedef100/academia-core/internal/models"
)

func newPostgresStoreForTest(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresStore(sqlx.NewDb(db, "sqlmock")), mock
}

func TestPostgresStoreInitCreatesTable(t *testing.T) {
	store, mock := newPostgresStoreForTest(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS app_snapshots").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.Init(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreLoadDecodesRow(t *testing.T) {
	store, mock := newPostgresStoreForTest(t)

	state := models.DefaultState(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	data, err := encode(state)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT data FROM app_snapshots").
		WithArgs(SchemaKey).
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(data))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded.Users, 3)
	assert.Nil(t, loaded.CurrentUser)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreLoadMissingRow(t *testing.T) {
	store, mock := newPostgresStoreForTest(t)

	mock.ExpectQuery("SELECT data FROM app_snapshots").
		WithArgs(SchemaKey).
		WillReturnRows(sqlmock.NewRows([]string{"data"}))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreSaveUpserts(t *testing.T) {
	store, mock := newPostgresStoreForTest(t)

	mock.ExpectExec("INSERT INTO app_snapshots").
		WithArgs(SchemaKey, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	state := models.DefaultState(time.Now())
	require.NoError(t, store.Save(context.Background(), state))
	require.NoError(t, mock.ExpectationsWereMet())
}
