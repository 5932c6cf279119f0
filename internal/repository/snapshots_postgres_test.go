package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestPostgresSnapshots_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO snapshots").
		WithArgs(CollectionPayments, []byte(`[]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	snaps := NewPostgresSnapshots(db)
	require.NoError(t, snaps.Save(context.Background(), CollectionPayments, []byte(`[]`)))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSnapshots_LoadMiss(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT data FROM snapshots").
		WithArgs(CollectionTenants).
		WillReturnRows(sqlmock.NewRows([]string{"data"}))

	snaps := NewPostgresSnapshots(db)
	_, err = snaps.Load(context.Background(), CollectionTenants)
	require.ErrorIs(t, err, ErrNoSnapshot)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSnapshots_LoadHit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	payload := []byte(`[{"id":"f1"}]`)
	mock.ExpectQuery("SELECT data FROM snapshots").
		WithArgs(CollectionFilters).
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(payload))

	snaps := NewPostgresSnapshots(db)
	got, err := snaps.Load(context.Background(), CollectionFilters)
	require.NoError(t, err)
	require.Equal(t, payload, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSnapshots_EnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS snapshots").
		WillReturnResult(sqlmock.NewResult(0, 0))

	snaps := NewPostgresSnapshots(db)
	require.NoError(t, snaps.EnsureSchema(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
