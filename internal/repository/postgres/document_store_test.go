package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gdb, mock
}

func TestDocumentStoreExpiringOnOrBefore(t *testing.T) {
	gdb, mock := newMockDB(t)
	store := NewDocumentStore(gdb)

	limit := time.Date(2026, time.September, 29, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM "documents" WHERE .*expiration_date IS NOT NULL AND expiration_date <= \$1`).
		WithArgs(limit).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "vehicle_id"}))

	docs, err := store.ExpiringOnOrBefore(context.Background(), limit)
	assert.NoError(t, err)
	assert.Empty(t, docs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentStoreLinkEventIsGuarded(t *testing.T) {
	gdb, mock := newMockDB(t)
	store := NewDocumentStore(gdb)

	// The UPDATE must carry the calendar_event_id = 0 guard so a linked
	// document is never re-linked.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "documents" SET "calendar_event_id"=\$1.*calendar_event_id = 0`).
		WithArgs(42, sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.LinkEvent(context.Background(), 7, 42)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentStoreLinkEventAlreadyLinked(t *testing.T) {
	gdb, mock := newMockDB(t)
	store := NewDocumentStore(gdb)

	// Zero rows touched is not an error: set-once means the second call is
	// a silent no-op.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "documents" SET "calendar_event_id"=\$1`).
		WithArgs(99, sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := store.LinkEvent(context.Background(), 7, 99)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
