package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/resguardo/inventory-query/v1/logger"
)

type brandRow struct {
	ID   int64  `gorm:"column:id"`
	Name string `gorm:"column:name"`
}

func newMockPostgres(t *testing.T, cfg Config) (*Postgres, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return NewPostgresFromDB(db, cfg, logger.NewNop()), mock
}

func TestCollectScansRows(t *testing.T) {
	pg, mock := newMockPostgres(t, Config{})

	mock.ExpectQuery(`SELECT id, name FROM brands WHERE id > \$1`).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(11, "HP").
			AddRow(12, "Dell"))

	rows, err := Collect[brandRow](context.Background(), pg, "SELECT id, name FROM brands WHERE id > $1", 10)
	require.NoError(t, err)
	assert.Equal(t, []brandRow{{ID: 11, Name: "HP"}, {ID: 12, Name: "Dell"}}, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryStopsOnCallbackError(t *testing.T) {
	pg, mock := newMockPostgres(t, Config{})
	mock.ExpectQuery(`SELECT 1`).WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1).AddRow(2))

	boom := errors.New("boom")
	calls := 0
	err := pg.Query(context.Background(), "SELECT 1", nil, func(*sql.Rows) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestQueryTranslatesDriverErrors(t *testing.T) {
	pg, mock := newMockPostgres(t, Config{})
	mock.ExpectQuery(`SELECT \* FROM missing`).
		WillReturnError(&pgconn.PgError{Code: "42P01", Message: `relation "missing" does not exist`})

	_, err := Collect[brandRow](context.Background(), pg, "SELECT * FROM missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUndefinedObject)
	assert.Equal(t, CategoryQuery, GetErrorCategory(err))
	assert.False(t, IsRetryable(err))
}

func TestQueryTimeout(t *testing.T) {
	pg, mock := newMockPostgres(t, Config{QueryTimeout: 20 * time.Millisecond})
	mock.ExpectQuery(`SELECT pg_sleep`).
		WillDelayFor(time.Second).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))

	_, err := Collect[brandRow](context.Background(), pg, "SELECT pg_sleep(1)")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQueryCanceled)
	assert.Equal(t, CategoryTimeout, GetErrorCategory(err))
}

func TestClassify(t *testing.T) {
	cases := []struct {
		err  error
		want error
	}{
		{&pgconn.PgError{Code: "57014"}, ErrQueryCanceled},
		{&pgconn.PgError{Code: "42601"}, ErrInvalidQuery},
		{&pgconn.PgError{Code: "22P02"}, ErrInvalidQuery},
		{&pgconn.PgError{Code: "40P01"}, ErrConflict},
		{&pgconn.PgError{Code: "08006"}, ErrConnection},
		{&pgconn.PgError{Code: "53300"}, ErrResources},
		{&pgconn.PgError{Code: "23505"}, nil},
		{driver.ErrBadConn, ErrConnection},
		{context.DeadlineExceeded, ErrQueryCanceled},
		{errors.New("other"), nil},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, classify(tc.err), "%v", tc.err)
	}
}

func TestRetryableCategories(t *testing.T) {
	pg := &Postgres{}
	assert.True(t, IsRetryable(pg.TranslateError(context.Background(), driver.ErrBadConn)))
	assert.True(t, IsRetryable(pg.TranslateError(context.Background(), &pgconn.PgError{Code: "40001"})))
	assert.False(t, IsRetryable(nil))
	assert.Equal(t, "timeout", CategoryTimeout.String())
}

func TestDSN(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Connection.Password = "pw"
	assert.Equal(t, "host=localhost port=5432 user=postgres password=pw dbname=inventario sslmode=disable", cfg.DSN())
}

func TestPingAndShutdown(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)
	pg := NewPostgresFromDB(db, Config{}, logger.NewNop())

	mock.ExpectPing()
	assert.NoError(t, pg.Ping(context.Background()))

	mock.ExpectClose()
	assert.NoError(t, pg.GracefulShutdown())
	assert.NoError(t, pg.GracefulShutdown())
	assert.NoError(t, mock.ExpectationsWereMet())
}
