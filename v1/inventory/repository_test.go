package inventory

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/resguardo/inventory-query/v1/logger"
	"github.com/resguardo/inventory-query/v1/plan"
	"github.com/resguardo/inventory-query/v1/postgres"
	"github.com/resguardo/inventory-query/v1/querybuilder"
)

var listColumns = []string{
	"id", "serial_number", "active_number", "internal_folio", "status", "enabled",
	"comments", "reception_date", "created_at", "updated_at",
	"model_name", "brand_name", "type_name", "location_name",
	"invoice_id", "invoice_code", "purchase_order_id", "purchase_order_code",
}

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpg.New(gormpg.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	pg := postgres.NewPostgresFromDB(db, postgres.Config{}, logger.NewNop())
	return NewRepository(pg, logger.NewNop()), mock
}

func brandPlan(brand string) *plan.Plan {
	p := plan.New(plan.IntentList, plan.Pagination{Page: 1, Limit: 20}, 10)
	p.Filters.Brand = plan.String(brand)
	return p
}

func TestListMapsColumns(t *testing.T) {
	repo, mock := newMockRepository(t)
	stmt := querybuilder.BuildList(brandPlan("HP"))
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(stmt.SQL)).
		WithArgs(stmt.Args...).
		WillReturnRows(sqlmock.NewRows(listColumns).
			AddRow(7, "SN-1", nil, "F-7", "ALTA", true, nil, nil, created, created,
				"EliteBook 840", "HP", "LAPTOP", "Bodega", 3, "FAC-3", nil, nil))

	items, err := repo.List(context.Background(), stmt)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, int64(7), item.ID)
	assert.Equal(t, "SN-1", *item.SerialNumber)
	assert.Nil(t, item.ActiveNumber)
	assert.Equal(t, "HP", item.BrandName)
	assert.Equal(t, "Bodega", *item.LocationName)
	assert.Equal(t, int64(3), *item.InvoiceID)
	assert.Nil(t, item.PurchaseOrderID)
	assert.True(t, item.CreatedAt.Equal(created))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmptyIsNotNil(t *testing.T) {
	repo, mock := newMockRepository(t)
	stmt := querybuilder.BuildListByIDs(brandPlan("HP"), nil)

	mock.ExpectQuery(regexp.QuoteMeta(stmt.SQL)).
		WillReturnRows(sqlmock.NewRows(listColumns))

	items, err := repo.List(context.Background(), stmt)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCount(t *testing.T) {
	repo, mock := newMockRepository(t)
	stmt := querybuilder.BuildCount(brandPlan("Avigilon"))

	mock.ExpectQuery(regexp.QuoteMeta(stmt.SQL)).
		WithArgs(stmt.Args...).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(42))

	total, err := repo.Count(context.Background(), stmt)
	require.NoError(t, err)
	assert.Equal(t, int64(42), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupCountKeepsNullKey(t *testing.T) {
	repo, mock := newMockRepository(t)
	p := brandPlan("HP")
	p.Intent = plan.IntentGroupCount
	p.GroupBy = plan.String("location")
	stmt := querybuilder.BuildGroupCount(p)

	mock.ExpectQuery(regexp.QuoteMeta(stmt.SQL)).
		WithArgs(stmt.Args...).
		WillReturnRows(sqlmock.NewRows([]string{"group_key", "group_count"}).
			AddRow("Bodega", 5).
			AddRow(nil, 2))

	rows, err := repo.GroupCount(context.Background(), stmt)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Bodega", *rows[0].Key)
	assert.Equal(t, int64(5), rows[0].Count)
	assert.Nil(t, rows[1].Key)
	assert.Equal(t, int64(2), rows[1].Count)
}

func TestCountWrapsDriverError(t *testing.T) {
	repo, mock := newMockRepository(t)
	stmt := querybuilder.BuildCount(brandPlan("HP"))
	boom := errors.New("boom")

	mock.ExpectQuery(regexp.QuoteMeta(stmt.SQL)).WillReturnError(boom)

	_, err := repo.Count(context.Background(), stmt)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "count inventories")
}
