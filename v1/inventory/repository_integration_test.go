//go:build integration

package inventory

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/resguardo/inventory-query/v1/logger"
	"github.com/resguardo/inventory-query/v1/plan"
	"github.com/resguardo/inventory-query/v1/postgres"
	"github.com/resguardo/inventory-query/v1/querybuilder"
)

const schema = `
CREATE TABLE brands (id BIGSERIAL PRIMARY KEY, name TEXT NOT NULL);
CREATE TABLE types (id BIGSERIAL PRIMARY KEY, name TEXT NOT NULL);
CREATE TABLE models (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	brand_id BIGINT NOT NULL REFERENCES brands(id),
	type_id BIGINT NOT NULL REFERENCES types(id)
);
CREATE TABLE locations (id BIGSERIAL PRIMARY KEY, name TEXT NOT NULL);
CREATE TABLE invoices (id BIGSERIAL PRIMARY KEY, code TEXT NOT NULL);
CREATE TABLE purchase_orders (id BIGSERIAL PRIMARY KEY, code TEXT NOT NULL);
CREATE TABLE inventories (
	id BIGSERIAL PRIMARY KEY,
	serial_number TEXT,
	active_number TEXT,
	internal_folio TEXT,
	status TEXT NOT NULL DEFAULT 'ALTA',
	enabled BOOLEAN NOT NULL DEFAULT TRUE,
	comments TEXT,
	reception_date DATE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	model_id BIGINT NOT NULL REFERENCES models(id),
	location_id BIGINT REFERENCES locations(id),
	invoice_id BIGINT REFERENCES invoices(id),
	purchase_order_id BIGINT REFERENCES purchase_orders(id)
);

INSERT INTO brands (id, name) VALUES (1, 'AVIGILON'), (2, 'HP');
INSERT INTO types (id, name) VALUES (1, 'CAMARA'), (2, 'LAPTOP');
INSERT INTO models (id, name, brand_id, type_id) VALUES (1, 'H5A', 1, 1), (2, 'EliteBook 840', 2, 2);
INSERT INTO locations (id, name) VALUES (1, 'Bodega'), (2, 'Almacen Central');
INSERT INTO invoices (id, code) VALUES (1, 'FAC-1');

INSERT INTO inventories (id, serial_number, status, enabled, model_id, location_id, invoice_id, created_at) VALUES
	(1, 'AV-001', 'ALTA', TRUE, 1, 1, 1, '2025-01-10'),
	(2, 'AV-002', 'ALTA', TRUE, 1, NULL, NULL, '2025-02-10'),
	(3, 'AV-003', 'BAJA', FALSE, 1, 2, NULL, '2025-03-10'),
	(4, 'HP-001', 'ALTA', TRUE, 2, 2, 1, '2025-04-10'),
	(5, NULL, 'ALTA', TRUE, 2, NULL, NULL, '2025-05-10');
`

func setupPostgres(t *testing.T) *Repository {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "inventario",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "5432")
	require.NoError(t, err)

	seed, err := sql.Open("postgres", fmt.Sprintf(
		"host=%s port=%s user=postgres password=postgres dbname=inventario sslmode=disable", host, port.Port()))
	require.NoError(t, err)
	defer seed.Close()
	_, err = seed.ExecContext(ctx, schema)
	require.NoError(t, err)

	cfg := postgres.DefaultConfig()
	cfg.Connection.Host = host
	cfg.Connection.Port = port.Port()
	cfg.Connection.Password = "postgres"
	pg, err := postgres.NewPostgres(cfg, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.GracefulShutdown() })

	return NewRepository(pg, logger.NewNop())
}

func TestRepositoryAgainstPostgres(t *testing.T) {
	repo := setupPostgres(t)
	ctx := context.Background()
	page := plan.Pagination{Page: 1, Limit: 20}

	t.Run("count by brand is case insensitive", func(t *testing.T) {
		p := plan.New(plan.IntentCount, page, 10)
		p.Filters.Brand = plan.String("Avigilon")

		total, err := repo.Count(ctx, querybuilder.BuildCount(p))
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("missing location", func(t *testing.T) {
		p := plan.New(plan.IntentMissing, page, 10)
		p.Missing = &plan.MissingSpec{Kind: "relation", Field: "location"}

		total, err := repo.Count(ctx, querybuilder.BuildCount(p))
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)

		items, err := repo.List(ctx, querybuilder.BuildList(p))
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, int64(5), items[0].ID)
		assert.Nil(t, items[0].LocationName)
	})

	t.Run("missing serial number", func(t *testing.T) {
		p := plan.New(plan.IntentMissing, page, 10)
		p.Missing = &plan.MissingSpec{Kind: "field", Field: "serialNumber"}

		items, err := repo.List(ctx, querybuilder.BuildList(p))
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "EliteBook 840", items[0].ModelName)
	})

	t.Run("group by location", func(t *testing.T) {
		p := plan.New(plan.IntentGroupCount, page, 10)
		p.Filters.Enabled = nil
		p.GroupBy = plan.String("location")

		rows, err := repo.GroupCount(ctx, querybuilder.BuildGroupCount(p))
		require.NoError(t, err)
		var sum int64
		for _, r := range rows {
			sum += r.Count
		}
		assert.Equal(t, int64(5), sum)
	})

	t.Run("list by ids", func(t *testing.T) {
		p := plan.New(plan.IntentSearch, page, 10)

		items, err := repo.List(ctx, querybuilder.BuildListByIDs(p, []int64{1, 3, 4}))
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, []int64{4, 3, 1}, []int64{items[0].ID, items[1].ID, items[2].ID})
		assert.Equal(t, "FAC-1", *items[0].InvoiceCode)

		items, err = repo.List(ctx, querybuilder.BuildListByIDs(p, nil))
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("date range", func(t *testing.T) {
		p := plan.New(plan.IntentList, page, 10)
		p.Filters.DateField = plan.String("createdAt")
		p.Filters.DateFrom = plan.String("2025-02-01")
		p.Filters.DateTo = plan.String("2025-04-10")

		items, err := repo.List(ctx, querybuilder.BuildList(p))
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})
}
