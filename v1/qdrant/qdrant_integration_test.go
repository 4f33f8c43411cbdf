//go:build integration

package qdrant

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/resguardo/inventory-query/v1/logger"
	"github.com/resguardo/inventory-query/v1/vectordb"
)

const testVectorSize = 8

// QdrantContainer represents a Qdrant container for testing
type QdrantContainer struct {
	testcontainers.Container
	Host string
	Port int
}

func setupQdrantContainer(ctx context.Context) (*QdrantContainer, error) {
	port, err := getFreePort()
	if err != nil {
		return nil, fmt.Errorf("could not get free port: %w", err)
	}

	req := testcontainers.ContainerRequest{
		Image:        "qdrant/qdrant:v1.11.0",
		Env:          map[string]string{"QDRANT__SERVICE__GRPC_PORT": "6334"},
		ExposedPorts: []string{"6334/tcp"},
		HostConfigModifier: func(cfg *container.HostConfig) {
			cfg.PortBindings = nat.PortMap{
				"6334/tcp": []nat.PortBinding{{HostPort: strconv.Itoa(port)}},
			}
		},
		WaitingFor: wait.ForListeningPort("6334/tcp").WithStartupTimeout(60 * time.Second),
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start qdrant container: %w", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("failed to get host: %w", err)
	}
	mapped, err := c.MappedPort(ctx, "6334")
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}

	return &QdrantContainer{Container: c, Host: host, Port: mapped.Int()}, nil
}

func getFreePort() (int, error) {
	l, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}

func vectorFor(seed int) []float32 {
	v := make([]float32, testVectorSize)
	for i := range v {
		v[i] = float32((seed+i)%testVectorSize+1) / testVectorSize
	}
	return v
}

func TestQdrantWithFXModule(t *testing.T) {
	ctx := context.Background()
	qc, err := setupQdrantContainer(ctx)
	require.NoError(t, err)
	defer func() { _ = qc.Terminate(ctx) }()

	var client *Client
	app := fxtest.New(t,
		fx.Provide(
			func() Config {
				return Config{
					Endpoint:   qc.Host,
					Port:       qc.Port,
					Collection: "inventory_items_test",
					VectorSize: testVectorSize,
					Timeout:    10 * time.Second,
				}
			},
			logger.NewNop,
		),
		FXModule,
		fx.Populate(&client),
	)
	app.RequireStart()
	defer app.RequireStop()
	require.NotNil(t, client)

	collection := client.Collection()

	t.Run("EnsureCollectionIsIdempotent", func(t *testing.T) {
		require.NoError(t, client.EnsureCollection(ctx, collection, testVectorSize))
		assert.Error(t, client.EnsureCollection(ctx, "", testVectorSize))

		info, err := client.GetCollection(ctx, collection)
		require.NoError(t, err)
		assert.Equal(t, testVectorSize, info.VectorSize)
		assert.Equal(t, "Cosine", info.Distance)
	})

	t.Run("SearchHonoursEnabledFilter", func(t *testing.T) {
		inputs := []vectordb.EmbeddingInput{
			{ID: "101", Vector: vectorFor(1), Payload: map[string]any{"enabled": true, "name": "Laptop HP"}},
			{ID: "102", Vector: vectorFor(1), Payload: map[string]any{"enabled": false, "name": "Laptop HP baja"}},
			{ID: "103", Vector: vectorFor(4), Payload: map[string]any{"enabled": true, "name": "Cámara domo"}},
		}
		require.NoError(t, client.Insert(ctx, collection, inputs))

		results, err := client.Search(ctx, vectordb.SearchRequest{
			CollectionName: collection,
			Vector:         vectorFor(1),
			TopK:           10,
			Filters:        vectordb.NewFilterSet(vectordb.Must(vectordb.NewMatch("enabled", true))),
		})
		require.NoError(t, err)
		require.Len(t, results, 1)

		var ids []string
		for _, r := range results[0] {
			ids = append(ids, r.ID)
		}
		assert.Equal(t, "101", ids[0])
		assert.ElementsMatch(t, []string{"101", "103"}, ids)
	})

	t.Run("EmptyOperations", func(t *testing.T) {
		assert.NoError(t, client.Insert(ctx, collection, nil))
		_, err := client.Search(ctx)
		assert.Error(t, err)
	})
}

func TestQdrantDisabledWithoutEndpoint(t *testing.T) {
	var client *Client
	app := fxtest.New(t,
		fx.Provide(func() Config { return Config{} }, logger.NewNop),
		FXModule,
		fx.Populate(&client),
	)
	app.RequireStart()
	app.RequireStop()
	assert.Nil(t, client)
}
