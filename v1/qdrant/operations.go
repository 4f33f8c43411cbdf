package qdrant

import (
	"context"
	"fmt"
	"slices"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/resguardo/inventory-query/v1/vectordb"
)

var _ vectordb.Service = (*Client)(nil)

// EnsureCollection creates the collection with cosine distance if it is missing.
// It is a no-op when the collection already exists.
func (c *Client) EnsureCollection(ctx context.Context, name string, vectorSize uint64) error {
	if name == "" {
		return fmt.Errorf("collection name cannot be empty")
	}
	if vectorSize == 0 {
		return fmt.Errorf("vector size must be greater than 0")
	}

	collections, err := c.api.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("[Qdrant] failed to list collections: %w", err)
	}
	if slices.Contains(collections, name) {
		c.logger.Debug("qdrant collection exists", nil, map[string]interface{}{"collection": name})
		return nil
	}

	req := &qdrant.CreateCollection{
		CollectionName: name,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	}
	if err := c.api.CreateCollection(ctx, req); err != nil {
		return fmt.Errorf("[Qdrant] failed to create collection '%s': %w", name, err)
	}

	c.logger.Info("qdrant collection created", nil, map[string]interface{}{
		"collection":  name,
		"vector_size": vectorSize,
	})
	return nil
}

// Insert upserts embeddings in chunks of defaultBatchSize, waiting for each
// chunk to be persisted.
func (c *Client) Insert(ctx context.Context, collectionName string, inputs []vectordb.EmbeddingInput) error {
	if len(inputs) == 0 {
		return nil
	}

	for start := 0; start < len(inputs); start += defaultBatchSize {
		end := min(start+defaultBatchSize, len(inputs))
		if err := c.upsertBatch(ctx, collectionName, inputs[start:end]); err != nil {
			return fmt.Errorf("[Qdrant] batch upsert failed at [%d:%d]: %w", start, end, err)
		}
	}

	c.logger.Debug("qdrant points upserted", nil, map[string]interface{}{
		"collection": collectionName,
		"count":      len(inputs),
	})
	return nil
}

func (c *Client) upsertBatch(ctx context.Context, collectionName string, batch []vectordb.EmbeddingInput) error {
	points := make([]*qdrant.PointStruct, 0, len(batch))
	for _, e := range batch {
		points = append(points, &qdrant.PointStruct{
			Id:      newPointID(e.ID),
			Vectors: qdrant.NewVectors(e.Vector...),
			Payload: qdrant.NewValueMap(e.Payload),
		})
	}

	wait := true
	_, err := c.api.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collectionName,
		Points:         points,
		Wait:           &wait,
	})
	return err
}

// Search runs each request in order and returns one result slice per request.
func (c *Client) Search(ctx context.Context, requests ...vectordb.SearchRequest) ([][]vectordb.SearchResult, error) {
	if len(requests) == 0 {
		return nil, fmt.Errorf("at least one search request is required")
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	results := make([][]vectordb.SearchResult, 0, len(requests))
	for i, sr := range requests {
		if err := validateSearchInput(sr.CollectionName, sr.Vector, sr.TopK); err != nil {
			return nil, fmt.Errorf("request [%d]: %w", i, err)
		}

		limit := uint64(sr.TopK)
		resp, err := c.api.Query(ctx, &qdrant.QueryPoints{
			CollectionName: sr.CollectionName,
			Query:          qdrant.NewQuery(sr.Vector...),
			Limit:          &limit,
			WithPayload:    qdrant.NewWithPayload(true),
			Filter:         convertFilterSet(sr.Filters),
		})
		if err != nil {
			return nil, fmt.Errorf("request [%d] search failed: %w", i, err)
		}

		res, err := parseSearchResults(resp)
		if err != nil {
			return nil, fmt.Errorf("request [%d] parse failed: %w", i, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// GetCollection retrieves size, distance and counts for a collection.
func (c *Client) GetCollection(ctx context.Context, name string) (*vectordb.Collection, error) {
	if name == "" {
		return nil, fmt.Errorf("collection name cannot be empty")
	}

	info, err := c.api.GetCollectionInfo(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] failed to get collection '%s': %w", name, err)
	}

	size, distance := extractVectorDetails(info)
	return &vectordb.Collection{
		Name:        name,
		Status:      info.GetStatus().String(),
		VectorSize:  size,
		Distance:    distance,
		VectorCount: derefUint64(info.IndexedVectorsCount),
		PointCount:  derefUint64(info.PointsCount),
	}, nil
}
