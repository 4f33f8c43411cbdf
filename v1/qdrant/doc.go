// Package qdrant implements vectordb.Service on top of the official Qdrant Go
// client.
//
// The inventory collection holds one point per inventory item. Point ids are
// the numeric item ids rendered in base 10, and each payload carries the
// fields semantic retrieval filters on:
//
//	enabled  bool    logical-delete flag of the item
//	status   string  ALTA, BAJA or PROPUESTA_BAJA
//	brand    string  brand name, upper-cased
//	type     string  equipment type name, upper-cased
//
// # Basic Usage
//
//	client, err := qdrant.NewClient(qdrant.Config{
//	    Endpoint:   "localhost",
//	    Port:       6334,
//	    Collection: "inventory_items",
//	    VectorSize: 768,
//	    Timeout:    5 * time.Second,
//	}, log)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	// Create the collection once; later calls are no-ops.
//	if err := client.EnsureCollection(ctx, client.Collection(), 768); err != nil {
//	    return err
//	}
//
//	// Upsert points. Inputs are written in batches.
//	err = client.Insert(ctx, client.Collection(), []vectordb.EmbeddingInput{
//	    {
//	        ID:      "1042",
//	        Vector:  vec,
//	        Payload: map[string]any{"enabled": true, "status": "ALTA", "brand": "HP", "type": "LAPTOP"},
//	    },
//	})
//
// # Search
//
// Search accepts several requests and returns one result slice per request, in
// request order:
//
//	results, err := client.Search(ctx, vectordb.SearchRequest{
//	    CollectionName: client.Collection(),
//	    Vector:         queryVec,
//	    TopK:           10,
//	    Filters: vectordb.NewFilterSet(vectordb.Must(
//	        vectordb.NewMatch("enabled", true),
//	        vectordb.NewMatchAny("brand", "HP", "DELL"),
//	    )),
//	})
//	for _, hit := range results[0] {
//	    fmt.Println(hit.ID, hit.Score, hit.Payload["brand"])
//	}
//
// # Filters
//
// vectordb.MatchCondition and vectordb.MatchAnyCondition inside Must are
// translated to native Qdrant match conditions. Unsupported conditions and
// value types are dropped, and a filter with no remaining conditions is omitted
// entirely, so the search runs unfiltered rather than failing.
//
// # Collection Status
//
// GetCollection reports the collection status and point count; the health
// endpoint uses it to show whether the index is populated:
//
//	info, err := client.GetCollection(ctx, client.Collection())
//	if err == nil {
//	    fmt.Println(info.Status, info.PointCount)
//	}
//
// # Configuration
//
//	QDRANT_ENDPOINT=localhost      # empty disables the client
//	QDRANT_PORT=6334
//	QDRANT_API_KEY=
//	QDRANT_USE_TLS=false
//	QDRANT_COLLECTION=inventory_items
//	QDRANT_VECTOR_SIZE=768
//	QDRANT_TIMEOUT=5s
//
// # FX Module Integration
//
// FXModule provides *Client from a Config in the container. With an empty
// endpoint the provided client is nil. Otherwise the collection is created
// on start when missing and the connection is closed on stop:
//
//	app := fx.New(
//	    logger.FXModule,
//	    qdrant.FXModule,
//	    fx.Provide(func() qdrant.Config { return cfg }),
//	)
package qdrant
