package vectordb

// SearchRequest represents a single similarity search query.
type SearchRequest struct {
	// CollectionName is the target collection to search in
	CollectionName string `json:"collectionName"`

	// Vector is the query embedding to find similar vectors for
	Vector []float32 `json:"vector"`

	// TopK is the maximum number of results to return
	TopK int `json:"maxResults"`

	// Filters is optional payload filtering; every condition must hold
	Filters *FilterSet `json:"filters,omitempty"`
}

// SearchResult represents a single search result with its similarity score.
type SearchResult struct {
	// ID is the point identifier. Numeric IDs are rendered in base 10.
	ID string `json:"id"`

	// Score is the similarity score (higher = more similar for cosine)
	Score float32 `json:"score"`

	// Payload contains the metadata stored with the vector
	Payload map[string]any `json:"payload"`
}

// EmbeddingInput is the input for inserting vectors into a collection.
type EmbeddingInput struct {
	// ID is a UUID or an unsigned integer in base 10.
	ID string `json:"id"`

	// Vector is the dense embedding representation
	Vector []float32 `json:"vector"`

	// Payload is optional metadata to store with the vector
	Payload map[string]any `json:"payload,omitempty"`
}

// Collection contains metadata about a vector collection.
type Collection struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	VectorSize  int    `json:"vectorSize"`
	Distance    string `json:"distance"`
	VectorCount uint64 `json:"vectorCount"`
	PointCount  uint64 `json:"pointCount"`
}
