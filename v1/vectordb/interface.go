package vectordb

import "context"

// Service is the database-agnostic view of a vector store. Semantic retrieval
// depends on it rather than on a concrete client.
//
// Example usage:
//
//	func NewRetriever(db vectordb.Service) *Retriever {
//	    return &Retriever{db: db}
//	}
type Service interface {
	// Search performs similarity search across one or more requests.
	// Each request can target a different collection with different filters.
	// The result holds one []SearchResult per request, in request order.
	Search(ctx context.Context, requests ...SearchRequest) ([][]SearchResult, error)

	// Insert adds embeddings to a collection in batches.
	Insert(ctx context.Context, collectionName string, inputs []EmbeddingInput) error

	// EnsureCollection creates a collection if it doesn't exist.
	// Safe to call multiple times.
	EnsureCollection(ctx context.Context, name string, vectorSize uint64) error

	// GetCollection retrieves metadata about a collection.
	GetCollection(ctx context.Context, name string) (*Collection, error)
}
