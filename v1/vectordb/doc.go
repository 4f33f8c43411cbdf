// Package vectordb defines the vector store abstraction used by semantic
// retrieval: similarity search requests, results and payload filters.
//
// Implementations live in their own packages (see qdrant) and convert
// FilterSet into their native filter format.
//
//	results, err := db.Search(ctx, vectordb.SearchRequest{
//	    CollectionName: "inventory",
//	    Vector:         vec,
//	    TopK:           10,
//	    Filters:        vectordb.NewFilterSet(vectordb.Must(vectordb.NewMatch("enabled", true))),
//	})
package vectordb
