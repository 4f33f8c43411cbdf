// Package embedding computes text embeddings through an OpenAI-compatible
// inference service.
//
// The package exposes a single public entrypoint, Client:
//
//	client, err := embedding.NewClient(embedding.Config{
//	    Endpoint: "http://inference:8000/v1",
//	    Model:    "nomic-embed-text",
//	})
//	vec, err := client.Embed(ctx, "cámaras domo en bodega")
//
// Vectors are returned as []float32, the precision the vector store indexes.
//
// # Configuration
//
//   - EMBEDDING_ENDPOINT: base URL of the service, without /embeddings. Empty
//     leaves the FX-provided client nil.
//   - EMBEDDING_MODEL: model name (default nomic-embed-text).
//   - EMBEDDING_SERVICE_TOKEN: optional bearer token.
//   - EMBEDDING_HTTP_TIMEOUT: request timeout (default 30s).
package embedding
