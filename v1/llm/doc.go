// Package llm provides a minimal chat client for Ollama-compatible language model
// servers.
//
// The client issues one non-streaming request per call to {Endpoint}/api/chat and
// asks the server for JSON-formatted output. It carries no retry logic: callers
// that can degrade gracefully (such as the query planner) fall back on error
// instead of retrying.
//
// Example:
//
//	client := llm.NewClient(llm.Config{
//	    Endpoint: "http://localhost:11434",
//	    Model:    "llama3.1",
//	    Timeout:  20 * time.Second,
//	})
//	resp, err := client.Chat(ctx, "", []llm.Message{
//	    {Role: llm.RoleSystem, Content: "Responde solo con JSON."},
//	    {Role: llm.RoleUser, Content: "cuántas laptops hay"},
//	})
package llm
