// Package api serves inventory questions over HTTP.
//
// Endpoints:
//
//	POST /ai/query        {q, page?, limit?} -> plan + result envelope
//	GET  /ai/config       supported intents, dimensions, statuses and limits
//	GET  /ai/suggestions  example questions
//	GET  /health          database reachability and vector index status
//
// A successful query responds with
//
//	{"ok": true, "query": ..., "plan": {...}, "pagination": {...}, "elapsed": ms,
//	 "type": "list" | "aggregation" | "mixed", ...}
//
// where the remaining keys are the executor's result envelope. An invalid body
// gets a 400 with per-field details. Planning or execution failures get a 500
// carrying a generic error and the underlying message:
//
//	{"ok": false, "error": "could not build a query plan",
//	 "message": "invalid query plan: ...", "requestId": "...", "elapsed": 12}
//
// The health response always has the database status and, when a vector index
// is attached with WithVectorIndex, a vectorIndex object:
//
//	{"ok": true, "database": "up",
//	 "vectorIndex": {"status": "up", "collection": "inventory_items", "points": 1532}}
//
// A vectorIndex of "down" is reported but does not change the status code.
package api
