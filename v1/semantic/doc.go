// Package semantic maps similarity questions to inventory ids through an
// embedding model and a vector index.
//
// Retrieve embeds the plan's semantic query, searches the configured
// collection and returns the hit ids in similarity order. Plan filters that
// have a payload counterpart are pushed into the search, so the topK
// candidates already match them:
//
//	enabled         match on the logical-delete flag (omitted when the plan includes deleted records)
//	status          match on the status keyword
//	brand / brands  match, or match-any, on the upper-cased brand
//	type            match on the upper-cased equipment type
//
// Everything else (model, location, dates, invoice and purchase order) is left
// to the SQL statement that loads the candidates.
//
//	svc := semantic.NewService(cfg, embedder, index, log, metrics)
//	ids, err := svc.Retrieve(ctx, p)
//	stmt := querybuilder.BuildListByIDs(p, ids)
//
// Index embeds inventory items and upserts them with Payload, and Reindex
// pages through the whole inventory to rebuild the collection:
//
//	n, err := svc.Reindex(ctx, repo, 200)
//
// Collection reports the index status and point count for health checks and
// keeps the vector_index_points gauge current.
//
// A Service without an embedder or index, or with Config.Enabled false,
// returns no candidates and indexes nothing.
package semantic
