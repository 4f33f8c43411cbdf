// Package inventory reads inventory records, counts and grouped counts from
// PostgreSQL.
//
// The repository does not build SQL. It runs querybuilder statements through
// the postgres package and maps the projected columns onto Item and GroupRow.
//
//	repo := inventory.NewRepository(pg, log)
//	items, err := repo.List(ctx, querybuilder.BuildList(p))
//	total, err := repo.Count(ctx, querybuilder.BuildCount(p))
package inventory
