// Package querybuilder turns a validated plan into parameterized PostgreSQL.
//
// Four statement shapes share one join topology and one WHERE builder:
//
//   - BuildList: paginated, ordered projection of inventory records
//   - BuildCount: total number of matching records
//   - BuildGroupCount: record counts grouped by a whitelisted dimension
//   - BuildListByIDs: paginated projection restricted to an explicit id set
//
// Every user-derived value is bound as a positional parameter ($1, $2, ...). Column
// names, sort fields, group dimensions and missing-data targets come only from the
// vocabulary whitelists, so no user text ever reaches the SQL string.
package querybuilder
