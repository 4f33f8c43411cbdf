// Package executor runs validated plans and shapes their results.
//
// Each intent maps to a fixed set of statements:
//
//	count        BuildCount                       aggregation, metric=count
//	group_count  BuildGroupCount, total = sum     aggregation with groupBy and rows
//	missing      BuildCount + BuildList           mixed
//	search       Retrieve, then BuildListByIDs    list, total = candidate count
//	list         BuildCount + BuildList           list
//
// Count and list statements for one plan run concurrently. Any failure is
// returned wrapped in ErrQueryExecution.
package executor
