// Package plan defines the structured query plan produced from a natural-language
// question, and the strict validation every plan passes before execution.
//
// A Plan is a pure value: it names an intent, a set of optional filter criteria and
// the pagination, sorting and semantic parameters needed to run it. Nothing in a
// Plan is ever concatenated into SQL; the query builder resolves every field through
// the vocabulary whitelists and binds every value as a parameter.
//
// Validation is declared with go-playground/validator struct tags, plus a handful of
// cross-field rules that tags cannot express (brand versus brands, missing and
// groupBy presence tied to the intent, missing kind agreeing with its field).
//
// Example:
//
//	p := plan.New(plan.IntentCount, plan.Pagination{Page: 1, Limit: 20}, 10)
//	p.Filters.Brand = plan.String("Avigilon")
//	if err := plan.Validate(p, 100); err != nil {
//	    return err
//	}
package plan
