// Package planner converts a natural-language inventory question into a
// validated plan.Plan.
//
// Two planners share one normalization and validation tail:
//
//   - Heuristic: deterministic keyword and phrase rules over the normalized
//     question. It needs no network and is always available.
//   - Planner: asks a language model for a JSON candidate, recovers it through
//     an ordered parse chain (direct, outermost object, repaired), and falls
//     back to the heuristic on any transport or parse failure.
//
// Whatever the source, the candidate goes through Normalize, which coerces the
// loose shapes models produce (arrays, nested objects, string booleans) into the
// canonical plan and enforces the caller's pagination, and then through
// plan.Validate. A candidate that still fails validation is a hard error
// (ErrInvalidPlan); it is never silently replaced.
package planner
