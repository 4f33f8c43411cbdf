package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCandidateDirect(t *testing.T) {
	obj, strategy, err := parseCandidate(`{"intent":"count"}`)
	require.NoError(t, err)
	assert.Equal(t, "direct", strategy)
	assert.Equal(t, "count", obj["intent"])
}

func TestParseCandidateSubstring(t *testing.T) {
	content := "Claro, aquí está el plan:\n```json\n{\"intent\": \"list\", \"filters\": {\"brand\": \"HP\"}}\n```\nSaludos."
	obj, strategy, err := parseCandidate(content)
	require.NoError(t, err)
	assert.Equal(t, "substring", strategy)
	assert.Equal(t, "list", obj["intent"])
}

func TestParseCandidateRepaired(t *testing.T) {
	content := `{
  intent: "group_count", // agrupado
  "groupBy": "brand",
  "filters": {"url": "http://x.test/a", "brands": ["HP", "DELL",],},
}`
	obj, strategy, err := parseCandidate(content)
	require.NoError(t, err)
	assert.Equal(t, "repaired", strategy)
	assert.Equal(t, "group_count", obj["intent"])

	filters := obj["filters"].(map[string]any)
	assert.Equal(t, "http://x.test/a", filters["url"])
	assert.Equal(t, []any{"HP", "DELL"}, filters["brands"])
}

func TestParseCandidateFailsTyped(t *testing.T) {
	for _, content := range []string{"", "no hay plan", "[1,2,3]", "{intent: }"} {
		_, _, err := parseCandidate(content)
		assert.ErrorIs(t, err, ErrUnparsableResponse, content)
	}
}

func TestStripLineCommentsKeepsStrings(t *testing.T) {
	assert.Equal(t, "{\"a\": \"b//c\", \n}", stripLineComments("{\"a\": \"b//c\", // note\n}"))
}
