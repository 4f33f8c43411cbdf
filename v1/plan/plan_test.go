package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPlan() *Plan {
	return New(IntentList, Pagination{Page: 1, Limit: 20}, 10)
}

func TestValidateAcceptsDefaults(t *testing.T) {
	require.NoError(t, Validate(validPlan(), 100))
}

func TestValidateRejectsUnknownIntent(t *testing.T) {
	p := validPlan()
	p.Intent = "delete"
	err := Validate(p, 100)
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "intent")
}

func TestValidateBrandXorBrands(t *testing.T) {
	p := validPlan()
	p.Filters.Brand = String("HP")
	p.Filters.Brands = []string{"HP", "DELL"}
	assert.ErrorIs(t, Validate(p, 100), ErrInvalid)

	p.Filters.Brand = nil
	assert.NoError(t, Validate(p, 100))

	p.Filters.Brands = []string{"HP"}
	assert.ErrorIs(t, Validate(p, 100), ErrInvalid)
}

func TestValidateIntentCoupledFields(t *testing.T) {
	p := validPlan()
	p.Intent = IntentMissing
	assert.ErrorIs(t, Validate(p, 100), ErrInvalid)

	p.Missing = &MissingSpec{Kind: "relation", Field: "location"}
	assert.NoError(t, Validate(p, 100))

	p.Missing = &MissingSpec{Kind: "field", Field: "location"}
	assert.ErrorIs(t, Validate(p, 100), ErrInvalid)

	p = validPlan()
	p.Intent = IntentGroupCount
	assert.ErrorIs(t, Validate(p, 100), ErrInvalid)
	p.GroupBy = String("brand")
	assert.NoError(t, Validate(p, 100))

	p.Intent = IntentCount
	assert.ErrorIs(t, Validate(p, 100), ErrInvalid)
}

func TestValidateBounds(t *testing.T) {
	p := validPlan()
	p.Pagination.Limit = 101
	assert.ErrorIs(t, Validate(p, 100), ErrInvalid)

	p = validPlan()
	p.Pagination.Page = 0
	assert.ErrorIs(t, Validate(p, 100), ErrInvalid)

	p = validPlan()
	p.Semantic.TopK = 0
	assert.ErrorIs(t, Validate(p, 100), ErrInvalid)

	p = validPlan()
	p.Sort = nil
	assert.ErrorIs(t, Validate(p, 100), ErrInvalid)

	p = validPlan()
	p.Filters.DateFrom = String("2024-13-01")
	assert.ErrorIs(t, Validate(p, 100), ErrInvalid)
}

func TestToMapKeepsExplicitNullEnabled(t *testing.T) {
	p := validPlan()
	p.Filters.Enabled = nil
	m, err := ToMap(p)
	require.NoError(t, err)

	filters := m["filters"].(map[string]any)
	v, present := filters["enabled"]
	assert.True(t, present)
	assert.Nil(t, v)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Pagination{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, Pagination{Page: 3, Limit: 20}.Offset())
}
