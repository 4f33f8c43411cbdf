package qdrant

import (
	"testing"

	qdrant "github.com/qdrant/go-client/qdrant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resguardo/inventory-query/v1/vectordb"
)

func TestConvertFilterSet_Nil(t *testing.T) {
	assert.Nil(t, convertFilterSet(nil))
	assert.Nil(t, convertFilterSet(&vectordb.FilterSet{}))
	assert.Nil(t, convertFilterSet(vectordb.NewFilterSet(vectordb.Must())))
}

func TestConvertFilterSet_EnabledMatch(t *testing.T) {
	f := convertFilterSet(vectordb.NewFilterSet(vectordb.Must(vectordb.NewMatch("enabled", true))))
	require.NotNil(t, f)
	require.Len(t, f.Must, 1)

	field := f.Must[0].GetField()
	require.NotNil(t, field)
	assert.Equal(t, "enabled", field.GetKey())
	assert.True(t, field.GetMatch().GetBoolean())
}

func TestConvertMatch_ValueTypes(t *testing.T) {
	assert.Equal(t, "HP", convertMatch(vectordb.NewMatch("brand", "HP")).GetField().GetMatch().GetKeyword())
	assert.Equal(t, int64(7), convertMatch(vectordb.NewMatch("id", 7)).GetField().GetMatch().GetInteger())
	assert.Equal(t, int64(9), convertMatch(vectordb.NewMatch("id", float64(9))).GetField().GetMatch().GetInteger())
	assert.Nil(t, convertMatch(vectordb.NewMatch("price", 1.5i)))
}

func TestConvertMatchAny(t *testing.T) {
	c := convertMatchAny(vectordb.NewMatchAny("status", "ALTA", "BAJA"))
	require.NotNil(t, c)
	assert.Equal(t, []string{"ALTA", "BAJA"}, c.GetField().GetMatch().GetKeywords().GetStrings())

	c = convertMatchAny(vectordb.NewMatchAny("id", 1, int64(2)))
	require.NotNil(t, c)
	assert.Equal(t, []int64{1, 2}, c.GetField().GetMatch().GetIntegers().GetIntegers())

	assert.Nil(t, convertMatchAny(vectordb.NewMatchAny("status")))
	assert.Nil(t, convertMatchAny(vectordb.NewMatchAny("status", "ALTA", 3)))
}

func TestConvertFilterSet_SkipsUnsupported(t *testing.T) {
	f := convertFilterSet(vectordb.NewFilterSet(
		vectordb.Must(
			vectordb.NewMatch("enabled", true),
			vectordb.NewMatch("x", struct{}{}),
			vectordb.NewMatchAny("brand", "HP", "DELL"),
		),
	))
	require.NotNil(t, f)
	require.Len(t, f.Must, 2)
	assert.Equal(t, []string{"HP", "DELL"}, f.Must[1].GetField().GetMatch().GetKeywords().GetStrings())

	assert.Nil(t, convertFilterSet(vectordb.NewFilterSet(vectordb.Must(vectordb.NewMatch("x", struct{}{})))))
}

func TestPointIDs(t *testing.T) {
	num := newPointID("42")
	assert.Equal(t, uint64(42), num.GetNum())

	uuid := newPointID("00000000-0000-0000-0000-000000000001")
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", uuid.GetUuid())

	id, err := extractPointID(qdrant.NewIDNum(1234))
	require.NoError(t, err)
	assert.Equal(t, "1234", id)

	_, err = extractPointID(nil)
	assert.Error(t, err)
}

func TestParseSearchResults(t *testing.T) {
	resp := []*qdrant.ScoredPoint{
		{
			Id:    qdrant.NewIDNum(5),
			Score: 0.9,
			Payload: map[string]*qdrant.Value{
				"enabled": {Kind: &qdrant.Value_BoolValue{BoolValue: true}},
				"name":    {Kind: &qdrant.Value_StringValue{StringValue: "Cámara domo"}},
				"tags": {Kind: &qdrant.Value_ListValue{ListValue: &qdrant.ListValue{
					Values: []*qdrant.Value{{Kind: &qdrant.Value_StringValue{StringValue: "cctv"}}},
				}}},
			},
		},
		{Id: qdrant.NewID("00000000-0000-0000-0000-000000000002"), Score: 0.5},
	}

	results, err := parseSearchResults(resp)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "5", results[0].ID)
	assert.Equal(t, float32(0.9), results[0].Score)
	assert.Equal(t, map[string]any{"enabled": true, "name": "Cámara domo", "tags": []any{"cctv"}}, results[0].Payload)
	assert.Nil(t, results[1].Payload)
}

func TestValidateSearchInput(t *testing.T) {
	assert.Error(t, validateSearchInput("", []float32{1}, 1))
	assert.Error(t, validateSearchInput("c", nil, 1))
	assert.Error(t, validateSearchInput("c", []float32{1}, 0))
	assert.NoError(t, validateSearchInput("c", []float32{1}, 1))
}
