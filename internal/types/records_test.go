package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_StringRendersPlaceholder(t *testing.T) {
	assert.Equal(t, "Not found", MissingField().String())
	assert.Equal(t, "Go Developer", FoundField("Go Developer").String())
}

func TestField_JSONRoundTrip(t *testing.T) {
	record := ResumeRecord{
		Name:            FoundField("Mia Chen"),
		Email:           MissingField(),
		ExperienceYears: 4.5,
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name":"Mia Chen"`)
	assert.Contains(t, string(data), `"email":"Not found"`)

	var decoded ResumeRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Name.Found)
	assert.False(t, decoded.Email.Found)
	assert.Equal(t, 4.5, decoded.ExperienceYears)
}

func TestBreakdown_KeepsBM25Key(t *testing.T) {
	// The keyword-overlap signal keeps its historical "bm25" wire name.
	data, err := json.Marshal(Breakdown{Keyword: 50})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"bm25":50`)
}
