package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestMatchRunType(t *testing.T) {
	// Verify MatchRun struct can be instantiated
	run := MatchRun{
		Position:     "Backend Developer",
		ReqExpYears:  3,
		ReqEducation: "bachelor's",
	}

	assert.Equal(t, "Backend Developer", run.Position)
	assert.Equal(t, 3, run.ReqExpYears)
	assert.True(t, run.CreatedAt.IsZero())
}

func TestMatchResultRow_BreakdownRoundTrip(t *testing.T) {
	row := MatchResultRow{
		ResumeName:   "alice.pdf",
		TotalPercent: 87.5,
		Breakdown: types.Breakdown{
			TFIDF:      80,
			Embeddings: 95,
			Keyword:    100,
			Fuzzy:      66.67,
			Rules:      100,
		},
	}

	assert.Equal(t, 87.5, row.TotalPercent)
	assert.Equal(t, 66.67, row.Breakdown.Fuzzy)
}

func TestBreakdownColumn_RoundTrip(t *testing.T) {
	in := types.Breakdown{
		TFIDF:      43.17,
		Embeddings: 100,
		Keyword:    100,
		Fuzzy:      66.67,
		Rules:      100,
	}

	data, err := marshalBreakdown(in)
	require.NoError(t, err)

	// The stored keys are the API breakdown keys.
	assert.JSONEq(t,
		`{"tfidf":43.17,"embeddings":100,"bm25":100,"fuzzy":66.67,"rules":100}`,
		string(data))

	var out types.Breakdown
	require.NoError(t, scanBreakdown(data, &out))
	assert.Equal(t, in, out)
}

func TestScanBreakdown_NullColumn(t *testing.T) {
	var out types.Breakdown
	require.NoError(t, scanBreakdown(nil, &out))
	assert.Zero(t, out)
}

func TestScanBreakdown_MalformedColumn(t *testing.T) {
	var out types.Breakdown
	err := scanBreakdown([]byte("{not json"), &out)
	assert.ErrorContains(t, err, "failed to parse breakdown")
}
