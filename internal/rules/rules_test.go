package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEducationScore_ExactMatch(t *testing.T) {
	assert.Equal(t, 1.0, EducationScore("bachelor's", "bachelor's"))
}

func TestEducationScore_NearMatchTerms(t *testing.T) {
	// "bachelor" vs "bachelor's" clears the 0.7 pair ratio.
	assert.Equal(t, 1.0, EducationScore("bachelor, bachelor's", "bachelor's"))
}

func TestEducationScore_Mismatch(t *testing.T) {
	assert.Equal(t, 0.5, EducationScore("bachelor's", "phd"))
	assert.Equal(t, 0.5, EducationScore("", ""))
}

func TestEducationScore_IsBinary(t *testing.T) {
	cases := [][2]string{
		{"bachelor's", "bachelor's"},
		{"bachelor, master", "phd"},
		{"", "master's"},
		{"Not found", "bachelor's"},
	}
	for _, c := range cases {
		score := EducationScore(c[0], c[1])
		assert.Contains(t, []float64{1.0, 0.5}, score)
	}
}

func TestEducationScore_SentinelBothSides(t *testing.T) {
	// When neither side has education keywords the sentinel reaches the
	// comparison as a literal term, and two sentinels match each other
	// perfectly: missing-vs-missing scores full credit.
	assert.Equal(t, 1.0, EducationScore("Not found", "Not found"))
}

func TestEducationScore_SentinelAgainstRealDegree(t *testing.T) {
	assert.Equal(t, 0.5, EducationScore("Not found", "bachelor's"))
}

func TestExperienceScore_NoRequirementIsFullCredit(t *testing.T) {
	assert.Equal(t, 1.0, ExperienceScore(0, 0, 0))
	assert.Equal(t, 1.0, ExperienceScore(10, 0, 0))
}

func TestExperienceScore_Ratio(t *testing.T) {
	assert.InDelta(t, 0.25, ExperienceScore(1, 4, 0), 1e-9)
	assert.InDelta(t, 0.5, ExperienceScore(2.5, 5, 0), 1e-9)
}

func TestExperienceScore_ClampsToOne(t *testing.T) {
	assert.Equal(t, 1.0, ExperienceScore(8, 3, 0))
}

func TestExperienceScore_FuzzyBonus(t *testing.T) {
	assert.InDelta(t, 0.55, ExperienceScore(1, 4, 0.6), 1e-9)

	// The threshold is strict.
	assert.InDelta(t, 0.25, ExperienceScore(1, 4, 0.5), 1e-9)

	// The bonus never pushes past the clamp.
	assert.Equal(t, 1.0, ExperienceScore(2.8, 3, 0.9))
}

func TestExperienceScore_Monotonic(t *testing.T) {
	prev := 0.0
	for years := 0.0; years <= 5; years++ {
		score := ExperienceScore(years, 5, 0)
		assert.GreaterOrEqual(t, score, prev)
		prev = score
	}
}

func TestTotal(t *testing.T) {
	assert.InDelta(t, 1.0, Total(1.0, 1.0), 1e-9)
	assert.InDelta(t, 0.8, Total(1.0, 0.5), 1e-9)
	assert.InDelta(t, 0.6*0.25+0.4*0.5, Total(0.25, 0.5), 1e-9)
}
