package match

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/extract"
	"github.com/jonathan/resume-matcher/internal/ner"
	"github.com/jonathan/resume-matcher/internal/similarity"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

type noopRecognizer struct{}

func (noopRecognizer) Entities(string) ([]ner.Entity, error) { return nil, nil }

type fixtureEmbedder struct{}

func (fixtureEmbedder) Embed(_ context.Context, phrase string) ([]float32, error) {
	vectors := map[string][]float32{
		"python": {1, 0, 0, 0},
		"sql":    {0, 1, 0, 0},
		"linux":  {0, 0, 1, 0},
		"docker": {0, 0, 0, 1},
	}
	vec, ok := vectors[phrase]
	if !ok {
		return nil, errors.New("unknown phrase: " + phrase)
	}
	return vec, nil
}

func newTestEngine(weights Weights) *Engine {
	extractor := extract.New(noopRecognizer{})
	sim := similarity.NewEngine(fixtureEmbedder{}, vocabulary.Fallback())
	return NewEngine(extractor, sim, weights)
}

func TestDefaultWeights_SumToOne(t *testing.T) {
	w := DefaultWeights()

	assert.InDelta(t, 1.0, w.TFIDF+w.Embeddings+w.Keyword+w.Fuzzy, 1e-9)
	assert.InDelta(t, 1.0, w.Skills+w.Rules, 1e-9)
}

func TestScore_PartialOverlapScenario(t *testing.T) {
	engine := newTestEngine(DefaultWeights())

	resume := types.ResumeRecord{
		Skills:          types.FoundField("Python; SQL; Linux"),
		ExperienceYears: 5,
		Education:       types.FoundField("bachelor"),
	}
	job := types.JobRecord{
		ReqSkills:    types.FoundField("Python, SQL, Docker"),
		ReqExpYears:  3,
		ReqEducation: types.FoundField("bachelor's"),
	}

	result := engine.Score(context.Background(), resume, job)

	assert.Greater(t, result.TotalPercent, 0.0)
	assert.Less(t, result.TotalPercent, 100.0)

	assert.Greater(t, result.Breakdown.TFIDF, 0.0)
	assert.Less(t, result.Breakdown.TFIDF, 100.0)
	assert.InDelta(t, 100.0, result.Breakdown.Embeddings, 1e-9)
	// 2/4 overlap doubled by full vocabulary membership.
	assert.InDelta(t, 100.0, result.Breakdown.Keyword, 1e-9)
	assert.InDelta(t, 66.67, result.Breakdown.Fuzzy, 0.01)
	// Experience 5/3 clamps to 1.0, education terms pair up: full rule credit.
	assert.InDelta(t, 100.0, result.Breakdown.Rules, 1e-9)
}

func TestScore_Deterministic(t *testing.T) {
	engine := newTestEngine(DefaultWeights())

	resume := types.ResumeRecord{
		Skills:    types.FoundField("Python; SQL"),
		Education: types.FoundField("master"),
	}
	job := types.JobRecord{
		ReqSkills:    types.FoundField("Python, Docker"),
		ReqExpYears:  2,
		ReqEducation: types.FoundField("master's"),
	}

	first := engine.Score(context.Background(), resume, job)
	second := engine.Score(context.Background(), resume, job)

	assert.Equal(t, first, second)
}

func TestScore_AllFieldsMissing(t *testing.T) {
	engine := newTestEngine(DefaultWeights())

	result := engine.Score(context.Background(), types.ResumeRecord{}, types.JobRecord{})

	// The sentinel flows into every comparison: identical sentinels match
	// each other, so the result is well above zero despite empty input.
	assert.Greater(t, result.TotalPercent, 0.0)
	assert.LessOrEqual(t, result.TotalPercent, 100.0)
	assert.Zero(t, result.Breakdown.Embeddings)
	assert.InDelta(t, 100.0, result.Breakdown.Rules, 1e-9)
}

func TestScore_ClampsPercentAtHundred(t *testing.T) {
	// The keyword signal reaches 2.0 on full vocabulary overlap; inflated
	// weights would push the raw percentage past 100 without the clamp.
	weights := DefaultWeights()
	weights.Keyword = 1.0
	weights.Skills = 1.0
	engine := newTestEngine(weights)

	resume := types.ResumeRecord{Skills: types.FoundField("Python; SQL; Linux")}
	job := types.JobRecord{ReqSkills: types.FoundField("Python, SQL, Linux")}

	result := engine.Score(context.Background(), resume, job)

	assert.Equal(t, 100.0, result.TotalPercent)
	// The breakdown keeps the raw value.
	assert.InDelta(t, 200.0, result.Breakdown.Keyword, 1e-9)
}

func TestScoreText_ExtractsBothSides(t *testing.T) {
	engine := newTestEngine(DefaultWeights())

	resumeText := "Alice Smith\nalice@example.com\nSkills\n• Python\n• SQL\n"
	jobText := "Position: Backend Developer\nRequired Skills:\n• Python\n• SQL\nExperience: 2 years of experience"

	resume, job, result := engine.ScoreText(context.Background(), resumeText, jobText)

	assert.Equal(t, "Alice Smith", resume.Name.String())
	assert.Equal(t, "Backend Developer", job.Position.String())
	assert.Equal(t, 2, job.ReqExpYears)
	assert.Greater(t, result.TotalPercent, 0.0)
}

func TestScoreBatch_RanksByDescendingScore(t *testing.T) {
	engine := newTestEngine(DefaultWeights())

	resumes := []BatchResume{
		{Name: "bob.txt", Text: "Bob Jones\nbob@example.com\nSkills\n• Knitting\n• Pottery\n"},
		{Name: "alice.txt", Text: "Alice Smith\nalice@example.com\nSkills\n• Python\n• SQL\n• Linux\n"},
	}
	jobText := "Position: Backend Developer\nRequired Skills:\n• Python\n• SQL\n• Linux\nExperience: 2 years of experience"

	ranked, err := engine.ScoreBatch(context.Background(), resumes, jobText)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, "alice.txt", ranked[0].Name)
	assert.Equal(t, "bob.txt", ranked[1].Name)
	assert.GreaterOrEqual(t, ranked[0].Result.TotalPercent, ranked[1].Result.TotalPercent)
	assert.Equal(t, "Alice Smith", ranked[0].Resume.Name.String())
}

func TestScoreBatch_Empty(t *testing.T) {
	engine := newTestEngine(DefaultWeights())

	ranked, err := engine.ScoreBatch(context.Background(), nil, "any job")
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestScoreBatch_CancelledContext(t *testing.T) {
	engine := newTestEngine(DefaultWeights())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.ScoreBatch(ctx, []BatchResume{{Name: "a", Text: "text"}}, "job")
	assert.Error(t, err)
}
