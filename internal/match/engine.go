// Package match combines the similarity signals and rule scores into the
// final match percentage.
package match

import (
	"context"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/extract"
	"github.com/jonathan/resume-matcher/internal/rules"
	"github.com/jonathan/resume-matcher/internal/similarity"
	"github.com/jonathan/resume-matcher/internal/types"
)

// maxConcurrentScores bounds the batch fan-out; each score can hit the
// embedding provider, so unbounded parallelism would hammer it.
const maxConcurrentScores = 4

// Weights is the ensemble configuration. The four signal weights combine the
// skill signals; Skills and Rules blend that result with the rule score. The
// defaults are hand-tuned, not trained.
type Weights struct {
	TFIDF      float64 `json:"tfidf"`
	Embeddings float64 `json:"embeddings"`
	Keyword    float64 `json:"keyword"`
	Fuzzy      float64 `json:"fuzzy"`

	Skills float64 `json:"skills"`
	Rules  float64 `json:"rules"`
}

// DefaultWeights returns the standard ensemble weights.
func DefaultWeights() Weights {
	return Weights{
		TFIDF:      0.2,
		Embeddings: 0.5,
		Keyword:    0.15,
		Fuzzy:      0.15,
		Skills:     0.8,
		Rules:      0.2,
	}
}

// Engine scores extracted records. Safe for concurrent use.
type Engine struct {
	extractor  *extract.Extractor
	similarity *similarity.Engine
	weights    Weights
}

// NewEngine assembles a scoring engine.
func NewEngine(extractor *extract.Extractor, sim *similarity.Engine, weights Weights) *Engine {
	return &Engine{extractor: extractor, similarity: sim, weights: weights}
}

// Score rates a resume record against a job record. Missing fields carry the
// "Not found" sentinel into the comparison, matching extraction's
// degrade-not-fail contract.
func (e *Engine) Score(ctx context.Context, resume types.ResumeRecord, job types.JobRecord) types.MatchResult {
	scores := e.similarity.Compare(ctx, resume.Skills.String(), job.ReqSkills.String())

	education := rules.EducationScore(resume.Education.String(), job.ReqEducation.String())
	experience := rules.ExperienceScore(resume.ExperienceYears, job.ReqExpYears, scores.Fuzzy)
	ruleScore := rules.Total(experience, education)

	w := e.weights
	skills := w.TFIDF*scores.TFIDF +
		w.Embeddings*scores.Embeddings +
		w.Keyword*scores.Keyword +
		w.Fuzzy*scores.Fuzzy
	total := w.Skills*skills + w.Rules*ruleScore

	return types.MatchResult{
		// The weights sum to 1 but the keyword boost and fuzzy ratio can
		// exceed 1, so the percentage gets a defensive clamp. The breakdown
		// stays unclamped for transparency.
		TotalPercent: clampPercent(round2(total * 100)),
		Breakdown: types.Breakdown{
			TFIDF:      round2(scores.TFIDF * 100),
			Embeddings: round2(scores.Embeddings * 100),
			Keyword:    round2(scores.Keyword * 100),
			Fuzzy:      round2(scores.Fuzzy * 100),
			Rules:      round2(ruleScore * 100),
		},
	}
}

// ScoreText extracts both records from raw text and scores them.
func (e *Engine) ScoreText(ctx context.Context, resumeText, jobText string) (types.ResumeRecord, types.JobRecord, types.MatchResult) {
	resume := e.extractor.Resume(resumeText)
	job := e.extractor.Job(jobText)
	return resume, job, e.Score(ctx, resume, job)
}

// ExtractJob exposes job extraction for callers that need the record
// without scoring anything against it.
func (e *Engine) ExtractJob(text string) types.JobRecord {
	return e.extractor.Job(text)
}

// BatchResume is one entry in a batch scoring request.
type BatchResume struct {
	Name string
	Text string
}

// RankedMatch pairs a scored resume with its extraction output.
type RankedMatch struct {
	Name   string             `json:"name"`
	Resume types.ResumeRecord `json:"resume"`
	Result types.MatchResult  `json:"result"`
}

// ScoreBatch scores every resume against one job description and returns the
// results ordered by descending match percentage. Ties keep submission order.
func (e *Engine) ScoreBatch(ctx context.Context, resumes []BatchResume, jobText string) ([]RankedMatch, error) {
	job := e.extractor.Job(jobText)

	ranked := make([]RankedMatch, len(resumes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentScores)
	for i, item := range resumes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			resume := e.extractor.Resume(item.Text)
			ranked[i] = RankedMatch{
				Name:   item.Name,
				Resume: resume,
				Result: e.Score(ctx, resume, job),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Result.TotalPercent > ranked[b].Result.TotalPercent
	})
	return ranked, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func clampPercent(x float64) float64 {
	return math.Min(math.Max(x, 0), 100)
}
