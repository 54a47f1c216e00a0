// Package similarity computes the four text-similarity signals between a
// resume skill blob and a job requirement blob: lexical tf-idf cosine,
// semantic embedding similarity, keyword overlap, and fuzzy token matching.
// All signals are scored independently and degrade to 0 rather than failing.
package similarity

import (
	"context"
	"math"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/textproc"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// embeddingPairThreshold discards weakly related phrase pairs before
// averaging; without it, unrelated skill pairs drag the mean toward noise.
const embeddingPairThreshold = 0.6

// Scores holds the four similarity signals. TFIDF and Embeddings are bounded
// by [0,1]; Keyword can reach 2 through the vocabulary boost and Fuzzy can
// exceed 1 for highly redundant token sets.
type Scores struct {
	TFIDF      float64
	Embeddings float64
	Keyword    float64
	Fuzzy      float64
}

// Engine computes similarity scores. It is read-only after construction and
// safe for concurrent use; the embedder is expected to be cached.
type Engine struct {
	embedder embedding.Embedder
	vocab    *vocabulary.Vocabulary
}

// NewEngine creates a similarity engine backed by the given embedder and
// skill vocabulary.
func NewEngine(embedder embedding.Embedder, vocab *vocabulary.Vocabulary) *Engine {
	return &Engine{embedder: embedder, vocab: vocab}
}

// Compare scores resume skills against job requirements. Embedding provider
// failures skip the affected pairs; every other signal is pure computation.
func (e *Engine) Compare(ctx context.Context, resumeSkills, jobSkills string) Scores {
	resumePhrases := normalizePhrases(textproc.TokenizeSkills(resumeSkills))
	jobPhrases := normalizePhrases(textproc.TokenizeSkills(jobSkills))

	return Scores{
		TFIDF:      tfidfCosine(resumeSkills, jobSkills),
		Embeddings: e.embeddingScore(ctx, resumePhrases, jobPhrases),
		Keyword:    keywordOverlap(resumePhrases, jobPhrases, e.vocab),
		Fuzzy:      fuzzyTokenScore(resumeSkills, jobSkills),
	}
}

// embeddingScore embeds every (resume, job) phrase pair, keeps pairs whose
// cosine similarity clears the threshold, and returns the mean of kept
// similarities (0 when none clear it). A phrase that fails to embed drops
// out of the loop without failing the score.
func (e *Engine) embeddingScore(ctx context.Context, resumePhrases, jobPhrases []string) float64 {
	sum := 0.0
	kept := 0
	for _, r := range resumePhrases {
		rv, err := e.embedder.Embed(ctx, r)
		if err != nil {
			log.Warn().Err(err).Str("phrase", r).Msg("embedding lookup failed, skipping phrase")
			continue
		}
		for _, j := range jobPhrases {
			jv, err := e.embedder.Embed(ctx, j)
			if err != nil {
				log.Warn().Err(err).Str("phrase", j).Msg("embedding lookup failed, skipping phrase")
				continue
			}
			if sim := cosine(rv, jv); sim > embeddingPairThreshold {
				sum += sim
				kept++
			}
		}
	}
	if kept == 0 {
		return 0
	}
	return sum / float64(kept)
}

// normalizePhrases lowercases and trims skill phrases, keeping order and
// duplicates. Set-based signals deduplicate on their own.
func normalizePhrases(phrases []string) []string {
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// cosine computes cosine similarity between two vectors, 0 for mismatched or
// zero-magnitude input.
func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
