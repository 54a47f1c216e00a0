// Package rules scores the non-textual hiring criteria: education fit and
// experience fit. Both operate on extracted record fields, including the
// "Not found" sentinel, which deliberately flows through the same comparisons
// as real data.
package rules

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/textproc"
)

const (
	// educationPairThreshold qualifies a cross-set term pair as matching.
	educationPairThreshold = 0.7
	// educationOverlapThreshold flips the binary education score.
	educationOverlapThreshold = 0.5

	// experienceBonus is added when the fuzzy similarity signal indicates
	// the resume is textually relevant to the posting.
	experienceBonus          = 0.3
	experienceBonusThreshold = 0.5

	experienceWeight = 0.6
	educationWeight  = 0.4
)

// EducationScore compares the comma-joined degree keyword lists. Terms from
// both sides are paired by character-sequence ratio; when the fraction of
// matching pairs exceeds the overlap threshold the score is 1.0, otherwise
// 0.5. The score is binary, never continuous.
func EducationScore(resumeEducation, jobEducation string) float64 {
	resumeTerms := splitTerms(resumeEducation)
	jobTerms := splitTerms(jobEducation)

	pairs := 0
	for _, r := range resumeTerms {
		for _, j := range jobTerms {
			if textproc.SequenceRatio(r, j) > educationPairThreshold {
				pairs++
			}
		}
	}

	denom := len(resumeTerms)
	if len(jobTerms) > denom {
		denom = len(jobTerms)
	}
	if denom < 1 {
		denom = 1
	}

	if float64(pairs)/float64(denom) > educationOverlapThreshold {
		return 1.0
	}
	return 0.5
}

// ExperienceScore rates candidate years against the requirement. No
// requirement means full credit. The fuzzy similarity signal grants a flat
// bonus when it clears its threshold; the result is clamped to 1.0.
func ExperienceScore(candidateYears float64, requiredYears int, fuzzyScore float64) float64 {
	score := 1.0
	if requiredYears > 0 {
		score = candidateYears / float64(requiredYears)
	}
	if fuzzyScore > experienceBonusThreshold {
		score += experienceBonus
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// Total blends the experience and education sub-scores 0.6/0.4.
func Total(experienceScore, educationScore float64) float64 {
	return experienceWeight*experienceScore + educationWeight*educationScore
}

// splitTerms lowercases and splits a comma-joined keyword list into trimmed
// terms. An all-empty input yields no terms.
func splitTerms(s string) []string {
	var terms []string
	for _, part := range strings.Split(strings.ToLower(s), ",") {
		if part = strings.TrimSpace(part); part != "" {
			terms = append(terms, part)
		}
	}
	return terms
}
