package similarity

import (
	"github.com/jonathan/resume-matcher/internal/textproc"
)

const fuzzyPairThreshold = 0.5

// fuzzyTokenScore counts cross-set token pairs whose character-sequence ratio
// exceeds 0.5 and divides by the larger set size. The count is many-to-many
// (one token can pair with several), so the value can exceed a true Jaccard
// index and is clamped by callers only through the ensemble weights.
func fuzzyTokenScore(resumeText, jobText string) float64 {
	resumeTokens := textproc.WordSet(textproc.Normalize(resumeText))
	jobTokens := textproc.WordSet(textproc.Normalize(jobText))

	pairs := 0
	for r := range resumeTokens {
		for j := range jobTokens {
			if textproc.SequenceRatio(r, j) > fuzzyPairThreshold {
				pairs++
			}
		}
	}

	denom := len(resumeTokens)
	if len(jobTokens) > denom {
		denom = len(jobTokens)
	}
	if denom < 1 {
		denom = 1
	}
	return float64(pairs) / float64(denom)
}
