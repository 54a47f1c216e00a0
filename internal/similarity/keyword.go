package similarity

import (
	"math"

	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// keywordOverlap scores the set overlap of the two skill-phrase lists:
// |intersection| / |union| as a mock inverse-document-frequency term, boosted
// by 1 + the fraction of intersection members found in the vocabulary. Not
// BM25: there is no term-frequency or length normalization.
func keywordOverlap(resumePhrases, jobPhrases []string, vocab *vocabulary.Vocabulary) float64 {
	resumeSet := phraseSet(resumePhrases)
	jobSet := phraseSet(jobPhrases)

	var intersection []string
	union := len(resumeSet)
	for phrase := range jobSet {
		if _, ok := resumeSet[phrase]; ok {
			intersection = append(intersection, phrase)
		} else {
			union++
		}
	}

	base := float64(len(intersection)) / math.Max(float64(union), 1)

	known := 0
	for _, phrase := range intersection {
		if vocab.Contains(phrase) {
			known++
		}
	}
	boost := 1.0
	if len(intersection) > 0 {
		boost += float64(known) / float64(len(intersection))
	}

	return base * boost
}

func phraseSet(phrases []string) map[string]struct{} {
	set := make(map[string]struct{}, len(phrases))
	for _, p := range phrases {
		set[p] = struct{}{}
	}
	return set
}
