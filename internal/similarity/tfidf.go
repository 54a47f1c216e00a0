package similarity

import (
	"math"
	"strings"

	"github.com/james-bowman/nlp"
	"github.com/james-bowman/nlp/measures/pairwise"
	"gonum.org/v1/gonum/mat"

	"github.com/jonathan/resume-matcher/internal/textproc"
)

// englishStopWords is the stop-word list applied before term weighting.
var englishStopWords = []string{
	"a", "about", "above", "after", "again", "all", "an", "and", "any", "are",
	"as", "at", "be", "because", "been", "before", "being", "below", "between",
	"both", "but", "by", "can", "did", "do", "does", "doing", "down", "during",
	"each", "few", "for", "from", "further", "had", "has", "have", "having",
	"he", "her", "here", "hers", "him", "his", "how", "if", "in", "into", "is",
	"it", "its", "just", "me", "more", "most", "my", "no", "nor", "not", "now",
	"of", "off", "on", "once", "only", "or", "other", "our", "out", "over",
	"own", "same", "she", "should", "so", "some", "such", "than", "that",
	"the", "their", "them", "then", "there", "these", "they", "this", "those",
	"through", "to", "too", "under", "until", "up", "very", "was", "we",
	"were", "what", "when", "where", "which", "while", "who", "why", "will",
	"with", "you", "your",
}

var stopWordSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(englishStopWords))
	for _, w := range englishStopWords {
		set[w] = struct{}{}
	}
	return set
}()

// tfidfCosine vectorizes the two normalized skill blobs with tf-idf term
// weighting over unigrams and bigrams and returns the cosine similarity of
// the two document vectors.
func tfidfCosine(resumeText, jobText string) float64 {
	docA := tfidfDocument(resumeText)
	docB := tfidfDocument(jobText)
	if docA == "" || docB == "" {
		return 0
	}

	counts, err := nlp.NewCountVectoriser().FitTransform(docA, docB)
	if err != nil {
		return 0
	}

	weighted := smoothedTfidf(mat.DenseCopyOf(counts))
	sim := pairwise.CosineSimilarity(weighted.ColView(0), weighted.ColView(1))
	if math.IsNaN(sim) {
		return 0
	}
	return math.Min(math.Max(sim, 0), 1)
}

// smoothedTfidf scales each term row of the term-by-document count matrix by
// idf = log((1+n)/(1+df)) + 1. The trailing +1 keeps terms present in every
// document weighted: with the unsmoothed log((1+n)/(1+df)) a term shared by
// both documents of a two-document corpus has df = n and idf 0, which zeroes
// exactly the terms the cosine needs.
func smoothedTfidf(counts *mat.Dense) *mat.Dense {
	terms, docs := counts.Dims()
	for i := 0; i < terms; i++ {
		df := 0
		for j := 0; j < docs; j++ {
			if counts.At(i, j) > 0 {
				df++
			}
		}
		idf := math.Log(float64(1+docs)/float64(1+df)) + 1
		for j := 0; j < docs; j++ {
			counts.Set(i, j, counts.At(i, j)*idf)
		}
	}
	return counts
}

// tfidfDocument normalizes text, drops stop words and single-character
// tokens, and appends bigram pseudo-terms. Bigrams are concatenated rather
// than joined with a separator so the vectoriser's letter-based tokeniser
// keeps them as single terms.
func tfidfDocument(text string) string {
	var tokens []string
	for _, token := range strings.Fields(textproc.Normalize(text)) {
		if len(token) < 2 {
			continue
		}
		if _, ok := stopWordSet[token]; ok {
			continue
		}
		tokens = append(tokens, token)
	}

	terms := make([]string, 0, 2*len(tokens))
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+tokens[i+1])
	}
	return strings.Join(terms, " ")
}
