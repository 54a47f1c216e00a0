package ner

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// VocabularyRuler is a rule-based entity matcher seeded from the skill
// vocabulary. It augments an inner recognizer with SKILL entities for every
// vocabulary term found in the text, leaving the inner entities untouched.
// The combined output keeps the inner entities first so document-order
// selection (e.g. first PERSON entity) is unaffected.
type VocabularyRuler struct {
	inner    Recognizer
	patterns []skillPattern
}

type skillPattern struct {
	skill string
	re    *regexp.Regexp
}

// NewVocabularyRuler compiles one matcher per vocabulary skill. Skills may
// contain regex metacharacters ("c++"), so word boundaries are expressed with
// explicit character classes instead of \b.
func NewVocabularyRuler(inner Recognizer, vocab *vocabulary.Vocabulary) *VocabularyRuler {
	patterns := make([]skillPattern, 0, vocab.Len())
	for _, skill := range vocab.Skills() {
		re := regexp.MustCompile(`(?i)(?:^|[^a-z0-9+#])` + regexp.QuoteMeta(skill) + `(?:[^a-z0-9+#]|$)`)
		patterns = append(patterns, skillPattern{skill: skill, re: re})
	}
	return &VocabularyRuler{inner: inner, patterns: patterns}
}

// Entities returns the inner recognizer's entities followed by one SKILL
// entity per matched vocabulary term. Inner recognizer failures degrade to
// rule-based matches only; skill extraction should survive a model error.
func (r *VocabularyRuler) Entities(text string) ([]Entity, error) {
	entities, err := r.inner.Entities(text)
	if err != nil {
		entities = nil
	}

	lower := strings.ToLower(text)
	for _, p := range r.patterns {
		if p.re.MatchString(lower) {
			entities = append(entities, Entity{Text: p.skill, Label: LabelSkill})
		}
	}
	return entities, nil
}
