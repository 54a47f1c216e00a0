// Package extract pulls structured candidate and job records out of
// semi-structured resume and job-posting text. Every field degrades to an
// absent value instead of failing: downstream scoring must always receive a
// complete record.
package extract

import (
	"regexp"

	"github.com/jonathan/resume-matcher/internal/ner"
)

// Extractor holds the entity recognizer shared by resume and job extraction.
// It is read-only after construction and safe for concurrent use.
type Extractor struct {
	recognizer ner.Recognizer
}

// New creates an extractor backed by the given recognizer.
func New(recognizer ner.Recognizer) *Extractor {
	return &Extractor{recognizer: recognizer}
}

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{2,4}`)

	// Section headers and their terminators. Matching is substring-based, the
	// same layout heuristic the scoring was tuned against.
	skillsHeaderRe  = regexp.MustCompile(`(?i)skills?`)
	skillsTermRe    = regexp.MustCompile(`(?i)languages?|certificates?|projects?`)
	workHeaderRe    = regexp.MustCompile(`(?i)work experience?`)
	workTermRe      = regexp.MustCompile(`(?i)skills?|education`)
	reqSkillsHeadRe = regexp.MustCompile(`(?i)(?:required|key)\s*skills?`)
	reqSkillsTermRe = regexp.MustCompile(`(?i)experience`)

	// "N years of experience" mentions, applied to lowercased text.
	yearsMentionRe = regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)\s*(?:of\s+)?experienc`)

	// Month-year ranges like "Sep 2020 – Mar 2023" or "Jan 2021 - present".
	dateRangeRe = regexp.MustCompile(`([A-Za-z]{3})\s+(\d{4})\s*[–-]?\s*([A-Za-z]{3}\s+\d{4}|present)`)
)

// sectionAfter returns the text between the first occurrence of header and
// the first subsequent occurrence of terminator (or end of text).
func sectionAfter(text string, header, terminator *regexp.Regexp) (string, bool) {
	loc := header.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	span := text[loc[1]:]
	if term := terminator.FindStringIndex(span); term != nil {
		span = span[:term[0]]
	}
	return span, true
}

// entities runs the recognizer, degrading to no entities on failure. A model
// error must not abort extraction; the regex fallbacks still apply.
func (e *Extractor) entities(text string) []ner.Entity {
	ents, err := e.recognizer.Entities(text)
	if err != nil {
		return nil
	}
	return ents
}
