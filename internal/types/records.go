// Package types defines the data model shared by extraction, scoring, and the API.
package types

import "encoding/json"

// NotFound is the placeholder rendered for fields that extraction could not fill.
// It is part of the external contract: downstream scoring treats it as ordinary
// text, so a missing field produces a low but defined similarity instead of an error.
const NotFound = "Not found"

// Field is an extracted text value with explicit found-ness. Using a struct
// instead of a bare sentinel string lets callers branch on absence without
// string-matching, while the JSON surface still renders "Not found".
type Field struct {
	Value string
	Found bool
}

// FoundField wraps a successfully extracted value.
func FoundField(value string) Field {
	return Field{Value: value, Found: true}
}

// MissingField returns an absent field.
func MissingField() Field {
	return Field{}
}

// String returns the extracted value, or the NotFound placeholder when absent.
func (f Field) String() string {
	if !f.Found {
		return NotFound
	}
	return f.Value
}

// MarshalJSON renders the field as its string form.
func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON parses a string, mapping the NotFound placeholder back to absent.
func (f *Field) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == NotFound {
		*f = MissingField()
		return nil
	}
	*f = FoundField(s)
	return nil
}

// ResumeRecord holds the structured fields extracted from a resume.
// Records are immutable once produced; nothing mutates them after extraction.
type ResumeRecord struct {
	Name  Field `json:"name"`
	Email Field `json:"email"`
	Phone Field `json:"phone"`
	// Skills is the free-text skills blob, possibly augmented with
	// entity-recognized skill tokens.
	Skills Field `json:"skills"`
	// ExperienceYears is summed additively across date ranges and explicit
	// "N years" mentions. Overlapping employment periods double-count;
	// that is the documented behaviour, not a defect to correct here.
	ExperienceYears float64 `json:"experience_years"`
	// Education is a comma-joined set of matched degree keywords.
	Education Field `json:"education"`
}

// JobRecord holds the structured fields extracted from a job description.
type JobRecord struct {
	Position     Field `json:"position"`
	ReqExpYears  int   `json:"req_exp_years"`
	ReqEducation Field `json:"req_education"`
	ReqSkills    Field `json:"req_skills"`
}

// Breakdown reports each similarity signal scaled to 0-100.
// The bm25 key is kept for output compatibility even though the signal is a
// keyword-overlap score, not true BM25.
type Breakdown struct {
	TFIDF      float64 `json:"tfidf"`
	Embeddings float64 `json:"embeddings"`
	Keyword    float64 `json:"bm25"`
	Fuzzy      float64 `json:"fuzzy"`
	Rules      float64 `json:"rules"`
}

// MatchResult is the outcome of scoring one resume against one job.
type MatchResult struct {
	// TotalPercent is the ensemble score in [0,100], rounded to 2 decimals.
	TotalPercent float64 `json:"total_percent"`
	// Breakdown reports the raw sub-scores (also x100, 2 decimals). Values are
	// intentionally not clamped so the signals stay transparent.
	Breakdown Breakdown `json:"breakdown"`
}
