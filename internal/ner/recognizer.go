// Package ner provides named-entity recognition for resume and job text.
// A model-backed recognizer supplies PERSON/ORG/GPE entities and a
// vocabulary-seeded ruler layers SKILL entities on top.
package ner

// Entity labels the extractor cares about.
const (
	LabelPerson  = "PERSON"
	LabelSkill   = "SKILL"
	LabelOrg     = "ORG"
	LabelProduct = "PRODUCT"
	LabelGPE     = "GPE"
)

// Entity is a labeled text span found in a document.
type Entity struct {
	Text  string
	Label string
}

// Recognizer extracts labeled entities from arbitrary text, in document order.
type Recognizer interface {
	Entities(text string) ([]Entity, error)
}
