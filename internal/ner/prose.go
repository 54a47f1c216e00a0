package ner

import (
	"fmt"

	prose "github.com/jdkato/prose/v2"
)

// ProseRecognizer wraps the prose statistical model. Construction is cheap;
// the model itself is embedded in the library and loaded per document.
type ProseRecognizer struct{}

// NewProseRecognizer returns a model-backed recognizer.
func NewProseRecognizer() *ProseRecognizer {
	return &ProseRecognizer{}
}

// Entities runs the prose pipeline over text and returns its entities in
// document order.
func (r *ProseRecognizer) Entities(text string) ([]Entity, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze document: %w", err)
	}

	proseEnts := doc.Entities()
	entities := make([]Entity, 0, len(proseEnts))
	for _, ent := range proseEnts {
		entities = append(entities, Entity{Text: ent.Text, Label: ent.Label})
	}
	return entities, nil
}
