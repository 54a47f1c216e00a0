package extract

import (
	"errors"
	"testing"

	"github.com/jonathan/resume-matcher/internal/ner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecognizer struct {
	entities []ner.Entity
	err      error
}

func (s *stubRecognizer) Entities(string) ([]ner.Entity, error) {
	return s.entities, s.err
}

func newExtractor(entities ...ner.Entity) *Extractor {
	return New(&stubRecognizer{entities: entities})
}

const sampleResume = `John Smith
john.smith@example.com
+1 555 123 4567

Work Experience
Acme Corp - Backend Developer
Sep 2020 - Mar 2023
Globex Inc - Developer
Jan 2021 - Dec 2021

Skills
` + "• Python\n• SQL\n• Linux\n" + `
Education
Bachelor's degree in Computer Science, 5 years of experience
`

func TestResume_NamePrimaryPathUsesFirstPersonEntity(t *testing.T) {
	e := newExtractor(
		ner.Entity{Text: "Acme", Label: ner.LabelOrg},
		ner.Entity{Text: "Smith", Label: ner.LabelPerson}, // single token, skipped
		ner.Entity{Text: "John Smith", Label: ner.LabelPerson},
		ner.Entity{Text: "Jane Doe", Label: ner.LabelPerson},
	)

	record := e.Resume(sampleResume)

	assert.Equal(t, "John Smith", record.Name.String())
}

func TestResume_NameFallbackRegex(t *testing.T) {
	record := newExtractor().Resume(sampleResume)

	assert.Equal(t, "John Smith", record.Name.String())
}

func TestResume_NameFallbackSkipsGeographicTokens(t *testing.T) {
	text := "New York\nJane Doe\njane@example.com"

	record := newExtractor().Resume(text)

	assert.Equal(t, "Jane Doe", record.Name.String())
}

func TestResume_NameMissing(t *testing.T) {
	record := newExtractor().Resume("no capitalized sequences here")

	assert.False(t, record.Name.Found)
	assert.Equal(t, "Not found", record.Name.String())
}

func TestResume_NameCleanupStripsEmbeddedEmail(t *testing.T) {
	e := newExtractor(ner.Entity{Text: "John Smith john.smith@example.com", Label: ner.LabelPerson})

	record := e.Resume("irrelevant")

	assert.Equal(t, "John Smith", record.Name.String())
}

func TestResume_NameCleanupDropsGluedLocalPart(t *testing.T) {
	e := newExtractor(ner.Entity{Text: "Mia Chen mia.chen.devops", Label: ner.LabelPerson})

	record := e.Resume("irrelevant")

	assert.Equal(t, "Mia Chen", record.Name.String())
}

func TestResume_NameCleanupTruncatesTrailingLocation(t *testing.T) {
	e := newExtractor(ner.Entity{Text: "Anna Lee Seattle", Label: ner.LabelPerson})

	record := e.Resume("irrelevant")

	assert.Equal(t, "Anna Lee", record.Name.String())
}

func TestResume_EmailAndPhone(t *testing.T) {
	record := newExtractor().Resume(sampleResume)

	assert.Equal(t, "john.smith@example.com", record.Email.String())
	assert.Equal(t, "+1 555 123 4567", record.Phone.String())
}

func TestResume_SkillsSectionBullets(t *testing.T) {
	record := newExtractor().Resume(sampleResume)

	assert.Equal(t, "Python; SQL; Linux", record.Skills.String())
}

func TestResume_SkillsAugmentedWithEntities(t *testing.T) {
	e := newExtractor(
		ner.Entity{Text: "Docker", Label: ner.LabelSkill},
		ner.Entity{Text: "docker", Label: ner.LabelSkill}, // dedup after lowering
		ner.Entity{Text: "Terraform", Label: ner.LabelSkill},
	)

	record := e.Resume(sampleResume)

	assert.Equal(t, "Python; SQL; Linux (NER: docker terraform)", record.Skills.String())
}

func TestResume_SkillsEntitiesOnlyWhenNoSection(t *testing.T) {
	e := newExtractor(ner.Entity{Text: "python", Label: ner.LabelSkill})

	record := e.Resume("plain text without any section headers")

	assert.Equal(t, "python", record.Skills.String())
}

func TestResume_SkillsMissing(t *testing.T) {
	record := newExtractor().Resume("plain text without any section headers")

	assert.False(t, record.Skills.Found)
}

func TestResume_ExperienceSumsRangesAndMentions(t *testing.T) {
	record := newExtractor().Resume(sampleResume)

	// Sep 2020-Mar 2023 (911 days) + Jan 2021-Dec 2021 (334 days) ~= 3.4
	// years, plus the explicit "5 years of experience" mention. The ranges
	// overlap and the mention restates them; all three add up by design.
	assert.InDelta(t, 8.4, record.ExperienceYears, 0.001)
}

func TestResume_ExperienceHandlesPresent(t *testing.T) {
	text := "Work Experience\nAcme\nJan 2020 - present\n"

	record := newExtractor().Resume(text)

	assert.Greater(t, record.ExperienceYears, 5.0)
}

func TestResume_ExperienceSkipsMalformedDates(t *testing.T) {
	text := "Work Experience\nXyz 2020 - Qqq 2021\nSep 2020 - Sep 2021\n"

	record := newExtractor().Resume(text)

	assert.InDelta(t, 1.0, record.ExperienceYears, 0.01)
}

func TestResume_ExperienceNeverNegative(t *testing.T) {
	record := newExtractor().Resume("nothing here")

	assert.Equal(t, 0.0, record.ExperienceYears)
}

func TestResume_EducationMatchesKeywordSet(t *testing.T) {
	record := newExtractor().Resume(sampleResume)

	// "Bachelor's" satisfies both the bare and the possessive keyword.
	assert.Equal(t, "bachelor, bachelor's", record.Education.String())
}

func TestResume_EducationMissing(t *testing.T) {
	record := newExtractor().Resume("no degrees mentioned")

	assert.False(t, record.Education.Found)
}

func TestResume_RecognizerFailureDegradesGracefully(t *testing.T) {
	e := New(&stubRecognizer{err: errors.New("model unavailable")})

	record := e.Resume(sampleResume)

	// Regex fallbacks still work without entities.
	require.True(t, record.Name.Found)
	assert.Equal(t, "John Smith", record.Name.String())
	assert.Equal(t, "Python; SQL; Linux", record.Skills.String())
}
