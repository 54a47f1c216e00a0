package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-matcher/internal/ner"
	"github.com/jonathan/resume-matcher/internal/types"
)

// positionRe has two branches: an explicit "Position/Role/Job: X" label, or a
// title prefix followed by a common role suffix.
var positionRe = regexp.MustCompile(`(?i)(?:Position|Role|Job):[ \t]*(.+)|(.+?)[ \t]*(?:Engineer|Manager|Developer|Specialist)`)

// reqDegreeKeywords is the fixed set matched against job text, in priority order.
var reqDegreeKeywords = []string{"bachelor's", "master's", "phd"}

// jobSkillLabels are the entity labels pooled into the required-skills
// fallback when no skills section header exists.
var jobSkillLabels = map[string]struct{}{
	ner.LabelSkill:   {},
	ner.LabelOrg:     {},
	ner.LabelProduct: {},
	ner.LabelGPE:     {},
}

// Job extracts a structured record from raw job-description text. Like
// Resume, it never fails; missing fields are absent and the required
// experience defaults to zero.
func (e *Extractor) Job(text string) types.JobRecord {
	return types.JobRecord{
		Position:     extractPosition(text),
		ReqExpYears:  extractRequiredYears(text),
		ReqEducation: extractRequiredEducation(text),
		ReqSkills:    e.extractRequiredSkills(text),
	}
}

func extractPosition(text string) types.Field {
	m := positionRe.FindStringSubmatch(text)
	if m == nil {
		return types.MissingField()
	}
	position := m[1]
	if position == "" {
		position = m[2]
	}
	position = strings.TrimSpace(position)
	if position == "" {
		return types.MissingField()
	}
	return types.FoundField(position)
}

// extractRequiredYears takes the first "N years of experience" mention, else 0.
func extractRequiredYears(text string) int {
	m := yearsMentionRe.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

func extractRequiredEducation(text string) types.Field {
	lower := strings.ToLower(text)
	for _, keyword := range reqDegreeKeywords {
		if strings.Contains(lower, keyword) {
			return types.FoundField(keyword)
		}
	}
	return types.MissingField()
}

// extractRequiredSkills captures the "Required/Key Skills" section, falling
// back to pooling every skill-like entity when no section header exists.
func (e *Extractor) extractRequiredSkills(text string) types.Field {
	if span, ok := sectionAfter(text, reqSkillsHeadRe, reqSkillsTermRe); ok {
		if trimmed := strings.TrimSpace(span); trimmed != "" {
			return types.FoundField(trimmed)
		}
	}

	var skills []string
	seen := make(map[string]struct{})
	for _, ent := range e.entities(text) {
		if _, ok := jobSkillLabels[ent.Label]; !ok {
			continue
		}
		if _, ok := seen[ent.Text]; ok {
			continue
		}
		seen[ent.Text] = struct{}{}
		skills = append(skills, ent.Text)
	}
	if len(skills) == 0 {
		return types.MissingField()
	}
	return types.FoundField(strings.Join(skills, " "))
}
