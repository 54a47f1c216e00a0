package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-matcher/internal/ner"
	"github.com/jonathan/resume-matcher/internal/textproc"
	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	// Candidate names: 2-3 capitalized tokens immediately followed by an
	// email, phone digits, a dash, a newline, or end of text.
	nameCandidateRe = regexp.MustCompile(`\b([A-Z][a-zA-Z'-]+(?:[ \t]+[A-Z][a-zA-Z'-]+){1,2})[ \t]*(?:[a-z0-9._%+-]+@|\+?\d|[–-]|\n|$)`)

	// Emails embedded inside a name span, stripped during post-processing.
	embeddedEmailRe = regexp.MustCompile(`\s*[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`)

	// Tokens that look like an email local-part glued onto the name.
	emailLocalRe = regexp.MustCompile(`^[a-z0-9._%+-]+$`)
)

// geoBlocklist filters place names that the capitalized-token heuristic keeps
// mistaking for people.
var geoBlocklist = []string{
	"new york", "san francisco", "seattle", "chicago", "washington",
	"los gatos", "mountain view", "palo alto", "almaty", "kazakhstan",
	"russia", "ca", "ny", "wa", "il", "dc", "usa", "united states",
	"berkeley", "evanston", "fairfax",
}

// degreeKeywords is the fixed set matched against resume text.
var degreeKeywords = []string{"bachelor", "master", "bachelor's", "master's", "phd", "doctorate"}

const daysPerYear = 365.25

// Resume extracts a structured record from raw resume text. It never fails;
// every field that cannot be extracted is absent in the returned record.
func (e *Extractor) Resume(text string) types.ResumeRecord {
	entities := e.entities(text)

	return types.ResumeRecord{
		Name:            extractName(text, entities),
		Email:           firstMatch(emailRe, text),
		Phone:           firstMatch(phoneRe, text),
		Skills:          extractSkills(text, entities),
		ExperienceYears: extractExperienceYears(text),
		Education:       extractEducation(text),
	}
}

// firstMatch returns the first regex match in text as a field.
func firstMatch(re *regexp.Regexp, text string) types.Field {
	if m := re.FindString(text); m != "" {
		return types.FoundField(m)
	}
	return types.MissingField()
}

// extractName picks the candidate name. Primary path: first person entity
// with at least two tokens, in document order. Fallback: earliest capitalized
// token sequence that survives the geographic blocklist.
func extractName(text string, entities []ner.Entity) types.Field {
	name := ""
	for _, ent := range entities {
		if ent.Label == ner.LabelPerson && len(strings.Fields(ent.Text)) >= 2 {
			name = strings.TrimSpace(ent.Text)
			break
		}
	}

	if name == "" {
		// FindAll returns matches in document order, so the first surviving
		// candidate is the earliest-occurring one.
		for _, m := range nameCandidateRe.FindAllStringSubmatch(text, -1) {
			candidate := strings.TrimSpace(m[1])
			if len(strings.Fields(candidate)) < 2 {
				continue
			}
			if containsGeoToken(strings.ToLower(candidate)) {
				continue
			}
			name = candidate
			break
		}
	}

	name = cleanName(name)
	if name == "" {
		return types.MissingField()
	}
	return types.FoundField(name)
}

// cleanName strips artifacts that leak into the name span: embedded email
// addresses, a glued-on email local-part, and trailing location tokens.
func cleanName(name string) string {
	name = strings.TrimSpace(embeddedEmailRe.ReplaceAllString(name, ""))

	parts := strings.Fields(name)
	if len(parts) > 2 && emailLocalRe.MatchString(parts[len(parts)-1]) {
		parts = parts[:len(parts)-1]
		name = strings.Join(parts, " ")
	}

	if len(parts) > 2 {
		for _, part := range parts {
			if containsGeoToken(strings.ToLower(part)) {
				name = strings.Join(parts[:2], " ")
				break
			}
		}
	}

	return strings.TrimSpace(name)
}

func containsGeoToken(lower string) bool {
	for _, place := range geoBlocklist {
		if strings.Contains(lower, place) {
			return true
		}
	}
	return false
}

// extractSkills captures the Skills section (up to the next recognized
// header) as bullet segments joined with "; ", then appends entity-recognized
// skill tokens. The entity tokens annotate a found section parenthetically or
// stand alone when no section exists.
func extractSkills(text string, entities []ner.Entity) types.Field {
	blob := ""
	found := false
	if span, ok := sectionAfter(text, skillsHeaderRe, skillsTermRe); ok {
		blob = strings.Join(textproc.BulletSegments(span), "; ")
		found = true
	}

	var skillTokens []string
	seen := make(map[string]struct{})
	for _, ent := range entities {
		if ent.Label != ner.LabelSkill {
			continue
		}
		token := strings.ToLower(ent.Text)
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		skillTokens = append(skillTokens, token)
	}

	if len(skillTokens) > 0 {
		joined := strings.Join(skillTokens, " ")
		if found {
			blob += " (NER: " + joined + ")"
		} else {
			blob = joined
			found = true
		}
	}

	if !found {
		return types.MissingField()
	}
	return types.FoundField(blob)
}

// extractExperienceYears sums the duration of every date range in the Work
// Experience section plus every explicit "N years of experience" mention in
// the full text. The two sources are added unconditionally: overlapping jobs
// and restated totals double-count, which is the documented behaviour.
func extractExperienceYears(text string) float64 {
	total := 0.0

	if span, ok := sectionAfter(text, workHeaderRe, workTermRe); ok {
		for _, m := range dateRangeRe.FindAllStringSubmatch(span, -1) {
			start, err := parseMonthYear(m[1] + " " + m[2])
			if err != nil {
				continue // skip the malformed range, keep the rest
			}
			var end time.Time
			if strings.Contains(strings.ToLower(m[3]), "present") {
				end = time.Now()
			} else {
				end, err = parseMonthYear(m[3])
				if err != nil {
					continue
				}
			}
			total += end.Sub(start).Hours() / 24 / daysPerYear
		}
	}

	for _, m := range yearsMentionRe.FindAllStringSubmatch(strings.ToLower(text), -1) {
		if n, err := strconv.Atoi(m[1]); err == nil {
			total += float64(n)
		}
	}

	return math.Round(math.Max(total, 0)*10) / 10
}

// parseMonthYear parses "Sep 2020" tolerating arbitrary month casing.
func parseMonthYear(s string) (time.Time, error) {
	fields := strings.Fields(s)
	if len(fields) == 2 && len(fields[0]) == 3 {
		s = strings.ToUpper(fields[0][:1]) + strings.ToLower(fields[0][1:]) + " " + fields[1]
	}
	return time.Parse("Jan 2006", s)
}

// extractEducation matches the fixed degree-keyword set against the full
// text, case-insensitively, and joins the hits with ", ".
func extractEducation(text string) types.Field {
	lower := strings.ToLower(text)
	var found []string
	for _, keyword := range degreeKeywords {
		if strings.Contains(lower, keyword) {
			found = append(found, keyword)
		}
	}
	if len(found) == 0 {
		return types.MissingField()
	}
	return types.FoundField(strings.Join(found, ", "))
}
