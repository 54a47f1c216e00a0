package textproc

import (
	"regexp"
	"strings"
)

var (
	bulletMarker = regexp.MustCompile(`^[•*]\s*`)
	wordToken    = regexp.MustCompile(`\b[a-z]{3,}\b`)
)

// TokenizeSkills converts a skills text blob into an ordered list of skill
// phrases. Bullet-prefixed segments win when present: a segment starts at a
// line beginning with a bullet marker and spans until the next bullet or blank
// line. When no bullets are found it falls back to alphabetic word tokens of
// length >= 3 from the lowercased text. The result is not deduplicated.
func TokenizeSkills(skillsText string) []string {
	if segments := BulletSegments(skillsText); len(segments) > 0 {
		return segments
	}
	return WordTokens(strings.ToLower(skillsText))
}

// BulletSegments extracts bullet-prefixed segments from text. Continuation
// lines are folded into the preceding bullet until a blank line or the next
// bullet marker.
func BulletSegments(text string) []string {
	var segments []string
	var current []string
	inBullet := false

	flush := func() {
		if !inBullet {
			return
		}
		segment := strings.TrimSpace(strings.Join(current, " "))
		if segment != "" {
			segments = append(segments, segment)
		}
		current = current[:0]
		inBullet = false
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			flush()
		case bulletMarker.MatchString(trimmed):
			flush()
			inBullet = true
			current = append(current, bulletMarker.ReplaceAllString(trimmed, ""))
		case inBullet:
			current = append(current, trimmed)
		}
	}
	flush()

	return segments
}

// WordTokens returns every alphabetic token of length >= 3 in text, in order.
// Callers are expected to pass lowercased or normalized text.
func WordTokens(text string) []string {
	return wordToken.FindAllString(text, -1)
}

// WordSet returns the distinct alphabetic tokens of length >= 3 in text.
func WordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, token := range WordTokens(text) {
		set[token] = struct{}{}
	}
	return set
}
