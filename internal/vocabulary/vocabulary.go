// Package vocabulary loads the skill vocabulary used to seed entity matching
// and boost the keyword-overlap signal.
package vocabulary

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// fallbackSkills is the minimal built-in list merged into every vocabulary,
// mirroring the entries the system cannot function without.
var fallbackSkills = []string{"python", "c++", "java", "linux", "sql"}

// Vocabulary is an ordered set of lowercase skill strings. It is loaded once
// at startup and shared read-only across all scoring calls.
type Vocabulary struct {
	skills []string
	index  map[string]struct{}
}

// Load reads a CSV vocabulary file with a "skill" column. Entries are
// lowercased and deduplicated preserving first-seen order, and the built-in
// fallback skills are merged in. A missing or unreadable file is an error:
// extraction cannot degrade further without a vocabulary, so callers should
// treat this as fatal at startup.
func Load(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary CSV %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("vocabulary file %s is empty", path)
	}

	// Locate the "skill" column; default to the first column when no header row.
	col := 0
	start := 0
	for i, name := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(name), "skill") {
			col = i
			start = 1
			break
		}
	}

	v := empty()
	for _, row := range rows[start:] {
		if col >= len(row) {
			continue
		}
		v.add(strings.TrimSpace(row[col]))
	}
	v.mergeFallback()

	if v.Len() == 0 {
		return nil, fmt.Errorf("vocabulary file %s contains no skills", path)
	}
	return v, nil
}

// Fallback returns a vocabulary containing only the built-in skill list.
// Used when no vocabulary file is configured.
func Fallback() *Vocabulary {
	v := empty()
	v.mergeFallback()
	return v
}

// FromSkills builds a vocabulary from an explicit skill list. Intended for tests.
func FromSkills(skills ...string) *Vocabulary {
	v := empty()
	for _, s := range skills {
		v.add(s)
	}
	return v
}

func empty() *Vocabulary {
	return &Vocabulary{index: make(map[string]struct{})}
}

func (v *Vocabulary) add(skill string) {
	skill = strings.ToLower(skill)
	if skill == "" {
		return
	}
	if _, ok := v.index[skill]; ok {
		return
	}
	v.index[skill] = struct{}{}
	v.skills = append(v.skills, skill)
}

func (v *Vocabulary) mergeFallback() {
	for _, s := range fallbackSkills {
		v.add(s)
	}
}

// Contains reports whether the lowercased skill is in the vocabulary.
func (v *Vocabulary) Contains(skill string) bool {
	_, ok := v.index[strings.ToLower(skill)]
	return ok
}

// Skills returns the skills in load order. Callers must not modify the slice.
func (v *Vocabulary) Skills() []string {
	return v.skills
}

// Len returns the number of distinct skills.
func (v *Vocabulary) Len() int {
	return len(v.skills)
}
