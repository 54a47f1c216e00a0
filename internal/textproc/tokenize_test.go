package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeSkills_BulletSegments(t *testing.T) {
	text := "• Python and Django\n• SQL\n  query tuning\n\n• Linux"

	skills := TokenizeSkills(text)

	assert.Equal(t, []string{"Python and Django", "SQL query tuning", "Linux"}, skills)
}

func TestTokenizeSkills_StarBullets(t *testing.T) {
	text := "* Go\n* Kubernetes"

	assert.Equal(t, []string{"Go", "Kubernetes"}, TokenizeSkills(text))
}

func TestTokenizeSkills_WordFallback(t *testing.T) {
	// No bullet markers: fall back to alphabetic tokens of length >= 3.
	skills := TokenizeSkills("Python, SQL and Go")

	assert.Equal(t, []string{"python", "sql", "and"}, skills)
}

func TestTokenizeSkills_PreservesDuplicates(t *testing.T) {
	skills := TokenizeSkills("• Python\n• Python")

	assert.Equal(t, []string{"Python", "Python"}, skills)
}

func TestWordSet_Deduplicates(t *testing.T) {
	set := WordSet("python sql python linux go")

	assert.Len(t, set, 3) // "go" is too short
	assert.Contains(t, set, "python")
	assert.Contains(t, set, "sql")
	assert.Contains(t, set, "linux")
}
