package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_StripsPunctuationAndLowercases(t *testing.T) {
	assert.Equal(t, "python sql linux", Normalize("Python; SQL, Linux!"))
}

func TestNormalize_SplitsCamelCaseBeforeLowering(t *testing.T) {
	// The boundary must be detected while case information is still present.
	assert.Equal(t, "java script developer", Normalize("JavaScriptDeveloper"))
	assert.Equal(t, "node js", Normalize("nodeJs"))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"JavaScriptDeveloper, C++ & SQL!",
		"plain text already",
		"",
		"Senior DevOps Engineer (Remote)",
	}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "normalize should be idempotent for %q", input)
	}
}
