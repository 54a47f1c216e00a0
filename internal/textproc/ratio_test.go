package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceRatio(t *testing.T) {
	assert.Equal(t, 1.0, SequenceRatio("python", "python"))
	assert.Equal(t, 0.0, SequenceRatio("abc", "xyz"))
	assert.Equal(t, 1.0, SequenceRatio("", ""))

	// Shared prefix scores between the extremes.
	ratio := SequenceRatio("postgres", "postgresql")
	assert.Greater(t, ratio, 0.5)
	assert.Less(t, ratio, 1.0)
}
