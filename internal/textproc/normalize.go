// Package textproc provides text normalization and skill tokenization used by
// the extraction and similarity layers.
package textproc

import (
	"regexp"
	"strings"
)

// punctuation is the ASCII punctuation set stripped during normalization.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

// Normalize strips punctuation, splits concatenated camel-case tokens
// ("JavaScriptDeveloper" -> "java script developer"), and lowercases.
// The camel-case boundary must be detected before the lowercase pass;
// lowering first would erase every boundary. Pure function.
func Normalize(text string) string {
	text = strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, text)
	text = camelBoundary.ReplaceAllString(text, "$1 $2")
	return strings.ToLower(text)
}
