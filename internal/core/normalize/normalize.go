// Package normalize provides the deterministic text normalization shared by
// feature extraction and hashing.
//
// The normal form is Unicode lower case (context-sensitive, so a word-final
// capital sigma becomes ς) with leading and trailing white space removed.
// Nothing else is folded: punctuation, digits and inner spacing survive
// because several features measure them
package normalize

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// casers are stateful, so each goroutine borrows its own
var casers = sync.Pool{
	New: func() any {
		c := cases.Lower(language.Und)
		return &c
	},
}

// Text returns the normal form of s
func Text(s string) string {
	if s == "" {
		return ""
	}
	c := casers.Get().(*cases.Caser)
	out := c.String(s)
	casers.Put(c)
	return strings.TrimSpace(out)
}

// Words splits normalized text on white space, dropping empty tokens
func Words(s string) []string {
	return strings.Fields(s)
}

// Sentences splits s on runs of '.', '!' and '?' and drops segments that are
// empty or only white space. Segments are returned untrimmed
func Sentences(s string) []string {
	parts := strings.FieldsFunc(s, isTerminator)
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

func isTerminator(r rune) bool { return r == '.' || r == '!' || r == '?' }
