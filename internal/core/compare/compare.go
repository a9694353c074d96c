// Package compare scores stylistic similarity between two fingerprints
package compare

import (
	"math"

	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/fingerprint"

	"gonum.org/v1/gonum/stat"
)

// Feature reads one comparable value off a fingerprint
type Feature struct {
	Name string
	Get  func(*fingerprint.Fingerprint) float64
}

// Features is the fixed subset used for style comparison
var Features = []Feature{
	{"vocabularyRichness", func(f *fingerprint.Fingerprint) float64 { return f.VocabularyRichness }},
	{"commonWordsRatio", func(f *fingerprint.Fingerprint) float64 { return f.CommonWordsRatio }},
	{"sentimentScore", func(f *fingerprint.Fingerprint) float64 { return f.SentimentScore }},
	{"punctuationDensity", func(f *fingerprint.Fingerprint) float64 { return f.PunctuationDensity }},
	{"capitalizationRatio", func(f *fingerprint.Fingerprint) float64 { return f.CapitalizationRatio }},
	{"avgWordsPerSentence", func(f *fingerprint.Fingerprint) float64 { return f.AvgWordsPerSentence }},
	{"avgCharsPerWord", func(f *fingerprint.Fingerprint) float64 { return f.AvgCharsPerWord }},
	{"writingSpeed", func(f *fingerprint.Fingerprint) float64 { return f.WritingSpeed }},
}

// floor keeps the denominator away from zero when both values are tiny
const floor = 0.01

// Term is the similarity of two values of one feature, in [0,1]
func Term(a, b float64) float64 {
	return max(0, 1-math.Abs(a-b)/max(a, b, floor))
}

// Fingerprints returns the mean per-feature similarity of a and b in [0,1].
// A feature counts only when it is finite on both sides; 0 when none do
func Fingerprints(a, b *fingerprint.Fingerprint) float64 {
	terms := make([]float64, 0, len(Features))
	for _, f := range Features {
		x, y := f.Get(a), f.Get(b)
		if !finite(x) || !finite(y) {
			continue
		}
		terms = append(terms, Term(x, y))
	}
	if len(terms) == 0 {
		return 0
	}
	return stat.Mean(terms, nil)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
