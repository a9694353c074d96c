package detector

import (
	"strings"

	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/fingerprint"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/lexicon"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/normalize"
)

const (
	minDescriptive   = 3
	minAdjectives    = 4
	minMarketing     = 2
	minEnthusiastic  = 2
	minSentences     = 3
	minSharedStarter = 3
)

func aiRules(lx *lexicon.Lexicon) []Rule {
	return []Rule{
		{
			Name:   "descriptive_phrases",
			Reason: "overly descriptive marketing language",
			Match: func(fp *fingerprint.Fingerprint) bool {
				return lx.AIDescriptive.AtLeast(fp.OriginalText, minDescriptive)
			},
		},
		{
			Name:   "positive_adjectives",
			Reason: "excessive positive adjectives",
			Match:  func(fp *fingerprint.Fingerprint) bool { return lx.AIAdjectives.AtLeast(fp.OriginalText, minAdjectives) },
		},
		{
			Name:   "marketing_phrases",
			Reason: "marketing phrases",
			Match:  func(fp *fingerprint.Fingerprint) bool { return lx.AIMarketing.AtLeast(fp.OriginalText, minMarketing) },
		},
		{
			Name:   "sentence_starters",
			Reason: "repetitive sentence structures",
			Match:  func(fp *fingerprint.Fingerprint) bool { return repeatedStarter(fp.OriginalText) },
		},
		{
			Name:   "enthusiastic_phrases",
			Reason: "overly enthusiastic phrases",
			Match: func(fp *fingerprint.Fingerprint) bool {
				return lx.AIEnthusiastic.AtLeast(fp.OriginalText, minEnthusiastic)
			},
		},
	}
}

// repeatedStarter reports whether one word opens minSharedStarter or more sentences
func repeatedStarter(s string) bool {
	sentences := normalize.Sentences(s)
	if len(sentences) < minSentences {
		return false
	}
	counts := make(map[string]int, len(sentences))
	for _, sent := range sentences {
		f := strings.Fields(sent)
		if len(f) == 0 {
			continue
		}
		w := strings.ToLower(f[0])
		counts[w]++
		if counts[w] >= minSharedStarter {
			return true
		}
	}
	return false
}
