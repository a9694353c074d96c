package detector

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/fingerprint"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/lexicon"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/normalize"
)

const (
	minGibberishRunes = 10
	minSameLetterRun  = 5
	lowDiversityWords = 10
	lowDiversityRatio = 0.15
	dominantWordShare = 0.5
	foreignShare      = 0.5
)

var (
	// y counts as a consonant
	reAlternating = regexp.MustCompile(`([bcdfghjklmnpqrstvwxyz][aeiou]){6,}`)
	reConsonants  = regexp.MustCompile(`[a-z]{3,}[bcdfghjklmnpqrstvwxyz]{5,}`)
)

func gibberishRules(lx *lexicon.Lexicon) []Rule {
	return []Rule{
		{
			Name:  "too_short",
			Guard: true,
			Match: func(fp *fingerprint.Fingerprint) bool {
				return utf8.RuneCountInString(fp.OriginalText) < minGibberishRunes
			},
		},
		{
			Name:   "repeated_letter",
			Reason: "excessive character repetition",
			Match:  func(fp *fingerprint.Fingerprint) bool { return hasLetterRun(fp.OriginalText, minSameLetterRun) },
		},
		{
			Name:   "keyboard_smash",
			Reason: "keyboard smashing pattern",
			Match:  func(fp *fingerprint.Fingerprint) bool { return lx.KeyboardSmash.Any(fp.OriginalText) },
		},
		{
			Name:   "low_diversity",
			Reason: "extremely low vocabulary diversity",
			Match: func(fp *fingerprint.Fingerprint) bool {
				return fp.WordCount > lowDiversityWords && fp.VocabularyRichness < lowDiversityRatio
			},
		},
		{
			Name:   "dominant_word",
			Reason: "excessive repetition of the same word",
			Match:  func(fp *fingerprint.Fingerprint) bool { return dominantWord(fp.OriginalText) },
		},
		{
			Name:   "non_english",
			Reason: "high ratio of non-English characters",
			Match:  func(fp *fingerprint.Fingerprint) bool { return foreignRatio(fp.OriginalText) > foreignShare },
		},
		{
			Name:   "alternating_cv",
			Reason: "suspicious alternating consonant-vowel pattern",
			Match:  func(fp *fingerprint.Fingerprint) bool { return reAlternating.MatchString(fp.OriginalText) },
		},
		{
			Name:   "consonant_run",
			Reason: "random character sequence pattern",
			Match:  func(fp *fingerprint.Fingerprint) bool { return reConsonants.MatchString(fp.OriginalText) },
		},
	}
}

// hasLetterRun reports whether some ASCII letter repeats n or more times in a row
func hasLetterRun(s string, n int) bool {
	run := 0
	var prev byte
	for i := 0; i < len(s); i++ {
		c := s[i] | 0x20
		if c < 'a' || c > 'z' {
			run = 0
			prev = 0
			continue
		}
		if c == prev {
			run++
		} else {
			prev, run = c, 1
		}
		if run >= n {
			return true
		}
	}
	return false
}

// dominantWord reports whether one word longer than two runes makes up more than
// half of all words
func dominantWord(s string) bool {
	words := normalize.Words(s)
	if len(words) == 0 {
		return false
	}
	freq := make(map[string]int)
	top := 0
	for _, w := range words {
		if utf8.RuneCountInString(w) <= 2 {
			continue
		}
		freq[w]++
		top = max(top, freq[w])
	}
	return float64(top)/float64(len(words)) > dominantWordShare
}

// foreignRatio is the share of runes outside ASCII letters, whitespace and . , ! ?
func foreignRatio(s string) float64 {
	total, other := 0, 0
	for _, r := range s {
		total++
		switch {
		case r < utf8.RuneSelf && (r|0x20) >= 'a' && (r|0x20) <= 'z':
		case unicode.IsSpace(r):
		case r == '.' || r == ',' || r == '!' || r == '?':
		default:
			other++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(other) / float64(total)
}
