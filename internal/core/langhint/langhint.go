// Package langhint provides a coarse dominant-script hint for a piece of text
package langhint

import "unicode"

// Hint is the result of a script scan
type Hint struct {
	Script  string `json:"script,omitempty"` // dominant script name, "" when there are no letters
	Lang    string `json:"lang,omitempty"`   // BCP-47 code only when the script implies it strongly
	Letters int    `json:"letters"`
	// Share is the fraction of letters written in Script
	Share float64 `json:"share"`
}

// minLetters is the evidence floor below which Lang stays empty
const minLetters = 20

type script struct {
	name  string
	table *unicode.RangeTable
	lang  string
}

// scripts are checked in order; specific scripts precede Latin so ties favour them
var scripts = []script{
	{"Hiragana", unicode.Hiragana, "ja"},
	{"Katakana", unicode.Katakana, "ja"},
	{"Hangul", unicode.Hangul, "ko"},
	{"Han", unicode.Han, ""},
	{"Arabic", unicode.Arabic, "ar"},
	{"Hebrew", unicode.Hebrew, "he"},
	{"Thai", unicode.Thai, "th"},
	{"Greek", unicode.Greek, "el"},
	{"Cyrillic", unicode.Cyrillic, ""},
	{"Georgian", unicode.Georgian, ""},
	{"Armenian", unicode.Armenian, ""},
	{"Devanagari", unicode.Devanagari, ""},
	{"Latin", unicode.Latin, ""},
}

// Detect counts letters per script and reports the dominant one
func Detect(s string) Hint {
	counts := make([]int, len(scripts))
	total := 0
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		total++
		for i, sc := range scripts {
			if unicode.Is(sc.table, r) {
				counts[i]++
				break
			}
		}
	}

	h := Hint{Letters: total}
	best := -1
	for i, n := range counts {
		if n > 0 && (best < 0 || n > counts[best]) {
			best = i
		}
	}
	if best < 0 {
		return h
	}
	h.Script = scripts[best].name
	h.Share = float64(counts[best]) / float64(total)

	if total < minLetters {
		return h
	}
	// kana anywhere means Japanese even when Han dominates
	if counts[0] > 0 || counts[1] > 0 {
		h.Lang = "ja"
		return h
	}
	h.Lang = scripts[best].lang
	return h
}
