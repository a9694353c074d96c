// Package lexicon loads the read-only word and phrase tables used as evidence
// by feature extraction and the pattern detectors. Tables come from the
// embedded lexicon.json, are parsed once, and are never mutated afterwards
package lexicon

import (
	_ "embed"
	"encoding/json"
	"strings"
	"sync"

	perr "github.com/vaibhavgarg230/trustlens-sub000/internal/platform/errors"
)

//go:embed lexicon.json
var embedded []byte

type rawLexicon struct {
	Version int            `json:"version"`
	Meta    map[string]any `json:"meta"`
	Words   struct {
		Common   []string `json:"common"`
		Positive []string `json:"positive"`
		Negative []string `json:"negative"`
	} `json:"words"`
	Phrases struct {
		Spam           []string `json:"spam"`
		AIDescriptive  []string `json:"ai_descriptive"`
		AIAdjectives   []string `json:"ai_adjectives"`
		AIMarketing    []string `json:"ai_marketing"`
		AIEnthusiastic []string `json:"ai_enthusiastic"`
		KeyboardSmash  []string `json:"keyboard_smash"`
	} `json:"phrases"`
}

// Lexicon is the full set of tables
type Lexicon struct {
	Version int
	Meta    map[string]any

	Common   WordSet
	Positive WordSet
	Negative WordSet

	Spam           *PhraseSet
	AIDescriptive  *PhraseSet
	AIAdjectives   *PhraseSet
	AIMarketing    *PhraseSet
	AIEnthusiastic *PhraseSet
	KeyboardSmash  *PhraseSet
}

// Load parses the embedded tables into a fresh Lexicon
func Load() (*Lexicon, error) {
	return Parse(embedded)
}

// Parse builds a Lexicon from lexicon.json-shaped data
func Parse(data []byte) (*Lexicon, error) {
	var rl rawLexicon
	if err := json.Unmarshal(data, &rl); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeData, "lexicon: parse")
	}
	if rl.Version != 1 {
		return nil, perr.Newf(perr.ErrorCodeData, "lexicon: unsupported version %d (want 1)", rl.Version)
	}

	lx := &Lexicon{
		Version:        rl.Version,
		Meta:           rl.Meta,
		Common:         NewWordSet(rl.Words.Common),
		Positive:       NewWordSet(rl.Words.Positive),
		Negative:       NewWordSet(rl.Words.Negative),
		Spam:           NewPhraseSet(rl.Phrases.Spam),
		AIDescriptive:  NewPhraseSet(rl.Phrases.AIDescriptive),
		AIAdjectives:   NewPhraseSet(rl.Phrases.AIAdjectives),
		AIMarketing:    NewPhraseSet(rl.Phrases.AIMarketing),
		AIEnthusiastic: NewPhraseSet(rl.Phrases.AIEnthusiastic),
		KeyboardSmash:  NewPhraseSet(rl.Phrases.KeyboardSmash),
	}

	for name, n := range map[string]int{
		"words.common":     lx.Common.Len(),
		"words.positive":   lx.Positive.Len(),
		"words.negative":   lx.Negative.Len(),
		"phrases.spam":     lx.Spam.Len(),
		"phrases.ai":       lx.AIDescriptive.Len() + lx.AIAdjectives.Len() + lx.AIMarketing.Len() + lx.AIEnthusiastic.Len(),
		"phrases.keyboard": lx.KeyboardSmash.Len(),
	} {
		if n == 0 {
			return nil, perr.WithField(perr.Newf(perr.ErrorCodeData, "lexicon: %s is empty", name), name)
		}
	}
	return lx, nil
}

var (
	defOnce sync.Once
	def     *Lexicon
)

// Default returns the shared Lexicon built from the embedded tables.
// It panics if the embedded data is corrupt, which is a build defect
func Default() *Lexicon {
	defOnce.Do(func() {
		lx, err := Load()
		if err != nil {
			panic(err)
		}
		def = lx
	})
	return def
}

// WordSet is a whole-token membership set
type WordSet map[string]struct{}

// NewWordSet lower-cases, trims and dedupes words
func NewWordSet(words []string) WordSet {
	ws := make(WordSet, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			ws[w] = struct{}{}
		}
	}
	return ws
}

// Contains reports whether token is in the set
func (ws WordSet) Contains(token string) bool {
	_, ok := ws[token]
	return ok
}

// Len returns the number of entries
func (ws WordSet) Len() int { return len(ws) }

// PhraseSet answers substring-containment questions for a fixed phrase list
type PhraseSet struct {
	phrases []string
	ac      *automaton
}

// NewPhraseSet lower-cases, trims and dedupes phrases (first occurrence wins)
// and compiles them into one automaton
func NewPhraseSet(phrases []string) *PhraseSet {
	ps := &PhraseSet{ac: newAutomaton()}
	seen := make(map[string]struct{}, len(phrases))
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		ps.ac.add([]byte(p), len(ps.phrases))
		ps.phrases = append(ps.phrases, p)
	}
	ps.ac.build()
	return ps
}

// Len returns the number of distinct phrases
func (ps *PhraseSet) Len() int { return len(ps.phrases) }

// Phrases returns a copy of the phrase list
func (ps *PhraseSet) Phrases() []string { return append([]string(nil), ps.phrases...) }

// CountDistinct returns how many distinct phrases occur in text at least once
func (ps *PhraseSet) CountDistinct(text string) int {
	return len(ps.Matches(text))
}

// AtLeast reports whether at least n distinct phrases occur in text, stopping
// the scan as soon as the answer is known
func (ps *PhraseSet) AtLeast(text string, n int) bool {
	if n <= 0 {
		return true
	}
	if text == "" || len(ps.phrases) < n {
		return false
	}
	seen := make([]bool, len(ps.phrases))
	found := 0
	ps.ac.scan([]byte(text), func(id int) bool {
		if !seen[id] {
			seen[id] = true
			found++
		}
		return found < n
	})
	return found >= n
}

// Any reports whether any phrase occurs in text
func (ps *PhraseSet) Any(text string) bool { return ps.AtLeast(text, 1) }

// Matches returns the distinct phrases found in text, in order of first match end
func (ps *PhraseSet) Matches(text string) []string {
	if text == "" || len(ps.phrases) == 0 {
		return nil
	}
	seen := make([]bool, len(ps.phrases))
	var out []string
	ps.ac.scan([]byte(text), func(id int) bool {
		if !seen[id] {
			seen[id] = true
			out = append(out, ps.phrases[id])
		}
		return true
	})
	return out
}
