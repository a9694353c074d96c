// Package detector holds the pattern detectors that look for tell-tale shapes in a
// fingerprint. Each detector is an ordered rule list folded first-match-wins, so at
// most one reason is ever reported
package detector

import (
	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/fingerprint"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/lexicon"
)

// Verdict is the outcome of one detector; Reason is empty when nothing matched
type Verdict struct {
	Matched bool   `json:"matched"`
	Reason  string `json:"reason,omitempty"`
}

// Rule is one heuristic in a detector's list. A Guard rule ends evaluation with
// no match when it fires
type Rule struct {
	Name   string
	Reason string
	Guard  bool
	Match  func(fp *fingerprint.Fingerprint) bool
}

// RuleResult is one row of Explain output
type RuleResult struct {
	Detector string `json:"detector"`
	Rule     string `json:"rule"`
	Matched  bool   `json:"matched"`
	Guard    bool   `json:"guard,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

const (
	nameGibberish = "gibberish"
	nameAI        = "ai_generated"
)

// Detector runs the gibberish and AI-generated rule lists against one lexicon
type Detector struct {
	lx        *lexicon.Lexicon
	gibberish []Rule
	ai        []Rule
}

// New builds a Detector over lx; nil selects the embedded default
func New(lx *lexicon.Lexicon) *Detector {
	if lx == nil {
		lx = lexicon.Default()
	}
	d := &Detector{lx: lx}
	d.gibberish = gibberishRules(lx)
	d.ai = aiRules(lx)
	return d
}

// Gibberish reports whether fp looks like random or filler text
func (d *Detector) Gibberish(fp *fingerprint.Fingerprint) Verdict {
	return evaluate(d.gibberish, fp)
}

// AIGenerated reports whether fp reads like templated or machine-written praise
func (d *Detector) AIGenerated(fp *fingerprint.Fingerprint) Verdict {
	return evaluate(d.ai, fp)
}

// Explain evaluates every rule of both detectors without short-circuiting.
// It is diagnostic output only; verdicts come from Gibberish and AIGenerated
func (d *Detector) Explain(fp *fingerprint.Fingerprint) []RuleResult {
	out := make([]RuleResult, 0, len(d.gibberish)+len(d.ai))
	for _, set := range []struct {
		name  string
		rules []Rule
	}{{nameGibberish, d.gibberish}, {nameAI, d.ai}} {
		for _, r := range set.rules {
			rr := RuleResult{Detector: set.name, Rule: r.Name, Guard: r.Guard}
			if r.Match(fp) {
				rr.Matched = true
				rr.Reason = r.Reason
			}
			out = append(out, rr)
		}
	}
	return out
}

// Rules returns the ordered rule names of both detectors
func (d *Detector) Rules() map[string][]string {
	names := func(rs []Rule) []string {
		out := make([]string, len(rs))
		for i, r := range rs {
			out[i] = r.Name
		}
		return out
	}
	return map[string][]string{nameGibberish: names(d.gibberish), nameAI: names(d.ai)}
}

func evaluate(rules []Rule, fp *fingerprint.Fingerprint) Verdict {
	for _, r := range rules {
		if !r.Match(fp) {
			continue
		}
		if r.Guard {
			return Verdict{}
		}
		return Verdict{Matched: true, Reason: r.Reason}
	}
	return Verdict{}
}

var def = New(nil)

// Gibberish runs the gibberish detector with the embedded lexicon
func Gibberish(fp *fingerprint.Fingerprint) Verdict { return def.Gibberish(fp) }

// AIGenerated runs the AI-generated detector with the embedded lexicon
func AIGenerated(fp *fingerprint.Fingerprint) Verdict { return def.AIGenerated(fp) }

// Explain runs Explain with the embedded lexicon
func Explain(fp *fingerprint.Fingerprint) []RuleResult { return def.Explain(fp) }
