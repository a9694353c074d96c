// Package domain defines the core types and interfaces for the authenticity service
package domain

import (
	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/detector"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/fingerprint"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/fraud"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/scorer"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/version"
	perr "github.com/vaibhavgarg230/trustlens-sub000/internal/platform/errors"
)

// Submission is one review to analyze. Only Text is required to be present,
// and it may be empty
type Submission struct {
	ID       string                       `json:"id,omitempty" validate:"max=128"`
	Text     string                       `json:"text" validate:"max=20000"`
	Behavior *fingerprint.BehaviorMetrics `json:"behaviorMetrics,omitempty"`
	History  *scorer.UserHistory          `json:"userHistory,omitempty"`
	Order    *scorer.OrderData            `json:"orderData,omitempty"`
}

// Result pairs a submission's fingerprint with its score
type Result struct {
	SubmissionID string                  `json:"submissionId,omitempty"`
	Fingerprint  fingerprint.Fingerprint `json:"fingerprint"`
	Score        scorer.Result           `json:"score"`
	Engine       version.BuildInfo       `json:"engine"`
	Explain      []detector.RuleResult   `json:"explain,omitempty"`
}

// Skipped records a batch entry that failed validation
type Skipped struct {
	Index        int       `json:"index"`
	SubmissionID string    `json:"submissionId,omitempty"`
	Error        perr.Wire `json:"error"`
}

// BatchResult is the outcome of AnalyzeBatch. Results keep input order with
// skipped entries removed
type BatchResult struct {
	BatchID  string        `json:"batchId"`
	Results  []Result      `json:"results"`
	Skipped  []Skipped     `json:"skipped"`
	Patterns *fraud.Report `json:"patterns,omitempty"`
}

// Fingerprints returns the fingerprints of r in order
func (r BatchResult) Fingerprints() []fingerprint.Fingerprint {
	out := make([]fingerprint.Fingerprint, len(r.Results))
	for i := range r.Results {
		out[i] = r.Results[i].Fingerprint
	}
	return out
}
