package domain

import (
	"context"

	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/fingerprint"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/fraud"
)

// AnalyzerPort is the external port of the authenticity service
type AnalyzerPort interface {
	// Analyze fingerprints and scores a single submission
	Analyze(ctx context.Context, sub Submission) (Result, error)

	// AnalyzeBatch scores many submissions concurrently and, when enabled,
	// mines the batch for fraud patterns
	AnalyzeBatch(ctx context.Context, subs []Submission) (BatchResult, error)

	// Mine runs the fraud pattern miner over fingerprints produced earlier
	Mine(ctx context.Context, fps []fingerprint.Fingerprint) (fraud.Report, error)

	// Compare returns the style similarity of two fingerprints in [0,1]
	Compare(a, b fingerprint.Fingerprint) float64
}
