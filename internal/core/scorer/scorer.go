// Package scorer folds a fingerprint, both pattern detectors, and optional account
// and order context into a bounded authenticity score
package scorer

import (
	"fmt"
	"math"

	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/detector"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/fingerprint"
)

// Flag names one deduction trigger
type Flag string

const (
	FlagGibberish     Flag = "GIBBERISH_CONTENT"
	FlagAIGenerated   Flag = "AI_GENERATED_CONTENT"
	FlagShortReview   Flag = "SHORT_REVIEW"
	FlagLowVocabulary Flag = "LOW_VOCABULARY"
	FlagRepetition    Flag = "HIGH_REPETITION"
	FlagSentiment     Flag = "EXTREME_SENTIMENT"
	FlagSpam          Flag = "SPAM_INDICATORS"
	FlagFastTyping    Flag = "FAST_TYPING"
	FlagNoRevisions   Flag = "NO_REVISIONS"
	FlagRushed        Flag = "RUSHED_WRITING"
	FlagUnusualTime   Flag = "UNUSUAL_TIME"
	FlagLengthAnomaly Flag = "LENGTH_ANOMALY"
	FlagHighActivity  Flag = "HIGH_ACTIVITY"
)

// RiskLevel is the tier derived from the final score
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Risk maps a score to its tier
func Risk(score int) RiskLevel {
	switch {
	case score < 40:
		return RiskHigh
	case score < 70:
		return RiskMedium
	default:
		return RiskLow
	}
}

// UserHistory is optional account context. Zero values mean "unknown"
type UserHistory struct {
	TotalReviews      int     `json:"totalReviews,omitempty" validate:"gte=0"`
	AvgReviewLength   float64 `json:"avgReviewLength,omitempty" validate:"gte=0"`
	RecentReviewCount int     `json:"recentReviewCount,omitempty" validate:"gte=0"`
}

// OrderData is optional purchase context
type OrderData struct {
	PurchaseVerified bool    `json:"purchaseVerified,omitempty"`
	OrderTrustScore  float64 `json:"orderTrustScore,omitempty" validate:"gte=0,lte=100"`
}

// Analysis holds the per-category sub-scores. They are independent views and do
// not sum to the overall score
type Analysis struct {
	TextQuality           int `json:"textQuality"`
	SentimentAnalysis     int `json:"sentimentAnalysis"`
	BehavioralConsistency int `json:"behavioralConsistency"`
	TemporalPatterns      int `json:"temporalPatterns"`
	UserConsistency       int `json:"userConsistency"`
}

// Result is the outcome of one scoring call
type Result struct {
	AuthenticityScore int       `json:"authenticityScore"`
	RiskLevel         RiskLevel `json:"riskLevel"`
	Flags             []Flag    `json:"flags"`
	Reasons           []string  `json:"reasons"`
	Analysis          Analysis  `json:"analysis"`
}

// HasFlag reports whether f was raised
func (r Result) HasFlag(f Flag) bool {
	for _, x := range r.Flags {
		if x == f {
			return true
		}
	}
	return false
}

const (
	startScore = 100

	penaltyGibberish     = 30
	penaltyAIGenerated   = 25
	penaltyShortReview   = 15
	penaltyLowVocabulary = 10
	penaltyRepetition    = 8
	penaltySentiment     = 5
	penaltySpam          = 15
	penaltyFastTyping    = 12
	penaltyNoRevisions   = 8
	penaltyRushed        = 10
	penaltyUnusualTime   = 5
	penaltyLengthAnomaly = 8
	penaltyHighActivity  = 7

	bonusVerified   = 10
	bonusHighTrust  = 5
	highTrustAbove  = 70
	maxWPM          = 100
	minSessionMS    = 30000
	quietHourFirst  = 2
	quietHourLast   = 5
	lengthDeviation = 2
)

// Scorer runs the scoring rules with a given detector set
type Scorer struct {
	det *detector.Detector
}

// New returns a Scorer; a nil detector selects the embedded lexicon
func New(det *detector.Detector) *Scorer {
	if det == nil {
		det = detector.New(nil)
	}
	return &Scorer{det: det}
}

var def = New(nil)

// Score scores fp with the embedded lexicon. hist and order may be nil
func Score(fp *fingerprint.Fingerprint, hist *UserHistory, order *OrderData) Result {
	return def.Score(fp, hist, order)
}

type tally struct {
	score   int
	flags   []Flag
	reasons []string
}

func (t *tally) deduct(f Flag, points int, reason string) {
	for _, x := range t.flags {
		if x == f {
			return
		}
	}
	t.score -= points
	t.flags = append(t.flags, f)
	t.reasons = append(t.reasons, reason)
}

func (t *tally) bonus(points int, reason string) {
	t.score += points
	t.reasons = append(t.reasons, reason)
}

// Score applies every rule in order, then clamps once
func (s *Scorer) Score(fp *fingerprint.Fingerprint, hist *UserHistory, order *OrderData) Result {
	t := &tally{score: startScore, flags: []Flag{}, reasons: []string{}}

	if v := s.det.Gibberish(fp); v.Matched {
		t.deduct(FlagGibberish, penaltyGibberish, "Gibberish content detected: "+v.Reason)
	}
	if v := s.det.AIGenerated(fp); v.Matched {
		t.deduct(FlagAIGenerated, penaltyAIGenerated, "Possible AI-generated content: "+v.Reason)
	}
	if fp.WordCount < 10 {
		t.deduct(FlagShortReview, penaltyShortReview, "Review is very short")
	}
	if fp.VocabularyRichness < 0.3 {
		t.deduct(FlagLowVocabulary, penaltyLowVocabulary, "Low vocabulary diversity")
	}
	if fp.RepetitionScore > 0.3 {
		t.deduct(FlagRepetition, penaltyRepetition, "High word repetition")
	}
	if math.Abs(fp.SentimentScore) > 0.5 {
		t.deduct(FlagSentiment, penaltySentiment, "Extreme sentiment")
	}
	if fp.SpamIndicators > 0 {
		t.deduct(FlagSpam, penaltySpam, fmt.Sprintf("Contains %d promotional phrase(s)", fp.SpamIndicators))
	}
	if fp.WritingSpeed > maxWPM {
		t.deduct(FlagFastTyping, penaltyFastTyping, fmt.Sprintf("Unusually fast typing (%.0f WPM)", fp.WritingSpeed))
	}
	if fp.RevisionsCount < 2 && fp.WordCount > 50 {
		t.deduct(FlagNoRevisions, penaltyNoRevisions, "Long review written without revisions")
	}
	if fp.SessionDuration < minSessionMS && fp.WordCount > 30 {
		t.deduct(FlagRushed, penaltyRushed, "Review written in a very short session")
	}
	if fp.HourOfDay >= quietHourFirst && fp.HourOfDay <= quietHourLast {
		t.deduct(FlagUnusualTime, penaltyUnusualTime, "Submitted at an unusual hour")
	}

	if hist != nil {
		if hist.TotalReviews > 10 && hist.AvgReviewLength > 0 &&
			math.Abs(float64(fp.WordCount)-hist.AvgReviewLength)/hist.AvgReviewLength > lengthDeviation {
			t.deduct(FlagLengthAnomaly, penaltyLengthAnomaly, "Review length differs sharply from the user's usual length")
		}
		if hist.RecentReviewCount > 5 {
			t.deduct(FlagHighActivity, penaltyHighActivity, "High recent review activity")
		}
	}

	if order != nil {
		if order.PurchaseVerified {
			t.bonus(bonusVerified, "Verified purchase")
		}
		if order.OrderTrustScore > highTrustAbove {
			t.bonus(bonusHighTrust, "High order trust score")
		}
	}

	score := min(max(t.score, 0), 100)
	return Result{
		AuthenticityScore: score,
		RiskLevel:         Risk(score),
		Flags:             t.flags,
		Reasons:           t.reasons,
		Analysis:          analyze(t.flags),
	}
}

type category struct {
	penalty int
	flags   []Flag
}

var (
	textQuality = category{10, []Flag{FlagGibberish, FlagAIGenerated, FlagShortReview, FlagLowVocabulary, FlagRepetition, FlagSpam}}
	sentiment   = category{10, []Flag{FlagSentiment}}
	behavioral  = category{10, []Flag{FlagFastTyping, FlagNoRevisions, FlagRushed}}
	temporal    = category{20, []Flag{FlagUnusualTime}}
	userConsist = category{10, []Flag{FlagLengthAnomaly, FlagHighActivity}}
)

func (c category) score(raised []Flag) int {
	n := 0
	for _, f := range raised {
		for _, cf := range c.flags {
			if f == cf {
				n++
			}
		}
	}
	return max(0, 100-n*c.penalty)
}

func analyze(flags []Flag) Analysis {
	return Analysis{
		TextQuality:           textQuality.score(flags),
		SentimentAnalysis:     sentiment.score(flags),
		BehavioralConsistency: behavioral.score(flags),
		TemporalPatterns:      temporal.score(flags),
		UserConsistency:       userConsist.score(flags),
	}
}
