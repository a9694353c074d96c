// Package fingerprint turns a review text and its optional behavioral metrics
// into a flat, immutable bag of features
package fingerprint

import "time"

// BehaviorMetrics is optional typing/session telemetry supplied with a submission.
// Durations are milliseconds; zero means "not reported"
type BehaviorMetrics struct {
	WritingTime     int64 `json:"writingTime,omitempty" validate:"gte=0"`
	RevisionsCount  int   `json:"revisionsCount,omitempty" validate:"gte=0"`
	SessionDuration int64 `json:"sessionDuration,omitempty" validate:"gte=0"`
	ImageCount      int   `json:"imageCount,omitempty" validate:"gte=0"`
}

// Fingerprint is the feature set extracted from one submission
type Fingerprint struct {
	ID       string `json:"fingerprintId"`
	TextHash string `json:"textHash"`

	// OriginalText is the normalized (lower-cased, trimmed) text, kept so
	// detectors can rescan it
	OriginalText string `json:"originalText"`

	CharacterCount      int     `json:"characterCount"`
	WordCount           int     `json:"wordCount"`
	SentenceCount       int     `json:"sentenceCount"`
	AvgWordsPerSentence float64 `json:"avgWordsPerSentence"`
	AvgCharsPerWord     float64 `json:"avgCharsPerWord"`

	VocabularyRichness  float64 `json:"vocabularyRichness"`
	CommonWordsRatio    float64 `json:"commonWordsRatio"`
	SentimentScore      float64 `json:"sentimentScore"`
	PunctuationDensity  float64 `json:"punctuationDensity"`
	CapitalizationRatio float64 `json:"capitalizationRatio"`
	RepetitionScore     float64 `json:"repetitionScore"`
	SpamIndicators      int     `json:"spamIndicators"`

	WritingSpeed    float64 `json:"writingSpeed"` // words per minute
	RevisionsCount  int     `json:"revisionsCount"`
	SessionDuration int64   `json:"sessionDuration"`
	ImageCount      int     `json:"imageCount"`

	Timestamp time.Time `json:"timestamp"`
	DayOfWeek int       `json:"dayOfWeek"` // 0 = Sunday
	HourOfDay int       `json:"hourOfDay"`

	Script string `json:"script,omitempty"`
}
