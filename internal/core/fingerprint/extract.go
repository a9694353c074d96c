package fingerprint

import (
	"encoding/hex"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/langhint"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/lexicon"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/normalize"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// seams for deterministic tests
var (
	now   = time.Now
	newID = uuid.NewString
)

const punctuation = ".,!?;:"

// Extractor computes fingerprints against a fixed lexicon
type Extractor struct {
	lx    *lexicon.Lexicon
	clock func() time.Time
	ids   func() string
}

// Option configures an Extractor
type Option func(*Extractor)

// WithClock sets the source of fingerprint timestamps
func WithClock(clock func() time.Time) Option {
	return func(e *Extractor) { e.clock = clock }
}

// WithIDs sets the source of fingerprint ids
func WithIDs(ids func() string) Option {
	return func(e *Extractor) { e.ids = ids }
}

// NewExtractor returns an Extractor over lx; nil selects the embedded default
func NewExtractor(lx *lexicon.Lexicon, opts ...Option) *Extractor {
	if lx == nil {
		lx = lexicon.Default()
	}
	e := &Extractor{lx: lx}
	for _, o := range opts {
		o(e)
	}
	return e
}

func (e *Extractor) now() time.Time {
	if e.clock != nil {
		return e.clock()
	}
	return now()
}

func (e *Extractor) newID() string {
	if e.ids != nil {
		return e.ids()
	}
	return newID()
}

var (
	defOnce sync.Once
	def     *Extractor
)

// Generate extracts a fingerprint with the embedded lexicon
func Generate(text string, bm *BehaviorMetrics) Fingerprint {
	defOnce.Do(func() { def = NewExtractor(nil) })
	return def.Generate(text, bm)
}

// Generate extracts a fingerprint from text; bm may be nil
func (e *Extractor) Generate(text string, bm *BehaviorMetrics) Fingerprint {
	norm := normalize.Text(text)
	words := normalize.Words(norm)
	sentences := normalize.Sentences(norm)

	chars := utf8.RuneCountInString(norm)
	wc := len(words)
	wDen := float64(max(wc, 1))

	freq := make(map[string]int, wc)
	var (
		wordRunes, common, pos, neg, maxFreq int
	)
	for _, w := range words {
		wordRunes += utf8.RuneCountInString(w)
		freq[w]++
		if freq[w] > maxFreq {
			maxFreq = freq[w]
		}
		if e.lx.Common.Contains(w) {
			common++
		}
		if e.lx.Positive.Contains(w) {
			pos++
		}
		if e.lx.Negative.Contains(w) {
			neg++
		}
	}

	punct := 0
	for _, r := range norm {
		if strings.ContainsRune(punctuation, r) {
			punct++
		}
	}

	upper, origRunes := 0, 0
	for _, r := range text {
		origRunes++
		if unicode.IsUpper(r) {
			upper++
		}
	}

	sum := blake2b.Sum256([]byte(norm))
	ts := e.now()

	fp := Fingerprint{
		ID:           e.newID(),
		TextHash:     hex.EncodeToString(sum[:]),
		OriginalText: norm,

		CharacterCount:      chars,
		WordCount:           wc,
		SentenceCount:       len(sentences),
		AvgWordsPerSentence: float64(wc) / float64(max(len(sentences), 1)),
		AvgCharsPerWord:     float64(wordRunes) / wDen,

		VocabularyRichness:  float64(len(freq)) / wDen,
		CommonWordsRatio:    float64(common) / wDen,
		SentimentScore:      float64(pos-neg) / wDen,
		PunctuationDensity:  float64(punct) / float64(max(chars, 1)),
		CapitalizationRatio: float64(upper) / float64(max(origRunes, 1)),
		RepetitionScore:     float64(maxFreq) / wDen,
		SpamIndicators:      e.lx.Spam.CountDistinct(norm),

		Timestamp: ts,
		DayOfWeek: int(ts.Weekday()),
		HourOfDay: ts.Hour(),

		Script: langhint.Detect(norm).Script,
	}

	if bm != nil {
		if bm.WritingTime > 0 {
			fp.WritingSpeed = float64(wc) / (float64(bm.WritingTime) / 60000)
		}
		fp.RevisionsCount = bm.RevisionsCount
		fp.SessionDuration = bm.SessionDuration
		fp.ImageCount = bm.ImageCount
	}
	return fp
}
