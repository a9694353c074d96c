package fingerprint

import (
	"encoding/hex"
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	kit "github.com/vaibhavgarg230/trustlens-sub000/internal/platform/testkit"

	"golang.org/x/crypto/blake2b"
)

var fixedAt = time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC) // a Saturday

func pin(t *testing.T) {
	t.Helper()
	kit.SwapSerial(t, &now, kit.Clock(fixedAt))
	kit.Swap(t, &newID, kit.IDs("fp"))
}

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestGenerate_BasicFeatures(t *testing.T) {
	pin(t)

	fp := Generate("Good good bad product", nil)

	if fp.ID != "fp-1" {
		t.Fatalf("ID = %q", fp.ID)
	}
	if fp.OriginalText != "good good bad product" {
		t.Fatalf("OriginalText = %q", fp.OriginalText)
	}
	if fp.CharacterCount != 21 || fp.WordCount != 4 || fp.SentenceCount != 1 {
		t.Fatalf("counts = %d/%d/%d", fp.CharacterCount, fp.WordCount, fp.SentenceCount)
	}
	approx(t, "AvgWordsPerSentence", fp.AvgWordsPerSentence, 4)
	approx(t, "AvgCharsPerWord", fp.AvgCharsPerWord, 4.5)
	approx(t, "VocabularyRichness", fp.VocabularyRichness, 0.75)
	approx(t, "CommonWordsRatio", fp.CommonWordsRatio, 0.5)
	approx(t, "SentimentScore", fp.SentimentScore, 0.25)
	approx(t, "RepetitionScore", fp.RepetitionScore, 0.5)
	approx(t, "PunctuationDensity", fp.PunctuationDensity, 0)
	approx(t, "CapitalizationRatio", fp.CapitalizationRatio, 1.0/21)
	if fp.SpamIndicators != 0 {
		t.Fatalf("SpamIndicators = %d", fp.SpamIndicators)
	}
	if fp.Script != "Latin" {
		t.Fatalf("Script = %q", fp.Script)
	}
}

func TestGenerate_TemporalFromClock(t *testing.T) {
	pin(t)

	fp := Generate("anything", nil)
	if !fp.Timestamp.Equal(fixedAt) {
		t.Fatalf("Timestamp = %v", fp.Timestamp)
	}
	if fp.DayOfWeek != int(time.Saturday) || fp.HourOfDay != 14 {
		t.Fatalf("day/hour = %d/%d", fp.DayOfWeek, fp.HourOfDay)
	}
}

func TestGenerate_EmptyInput(t *testing.T) {
	pin(t)

	fp := Generate("", nil)
	if fp.WordCount != 0 || fp.CharacterCount != 0 || fp.SentenceCount != 0 {
		t.Fatalf("counts should be zero: %+v", fp)
	}
	for name, v := range map[string]float64{
		"AvgWordsPerSentence": fp.AvgWordsPerSentence,
		"AvgCharsPerWord":     fp.AvgCharsPerWord,
		"VocabularyRichness":  fp.VocabularyRichness,
		"CommonWordsRatio":    fp.CommonWordsRatio,
		"SentimentScore":      fp.SentimentScore,
		"PunctuationDensity":  fp.PunctuationDensity,
		"CapitalizationRatio": fp.CapitalizationRatio,
		"RepetitionScore":     fp.RepetitionScore,
	} {
		if v != 0 || math.IsNaN(v) {
			t.Fatalf("%s = %v, want 0", name, v)
		}
	}
	empty := blake2b.Sum256(nil)
	if fp.TextHash != hex.EncodeToString(empty[:]) {
		t.Fatalf("TextHash of empty text = %s", fp.TextHash)
	}
}

func TestGenerate_SentencesAndPunctuation(t *testing.T) {
	pin(t)

	fp := Generate("Works well. Ships fast! Would I buy again? Yes...", nil)
	if fp.SentenceCount != 4 {
		t.Fatalf("SentenceCount = %d, want 4", fp.SentenceCount)
	}
	if fp.WordCount != 9 {
		t.Fatalf("WordCount = %d, want 9", fp.WordCount)
	}
	approx(t, "AvgWordsPerSentence", fp.AvgWordsPerSentence, 9.0/4)
	// . ! ? . . .
	approx(t, "PunctuationDensity", fp.PunctuationDensity, 6.0/float64(fp.CharacterCount))
}

func TestGenerate_CapitalizationUsesOriginalText(t *testing.T) {
	pin(t)

	fp := Generate("  ABCD  ", nil)
	if fp.OriginalText != "abcd" {
		t.Fatalf("normalized = %q", fp.OriginalText)
	}
	// 4 upper-case runes over 8 original runes, padding included
	approx(t, "CapitalizationRatio", fp.CapitalizationRatio, 0.5)
}

func TestGenerate_SpamIndicators(t *testing.T) {
	pin(t)

	fp := Generate("buy now limited time special offer discount", nil)
	if fp.WordCount != 7 {
		t.Fatalf("WordCount = %d", fp.WordCount)
	}
	if fp.SpamIndicators != 3 {
		t.Fatalf("SpamIndicators = %d, want 3", fp.SpamIndicators)
	}

	again := Generate("BUY NOW buy now BUY NOW", nil)
	if again.SpamIndicators != 1 {
		t.Fatalf("repeated phrase should count once, got %d", again.SpamIndicators)
	}
}

func TestGenerate_Behavior(t *testing.T) {
	pin(t)

	bm := &BehaviorMetrics{WritingTime: 30000, RevisionsCount: 3, SessionDuration: 90000, ImageCount: 2}
	fp := Generate("one two three four", bm)
	approx(t, "WritingSpeed", fp.WritingSpeed, 8)
	if fp.RevisionsCount != 3 || fp.SessionDuration != 90000 || fp.ImageCount != 2 {
		t.Fatalf("passthrough lost: %+v", fp)
	}

	noTime := Generate("one two three four", &BehaviorMetrics{RevisionsCount: 1})
	if noTime.WritingSpeed != 0 || noTime.RevisionsCount != 1 {
		t.Fatalf("absent writing time should give zero speed: %+v", noTime)
	}

	none := Generate("one two three four", nil)
	if none.WritingSpeed != 0 || none.RevisionsCount != 0 || none.SessionDuration != 0 || none.ImageCount != 0 {
		t.Fatalf("nil metrics should zero behavior: %+v", none)
	}
}

func TestGenerate_HashStableIDsUnique(t *testing.T) {
	kit.SwapSerial(t, &now, kit.Clock(fixedAt))

	a := Generate("Hello World", nil)
	b := Generate("  hello world \n", nil)
	c := Generate("hello  world", nil)

	if a.TextHash != b.TextHash {
		t.Fatalf("same normalized text should hash equal")
	}
	if a.TextHash == c.TextHash {
		t.Fatalf("inner spacing is significant")
	}
	if a.ID == "" || a.ID == b.ID || b.ID == c.ID {
		t.Fatalf("ids must be unique: %q %q %q", a.ID, b.ID, c.ID)
	}
	if len(a.TextHash) != 64 {
		t.Fatalf("hash length = %d", len(a.TextHash))
	}
}

func TestGenerate_DeterministicApartFromIdentity(t *testing.T) {
	pin(t)

	bm := &BehaviorMetrics{WritingTime: 12000, SessionDuration: 40000}
	a := Generate("Solid kettle. Boils fast and the handle stays cool!", bm)
	b := Generate("Solid kettle. Boils fast and the handle stays cool!", bm)
	a.ID, b.ID = "", ""
	if a != b {
		t.Fatalf("fingerprints differ:\n%+v\n%+v", a, b)
	}
}

func TestFingerprint_JSONKeys(t *testing.T) {
	pin(t)

	raw, err := json.Marshal(Generate("fine", nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(raw)
	for _, k := range []string{`"fingerprintId"`, `"textHash"`, `"originalText"`, `"vocabularyRichness"`,
		`"writingSpeed"`, `"hourOfDay"`, `"dayOfWeek"`} {
		if !strings.Contains(s, k) {
			t.Fatalf("missing key %s in %s", k, s)
		}
	}
}

func TestExtractor_Options(t *testing.T) {
	at := time.Date(2024, 1, 7, 3, 30, 0, 0, time.UTC) // Sunday
	e := NewExtractor(nil, WithClock(kit.Clock(at)), WithIDs(kit.IDs("sub")))

	a := e.Generate("first", nil)
	b := e.Generate("second", nil)
	if a.ID != "sub-1" || b.ID != "sub-2" {
		t.Fatalf("ids = %q %q", a.ID, b.ID)
	}
	if !a.Timestamp.Equal(at) || a.DayOfWeek != 0 || a.HourOfDay != 3 {
		t.Fatalf("temporal = %v %d %d", a.Timestamp, a.DayOfWeek, a.HourOfDay)
	}
}
