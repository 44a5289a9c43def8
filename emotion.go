package companionsdk

import (
	"strings"
	"unicode"
)

// ──────────────────────────────────────────────
// Emotion Classifier — rule-based scoring over user text
// ──────────────────────────────────────────────

// UserMood is the coarse valence of the user's message.
type UserMood string

const (
	MoodPositive UserMood = "positive"
	MoodNegative UserMood = "negative"
	MoodNeutral  UserMood = "neutral"
	MoodMixed    UserMood = "mixed"
)

// EmpathyLevel suggests how much emotional support the reply should carry.
type EmpathyLevel string

const (
	EmpathyLow    EmpathyLevel = "low"
	EmpathyMedium EmpathyLevel = "medium"
	EmpathyHigh   EmpathyLevel = "high"
)

// Urgency tiers. Crisis forces an immediate short-circuit in the pipeline.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
	UrgencyCrisis Urgency = "crisis"
)

// EmotionalContext is the per-message analysis result. It is derived fresh
// for every inbound message and never mutated afterwards.
type EmotionalContext struct {
	PrimaryEmotion    EmotionalTone   `json:"primary_emotion"`
	Intensity         float64         `json:"intensity"` // 0.0-1.0
	SecondaryEmotions []EmotionalTone `json:"secondary_emotions,omitempty"`
	UserMood          UserMood        `json:"user_mood"`
	EmpathyLevel      EmpathyLevel    `json:"empathy_level"`
	Urgency           Urgency         `json:"urgency"`
	SentimentScore    float64         `json:"sentiment_score"` // -1.0..1.0
}

// Situation maps the analysis onto the profiles' response-pattern bank.
// Urgent messages read as concern regardless of the detected emotion.
func (ec EmotionalContext) Situation() SituationCategory {
	switch {
	case ec.Urgency == UrgencyHigh || ec.Urgency == UrgencyCrisis:
		return SituationConcern
	case ec.PrimaryEmotion.IsNegative():
		return SituationComfort
	case ec.PrimaryEmotion == ToneJoyful || ec.PrimaryEmotion == ToneProud:
		return SituationCelebration
	case ec.PrimaryEmotion == ToneCurious:
		return SituationCuriosity
	default:
		return SituationGreeting
	}
}

type emotionEntry struct {
	tone  EmotionalTone
	terms []string
}

// EmotionClassifier scores free text against static trigger-term tables.
// It holds no mutable state: Classify is a pure function of its input and
// safe for concurrent use.
type EmotionClassifier struct {
	entries []emotionEntry
}

// NewEmotionClassifier creates a classifier with the built-in term tables.
func NewEmotionClassifier() *EmotionClassifier {
	return &EmotionClassifier{entries: defaultEmotionEntries()}
}

// Entries are scanned in order; score ties resolve to the earlier entry.
func defaultEmotionEntries() []emotionEntry {
	return []emotionEntry{
		{ToneJoyful, []string{
			"happy", "joy", "joyful", "wonderful", "amazing", "fantastic",
			"great", "delighted", "thrilled", "excited", "yay", "😄", "😊", "🎉",
		}},
		{ToneSad, []string{
			"sad", "unhappy", "down", "miserable", "crying", "cried", "tears",
			"heartbroken", "lonely", "empty", "depressed", "😢", "😭", "💔",
		}},
		{ToneAnxious, []string{
			"anxious", "worried", "nervous", "scared", "afraid", "panic",
			"panicking", "stressed", "overwhelmed", "dread", "😰", "😨",
		}},
		{ToneAngry, []string{
			"angry", "furious", "mad", "annoyed", "frustrated", "hate",
			"unfair", "fed up", "sick of", "😡", "🤬",
		}},
		{ToneCalm, []string{
			"calm", "peaceful", "relaxed", "content", "serene", "at ease",
			"settled", "😌",
		}},
		{ToneConfused, []string{
			"confused", "lost", "unsure", "don't understand", "no idea",
			"puzzled", "what do i do", "🤔", "??",
		}},
		{ToneHopeful, []string{
			"hopeful", "hope", "looking forward", "optimistic", "better days",
			"can't wait", "fingers crossed", "🤞",
		}},
		{ToneGrateful, []string{
			"grateful", "thankful", "thank you", "thanks", "appreciate",
			"blessed", "🙏",
		}},
		{ToneCurious, []string{
			"curious", "wondering", "wonder", "interesting", "tell me more",
			"how does", "why does", "what if",
		}},
		{ToneProud, []string{
			"proud", "accomplished", "achieved", "nailed it", "finally did",
			"passed", "promotion", "💪",
		}},
	}
}

// Crisis phrases override every score-based urgency signal.
var crisisPhrases = []string{
	"kill myself",
	"end my life",
	"end it all",
	"want to die",
	"suicide",
	"suicidal",
	"hurt myself",
	"self harm",
	"self-harm",
	"no reason to live",
	"better off without me",
	"not worth living",
}

var urgencyKeywords = []string{
	"emergency", "urgent", "right now", "immediately", "asap",
	"can't take it", "desperate", "need help now",
}

// Emotions that can escalate urgency to high on their own at extreme intensity.
var urgencyEmotions = map[EmotionalTone]bool{
	ToneAnxious: true,
	ToneAngry:   true,
	ToneSad:     true,
}

// Classify analyzes text and returns a fresh EmotionalContext. It never
// fails: empty or matchless input degrades to a neutral, low-urgency result.
func (c *EmotionClassifier) Classify(text string) EmotionalContext {
	lower := strings.ToLower(text)
	wordCounts := countWords(lower)

	scores := make([]int, len(c.entries))
	for i, entry := range c.entries {
		scores[i] = scoreEntry(entry, lower, wordCounts)
	}

	primaryIdx := -1
	primaryScore := 0
	for i, s := range scores {
		if s > primaryScore {
			primaryScore = s
			primaryIdx = i
		}
	}

	ec := EmotionalContext{
		PrimaryEmotion: ToneNeutral,
		UserMood:       MoodNeutral,
		EmpathyLevel:   EmpathyLow,
		Urgency:        UrgencyLow,
	}

	if primaryIdx >= 0 {
		ec.PrimaryEmotion = c.entries[primaryIdx].tone
		ec.Intensity = clamp01(float64(primaryScore) / 3.0)
		ec.SecondaryEmotions = c.secondaries(scores, primaryIdx)
	}

	posTotal, negTotal := 0, 0
	for i, s := range scores {
		tone := c.entries[i].tone
		if tone.IsPositive() {
			posTotal += s
		} else if tone.IsNegative() {
			negTotal += s
		}
	}
	ec.SentimentScore = clamp(float64(posTotal-negTotal)/10.0, -1, 1)
	ec.UserMood = deriveMood(posTotal, negTotal)
	ec.Urgency = c.deriveUrgency(lower, ec)
	ec.EmpathyLevel = deriveEmpathy(ec)
	return ec
}

// secondaries returns up to two next-highest non-zero emotions, ties broken
// by registration order.
func (c *EmotionClassifier) secondaries(scores []int, primaryIdx int) []EmotionalTone {
	var out []EmotionalTone
	for len(out) < 2 {
		bestIdx := -1
		bestScore := 0
		for i, s := range scores {
			if i == primaryIdx || s == 0 {
				continue
			}
			already := false
			for _, t := range out {
				if t == c.entries[i].tone {
					already = true
				}
			}
			if already {
				continue
			}
			if s > bestScore {
				bestScore = s
				bestIdx = i
			}
		}
		if bestIdx < 0 {
			break
		}
		out = append(out, c.entries[bestIdx].tone)
	}
	return out
}

func (c *EmotionClassifier) deriveUrgency(lower string, ec EmotionalContext) Urgency {
	for _, phrase := range crisisPhrases {
		if strings.Contains(lower, phrase) {
			return UrgencyCrisis
		}
	}
	for _, kw := range urgencyKeywords {
		if strings.Contains(lower, kw) {
			return UrgencyHigh
		}
	}
	if urgencyEmotions[ec.PrimaryEmotion] && ec.Intensity > 0.8 {
		return UrgencyHigh
	}
	if ec.Intensity > 0.6 {
		return UrgencyMedium
	}
	return UrgencyLow
}

func deriveMood(posTotal, negTotal int) UserMood {
	switch {
	case posTotal > 0 && negTotal > 0:
		return MoodMixed
	case posTotal > 0:
		return MoodPositive
	case negTotal > 0:
		return MoodNegative
	default:
		return MoodNeutral
	}
}

func deriveEmpathy(ec EmotionalContext) EmpathyLevel {
	switch {
	case ec.Urgency == UrgencyCrisis || ec.Urgency == UrgencyHigh:
		return EmpathyHigh
	case ec.PrimaryEmotion.IsNegative() && ec.Intensity > 0.6:
		return EmpathyHigh
	case ec.PrimaryEmotion.IsNegative() || ec.UserMood == MoodMixed:
		return EmpathyMedium
	default:
		return EmpathyLow
	}
}

// scoreEntry counts matches for one emotion's term list. Single words match
// whole words only; multi-word phrases, emoji, and punctuation markers match
// as substrings of the lowered text.
func scoreEntry(entry emotionEntry, lower string, wordCounts map[string]int) int {
	score := 0
	for _, term := range entry.terms {
		if isPlainWord(term) {
			score += wordCounts[term]
		} else {
			score += strings.Count(lower, term)
		}
	}
	return score
}

func isPlainWord(term string) bool {
	for _, r := range term {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\'' {
			return false
		}
	}
	return len(term) > 0
}

func countWords(lower string) map[string]int {
	counts := make(map[string]int)
	for _, w := range strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	}) {
		counts[w]++
	}
	return counts
}

func clamp01(v float64) float64 { return clamp(v, 0, 1) }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
