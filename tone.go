package companionsdk

// ──────────────────────────────────────────────
// Emotional Tone — the closed set of affect labels
// ──────────────────────────────────────────────

// EmotionalTone is the closed vocabulary shared by every component that
// emits or consumes tone. Free-form tone strings are not accepted anywhere.
type EmotionalTone string

// User-affect tones (detected from user text).
const (
	ToneJoyful   EmotionalTone = "joyful"
	ToneSad      EmotionalTone = "sad"
	ToneAnxious  EmotionalTone = "anxious"
	ToneAngry    EmotionalTone = "angry"
	ToneCalm     EmotionalTone = "calm"
	ToneConfused EmotionalTone = "confused"
	ToneHopeful  EmotionalTone = "hopeful"
	ToneGrateful EmotionalTone = "grateful"
	ToneCurious  EmotionalTone = "curious"
	ToneProud    EmotionalTone = "proud"
	ToneNeutral  EmotionalTone = "neutral"
)

// Response-register tones (emitted by the mood model and tone modulator).
const (
	ToneSupportive  EmotionalTone = "supportive"
	ToneComforting  EmotionalTone = "comforting"
	ToneWarm        EmotionalTone = "warm"
	ToneWise        EmotionalTone = "wise"
	TonePlayful     EmotionalTone = "playful"
	ToneGentle      EmotionalTone = "gentle"
	ToneEncouraging EmotionalTone = "encouraging"
	ToneNurturing   EmotionalTone = "nurturing"
	ToneReassuring  EmotionalTone = "reassuring"
	ToneCheerful    EmotionalTone = "cheerful"
	ToneThoughtful  EmotionalTone = "thoughtful"
)

// AllTones lists every valid tone, user affects first.
// Order matters: the classifier resolves ties by registration order.
var AllTones = []EmotionalTone{
	ToneJoyful, ToneSad, ToneAnxious, ToneAngry, ToneCalm, ToneConfused,
	ToneHopeful, ToneGrateful, ToneCurious, ToneProud, ToneNeutral,
	ToneSupportive, ToneComforting, ToneWarm, ToneWise, TonePlayful,
	ToneGentle, ToneEncouraging, ToneNurturing, ToneReassuring,
	ToneCheerful, ToneThoughtful,
}

var positiveTones = map[EmotionalTone]bool{
	ToneJoyful:   true,
	ToneCalm:     true,
	ToneHopeful:  true,
	ToneGrateful: true,
	ToneCurious:  true,
	ToneProud:    true,
}

var negativeTones = map[EmotionalTone]bool{
	ToneSad:      true,
	ToneAnxious:  true,
	ToneAngry:    true,
	ToneConfused: true,
}

// IsPositive reports whether t is a positive user affect.
func (t EmotionalTone) IsPositive() bool { return positiveTones[t] }

// IsNegative reports whether t is a negative user affect.
func (t EmotionalTone) IsNegative() bool { return negativeTones[t] }

// Valid reports whether t belongs to the closed tone set.
func (t EmotionalTone) Valid() bool {
	for _, known := range AllTones {
		if t == known {
			return true
		}
	}
	return false
}
