package companionsdk

// ──────────────────────────────────────────────
// Temporal Mood Model — momentary mood derived per turn
// ──────────────────────────────────────────────

// MoodState is the companion's momentary disposition. It is recomputed for
// every turn from traits, recent emotion history, and temporal context, and
// is never persisted on its own.
type MoodState struct {
	CurrentMood EmotionalTone `json:"current_mood"`
	Energy      float64       `json:"energy"`      // 0.0-1.0
	Engagement  float64       `json:"engagement"`  // 0.0-1.0
	Consistency float64       `json:"consistency"` // 0.0-1.0
	Volatility  float64       `json:"volatility"`  // 0.0-1.0
}

// Idle gap after which engagement drops and reconnection warmth kicks in.
const staleInteractionHours = 168

// ComputeMoodState derives the mood for this turn. history is the ordered
// list of recent emotion labels, oldest first; only the tail is consulted.
// All four scalars are independent deterministic formulas over the same
// inputs.
func ComputeMoodState(traits TraitVector, history []EmotionalTone, temporal TemporalContext, userEmotion EmotionalTone) MoodState {
	return MoodState{
		CurrentMood: baseMood(traits, temporal),
		Energy:      moodEnergy(len(history), temporal),
		Engagement:  moodEngagement(len(history), temporal),
		Consistency: moodConsistency(traits, history),
		Volatility:  moodVolatility(history),
	}
}

// baseMood picks the dominant trait register, then applies time-of-day
// coloring: night dampens, morning brightens.
func baseMood(traits TraitVector, temporal TemporalContext) EmotionalTone {
	mood := ToneSupportive
	switch {
	case traits.Warmth > 0.7 && traits.Empathy > 0.7:
		mood = ToneWarm
	case traits.Playfulness > 0.7:
		mood = TonePlayful
	case traits.Wisdom > 0.7:
		mood = ToneWise
	case traits.Nurturing > 0.7:
		mood = ToneNurturing
	}

	switch temporal.TimeOfDay {
	case TimeNight:
		switch mood {
		case TonePlayful:
			mood = ToneGentle
		case ToneJoyful:
			mood = ToneCalm
		}
	case TimeMorning:
		if mood == ToneCalm {
			mood = ToneEncouraging
		}
	}
	return mood
}

func moodEnergy(historyLen int, temporal TemporalContext) float64 {
	energy := 0.7
	switch temporal.TimeOfDay {
	case TimeMorning:
		energy += 0.2
	case TimeNight:
		energy -= 0.3
	}
	fatigue := float64(historyLen) / 20.0
	if fatigue > 0.3 {
		fatigue = 0.3
	}
	energy -= fatigue
	if temporal.DayKind == DayWeekend {
		energy += 0.1
	}
	return clamp01(energy)
}

func moodEngagement(historyLen int, temporal TemporalContext) float64 {
	engagement := 0.7
	boost := float64(historyLen) / 10.0
	if boost > 0.2 {
		boost = 0.2
	}
	engagement += boost
	if temporal.HoursSinceLastSeen > staleInteractionHours {
		engagement -= 0.2
	}
	if temporal.DayKind == DayWeekend {
		engagement += 0.1
	}
	return clamp01(engagement)
}

// moodConsistency blends trait steadiness with how varied the last five
// emotions were. Fewer than 3 history entries means no evidence of
// inconsistency yet.
func moodConsistency(traits TraitVector, history []EmotionalTone) float64 {
	if len(history) < 3 {
		return 1
	}
	tail := history
	if len(tail) > 5 {
		tail = tail[len(tail)-5:]
	}
	distinct := make(map[EmotionalTone]bool, len(tail))
	for _, e := range tail {
		distinct[e] = true
	}
	traitSteadiness := (traits.Authority + traits.Wisdom) / 2.0
	emotionSteadiness := 1.0 - float64(len(distinct))/5.0
	return clamp01((traitSteadiness + emotionSteadiness) / 2.0)
}

// moodVolatility counts adjacent emotion changes across the last 10 entries.
func moodVolatility(history []EmotionalTone) float64 {
	tail := history
	if len(tail) > 10 {
		tail = tail[len(tail)-10:]
	}
	if len(tail) < 2 {
		return 0
	}
	changes := 0
	for i := 1; i < len(tail); i++ {
		if tail[i] != tail[i-1] {
			changes++
		}
	}
	return clamp01(float64(changes) / 9.0)
}
