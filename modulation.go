package companionsdk

// ──────────────────────────────────────────────
// Tone Modulator — sequential adjustment rules with rationale trail
// ──────────────────────────────────────────────

// ToneModulation is produced once per turn and attached to the outgoing
// message as audit metadata.
type ToneModulation struct {
	BaseTone     EmotionalTone `json:"base_tone"`
	ModifiedTone EmotionalTone `json:"modified_tone"`
	Intensity    float64       `json:"intensity"` // 0.0-1.0
	Reasons      []string      `json:"reasons"`
}

// Tone-transition maps. Lookups fall through to the input tone when a tone
// has no entry, so new tones never break modulation.
var softenMap = map[EmotionalTone]EmotionalTone{
	TonePlayful:     ToneGentle,
	ToneJoyful:      ToneCalm,
	ToneCheerful:    ToneCalm,
	ToneEncouraging: ToneSupportive,
	ToneWarm:        ToneGentle,
}

var comfortMap = map[EmotionalTone]EmotionalTone{
	ToneSad:      ToneComforting,
	ToneAnxious:  ToneReassuring,
	ToneAngry:    ToneCalm,
	ToneConfused: ToneThoughtful,
}

var energizeMap = map[EmotionalTone]EmotionalTone{
	ToneCalm:       ToneCheerful,
	ToneSupportive: ToneEncouraging,
	ToneGentle:     ToneWarm,
	ToneThoughtful: ToneCurious,
}

var nightCalmMap = map[EmotionalTone]EmotionalTone{
	TonePlayful:     ToneGentle,
	ToneCheerful:    ToneCalm,
	ToneEncouraging: ToneWarm,
	ToneJoyful:      ToneCalm,
}

var reconnectMap = map[EmotionalTone]EmotionalTone{
	ToneSupportive:  ToneWarm,
	ToneCalm:        ToneWarm,
	ToneNeutral:     ToneWarm,
	ToneCheerful:    ToneWarm,
	ToneEncouraging: ToneWarm,
}

// shiftTone applies a transition map with identity fallback.
func shiftTone(m map[EmotionalTone]EmotionalTone, tone EmotionalTone) EmotionalTone {
	if next, ok := m[tone]; ok {
		return next
	}
	return tone
}

// ToneModulator combines mood, temporal context, user emotion, and role into
// the final response tone. Stateless; safe for concurrent use.
type ToneModulator struct{}

// NewToneModulator creates a modulator.
func NewToneModulator() *ToneModulator {
	return &ToneModulator{}
}

// Modulate applies the adjustment rules in a fixed order, appending one
// rationale per triggered rule. It never fails: tones without map entries
// pass through unchanged.
func (m *ToneModulator) Modulate(baseTone EmotionalTone, mood MoodState, temporal TemporalContext, userEmotion EmotionalContext, archetype RoleArchetype) ToneModulation {
	out := ToneModulation{
		BaseTone:     baseTone,
		ModifiedTone: baseTone,
		Intensity:    0.7,
	}

	if mood.Energy < 0.3 {
		out.ModifiedTone = shiftTone(softenMap, out.ModifiedTone)
		out.Intensity *= 0.7
		out.Reasons = append(out.Reasons, "low energy: softened tone")
	}
	if mood.Engagement > 0.8 {
		out.Intensity = clamp01(out.Intensity * 1.2)
		out.Reasons = append(out.Reasons, "high engagement: raised intensity")
	}
	if userEmotion.PrimaryEmotion.IsNegative() {
		out.ModifiedTone = shiftTone(comfortMap, userEmotion.PrimaryEmotion)
		out.Reasons = append(out.Reasons, "negative user emotion: shifted to comforting register")
	}
	if temporal.TimeOfDay == TimeMorning && archetype.IsPeerLike() {
		out.ModifiedTone = shiftTone(energizeMap, out.ModifiedTone)
		out.Reasons = append(out.Reasons, "morning with peer role: energized tone")
	}
	if temporal.TimeOfDay == TimeNight {
		out.ModifiedTone = shiftTone(nightCalmMap, out.ModifiedTone)
		out.Intensity *= 0.8
		out.Reasons = append(out.Reasons, "night: calmed tone and lowered intensity")
	}
	if temporal.HoursSinceLastSeen > staleInteractionHours {
		out.ModifiedTone = shiftTone(reconnectMap, out.ModifiedTone)
		out.Reasons = append(out.Reasons, "long absence: warmer reconnection tone")
	}
	if temporal.RelationshipAgeDays < 7 {
		out.Intensity *= 0.8
		out.Reasons = append(out.Reasons, "new relationship: reduced intensity")
	}
	if temporal.ConversationLength > 10 {
		out.Intensity = out.Intensity*0.7 + mood.Consistency*0.3
		out.Reasons = append(out.Reasons, "long conversation: intensity blended toward consistency")
	}

	out.Intensity = clamp01(out.Intensity)
	return out
}
