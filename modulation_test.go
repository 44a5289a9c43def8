package companionsdk

import (
	"math"
	"strings"
	"testing"
)

// ══════════════════════════════════════════════
// ToneModulator
// ══════════════════════════════════════════════

func neutralEmotion() EmotionalContext {
	return EmotionalContext{PrimaryEmotion: ToneNeutral, UserMood: MoodNeutral, EmpathyLevel: EmpathyLow, Urgency: UrgencyLow}
}

func calmDaytime() TemporalContext {
	return TemporalContext{
		TimeOfDay:           TimeAfternoon,
		DayKind:             DayWeekday,
		RelationshipAgeDays: 30,
		HoursSinceLastSeen:  2,
		ConversationLength:  4,
	}
}

func steadyMood() MoodState {
	return MoodState{CurrentMood: ToneSupportive, Energy: 0.7, Engagement: 0.7, Consistency: 0.8}
}

func TestModulate_IdentityFallbackOnUnmappedTone(t *testing.T) {
	m := NewToneModulator()
	mood := steadyMood()
	mood.Energy = 0.1 // soften rule fires, but ToneWise has no soften entry
	out := m.Modulate(ToneWise, mood, calmDaytime(), neutralEmotion(), ArchetypeMentor)
	if out.ModifiedTone != ToneWise {
		t.Fatalf("unmapped tone must pass through unchanged, got %s", out.ModifiedTone)
	}
	if len(out.Reasons) == 0 {
		t.Fatal("soften rule should still record its rationale")
	}
}

func TestModulate_NoRulesNoReasons(t *testing.T) {
	m := NewToneModulator()
	out := m.Modulate(ToneSupportive, steadyMood(), calmDaytime(), neutralEmotion(), ArchetypeMentor)
	if out.ModifiedTone != ToneSupportive {
		t.Fatalf("expected unchanged tone, got %s", out.ModifiedTone)
	}
	if len(out.Reasons) != 0 {
		t.Fatalf("expected no rationale, got %v", out.Reasons)
	}
	if math.Abs(out.Intensity-0.7) > 1e-9 {
		t.Fatalf("expected base intensity 0.7, got %f", out.Intensity)
	}
}

func TestModulate_NegativeEmotionShiftsToComfort(t *testing.T) {
	m := NewToneModulator()
	emotion := neutralEmotion()
	emotion.PrimaryEmotion = ToneSad
	out := m.Modulate(ToneWarm, steadyMood(), calmDaytime(), emotion, ArchetypeFriend)
	if out.ModifiedTone != ToneComforting {
		t.Fatalf("expected comforting for sad user, got %s", out.ModifiedTone)
	}
}

func TestModulate_RationaleOrderIsDeterministic(t *testing.T) {
	m := NewToneModulator()
	mood := steadyMood()
	mood.Energy = 0.2
	emotion := neutralEmotion()
	emotion.PrimaryEmotion = ToneAnxious

	out := m.Modulate(ToneWarm, mood, calmDaytime(), emotion, ArchetypeFriend)
	if len(out.Reasons) != 2 {
		t.Fatalf("expected 2 reasons, got %v", out.Reasons)
	}
	if !strings.Contains(out.Reasons[0], "low energy") {
		t.Fatalf("soften rationale must come first, got %v", out.Reasons)
	}
	if !strings.Contains(out.Reasons[1], "negative user emotion") {
		t.Fatalf("comfort rationale must come second, got %v", out.Reasons)
	}
}

func TestModulate_NightCalmsAndLowersIntensity(t *testing.T) {
	m := NewToneModulator()
	tc := calmDaytime()
	tc.TimeOfDay = TimeNight
	out := m.Modulate(TonePlayful, steadyMood(), tc, neutralEmotion(), ArchetypeSibling)
	if out.ModifiedTone != ToneGentle {
		t.Fatalf("expected playful calmed to gentle at night, got %s", out.ModifiedTone)
	}
	if math.Abs(out.Intensity-0.7*0.8) > 1e-9 {
		t.Fatalf("expected intensity 0.56, got %f", out.Intensity)
	}
}

func TestModulate_MorningEnergizesPeerRoles(t *testing.T) {
	m := NewToneModulator()
	tc := calmDaytime()
	tc.TimeOfDay = TimeMorning
	out := m.Modulate(ToneCalm, steadyMood(), tc, neutralEmotion(), ArchetypeFriend)
	if out.ModifiedTone != ToneCheerful {
		t.Fatalf("expected calm energized to cheerful, got %s", out.ModifiedTone)
	}
	// Non-peer roles stay put.
	out = m.Modulate(ToneCalm, steadyMood(), tc, neutralEmotion(), ArchetypeMentor)
	if out.ModifiedTone != ToneCalm {
		t.Fatalf("mentor should not get the morning energize shift, got %s", out.ModifiedTone)
	}
}

func TestModulate_NewRelationshipReducesIntensity(t *testing.T) {
	m := NewToneModulator()
	tc := calmDaytime()
	tc.RelationshipAgeDays = 2
	out := m.Modulate(ToneSupportive, steadyMood(), tc, neutralEmotion(), ArchetypeFriend)
	if math.Abs(out.Intensity-0.7*0.8) > 1e-9 {
		t.Fatalf("expected dampened intensity 0.56, got %f", out.Intensity)
	}
}

func TestModulate_LongConversationBlendsConsistency(t *testing.T) {
	m := NewToneModulator()
	tc := calmDaytime()
	tc.ConversationLength = 15
	mood := steadyMood()
	mood.Consistency = 1.0
	out := m.Modulate(ToneSupportive, mood, tc, neutralEmotion(), ArchetypeFriend)
	want := 0.7*0.7 + 1.0*0.3
	if math.Abs(out.Intensity-want) > 1e-9 {
		t.Fatalf("expected blended intensity %f, got %f", want, out.Intensity)
	}
}

func TestModulate_ReconnectionWarmth(t *testing.T) {
	m := NewToneModulator()
	tc := calmDaytime()
	tc.HoursSinceLastSeen = 24 * 10
	out := m.Modulate(ToneSupportive, steadyMood(), tc, neutralEmotion(), ArchetypeFriend)
	if out.ModifiedTone != ToneWarm {
		t.Fatalf("expected warm reconnection tone, got %s", out.ModifiedTone)
	}
}
