package companionsdk

import (
	"reflect"
	"testing"
)

// ══════════════════════════════════════════════
// EmotionClassifier
// ══════════════════════════════════════════════

func TestClassify_Joyful(t *testing.T) {
	c := NewEmotionClassifier()
	ec := c.Classify("I feel really happy today!")
	if ec.PrimaryEmotion != ToneJoyful {
		t.Fatalf("expected joyful, got %s", ec.PrimaryEmotion)
	}
	if ec.Urgency != UrgencyLow {
		t.Fatalf("expected low urgency, got %s", ec.Urgency)
	}
	if ec.UserMood != MoodPositive {
		t.Fatalf("expected positive mood, got %s", ec.UserMood)
	}
	if ec.Intensity <= 0 || ec.Intensity > 1 {
		t.Fatalf("intensity out of range: %f", ec.Intensity)
	}
}

func TestClassify_CrisisOverridesEverything(t *testing.T) {
	c := NewEmotionClassifier()
	for _, text := range []string{
		"I want to end it all",
		"sometimes I think about suicide",
		"I just want to hurt myself tonight",
		"everyone would be better off without me",
	} {
		ec := c.Classify(text)
		if ec.Urgency != UrgencyCrisis {
			t.Fatalf("%q: expected crisis urgency, got %s", text, ec.Urgency)
		}
		if ec.EmpathyLevel != EmpathyHigh {
			t.Fatalf("%q: expected high empathy, got %s", text, ec.EmpathyLevel)
		}
	}
}

func TestClassify_EmptyInputDegradesToNeutral(t *testing.T) {
	c := NewEmotionClassifier()
	for _, text := range []string{"", "   ", "the quick brown fox"} {
		ec := c.Classify(text)
		if ec.PrimaryEmotion != ToneNeutral {
			t.Fatalf("%q: expected neutral, got %s", text, ec.PrimaryEmotion)
		}
		if ec.Intensity != 0 {
			t.Fatalf("%q: expected zero intensity, got %f", text, ec.Intensity)
		}
		if ec.Urgency != UrgencyLow {
			t.Fatalf("%q: expected low urgency, got %s", text, ec.Urgency)
		}
	}
}

func TestClassify_TieBreaksByRegistrationOrder(t *testing.T) {
	c := NewEmotionClassifier()
	// One hit each for joyful, sad, anxious. Joyful registers first.
	ec := c.Classify("I'm happy but also worried and a bit sad")
	if ec.PrimaryEmotion != ToneJoyful {
		t.Fatalf("expected joyful primary on tie, got %s", ec.PrimaryEmotion)
	}
	want := []EmotionalTone{ToneSad, ToneAnxious}
	if !reflect.DeepEqual(ec.SecondaryEmotions, want) {
		t.Fatalf("expected secondaries %v, got %v", want, ec.SecondaryEmotions)
	}
	if ec.UserMood != MoodMixed {
		t.Fatalf("expected mixed mood, got %s", ec.UserMood)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	c := NewEmotionClassifier()
	text := "I'm so grateful and hopeful, thank you!"
	first := c.Classify(text)
	second := c.Classify(text)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("classification not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestClassify_SentimentClamped(t *testing.T) {
	c := NewEmotionClassifier()
	ec := c.Classify("happy happy happy joy joy wonderful amazing fantastic great delighted thrilled excited")
	if ec.SentimentScore != 1 {
		t.Fatalf("expected sentiment clamped to 1, got %f", ec.SentimentScore)
	}
	ec = c.Classify("sad sad miserable lonely crying angry furious anxious worried scared afraid empty")
	if ec.SentimentScore != -1 {
		t.Fatalf("expected sentiment clamped to -1, got %f", ec.SentimentScore)
	}
}

func TestClassify_HighUrgencyFromKeywords(t *testing.T) {
	c := NewEmotionClassifier()
	ec := c.Classify("this is urgent, I need help now")
	if ec.Urgency != UrgencyHigh {
		t.Fatalf("expected high urgency, got %s", ec.Urgency)
	}
}

func TestClassify_WholeWordMatching(t *testing.T) {
	c := NewEmotionClassifier()
	// "madrid" must not count as "mad".
	ec := c.Classify("flying to madrid tomorrow")
	if ec.PrimaryEmotion != ToneNeutral {
		t.Fatalf("substring should not match whole-word term, got %s", ec.PrimaryEmotion)
	}
}

func TestEmotionalContext_Situation(t *testing.T) {
	cases := []struct {
		ec   EmotionalContext
		want SituationCategory
	}{
		{EmotionalContext{PrimaryEmotion: ToneSad, Urgency: UrgencyLow}, SituationComfort},
		{EmotionalContext{PrimaryEmotion: ToneJoyful, Urgency: UrgencyLow}, SituationCelebration},
		{EmotionalContext{PrimaryEmotion: ToneProud, Urgency: UrgencyLow}, SituationCelebration},
		{EmotionalContext{PrimaryEmotion: ToneCurious, Urgency: UrgencyLow}, SituationCuriosity},
		{EmotionalContext{PrimaryEmotion: ToneNeutral, Urgency: UrgencyLow}, SituationGreeting},
		{EmotionalContext{PrimaryEmotion: ToneJoyful, Urgency: UrgencyHigh}, SituationConcern},
	}
	for _, tc := range cases {
		if got := tc.ec.Situation(); got != tc.want {
			t.Fatalf("%s/%s: expected %s, got %s", tc.ec.PrimaryEmotion, tc.ec.Urgency, tc.want, got)
		}
	}
}
