package companionsdk

import (
	"fmt"
	"strings"
)

// ──────────────────────────────────────────────
// Prompt Builder — assembles the final provider prompt
// ──────────────────────────────────────────────

// PromptInput collects everything the builder needs for one turn.
type PromptInput struct {
	Profile     *PersonalityProfile
	TraitText   string
	Emotion     EmotionalContext
	Mood        MoodState
	Modulation  ToneModulation
	Culture     CulturalGuidance
	Temporal    TemporalContext
	Recent      []StoredMessage
	UserName    string
	UserMessage string
}

// Recent history is truncated to keep the prompt bounded.
const maxHistoryLines = 10

// BuildPrompt compiles the per-turn prompt. Structure:
// [Role] + [Traits] + [Notes] + [User State] + [Tone Directive] +
// [Style Guidance] + [Recent Conversation] + [Boundaries] + [Message].
func BuildPrompt(in PromptInput) string {
	var sections []string

	role := fmt.Sprintf("You are %s: %s", in.Profile.Name, in.Profile.Description)
	sections = append(sections, role)

	if in.TraitText != "" {
		sections = append(sections, "## Personality\n"+in.TraitText)
	}
	if in.Profile.CommunicationNotes != "" {
		sections = append(sections, "## Voice\n"+in.Profile.CommunicationNotes)
	}

	sections = append(sections, buildUserState(in))
	sections = append(sections, buildToneDirective(in))

	if style := in.Culture.PromptText(); style != "" {
		sections = append(sections, "## Style\n"+style)
	}

	if history := buildHistory(in.Recent); history != "" {
		sections = append(sections, "## Recent conversation\n"+history)
	}

	if len(in.Profile.AvoidedTopics) > 0 {
		sections = append(sections, "## Boundaries\nDo not bring up or dwell on: "+
			strings.Join(in.Profile.AvoidedTopics, ", ")+".")
	}

	who := in.UserName
	if who == "" {
		who = "The user"
	}
	sections = append(sections, fmt.Sprintf("%s says: %q\n\nReply in character, in one natural message.", who, in.UserMessage))

	return strings.Join(sections, "\n\n")
}

func buildUserState(in PromptInput) string {
	var b strings.Builder
	b.WriteString("## User state\n")
	fmt.Fprintf(&b, "- Detected emotion: %s (intensity %.1f)\n", in.Emotion.PrimaryEmotion, in.Emotion.Intensity)
	if len(in.Emotion.SecondaryEmotions) > 0 {
		secondaries := make([]string, 0, len(in.Emotion.SecondaryEmotions))
		for _, t := range in.Emotion.SecondaryEmotions {
			secondaries = append(secondaries, string(t))
		}
		fmt.Fprintf(&b, "- Also present: %s\n", strings.Join(secondaries, ", "))
	}
	fmt.Fprintf(&b, "- Overall mood: %s, empathy needed: %s\n", in.Emotion.UserMood, in.Emotion.EmpathyLevel)
	fmt.Fprintf(&b, "- Time of day: %s (%s)\n", in.Temporal.TimeOfDay, in.Temporal.DayKind)
	if in.Temporal.HoursSinceLastSeen > staleInteractionHours {
		b.WriteString("- It has been over a week since you last spoke; acknowledge the gap warmly.\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func buildToneDirective(in PromptInput) string {
	var b strings.Builder
	b.WriteString("## Tone\n")
	fmt.Fprintf(&b, "Respond with a %s tone at %s emotional intensity.",
		in.Modulation.ModifiedTone, intensityWord(in.Modulation.Intensity))
	if in.Mood.Energy < 0.4 {
		b.WriteString(" Keep the energy low and unhurried.")
	}
	return b.String()
}

func intensityWord(v float64) string {
	switch {
	case v < 0.35:
		return "gentle"
	case v < 0.7:
		return "moderate"
	default:
		return "strong"
	}
}

func buildHistory(recent []StoredMessage) string {
	if len(recent) == 0 {
		return ""
	}
	if len(recent) > maxHistoryLines {
		recent = recent[len(recent)-maxHistoryLines:]
	}
	var lines []string
	for _, msg := range recent {
		speaker := "User"
		if msg.SenderID == CompanionSenderID {
			speaker = "You"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", speaker, msg.Content))
	}
	return strings.Join(lines, "\n")
}
