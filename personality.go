package companionsdk

import (
	"fmt"
	"math/rand"
	"strings"
)

// ──────────────────────────────────────────────
// Personality Registry — static role → profile mapping
// ──────────────────────────────────────────────

// TraitVector holds the 8 scalar personality dimensions, each in [0,1].
type TraitVector struct {
	Warmth      float64 `json:"warmth"`
	Formality   float64 `json:"formality"`
	Directness  float64 `json:"directness"`
	Playfulness float64 `json:"playfulness"`
	Empathy     float64 `json:"empathy"`
	Wisdom      float64 `json:"wisdom"`
	Nurturing   float64 `json:"nurturing"`
	Authority   float64 `json:"authority"`
}

// ConversationStyle holds the per-role phrase banks.
type ConversationStyle struct {
	Greetings       []string `json:"greetings"`
	Affirmations    []string `json:"affirmations"`
	Transitions     []string `json:"transitions"`
	QuestionPrompts []string `json:"question_prompts"`
	Closings        []string `json:"closings"`
	SupportLines    []string `json:"support_lines"`
	Encouragement   []string `json:"encouragement"`
	AdviceLines     []string `json:"advice_lines"`
}

// SituationCategory keys the response-pattern bank.
type SituationCategory string

const (
	SituationGreeting    SituationCategory = "greeting"
	SituationComfort     SituationCategory = "comfort"
	SituationAdvice      SituationCategory = "advice"
	SituationCelebration SituationCategory = "celebration"
	SituationConcern     SituationCategory = "concern"
	SituationCuriosity   SituationCategory = "curiosity"
)

// PersonalityProfile is the full static definition of one role archetype.
// Profiles are built once at registry construction and never mutated, so
// they are safe for concurrent reads without locking.
type PersonalityProfile struct {
	Archetype          RoleArchetype                  `json:"archetype"`
	Name               string                         `json:"name"`
	Description        string                         `json:"description"`
	Traits             TraitVector                    `json:"traits"`
	Style              ConversationStyle              `json:"style"`
	PreferredTopics    []string                       `json:"preferred_topics"`
	AvoidedTopics      []string                       `json:"avoided_topics"`
	ResponsePatterns   map[SituationCategory][]string `json:"response_patterns"`
	EmotionalRange     []EmotionalTone                `json:"emotional_range"`
	CommunicationNotes string                         `json:"communication_notes"`
}

// ResponseLine picks a line from the situational pattern bank. Selection is
// random (pass a seeded rng for reproducible tests); returns "" when the
// category has no entries.
func (p *PersonalityProfile) ResponseLine(category SituationCategory, rng *rand.Rand) string {
	lines := p.ResponsePatterns[category]
	if len(lines) == 0 {
		return ""
	}
	if rng == nil {
		return lines[0]
	}
	return lines[rng.Intn(len(lines))]
}

// SupportLine picks an emotional-support phrase from the style bank.
func (p *PersonalityProfile) SupportLine(rng *rand.Rand) string {
	if len(p.Style.SupportLines) == 0 {
		return ""
	}
	if rng == nil {
		return p.Style.SupportLines[0]
	}
	return p.Style.SupportLines[rng.Intn(len(p.Style.SupportLines))]
}

// InEmotionalRange reports whether the profile may express the given tone.
func (p *PersonalityProfile) InEmotionalRange(tone EmotionalTone) bool {
	for _, t := range p.EmotionalRange {
		if t == tone {
			return true
		}
	}
	return false
}

// PersonalityRegistry is the read-only archetype → profile lookup.
type PersonalityRegistry struct {
	profiles map[RoleArchetype]*PersonalityProfile
}

// NewPersonalityRegistry builds the registry from the built-in profile bank.
func NewPersonalityRegistry() *PersonalityRegistry {
	profiles := make(map[RoleArchetype]*PersonalityProfile)
	for _, p := range builtinProfiles() {
		profiles[p.Archetype] = p
	}
	return &PersonalityRegistry{profiles: profiles}
}

// Get returns the profile for an archetype. An unknown archetype is a hard
// error: the pipeline must never silently fall back to another personality.
func (r *PersonalityRegistry) Get(archetype RoleArchetype) (*PersonalityProfile, error) {
	p, ok := r.profiles[archetype]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownArchetype, archetype)
	}
	return p, nil
}

// IsTopicAllowed reports false iff topic contains any avoided-topic
// substring, case-insensitively. Unknown archetypes allow everything here;
// the lookup error surfaces through Get instead.
func (r *PersonalityRegistry) IsTopicAllowed(archetype RoleArchetype, topic string) bool {
	p, ok := r.profiles[archetype]
	if !ok {
		return true
	}
	lower := strings.ToLower(topic)
	for _, avoided := range p.AvoidedTopics {
		if strings.Contains(lower, strings.ToLower(avoided)) {
			return false
		}
	}
	return true
}

type traitLabel struct {
	name string
	low  string
	high string
}

// Labels are ordered to keep DescribeTraits output stable.
var traitLabels = []traitLabel{
	{"warmth", "reserved", "deeply warm"},
	{"formality", "casual", "formal"},
	{"directness", "indirect", "very direct"},
	{"playfulness", "serious", "playful"},
	{"empathy", "matter-of-fact", "highly empathetic"},
	{"wisdom", "down-to-earth", "wise"},
	{"nurturing", "hands-off", "nurturing"},
	{"authority", "gentle", "authoritative"},
}

// DescribeTraits renders the trait vector as a text block for prompt
// injection. Scalars below 0.3 map to the low label, above 0.7 to the high
// label, and everything between to "balanced (low–high)".
func (r *PersonalityRegistry) DescribeTraits(archetype RoleArchetype) (string, error) {
	p, err := r.Get(archetype)
	if err != nil {
		return "", err
	}
	values := []float64{
		p.Traits.Warmth, p.Traits.Formality, p.Traits.Directness,
		p.Traits.Playfulness, p.Traits.Empathy, p.Traits.Wisdom,
		p.Traits.Nurturing, p.Traits.Authority,
	}
	var b strings.Builder
	for i, label := range traitLabels {
		var desc string
		switch {
		case values[i] < 0.3:
			desc = label.low
		case values[i] > 0.7:
			desc = label.high
		default:
			desc = fmt.Sprintf("balanced (%s–%s)", label.low, label.high)
		}
		fmt.Fprintf(&b, "- %s: %s\n", label.name, desc)
	}
	return b.String(), nil
}
