package companionsdk

import (
	"fmt"
	"strings"
)

// ──────────────────────────────────────────────
// Cultural Adaptation — locale signals → communication-style guidance
// ──────────────────────────────────────────────

// CulturalGuidance describes how formal and how direct the reply should be.
// It is consumed only as prompt text; no other component branches on it.
type CulturalGuidance struct {
	Formality  string `json:"formality"`  // formal/casual/neutral
	Directness string `json:"directness"` // direct/indirect/neutral
	Notes      string `json:"notes,omitempty"`
}

type cultureRule struct {
	prefixes []string
	guidance CulturalGuidance
}

// Rules match on language (or language-region) prefixes of the locale.
// First match wins; unmatched locales get the neutral default.
var cultureRules = []cultureRule{
	{[]string{"ja", "ko"}, CulturalGuidance{
		Formality:  "formal",
		Directness: "indirect",
		Notes:      "Prefer polite, considerate phrasing; soften disagreement; avoid blunt refusals.",
	}},
	{[]string{"de", "nl"}, CulturalGuidance{
		Formality:  "neutral",
		Directness: "direct",
		Notes:      "Clear, straightforward statements are appreciated; avoid padding.",
	}},
	{[]string{"en-us", "en-au"}, CulturalGuidance{
		Formality:  "casual",
		Directness: "direct",
		Notes:      "Relaxed, conversational register is fine.",
	}},
	{[]string{"en-gb"}, CulturalGuidance{
		Formality:  "neutral",
		Directness: "indirect",
		Notes:      "Mild understatement lands better than effusiveness.",
	}},
	{[]string{"es", "it", "pt"}, CulturalGuidance{
		Formality:  "casual",
		Directness: "neutral",
		Notes:      "Expressive warmth is welcome.",
	}},
	{[]string{"zh"}, CulturalGuidance{
		Formality:  "neutral",
		Directness: "indirect",
		Notes:      "Show consideration for the user's circumstances before advising.",
	}},
}

// AdaptCulture maps user locale preferences to style guidance.
func AdaptCulture(prefs UserPreferences) CulturalGuidance {
	locale := strings.ToLower(strings.TrimSpace(prefs.Locale))
	locale = strings.ReplaceAll(locale, "_", "-")
	for _, rule := range cultureRules {
		for _, prefix := range rule.prefixes {
			if locale == prefix || strings.HasPrefix(locale, prefix+"-") {
				return rule.guidance
			}
		}
	}
	return CulturalGuidance{Formality: "neutral", Directness: "neutral"}
}

// PromptText renders the guidance as a prompt fragment. Empty when there is
// nothing worth injecting.
func (g CulturalGuidance) PromptText() string {
	if g.Formality == "neutral" && g.Directness == "neutral" && g.Notes == "" {
		return ""
	}
	text := fmt.Sprintf("Communication style: %s formality, %s phrasing.", g.Formality, g.Directness)
	if g.Notes != "" {
		text += " " + g.Notes
	}
	return text
}
