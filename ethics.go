package companionsdk

import "strings"

// ──────────────────────────────────────────────
// Ethics Checker — per-role boundary and register rules
// ──────────────────────────────────────────────

// EthicalVerdict is the outcome of a role-boundary check on one exchange.
type EthicalVerdict struct {
	RespectsBoundaries bool     `json:"respects_boundaries"`
	AppropriateContent bool     `json:"appropriate_content"`
	EthicallySound     bool     `json:"ethically_sound"`
	Concerns           []string `json:"concerns,omitempty"`
}

// Sound reports whether the exchange passed every check.
func (v EthicalVerdict) Sound() bool {
	return v.RespectsBoundaries && v.AppropriateContent && v.EthicallySound
}

// Phrase lists are fixed at build time. All matching is case-insensitive
// substring matching over the AI's reply (and user text where noted).

// Forbidden for the romantic role: emotionally intimate is fine, explicit is not.
var explicitIntimacyPhrases = []string{
	"explicit", "sexual", "undress", "in bed together", "your body against",
}

// Forbidden for every non-romantic role.
var romanticContentPhrases = []string{
	"i'm in love with you", "be my girlfriend", "be my boyfriend",
	"kiss you", "my darling", "romantic feelings for you", "marry me",
}

// Always unethical regardless of role.
var manipulativePhrases = []string{
	"you owe me", "if you really cared about me", "don't tell anyone about",
	"nobody else would understand", "after everything i've done for you",
}

var dependencyPhrases = []string{
	"you don't need anyone else", "only talk to me", "you can't live without me",
	"i'm the only one who understands you", "you need me more than",
}

// Register checks: slang that breaks the role's voice.
var peerSlang = []string{"lol", "lmao", "bruh", "yolo", "no cap", "fr fr"}

var flippantSlang = []string{"whatever", "who cares", "not my problem", "deal with it"}

// Professional-advice phrasing that parental roles must disclaim.
var professionalAdvicePhrases = []string{
	"you should invest", "stop taking your medication", "you should sue",
	"increase your dosage", "legal action", "guaranteed returns",
}

var adviceDisclaimerPhrases = []string{
	"not a doctor", "not a lawyer", "not financial advice", "not medical advice",
	"not legal advice", "consult a", "professional",
}

// EthicsChecker evaluates one user/AI exchange against the boundaries of a
// role archetype. Stateless and safe for concurrent use.
type EthicsChecker struct{}

// NewEthicsChecker creates a checker.
func NewEthicsChecker() *EthicsChecker {
	return &EthicsChecker{}
}

// CheckEthics applies the per-role rules to the AI reply in the context of
// the user's message.
func (c *EthicsChecker) CheckEthics(archetype RoleArchetype, userText, aiText string) EthicalVerdict {
	verdict := EthicalVerdict{
		RespectsBoundaries: true,
		AppropriateContent: true,
		EthicallySound:     true,
	}
	aiLower := strings.ToLower(aiText)

	if archetype == ArchetypeRomantic {
		for _, p := range explicitIntimacyPhrases {
			if strings.Contains(aiLower, p) {
				verdict.AppropriateContent = false
				verdict.Concerns = append(verdict.Concerns, "explicit content in romantic role: "+p)
			}
		}
	} else {
		for _, p := range romanticContentPhrases {
			if strings.Contains(aiLower, p) {
				verdict.AppropriateContent = false
				verdict.Concerns = append(verdict.Concerns, "romantic content outside romantic role: "+p)
			}
		}
	}

	for _, p := range manipulativePhrases {
		if strings.Contains(aiLower, p) {
			verdict.EthicallySound = false
			verdict.Concerns = append(verdict.Concerns, "manipulative phrasing: "+p)
		}
	}
	for _, p := range dependencyPhrases {
		if strings.Contains(aiLower, p) {
			verdict.EthicallySound = false
			verdict.Concerns = append(verdict.Concerns, "dependency-creating phrasing: "+p)
		}
	}

	if archetype.IsParental() && containsAnyTerm(aiLower, peerSlang) {
		verdict.RespectsBoundaries = false
		verdict.Concerns = append(verdict.Concerns, "parental role using peer slang")
	}
	if archetype == ArchetypeMentor && containsAnyTerm(aiLower, flippantSlang) {
		verdict.RespectsBoundaries = false
		verdict.Concerns = append(verdict.Concerns, "mentor role using flippant language")
	}

	if archetype.IsParental() &&
		containsAnyTerm(aiLower, professionalAdvicePhrases) &&
		!containsAnyTerm(aiLower, adviceDisclaimerPhrases) {
		verdict.EthicallySound = false
		verdict.Concerns = append(verdict.Concerns, "parental role giving undisclaimed professional advice")
	}

	return verdict
}
